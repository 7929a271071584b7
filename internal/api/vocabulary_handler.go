package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portuguese101/internal/errors"
	"portuguese101/ports"
)

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// VocabularyHandler serves categories and nouns as JSON
type VocabularyHandler struct {
	categories ports.CategoryRepository
	nouns      ports.NounRepository
	db         Pinger
	logger     *zap.Logger
}

// NewVocabularyHandler creates a new vocabulary handler
func NewVocabularyHandler(
	categories ports.CategoryRepository,
	nouns ports.NounRepository,
	db Pinger,
	logger *zap.Logger,
) *VocabularyHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VocabularyHandler{
		categories: categories,
		nouns:      nouns,
		db:         db,
		logger:     logger,
	}
}

// ListCategories returns every category
func (h *VocabularyHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// ListNouns returns the nouns of one category; unknown categories are 404
func (h *VocabularyHandler) ListNouns(c *gin.Context) {
	categoryID := c.Param("id")

	if _, err := h.categories.GetCategory(c.Request.Context(), categoryID); err != nil {
		h.fail(c, err)
		return
	}

	nouns, err := h.nouns.ListNounsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": categoryID,
		"nouns":    nouns,
		"count":    len(nouns),
	})
}

// Health pings the database
func (h *VocabularyHandler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			h.logger.Warn("database ping failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *VocabularyHandler) fail(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	message := "internal error"
	if code == errors.CodeNotFound {
		status = http.StatusNotFound
		message = err.Error()
	} else {
		h.logger.Error("vocabulary request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}

	c.JSON(status, gin.H{
		"error": message,
		"code":  code,
	})
}
