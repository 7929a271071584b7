package ui

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"portuguese101/ui/middleware"
)

const maxCategoryBody = 64 << 10

var lineTerminators = strings.NewReplacer("\r", "", "\n", "")

// handleGetCategories returns the category selector fragment
func (a *App) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	logger := middleware.Logger(r.Context())

	categories, err := a.categories.ListCategories(r.Context())
	if err != nil {
		logger.Error("failed to list categories", zap.Error(err))
		http.Error(w, "failed to load categories", http.StatusInternalServerError)
		return
	}

	html, err := a.render.RenderCategorySelect(categories)
	if err != nil {
		logger.Error("failed to render categories", zap.Error(err))
		http.Error(w, "failed to load categories", http.StatusInternalServerError)
		return
	}
	a.writeHTML(w, html)
}

// handleConnectDB returns the noun table fragment for the category sent as
// the raw request body. Line terminators in the body are dropped.
func (a *App) handleConnectDB(w http.ResponseWriter, r *http.Request) {
	logger := middleware.Logger(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCategoryBody))
	if err != nil {
		logger.Warn("failed to read category", zap.Error(err))
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "category too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "failed to read category", http.StatusBadRequest)
		return
	}
	category := lineTerminators.Replace(string(body))

	nouns, err := a.nouns.ListNounsByCategory(r.Context(), category)
	if err != nil {
		logger.Error("failed to list nouns", zap.String("category", category), zap.Error(err))
		http.Error(w, "failed to load nouns", http.StatusInternalServerError)
		return
	}

	html, err := a.render.RenderNounTable(nouns)
	if err != nil {
		logger.Error("failed to render nouns", zap.Error(err))
		http.Error(w, "failed to load nouns", http.StatusInternalServerError)
		return
	}
	a.writeHTML(w, html)
}
