package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires the vocabulary handler into a gin engine
func NewRouter(handler *VocabularyHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", handler.Health)

	api := router.Group("/api")
	api.GET("/categories", handler.ListCategories)
	api.GET("/categories/:id/nouns", handler.ListNouns)

	return router
}
