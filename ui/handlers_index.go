package ui

import (
	"net/http"

	"go.uber.org/zap"

	"portuguese101/ui/middleware"
)

// handleIndex renders the hosting page; its script loads the fragments.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, err := a.render.RenderIndex(a.config.Title)
	if err != nil {
		middleware.Logger(r.Context()).Error("failed to render index", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	a.writeHTML(w, html)
}
