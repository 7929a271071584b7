package ui

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"portuguese101/internal/errors"
	"portuguese101/ports"
	"portuguese101/ui/middleware"
	"portuguese101/ui/services"
)

//go:embed templates/*.html templates/fragments/*.html static
var embeddedFiles embed.FS

// App serves the vocabulary page and the fragments it loads.
type App struct {
	router     *chi.Mux
	categories ports.CategoryRepository
	nouns      ports.NounRepository
	render     *services.RenderService
	logger     *zap.Logger
	config     Config
}

// Config holds UI application configuration
type Config struct {
	Port  string
	Title string
}

// NewApp creates a new UI application
func NewApp(config Config, categories ports.CategoryRepository, nouns ports.NounRepository, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Title == "" {
		config.Title = "Portuguese 101"
	}

	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}
	render, err := services.NewRenderService(templates)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:     chi.NewRouter(),
		categories: categories,
		nouns:      nouns,
		render:     render,
		logger:     logger,
		config:     config,
	}

	if err := app.setupMiddleware(); err != nil {
		return nil, err
	}
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() error {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.RequestLogger(a.logger))
	a.router.Use(chimiddleware.Recoverer)
	a.router.Use(chimiddleware.Compress(5))

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return errors.Wrap(err, "failed to open static assets")
	}
	a.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	return nil
}

// setupRoutes configures the application routes. The .do endpoints keep
// the paths the page script posts to.
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/GetCategories.do", a.handleGetCategories)
	a.router.Post("/ConnectDB.do", a.handleConnectDB)
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.config.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting vocabulary server", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (a *App) writeHTML(w http.ResponseWriter, markup string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(markup)); err != nil {
		a.logger.Warn("failed to write response", zap.Error(err))
	}
}
