// Package httpapi is the HTTP shell around the MCP server: health probes,
// bearer auth and the router. It carries no build logic.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"homolo/internal/config"
)

// App represents the HTTP application.
type App struct {
	router *chi.Mux
}

// NewApp builds the router: GET probes on / and /health stay open, every
// other route goes through bearer auth and into the MCP handler.
func NewApp(cfg config.ServerConfig, mcpHandler http.Handler) *App {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth)
	// GET on the root answers liveness probes; MCP traffic is POST.
	r.Get("/", handleRoot)

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(cfg.BearerToken))
		r.Handle("/*", mcpHandler)
	})

	return &App{router: r}
}

// Router returns the configured handler.
func (a *App) Router() http.Handler {
	return a.router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, `{"status":"ok"}`)
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, `{"status":"ok","hint":"MCP mounted at root; use POST with an MCP client."}`)
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
