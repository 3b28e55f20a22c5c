// Package server exposes the notebook commands over HTTP.
//
// Commands are plain JSON requests. Window close signals arrive
// one-way over a websocket connection on /signals.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/akeil/inkbook/internal/logging"
	"github.com/akeil/inkbook/pkg/fs"
	"github.com/akeil/inkbook/pkg/windows"
)

// Server handles commands for the notebooks in one registry.
type Server struct {
	registry *fs.Registry
	windows  *windows.Manager
	router   *chi.Mux
	upgrader websocket.Upgrader
}

// New sets up a server with all routes.
func New(registry *fs.Registry, wm *windows.Manager) *Server {
	s := &Server{
		registry: registry,
		windows:  wm,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logRequests)

	r.Get("/health", s.handleHealth)

	r.Get("/notebooks", s.handleListNotebooks)
	r.Post("/notebooks", s.handleCreateNotebook)
	r.Get("/metadata", s.handleLoadMetadata)
	r.Post("/save", s.handleSave)

	r.Post("/home", s.handleShowHome)
	r.Get("/windows", s.handleListWindows)
	r.Post("/windows", s.handleOpenWindow)
	r.Delete("/windows/{id}", s.handleCloseWindow)

	r.Get("/signals", s.handleSignals)

	s.router = r
	return s
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is done.
//
// On shutdown, all open windows are closed, which saves their sessions.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logging.Info("Listening on %v", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logging.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		logging.Warning("Shutdown: %v", err)
	}

	return s.windows.CloseAll()
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logging.Debug("%v %v -> %d (%v) [%v]", r.Method, r.URL.Path, ww.Status(),
			time.Since(start), middleware.GetReqID(r.Context()))
	})
}
