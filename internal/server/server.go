// Package server publishes the seed file over HTTP so the todo container has
// an endpoint to load from.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/gorilla/mux"

	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
)

// Loader yields the records to publish on each request.
type Loader interface {
	Load() ([]model.Record, error)
}

const shutdownTimeout = 5 * time.Second

type server struct {
	store Loader
	log   *slog.Logger
}

// Handler returns the router: GET /todos and GET /healthz.
func Handler(store Loader, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &server{store: store, log: logging.Component(logger, "server")}

	r := mux.NewRouter()
	r.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			m := httpsnoop.CaptureMetrics(handler, writer, request)
			s.log.Info("handled", "method", request.Method, "url", request.URL.String(), "duration", m.Duration, "status", m.Code, "bytes", m.Written)
		})
	})
	r.Methods(http.MethodGet).Path("/todos").HandlerFunc(s.getTodos)
	r.Methods(http.MethodGet).Path("/healthz").HandlerFunc(s.healthz)
	return r
}

func (s *server) getTodos(w http.ResponseWriter, _ *http.Request) {
	records, err := s.store.Load()
	if err != nil {
		s.log.Error("load seed file", "error", err)
		http.Error(w, "failed to load todos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		s.log.Warn("write response", "error", err)
	}
}

func (s *server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok\n"))
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
// ready, if non-nil, receives the bound address once listening.
func Serve(ctx context.Context, addr string, h http.Handler, logger *slog.Logger, ready func(net.Addr)) error {
	if logger == nil {
		logger = logging.Discard()
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second}
	logger.Info("listening", "addr", ln.Addr().String())
	if ready != nil {
		ready(ln.Addr())
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
