// SPDX-License-Identifier: MIT

// Package server exposes the relaxation pass over HTTP.
//
//	GET  /health              liveness
//	POST /v1/paths            {"edges":[{"from":"a","to":"b","weight":1}]}
//	GET  /v1/samples          canned graphs and their edges
//	GET  /v1/samples/{id}     result for a canned graph
//
// Every request gets an X-Request-ID (taken from the request or generated)
// and one log line.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
)

const shutdownTimeout = 5 * time.Second

// Server routes HTTP requests to the engine.
type Server struct {
	log    hclog.Logger
	router *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. A nil logger keeps the default null logger.
func WithLogger(l hclog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// New builds a Server with all routes registered.
func New(opts ...Option) *Server {
	s := &Server{log: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(s)
	}

	r := mux.NewRouter()
	r.Use(requestIDMiddleware, s.loggingMiddleware)
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/paths", s.computePaths).Methods(http.MethodPost)
	v1.HandleFunc("/samples", s.listSamples).Methods(http.MethodGet)
	v1.HandleFunc("/samples/{id:[0-9]+}", s.sample).Methods(http.MethodGet)

	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
