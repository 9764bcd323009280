// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"io"
	"net/http"

	"github.com/danielhkuo/coinserver/cliparse"
	"github.com/danielhkuo/coinserver/coin"
	"github.com/danielhkuo/coinserver/db"
	"github.com/danielhkuo/coinserver/handlers"
	"github.com/danielhkuo/coinserver/middleware"
	"github.com/danielhkuo/coinserver/models"
)

// NewRouter builds the full request pipeline.
// store may be nil only when both logging and debug mode are off.
// accessLog receives combined-format lines when logging is on; nil skips them.
func NewRouter(store db.AccessLogStore, cfg cliparse.Config, accessLog io.Writer) http.Handler {
	if store == nil && (cfg.LogEnabled || cfg.DebugEnabled) {
		panic("router.NewRouter: store is nil")
	}

	mux := http.NewServeMux()

	// Initialize handlers
	flipHandler := handlers.NewFlipHandler(coin.NewEngine(nil))

	// Health check
	handle(mux, "GET /app/", func(w http.ResponseWriter, r *http.Request) {
		middleware.TextResponse(w, http.StatusOK, "200 OK")
	})

	// Coin flips
	handle(mux, "GET /app/flip/", flipHandler.Flip)
	mux.HandleFunc("GET /app/flips/{number}", flipHandler.Flips)
	mux.HandleFunc("GET /app/flip/call/heads", flipHandler.Call(models.Heads))
	mux.HandleFunc("GET /app/flip/call/tails", flipHandler.Call(models.Tails))

	// Debug endpoints
	if cfg.DebugEnabled {
		debugHandler := handlers.NewDebugHandler(store)
		handle(mux, "GET /app/log/access/", debugHandler.AccessLog)
		mux.HandleFunc("GET /app/error", debugHandler.Error)
	}

	// Everything else
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		middleware.TextResponse(w, http.StatusNotFound, "404 NOT FOUND")
	})

	return middleware.Chain(mux, pipeline(store, cfg, accessLog)...)
}

// pipeline lists the request interceptors, outermost first
func pipeline(store db.AccessLogStore, cfg cliparse.Config, accessLog io.Writer) []middleware.Middleware {
	mws := []middleware.Middleware{
		middleware.WithRequestID,
		middleware.WithClientAddr(cfg.TrustProxy),
		middleware.WithLogging,
	}

	if cfg.LogEnabled {
		mws = append(mws, middleware.AccessLog(store, cfg.LegacyStatus))
		if accessLog != nil {
			mws = append(mws, middleware.CombinedLog(accessLog))
		}
	}

	// Innermost, so the access log sees the 500 it writes
	return append(mws, middleware.Recover)
}

// handle registers a slash-terminated pattern for its exact path, with and
// without the trailing slash
func handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.HandleFunc(pattern+"{$}", h)
	mux.HandleFunc(pattern[:len(pattern)-1], h)
}
