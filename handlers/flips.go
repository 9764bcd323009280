// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/coinserver/coin"
	"github.com/danielhkuo/coinserver/middleware"
	"github.com/danielhkuo/coinserver/models"
)

type FlipHandler struct {
	engine *coin.Engine
}

func NewFlipHandler(engine *coin.Engine) *FlipHandler {
	return &FlipHandler{engine: engine}
}

// Flip handles GET /app/flip/
func (h *FlipHandler) Flip(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.FlipResponse{
		Flip: h.engine.Flip(),
	})
}

// Flips handles GET /app/flips/{number}
// Returns the raw sequence and a summary of the outcomes that occurred
func (h *FlipHandler) Flips(w http.ResponseWriter, r *http.Request) {
	n, err := coin.ParseCount(r.PathValue("number"))
	if err != nil {
		slog.Debug("rejected flip count", "number", r.PathValue("number"), "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.engine.FlipMany(n))
}

// Call returns the handler for GET /app/flip/call/{heads,tails}
// The call is fixed per route, never taken from the request
func (h *FlipHandler) Call(call models.Outcome) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, h.engine.FlipAndScore(call))
	}
}
