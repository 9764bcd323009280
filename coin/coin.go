// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package coin

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/danielhkuo/coinserver/models"
)

// MaxCount caps a single batch so one request cannot allocate without bound
const MaxCount = 1 << 20

var ErrInvalidCount = errors.New("invalid flip count")

// Source yields uniform values in [0, 1).
// Implementations must be safe for concurrent use.
type Source interface {
	Float64() float64
}

// SourceFunc adapts a plain function to Source
type SourceFunc func() float64

func (f SourceFunc) Float64() float64 { return f() }

// DefaultSource uses the runtime-seeded top-level generator from math/rand/v2
var DefaultSource Source = SourceFunc(rand.Float64)

type Engine struct {
	src Source
}

// NewEngine returns an Engine drawing from src, or DefaultSource when src is nil
func NewEngine(src Source) *Engine {
	if src == nil {
		src = DefaultSource
	}
	return &Engine{src: src}
}

// Flip tosses one coin
func (e *Engine) Flip() models.Outcome {
	if e.src.Float64() < 0.5 {
		return models.Heads
	}
	return models.Tails
}

// FlipMany tosses n coins in order and summarizes them.
// n <= 0 yields an empty batch.
func (e *Engine) FlipMany(n int) models.BatchResult {
	raw := make([]models.Outcome, 0, max(n, 0))
	for i := 0; i < n; i++ {
		raw = append(raw, e.Flip())
	}
	return models.BatchResult{
		Raw:     raw,
		Summary: Summarize(raw),
	}
}

// Summarize counts each outcome, leaving out outcomes that never occurred
func Summarize(raw []models.Outcome) map[models.Outcome]int {
	counts := make(map[models.Outcome]int, 2)
	for _, o := range raw {
		counts[o]++
	}
	return counts
}

// FlipAndScore tosses one coin and scores it against call
func (e *Engine) FlipAndScore(call models.Outcome) models.CallResult {
	flip := e.Flip()
	result := models.ResultLose
	if call == flip {
		result = models.ResultWin
	}
	return models.CallResult{
		Call:   call,
		Flip:   flip,
		Result: result,
	}
}

// ParseCount converts a path parameter into a batch size.
// Anything other than a base-10 integer in [0, MaxCount] is rejected.
// The empty case only reaches direct callers: the router never matches
// /app/flips/ with an empty {number} and answers it with a 404.
func ParseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: number is required", ErrInvalidCount)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidCount, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidCount, n)
	}
	if n > MaxCount {
		return 0, fmt.Errorf("%w: %d exceeds the maximum of %d", ErrInvalidCount, n, MaxCount)
	}
	return n, nil
}
