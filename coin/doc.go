// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package coin simulates coin flips.

# Engine

An Engine wraps a Source of uniform values in [0, 1). A value below 0.5
is heads, anything else is tails:

	engine := coin.NewEngine(nil) // DefaultSource
	engine.Flip()                 // models.Heads or models.Tails

# Batches

FlipMany tosses n coins and returns the raw sequence plus a summary:

	res := engine.FlipMany(3)
	// res.Raw     = [heads tails heads]
	// res.Summary = map[heads:2 tails:1]

The summary only has keys for outcomes that occurred, so FlipMany(0)
returns an empty raw slice and an empty summary.

# Calls

FlipAndScore compares a caller's guess with a fresh flip:

	res := engine.FlipAndScore(models.Heads)
	// res.Result == "win" exactly when res.Flip == models.Heads

# Parsing Counts

ParseCount validates the {number} path parameter. Non-numeric, negative
and oversized values return an error wrapping ErrInvalidCount.
*/
package coin
