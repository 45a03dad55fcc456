// FILE: reqtap/src/internal/buffer/dispatch.go
package buffer

import (
	"reqtap/src/internal/core"
	"reqtap/src/internal/format"
	"reqtap/src/internal/record"
)

// Result is the outcome of one encode dispatch. Line aliases the pair's
// backing array and is valid only until the pair is returned to its pool.
type Result struct {
	Line      []byte
	Truncated bool

	// Capacity of the tier the line was cut at; meaningful when Truncated.
	Capacity int
}

// Dispatch runs the tiered encode: primary buffer first, fallback on
// exhaustion, truncated emission as the terminal state. A record always
// yields a line; nothing is ever dropped here.
//
// An encode that fills the primary buffer exactly is treated as a
// truncation signal too and escalates, so a possibly-cut line is never
// emitted without first attempting the larger tier.
func Dispatch(enc format.Encoder, rec *record.Record, sev core.Severity, pair *Pair) Result {
	n, err := enc.Encode(rec, sev, pair.Primary())
	if err == nil && n < PrimarySize {
		return Result{Line: pair.primary[:n]}
	}

	// Partial primary output is discarded, the fallback attempt starts
	// clean. On terminal exhaustion the encoder's consistent-prefix
	// guarantee makes the partial fallback output safe to surface as-is.
	n, err = enc.Encode(rec, sev, pair.Fallback())
	if err == nil {
		return Result{Line: pair.fallback[:n]}
	}
	return Result{Line: pair.fallback[:n], Truncated: true, Capacity: FallbackSize}
}
