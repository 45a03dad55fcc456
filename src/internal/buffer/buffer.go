// FILE: reqtap/src/internal/buffer/buffer.go
package buffer

import "sync"

const (
	// PrimarySize fits the common case; most access-log lines stay well
	// under 1 KiB.
	PrimarySize = 2048

	// FallbackSize bounds worst-case memory per in-flight worker.
	FallbackSize = 8192
)

// Pair is the two-tier encode buffer. A pair is owned by exactly one
// worker between Get and Put; it is never shared, so no locking guards
// the backing arrays.
type Pair struct {
	primary  [PrimarySize]byte
	fallback [FallbackSize]byte
}

// Primary returns the small first-attempt buffer.
func (p *Pair) Primary() []byte { return p.primary[:] }

// Fallback returns the large second-attempt buffer.
func (p *Pair) Fallback() []byte { return p.fallback[:] }

// Pool hands out buffer pairs, one per in-flight request. Reuse keeps the
// hot path free of per-event heap allocation.
type Pool struct {
	pool sync.Pool
}

// NewPool creates an empty buffer pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any { return new(Pair) },
		},
	}
}

// Get returns a pair for exclusive use by the calling worker.
func (p *Pool) Get() *Pair {
	return p.pool.Get().(*Pair)
}

// Put returns a pair after the emitted line has been handed to the sink.
// The caller must not retain slices into the pair past this point.
func (p *Pool) Put(pair *Pair) {
	p.pool.Put(pair)
}
