// FILE: reqtap/src/internal/format/format.go
package format

import (
	"errors"
	"fmt"

	"reqtap/src/internal/core"
	"reqtap/src/internal/record"
)

// ErrBufferFull reports that the record did not fit the supplied buffer.
// The byte count returned alongside it is still a consistent prefix of the
// full encoding; no escape sequence is ever split across the boundary.
var ErrBufferFull = errors.New("encode buffer full")

// Encoder serializes one record into a caller-supplied fixed-capacity
// buffer. Implementations allocate nothing and treat every string field as
// opaque bytes; arbitrary or invalid input must encode, never panic.
type Encoder interface {
	// Encode writes the record and returns the number of bytes written.
	// On ErrBufferFull the first n bytes are valid partial output.
	Encode(rec *record.Record, sev core.Severity, buf []byte) (int, error)

	// Name returns the encoder type name
	Name() string
}

// New creates an Encoder for the configured format name.
func New(name string) (Encoder, error) {
	// Default to logfmt if no format specified
	if name == "" {
		name = "logfmt"
	}

	switch name {
	case "logfmt":
		return &LogfmtEncoder{}, nil
	case "json":
		return &JSONEncoder{}, nil
	default:
		return nil, fmt.Errorf("unknown encoder type: %s", name)
	}
}
