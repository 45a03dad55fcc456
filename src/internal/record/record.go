// FILE: reqtap/src/internal/record/record.go
package record

import "reqtap/src/internal/civil"

// ClientAddrMax bounds the rendered client address text.
const ClientAddrMax = 24

// Record is a per-event snapshot of one completed request.
//
// All byte-slice fields except Client are borrowed views into the request
// or response storage. They are valid only until the handler invocation
// that produced them returns; a Record must never outlive one log call.
// A nil or empty slice means "absent", except Query, where presence is
// tracked separately so an explicitly empty query string still round-trips.
type Record struct {
	Timestamp [civil.ISOLen]byte

	Method []byte
	Path   []byte

	Query    []byte
	HasQuery bool

	Status     int
	Size       int64
	DurationMS int64

	Client    []byte // points into clientBuf
	TraceID   []byte // 32 pre-validated hex chars
	SpanID    []byte // 16 pre-validated hex chars
	UserAgent []byte
	UserID    []byte
	RequestID []byte

	clientBuf [ClientAddrMax]byte
}
