// FILE: reqtap/src/internal/sink/sink.go
package sink

import "reqtap/src/internal/core"

// Sink receives one finished log line per event. Write must treat line as
// valid only for the duration of the call; the underlying buffer is reused.
// Writes are best-effort: a sink failure never surfaces to the request path.
type Sink interface {
	Write(sev core.Severity, line []byte)
}

// Stats is a point-in-time snapshot of sink activity.
type Stats struct {
	Type         string
	TotalWritten uint64
}
