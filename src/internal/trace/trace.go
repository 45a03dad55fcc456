// FILE: reqtap/src/internal/trace/trace.go
package trace

// W3C trace-context header parsing, version 00 only. Any other version is
// rejected; the format is forward-incompatible on purpose so we only emit
// identifiers we fully understand.

const (
	// Header is the request header carrying the trace context.
	Header = "traceparent"

	TraceIDLen = 32
	SpanIDLen  = 16

	minHeaderLen = 55
)

// Parse extracts the trace-id and span-id from a traceparent header value.
//
// Layout: {2-hex-version}-{32-hex-trace-id}-{16-hex-span-id}-{2-hex-flags},
// with optional vendor fields after offset 54 that are ignored. The returned
// slices alias b. A malformed header yields ok=false, never an error; the
// caller degrades to "no trace context".
func Parse(b []byte) (traceID, spanID []byte, ok bool) {
	if len(b) < minHeaderLen {
		return nil, nil, false
	}
	if b[0] != '0' || b[1] != '0' {
		return nil, nil, false
	}
	if b[2] != '-' || b[35] != '-' || b[52] != '-' {
		return nil, nil, false
	}
	traceID = b[3:35]
	spanID = b[36:52]
	if !isLowerHex(traceID) || !isLowerHex(spanID) {
		return nil, nil, false
	}
	return traceID, spanID, true
}

// Encoders emit trace identifiers unquoted, so only pre-validated lowercase
// hex may leave Parse.
func isLowerHex(b []byte) bool {
	for _, c := range b {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
