// FILE: reqtap/src/internal/format/logfmt.go
package format

import (
	"reqtap/src/internal/core"
	"reqtap/src/internal/record"
)

// LogfmtEncoder produces one space-separated key=value line per record.
//
// Fixed fields come first in a stable order, then optional fields in a
// stable order. Values are quoted only when they contain bytes the format
// cannot carry bare; trace identifiers are pre-validated hex and always
// emitted raw.
type LogfmtEncoder struct{}

// Encode writes the record in logfmt form.
func (e *LogfmtEncoder) Encode(rec *record.Record, sev core.Severity, buf []byte) (int, error) {
	w := writer{buf: buf}

	w.writeString("timestamp=")
	w.writeBytes(rec.Timestamp[:])
	w.writeString(" level=")
	w.writeString(sev.String())
	w.writeString(" method=")
	logfmtValue(&w, rec.Method)
	w.writeString(" path=")
	logfmtValue(&w, rec.Path)
	w.writeString(" status=")
	w.writeInt(int64(rec.Status))
	w.writeString(" size=")
	w.writeInt(rec.Size)
	w.writeString(" duration_ms=")
	w.writeInt(rec.DurationMS)

	if len(rec.Client) > 0 {
		w.writeString(" client=")
		logfmtValue(&w, rec.Client)
	}
	if len(rec.TraceID) > 0 {
		w.writeString(" trace_id=")
		w.writeBytes(rec.TraceID)
	}
	if len(rec.SpanID) > 0 {
		w.writeString(" span_id=")
		w.writeBytes(rec.SpanID)
	}
	if rec.HasQuery {
		w.writeString(" query=")
		logfmtValue(&w, rec.Query)
	}
	if len(rec.UserAgent) > 0 {
		w.writeString(" user_agent=")
		logfmtValue(&w, rec.UserAgent)
	}
	if len(rec.UserID) > 0 {
		w.writeString(" user_id=")
		logfmtValue(&w, rec.UserID)
	}
	if len(rec.RequestID) > 0 {
		w.writeString(" request_id=")
		logfmtValue(&w, rec.RequestID)
	}

	return w.result()
}

// Name returns the encoder's type name.
func (e *LogfmtEncoder) Name() string {
	return "logfmt"
}

// logfmtValue emits v bare when possible, quoted and escaped otherwise.
// Empty values always quote, so an empty query renders as query="".
func logfmtValue(w *writer, v []byte) {
	if !logfmtNeedsQuote(v) {
		w.writeBytes(v)
		return
	}

	w.writeByte('"')
	for _, c := range v {
		switch {
		case c == '"':
			w.writeSeq(`\"`)
		case c == '\\':
			w.writeSeq(`\\`)
		case c == '\n':
			w.writeSeq(`\n`)
		case c == '\r':
			w.writeSeq(`\r`)
		case c == '\t':
			w.writeSeq(`\t`)
		case c < 0x20 || c == 0x7f:
			w.writeHexEscape(c)
		default:
			w.writeByte(c)
		}
	}
	w.writeByte('"')
}

func logfmtNeedsQuote(v []byte) bool {
	if len(v) == 0 {
		return true
	}
	for _, c := range v {
		if c == ' ' || c == '=' || c == '"' || c == '\\' || c < 0x20 || c == 0x7f {
			return true
		}
	}
	return false
}
