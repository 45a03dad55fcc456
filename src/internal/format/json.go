// FILE: reqtap/src/internal/format/json.go
package format

import (
	"reqtap/src/internal/core"
	"reqtap/src/internal/record"
)

// JSONEncoder produces one compact, single-line JSON object per record.
//
// Keys appear in a fixed order and absent optional fields are omitted
// entirely, never emitted as null. Status, size and duration are numeric
// literals. String values are escaped byte-wise: control characters become
// \u00xx (with the usual short forms), bytes >= 0x80 are copied through
// opaquely so non-UTF8 input still encodes instead of failing.
type JSONEncoder struct{}

// Encode writes the record as a JSON object.
func (e *JSONEncoder) Encode(rec *record.Record, sev core.Severity, buf []byte) (int, error) {
	w := writer{buf: buf}

	w.writeString(`{"timestamp":"`)
	w.writeBytes(rec.Timestamp[:])
	w.writeString(`","level":"`)
	w.writeString(sev.String())
	w.writeByte('"')

	if len(rec.TraceID) > 0 {
		w.writeString(`,"trace_id":`)
		jsonString(&w, rec.TraceID)
	}
	if len(rec.SpanID) > 0 {
		w.writeString(`,"span_id":`)
		jsonString(&w, rec.SpanID)
	}

	w.writeString(`,"method":`)
	jsonString(&w, rec.Method)

	if len(rec.Client) > 0 {
		w.writeString(`,"client":`)
		jsonString(&w, rec.Client)
	}

	w.writeString(`,"path":`)
	jsonString(&w, rec.Path)

	if rec.HasQuery {
		w.writeString(`,"query":`)
		jsonString(&w, rec.Query)
	}

	w.writeString(`,"status":`)
	w.writeInt(int64(rec.Status))
	w.writeString(`,"size":`)
	w.writeInt(rec.Size)
	w.writeString(`,"duration_ms":`)
	w.writeInt(rec.DurationMS)

	if len(rec.UserAgent) > 0 {
		w.writeString(`,"user_agent":`)
		jsonString(&w, rec.UserAgent)
	}
	if len(rec.UserID) > 0 {
		w.writeString(`,"user_id":`)
		jsonString(&w, rec.UserID)
	}
	if len(rec.RequestID) > 0 {
		w.writeString(`,"request_id":`)
		jsonString(&w, rec.RequestID)
	}

	w.writeByte('}')
	return w.result()
}

// Name returns the encoder's type name.
func (e *JSONEncoder) Name() string {
	return "json"
}

func jsonString(w *writer, v []byte) {
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
		case c < 0x20:
			w.writeUnicodeEscape(c)
		default:
			w.writeByte(c)
		}
	}
	w.writeByte('"')
}
