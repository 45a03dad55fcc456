// FILE: reqtap/src/internal/format/writer.go
package format

import "strconv"

const hexdigits = "0123456789abcdef"

// writer appends into a fixed-capacity buffer without ever growing it.
// Once a write does not fit completely, full latches and the output stops
// at the last whole unit: plain bytes are copied individually, while escape
// sequences and rendered integers go in atomically or not at all.
type writer struct {
	buf  []byte
	n    int
	full bool
}

func (w *writer) room(k int) bool {
	if w.full || w.n+k > len(w.buf) {
		w.full = true
		return false
	}
	return true
}

func (w *writer) writeByte(c byte) {
	if !w.room(1) {
		return
	}
	w.buf[w.n] = c
	w.n++
}

// writeString copies s, keeping whatever prefix fits.
func (w *writer) writeString(s string) {
	if w.full {
		return
	}
	k := copy(w.buf[w.n:], s)
	w.n += k
	if k < len(s) {
		w.full = true
	}
}

// writeBytes copies b, keeping whatever prefix fits.
func (w *writer) writeBytes(b []byte) {
	if w.full {
		return
	}
	k := copy(w.buf[w.n:], b)
	w.n += k
	if k < len(b) {
		w.full = true
	}
}

// writeSeq writes an escape sequence as one unit.
func (w *writer) writeSeq(s string) {
	if !w.room(len(s)) {
		return
	}
	w.n += copy(w.buf[w.n:], s)
}

// writeHexEscape writes \xHH as one unit.
func (w *writer) writeHexEscape(c byte) {
	if !w.room(4) {
		return
	}
	w.buf[w.n] = '\\'
	w.buf[w.n+1] = 'x'
	w.buf[w.n+2] = hexdigits[c>>4]
	w.buf[w.n+3] = hexdigits[c&0xf]
	w.n += 4
}

// writeUnicodeEscape writes \u00HH as one unit.
func (w *writer) writeUnicodeEscape(c byte) {
	if !w.room(6) {
		return
	}
	w.n += copy(w.buf[w.n:], `\u00`)
	w.buf[w.n] = hexdigits[c>>4]
	w.buf[w.n+1] = hexdigits[c&0xf]
	w.n += 2
}

// writeInt writes a decimal integer as one unit.
func (w *writer) writeInt(v int64) {
	var tmp [20]byte
	b := strconv.AppendInt(tmp[:0], v, 10)
	if !w.room(len(b)) {
		return
	}
	w.n += copy(w.buf[w.n:], b)
}

func (w *writer) result() (int, error) {
	if w.full {
		return w.n, ErrBufferFull
	}
	return w.n, nil
}
