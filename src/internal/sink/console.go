// FILE: reqtap/src/internal/sink/console.go
package sink

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"reqtap/src/internal/core"

	"github.com/valyala/bytebufferpool"
)

// Console writes log lines to stdout/stderr according to its target mode.
//
// Targets:
//   - "stdout": everything to stdout
//   - "stderr": everything to stderr
//   - "split":  info to stdout, warn and error to stderr
type Console struct {
	target string
	stdout io.Writer
	stderr io.Writer

	totalWritten atomic.Uint64
}

// NewConsole creates a console sink for the given target mode.
func NewConsole(target string) (*Console, error) {
	switch target {
	case "stdout", "stderr", "split":
	default:
		return nil, fmt.Errorf("unknown console target: %q", target)
	}
	return &Console{
		target: target,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}, nil
}

// Write emits one line plus framing newline in a single writer call, so an
// event is never interleaved with another worker's output.
func (c *Console) Write(sev core.Severity, line []byte) {
	bb := bytebufferpool.Get()
	bb.Write(line)
	bb.WriteByte('\n')

	// Write errors are swallowed; the logger never fails the request
	// it is observing.
	c.writerFor(sev).Write(bb.B)
	bytebufferpool.Put(bb)

	c.totalWritten.Add(1)
}

func (c *Console) writerFor(sev core.Severity) io.Writer {
	switch c.target {
	case "stdout":
		return c.stdout
	case "stderr":
		return c.stderr
	default:
		if sev == core.SeverityInfo {
			return c.stdout
		}
		return c.stderr
	}
}

// GetStats returns a snapshot of sink activity.
func (c *Console) GetStats() Stats {
	return Stats{
		Type:         "console",
		TotalWritten: c.totalWritten.Load(),
	}
}
