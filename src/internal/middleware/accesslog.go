// FILE: reqtap/src/internal/middleware/accesslog.go
package middleware

import (
	"fmt"
	"time"

	"reqtap/src/internal/buffer"
	"reqtap/src/internal/config"
	"reqtap/src/internal/core"
	"reqtap/src/internal/format"
	"reqtap/src/internal/record"
	"reqtap/src/internal/sink"

	"github.com/google/uuid"
	"github.com/lixenwraith/log"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

// AccessLogger observes completed requests and emits one encoded log line
// per event. It is invoked synchronously on the request's own worker and
// never fails the request it observes: every error condition inside the
// logging path is absorbed.
type AccessLogger struct {
	cfg      config.AccessLogConfig
	minLevel core.Severity
	enc      format.Encoder
	pool     *buffer.Pool
	out      sink.Sink
	logger   *log.Logger

	// Truncation diagnostics are themselves best-effort; the limiter keeps
	// a flood of oversized records from drowning the diagnostic channel.
	diagLimit *rate.Limiter
}

// New creates an access logger from immutable configuration. The sink
// receives the encoded lines; logger carries internal diagnostics only.
func New(cfg config.AccessLogConfig, out sink.Sink, logger *log.Logger) (*AccessLogger, error) {
	enc, err := format.New(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("access logger: %w", err)
	}

	minLevel, err := core.ParseSeverity(cfg.MinLevel)
	if err != nil {
		return nil, fmt.Errorf("access logger: %w", err)
	}

	return &AccessLogger{
		cfg:       cfg,
		minLevel:  minLevel,
		enc:       enc,
		pool:      buffer.NewPool(),
		out:       out,
		logger:    logger,
		diagLimit: rate.NewLimiter(rate.Every(time.Second), 5),
	}, nil
}

// Wrap returns a handler that invokes next, then logs the completed event.
func (a *AccessLogger) Wrap(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()

		// Assign a request id up front so the wrapped handler and the log
		// line agree on it, and echo it back to the client.
		if a.cfg.Fields.RequestID && len(ctx.Request.Header.Peek(record.HeaderRequestID)) == 0 {
			id := uuid.New().String()
			ctx.Request.Header.Set(record.HeaderRequestID, id)
			ctx.Response.Header.Set(record.HeaderRequestID, id)
		}

		next(ctx)

		status := ctx.Response.StatusCode()
		if !a.shouldLog(status) {
			return
		}
		a.emit(ctx, start, core.SeverityFor(status))
	}
}

func (a *AccessLogger) shouldLog(status int) bool {
	return status >= a.cfg.MinStatus && core.SeverityFor(status).AtLeast(a.minLevel)
}

// emit extracts, encodes and writes one event. The record borrows byte
// views from ctx and the line aliases the pooled buffer pair; neither
// survives past this call.
func (a *AccessLogger) emit(ctx *fasthttp.RequestCtx, start time.Time, sev core.Severity) {
	var rec record.Record
	record.Extract(&rec, ctx, start, &a.cfg.Fields)

	pair := a.pool.Get()
	res := buffer.Dispatch(a.enc, &rec, sev, pair)
	a.out.Write(sev, res.Line)
	if res.Truncated {
		a.reportTruncation(len(res.Line), res.Capacity)
	}
	a.pool.Put(pair)
}

func (a *AccessLogger) reportTruncation(written, capacity int) {
	if !a.cfg.Diagnostics || !a.diagLimit.Allow() {
		return
	}
	a.logger.Warn("msg", "Access log line truncated",
		"component", "access_log",
		"written", written,
		"capacity", capacity)
}
