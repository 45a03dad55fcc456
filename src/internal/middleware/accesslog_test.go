// FILE: reqtap/src/internal/middleware/accesslog_test.go
package middleware

import (
	"net"
	"strings"
	"sync"
	"testing"

	"reqtap/src/internal/buffer"
	"reqtap/src/internal/config"
	"reqtap/src/internal/core"

	"github.com/google/uuid"
	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fastjson"
)

// captureSink records emitted lines for inspection.
type captureSink struct {
	mu    sync.Mutex
	sevs  []core.Severity
	lines []string
}

func (s *captureSink) Write(sev core.Severity, line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sevs = append(s.sevs, sev)
	s.lines = append(s.lines, string(line))
}

func (s *captureSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

func (s *captureSink) last() (core.Severity, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return core.SeverityInfo, ""
	}
	return s.sevs[len(s.sevs)-1], s.lines[len(s.lines)-1]
}

func testConfig() config.AccessLogConfig {
	return config.AccessLogConfig{
		Format:      "logfmt",
		MinStatus:   0,
		MinLevel:    "info",
		Diagnostics: true,
		Fields: config.Fields{
			Client:    true,
			TraceID:   true,
			SpanID:    true,
			Query:     true,
			UserAgent: true,
			UserID:    true,
			RequestID: true,
		},
	}
}

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func runRequest(t *testing.T, a *AccessLogger, method, uri string, handler fasthttp.RequestHandler) *fasthttp.RequestCtx {
	t.Helper()

	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 54321}, nil)

	a.Wrap(handler)(ctx)
	return ctx
}

func okHandler(status int, body string) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(status)
		ctx.SetBodyString(body)
	}
}

func TestNew(t *testing.T) {
	t.Run("InvalidFormat", func(t *testing.T) {
		cfg := testConfig()
		cfg.Format = "xml"
		_, err := New(cfg, &captureSink{}, newTestLogger())
		assert.Error(t, err)
	})

	t.Run("InvalidMinLevel", func(t *testing.T) {
		cfg := testConfig()
		cfg.MinLevel = "fatal"
		_, err := New(cfg, &captureSink{}, newTestLogger())
		assert.Error(t, err)
	})
}

func TestAccessLogger_EndToEndLogfmt(t *testing.T) {
	out := &captureSink{}
	cfg := testConfig()
	cfg.Fields.RequestID = false
	a, err := New(cfg, out, newTestLogger())
	require.NoError(t, err)

	runRequest(t, a, "GET", "/api/users?page=1", okHandler(200, strings.Repeat("b", 45)))

	require.Equal(t, 1, out.count())
	sev, line := out.last()
	assert.Equal(t, core.SeverityInfo, sev)

	assert.Regexp(t,
		`^timestamp=\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z level=info method=GET path=/api/users`+
			` status=200 size=45 duration_ms=\d+ client=127\.0\.0\.1:54321 query="page=1"$`,
		line)
}

func TestAccessLogger_EndToEndJSON(t *testing.T) {
	out := &captureSink{}
	cfg := testConfig()
	cfg.Format = "json"
	cfg.Fields.RequestID = false
	a, err := New(cfg, out, newTestLogger())
	require.NoError(t, err)

	runRequest(t, a, "GET", "/api/users?page=1", okHandler(200, strings.Repeat("b", 45)))

	require.Equal(t, 1, out.count())
	_, line := out.last()

	v, err := fastjson.Parse(line)
	require.NoError(t, err)
	assert.Equal(t, "GET", string(v.GetStringBytes("method")))
	assert.Equal(t, "/api/users", string(v.GetStringBytes("path")))
	assert.Equal(t, "page=1", string(v.GetStringBytes("query")))
	assert.Equal(t, 200, v.GetInt("status"))
	assert.Equal(t, 45, v.GetInt("size"))
	assert.False(t, v.Exists("user_agent"), "no user agent was sent")
	assert.False(t, v.Exists("trace_id"))
}

func TestAccessLogger_SeverityFilter(t *testing.T) {
	t.Run("MinStatusSkipsLowStatuses", func(t *testing.T) {
		out := &captureSink{}
		cfg := testConfig()
		cfg.MinStatus = 400
		a, err := New(cfg, out, newTestLogger())
		require.NoError(t, err)

		runRequest(t, a, "GET", "/ok", okHandler(200, "ok"))
		assert.Zero(t, out.count())

		runRequest(t, a, "GET", "/missing", okHandler(404, "nope"))
		assert.Equal(t, 1, out.count())
	})

	t.Run("MinLevelWarnStillEmitsErrors", func(t *testing.T) {
		out := &captureSink{}
		cfg := testConfig()
		cfg.MinLevel = "warn"
		a, err := New(cfg, out, newTestLogger())
		require.NoError(t, err)

		runRequest(t, a, "GET", "/ok", okHandler(200, "ok"))
		assert.Zero(t, out.count())

		runRequest(t, a, "GET", "/boom", okHandler(500, "boom"))
		require.Equal(t, 1, out.count())
		sev, _ := out.last()
		assert.Equal(t, core.SeverityError, sev)
	})
}

func TestAccessLogger_GeneratesRequestID(t *testing.T) {
	out := &captureSink{}
	a, err := New(testConfig(), out, newTestLogger())
	require.NoError(t, err)

	ctx := runRequest(t, a, "GET", "/", okHandler(200, "ok"))

	echoed := string(ctx.Response.Header.Peek("x-request-id"))
	require.NotEmpty(t, echoed)
	_, err = uuid.Parse(echoed)
	assert.NoError(t, err, "generated request id must be a UUID")

	_, line := out.last()
	assert.Contains(t, line, "request_id="+echoed)
}

func TestAccessLogger_KeepsClientRequestID(t *testing.T) {
	out := &captureSink{}
	a, err := New(testConfig(), out, newTestLogger())
	require.NoError(t, err)

	var req fasthttp.Request
	req.Header.SetMethod("GET")
	req.SetRequestURI("/")
	req.Header.Set("x-request-id", "client-chosen")

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 54321}, nil)
	a.Wrap(okHandler(200, "ok"))(ctx)

	_, line := out.last()
	assert.Contains(t, line, "request_id=client-chosen")
}

func TestAccessLogger_OversizedLineTruncates(t *testing.T) {
	out := &captureSink{}
	a, err := New(testConfig(), out, newTestLogger())
	require.NoError(t, err)

	agent := strings.Repeat("u", buffer.FallbackSize+100)
	var req fasthttp.Request
	req.Header.SetMethod("GET")
	req.SetRequestURI("/")
	req.Header.Set("User-Agent", agent)

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 54321}, nil)
	a.Wrap(okHandler(200, "ok"))(ctx)

	// The record is still surfaced, cut at the fallback capacity.
	require.Equal(t, 1, out.count())
	_, line := out.last()
	assert.LessOrEqual(t, len(line), buffer.FallbackSize)
	assert.True(t, strings.HasPrefix(line, "timestamp="))
}
