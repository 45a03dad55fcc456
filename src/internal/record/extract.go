// FILE: reqtap/src/internal/record/extract.go
package record

import (
	"bytes"
	"time"

	"reqtap/src/internal/civil"
	"reqtap/src/internal/config"
	"reqtap/src/internal/trace"

	"github.com/golang-jwt/jwt/v5"
	"github.com/valyala/fasthttp"
)

const (
	HeaderRequestID = "x-request-id"

	headerUserID         = "x-user-id"
	headerUserIDFallback = "x-user"
	headerAuthorization  = "Authorization"
)

var bearerPrefix = []byte("Bearer ")

// Extract fills rec from a completed request. It reads from ctx but never
// mutates it; disabled fields are left absent regardless of what the
// request carries.
func Extract(rec *Record, ctx *fasthttp.RequestCtx, start time.Time, fields *config.Fields) {
	now := time.Now()
	rec.DurationMS = now.Sub(start).Milliseconds()

	// Computed once per event; both encoders reuse the rendered bytes.
	civil.AppendISO8601(rec.Timestamp[:0], civil.FromUnix(now.Unix()))

	rec.Method = ctx.Method()
	rec.Path = ctx.Path()
	rec.Status = ctx.Response.StatusCode()
	rec.Size = int64(len(ctx.Response.Body()))

	if fields.Query {
		// The raw URI keeps the distinction between "no query string" and
		// an explicitly empty one ("/path?").
		if uri := ctx.Request.Header.RequestURI(); len(uri) > 0 {
			if i := bytes.IndexByte(uri, '?'); i >= 0 {
				rec.Query = uri[i+1:]
				rec.HasQuery = true
			}
		}
	}

	if fields.Client {
		addr := ctx.RemoteAddr().String()
		n := copy(rec.clientBuf[:], addr)
		rec.Client = rec.clientBuf[:n]
	}

	if fields.TraceID || fields.SpanID {
		if tid, sid, ok := trace.Parse(ctx.Request.Header.Peek(trace.Header)); ok {
			if fields.TraceID {
				rec.TraceID = tid
			}
			if fields.SpanID {
				rec.SpanID = sid
			}
		}
	}

	if fields.UserAgent {
		rec.UserAgent = ctx.UserAgent()
	}

	if fields.UserID {
		rec.UserID = userID(ctx)
	}

	if fields.RequestID {
		rec.RequestID = ctx.Request.Header.Peek(HeaderRequestID)
	}
}

// userID resolves the logged user identity: x-user-id header first, then
// x-user, then the subject claim of a bearer token.
func userID(ctx *fasthttp.RequestCtx) []byte {
	if id := ctx.Request.Header.Peek(headerUserID); len(id) > 0 {
		return id
	}
	if id := ctx.Request.Header.Peek(headerUserIDFallback); len(id) > 0 {
		return id
	}
	return bearerSubject(ctx.Request.Header.Peek(headerAuthorization))
}

// bearerSubject pulls the "sub" claim out of a bearer JWT without verifying
// the signature. The logger records identity, it does not grant it;
// verification belongs to the auth layer in front of the handler.
func bearerSubject(auth []byte) []byte {
	if !bytes.HasPrefix(auth, bearerPrefix) {
		return nil
	}
	token := string(auth[len(bearerPrefix):])

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	if claims.Subject == "" {
		return nil
	}
	return []byte(claims.Subject)
}
