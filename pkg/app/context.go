package app

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/labstack/echo/v4"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// NewEchoContextAdapter returns the request context carrying the request id,
// so it is cancelled when the client goes away.
func NewEchoContextAdapter(c echo.Context) context.Context {
	ctx := c.Request().Context()

	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		ctx = WithRequestID(ctx, id)
	}

	return ctx
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)

	return id
}

// ForwardRequestID is a resty request middleware copying the request id of
// the request context into the outgoing X-Request-Id header.
func ForwardRequestID(_ *resty.Client, r *resty.Request) error {
	if id := RequestID(r.Context()); id != "" {
		r.SetHeader(echo.HeaderXRequestID, id)
	}

	return nil
}
