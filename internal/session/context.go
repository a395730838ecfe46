package session

import (
	"context"

	"github.com/labstack/echo/v4"
)

type contextKey struct{}

// NewContext returns a context carrying the session.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session carried by ctx, or the zero Session.
func FromContext(ctx context.Context) Session {
	s, _ := ctx.Value(contextKey{}).(Session)
	return s
}

// Middleware loads the cookie session into the request context so guards,
// handlers and the outbound gateway all read the same per-request snapshot.
func Middleware(store *Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			s := store.Get(req)
			c.SetRequest(req.WithContext(NewContext(req.Context(), s)))
			return next(c)
		}
	}
}
