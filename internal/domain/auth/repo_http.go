package auth

import (
	"context"

	"github.com/imagems/console/internal/gateway"
)

type HTTPRepository struct {
	gw *gateway.Client
}

// NewHTTPRepository wraps the auth area of the backend. The gateway here
// carries no token source: login is the one unauthenticated call.
func NewHTTPRepository(gw *gateway.Client) *HTTPRepository {
	return &HTTPRepository{gw: gw}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *HTTPRepository) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var res LoginResult
	if err := r.gw.Post(ctx, "/api/v1/app/auth/login", loginPayload{Username: username, Password: password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
