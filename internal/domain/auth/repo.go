package auth

import "context"

// Repository maps the login operation onto the backend's auth area.
type Repository interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
