package usecases

import "errors"

// Sentinel errors mapped to HTTP status codes once, at the handler layer.
var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrBlogNotFound       = errors.New("blog not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
)
