package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrOAuthNotLinked     = errors.New("no account registered for this Google identity")
	ErrUserInactive       = errors.New("user account is deactivated")
	ErrOAuthNotConfigured = errors.New("google sign-in is not configured")
)
