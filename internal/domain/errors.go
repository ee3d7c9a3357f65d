package domain

import "errors"

var (
	ErrEmailExists     = errors.New("email is already registered")
	ErrCompanyNotFound = errors.New("company not found")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrTokenConsumed   = errors.New("token already consumed")
)
