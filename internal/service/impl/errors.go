package impl

import "errors"

var (
	ErrEmptyPassword = errors.New("empty password")

	errEmailDispatch = errors.New("verification email dispatch failed")
)
