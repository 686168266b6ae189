package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrConflict           = errors.New("resource already exists")
	ErrInactiveToken      = errors.New("token is invalid or inactive")
)
