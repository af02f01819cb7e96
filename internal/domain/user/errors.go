package user

import "errors"

var (
	ErrUserNotFound      = errors.New("profile data not found")
	ErrEmailAlreadyUsed  = errors.New("email already used")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrUnauthorized      = errors.New("unauthorized")
)
