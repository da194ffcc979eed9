package utils

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrUnknownMood        = errors.New("unknown mood")
	ErrStorageError       = errors.New("storage error")
)
