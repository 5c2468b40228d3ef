package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskTextRequired   = errors.New("task text is required")
	ErrPriorityOutOfRange = errors.New("task priority out of range")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooShort   = errors.New("password too short")
)
