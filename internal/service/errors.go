package service

import "errors"

// Sentinel errors returned by the services. Handlers translate these to HTTP
// statuses; anything else becomes a generic 500.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("access to this resource is forbidden")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("current password is incorrect")
)
