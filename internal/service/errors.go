package service

import "errors"

// Errors surfaced to the API layer. Credential failures share a single
// value so a caller cannot tell a wrong password from an unknown user,
// and a word owned by someone else is indistinguishable from a missing one.
var (
	ErrInvalidUsername    = errors.New("username must be at least 4 characters long and contain only letters, numbers, and underscores")
	ErrInvalidPassword    = errors.New("password must be at least 4 characters long")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrMissingField       = errors.New("all word fields are required")
	ErrInvalidCategory    = errors.New("category must be tech or daily")
	ErrInvalidFilter      = errors.New("unknown filter value")
	ErrDuplicateWord      = errors.New("word pair already exists")
	ErrWordNotFound       = errors.New("word not found")
)
