package utils

import "errors"

var (
	// Matching preconditions. Distinct so callers get actionable
	// guidance instead of a silent empty result list.
	ErrProfileNotFound      = errors.New("profile not found")
	ErrEmptyTopicSet        = errors.New("profile has no topics")
	ErrEmbeddingUnavailable = errors.New("no embedding exists for profile")
	ErrCounterpartNotFound  = errors.New("counterpart profile not found")

	// Profile lifecycle.
	ErrProfileExists = errors.New("profile already exists for user")
	ErrTooManyTopics = errors.New("too many topics")
	ErrTopicNotFound = errors.New("topic not found")

	// Embedding storage.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// Auth.
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongUserType      = errors.New("operation not allowed for this user type")

	// Request validation.
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")

	ErrDatabaseError = errors.New("database error")
)
