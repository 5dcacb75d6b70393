package entity

import "errors"

// Deterministic error categories surfaced by the core. Store failures are
// wrapped and propagated separately; they never masquerade as one of these.
var (
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = errors.New("forbidden")
	ErrDuplicateRelationship = errors.New("relationship already exists")
	ErrAlreadyLiked          = errors.New("post already liked")
	ErrInvalidQuery          = errors.New("search query is required")
	ErrInvalidPagination     = errors.New("invalid pagination parameters")
	ErrSelfFollow            = errors.New("cannot follow yourself")
)
