package domain

import "errors"

// Sentinel errors for the book domain. Use errors.Is() to check these.
var (
	// ErrBookNotFound indicates the requested book does not exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookAlreadyExists indicates another book already uses the ISBN.
	ErrBookAlreadyExists = errors.New("book with this isbn already exists")

	// ErrInvalidBook indicates the book violates domain constraints.
	ErrInvalidBook = errors.New("invalid book")
)
