package domain

import "errors"

// Sentinel errors for the magazine domain. Use errors.Is() to check these.
var (
	ErrMagazineNotFound = errors.New("magazine not found")
	ErrInvalidMagazine  = errors.New("invalid magazine")
)
