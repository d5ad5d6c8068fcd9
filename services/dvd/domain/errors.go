package domain

import "errors"

// Sentinel errors for the DVD domain. Use errors.Is() to check these.
var (
	ErrDVDNotFound = errors.New("dvd not found")
	ErrInvalidDVD  = errors.New("invalid dvd")
)
