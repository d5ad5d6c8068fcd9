package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field limits shared by every catalog.
const (
	MaxTitleLen       = 200
	MaxAuthorLen      = 150
	MaxDescriptionLen = 500
	MinPublication    = 1000
)

// RequireText fails when s is blank or longer than max runes.
func RequireText(field, s string, max int) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return MaxText(field, s, max)
}

// MaxText fails when s is longer than max runes.
func MaxText(field, s string, max int) error {
	if utf8.RuneCountInString(s) > max {
		return fmt.Errorf("%s must not exceed %d characters", field, max)
	}
	return nil
}

// MinInt fails when p is set and below min.
func MinInt(field string, p *int, min int) error {
	if p != nil && *p < min {
		return fmt.Errorf("%s must be at least %d", field, min)
	}
	return nil
}

// NonNegative fails when p is set and negative.
func NonNegative(field string, p *float64) error {
	if p != nil && *p < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

// ValidateItem checks the common item fields.
func ValidateItem(it Item) error {
	return errors.Join(
		RequireText("titulo", it.Title, MaxTitleLen),
		RequireText("autor", it.Author, MaxAuthorLen),
		minYear(it.PublicationYear),
		MaxText("descripcion", it.Description, MaxDescriptionLen),
	)
}

func minYear(y int) error {
	if y < MinPublication {
		return fmt.Errorf("anoPublicacion must be at least %d", MinPublication)
	}
	return nil
}
