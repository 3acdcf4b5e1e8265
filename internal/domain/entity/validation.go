package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Bounds for entity text fields. Title bounds apply at article construction;
// magazine name bounds apply on rename only, since historical magazine names
// of any length are accepted at construction.
const (
	TitleMinLen = 5
	TitleMaxLen = 50

	MagazineNameMinLen = 2
	MagazineNameMaxLen = 16
)

// validateAuthorName checks that an author name is non-empty.
// Returns a ValidationError if the name is empty or blank.
func validateAuthorName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}

// validateTitle checks that an article title is non-empty and within the
// permitted length bound. Lengths are counted in runes, not bytes.
func validateTitle(title string) error {
	if title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if n := utf8.RuneCountInString(title); n < TitleMinLen || n > TitleMaxLen {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must be between %d and %d characters", TitleMinLen, TitleMaxLen),
		}
	}
	return nil
}

// validateMagazineName checks the bound applied when renaming a magazine.
func validateMagazineName(name string) error {
	if n := utf8.RuneCountInString(name); n < MagazineNameMinLen || n > MagazineNameMaxLen {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("must be between %d and %d characters", MagazineNameMinLen, MagazineNameMaxLen),
		}
	}
	return nil
}

// validateCategory checks that a magazine category is non-blank.
func validateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return &ValidationError{Field: "category", Message: "is required"}
	}
	return nil
}

// validateAuthorRef checks that an author reference can anchor an article in
// the given registry: it must be non-nil and attached to that registry.
func validateAuthorRef(r *Registry, author *Author) error {
	if author == nil {
		return &ValidationError{Field: "author", Message: "is required"}
	}
	if author.reg != r {
		return &ValidationError{Field: "author", Message: "does not belong to this registry"}
	}
	return nil
}

// validateMagazineRef checks that a magazine reference can anchor an article
// in the given registry.
func validateMagazineRef(r *Registry, magazine *Magazine) error {
	if magazine == nil {
		return &ValidationError{Field: "magazine", Message: "is required"}
	}
	if magazine.reg != r {
		return &ValidationError{Field: "magazine", Message: "does not belong to this registry"}
	}
	return nil
}
