// Package validation holds the pure rules applied to book requests before
// they reach a store: identifier generation, field checks and normalization.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// MinYear is the earliest accepted publication year.
const MinYear = 0

// now is swapped in tests to pin the current year.
var now = time.Now

// SetClock replaces the clock behind CurrentYear and returns a function
// that restores the previous one.
func SetClock(clock func() time.Time) (restore func()) {
	previous := now
	now = clock
	return func() { now = previous }
}

// CurrentYear returns the latest accepted publication year.
func CurrentYear() int {
	return now().Year()
}

// Normalize trims leading and trailing whitespace. Inner whitespace and
// casing are preserved.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// ValidateCreate checks a creation request. Rules run in a fixed order
// (title, author, year) and the first violation is returned.
func ValidateCreate(req entities.CreateBookRequest) error {
	if err := validateText(FieldTitle, req.Title); err != nil {
		return err
	}
	if err := validateText(FieldAuthor, req.Author); err != nil {
		return err
	}
	return validateYear(req.Year)
}

// ValidateUpdate checks a partial update. At least one field must be set and
// only the fields that are set are checked.
func ValidateUpdate(req entities.UpdateBookRequest) error {
	if req.IsEmpty() {
		return &Error{Reason: "at least one field required"}
	}
	if req.Title != nil {
		if err := validateText(FieldTitle, *req.Title); err != nil {
			return err
		}
	}
	if req.Author != nil {
		if err := validateText(FieldAuthor, *req.Author); err != nil {
			return err
		}
	}
	if req.Year != nil {
		return validateYear(*req.Year)
	}
	return nil
}

// ParseYear converts textual year input into an integer, reporting the
// year-type rule when the text is not a whole number.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(Normalize(s))
	if err != nil {
		return 0, &Error{Field: FieldYear, Reason: "must be an integer"}
	}
	return year, nil
}

func validateText(field, value string) error {
	if Normalize(value) == "" {
		return &Error{Field: field, Reason: "must be a non-empty string"}
	}
	return nil
}

func validateYear(year int) error {
	if year < MinYear {
		return &Error{Field: FieldYear, Reason: fmt.Sprintf("must not be less than %d", MinYear)}
	}
	if current := CurrentYear(); year > current {
		return &Error{Field: FieldYear, Reason: fmt.Sprintf("must not be greater than the current year (%d)", current)}
	}
	return nil
}
