package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func pinYear(t *testing.T, year int) {
	t.Helper()
	restore := SetClock(func() time.Time { return time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC) })
	t.Cleanup(restore)
}

func TestSetClock(t *testing.T) {
	before := CurrentYear()

	restore := SetClock(func() time.Time { return time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC) })
	assert.Equal(t, 1999, CurrentYear())
	requireFieldError(t, ValidateCreate(entities.CreateBookRequest{Title: "T", Author: "A", Year: 2000}), FieldYear)

	restore()
	assert.GreaterOrEqual(t, CurrentYear(), before)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func requireFieldError(t *testing.T, err error, field string) *Error {
	t.Helper()
	require.Error(t, err)
	var vErr *Error
	require.True(t, errors.As(err, &vErr), "expected *validation.Error, got %T", err)
	assert.Equal(t, field, vErr.Field)
	return vErr
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no whitespace", "Dune", "Dune"},
		{"surrounding spaces", "  Dune  ", "Dune"},
		{"tabs and newlines", "\tThe Hobbit\n", "The Hobbit"},
		{"inner whitespace kept", "  War  and   Peace ", "War  and   Peace"},
		{"casing kept", " tHe HoBBit ", "tHe HoBBit"},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestValidateCreate(t *testing.T) {
	pinYear(t, 2024)

	t.Run("accepts a valid request", func(t *testing.T) {
		err := ValidateCreate(entities.CreateBookRequest{Title: "Dune", Author: "Frank Herbert", Year: 1965})
		assert.NoError(t, err)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		err := ValidateCreate(entities.CreateBookRequest{Title: "", Author: "Frank Herbert", Year: 1965})
		vErr := requireFieldError(t, err, FieldTitle)
		assert.Contains(t, vErr.Error(), "title")
	})

	t.Run("rejects whitespace-only author", func(t *testing.T) {
		err := ValidateCreate(entities.CreateBookRequest{Title: "Dune", Author: " \t ", Year: 1965})
		vErr := requireFieldError(t, err, FieldAuthor)
		assert.Contains(t, vErr.Error(), "author")
	})

	t.Run("title is checked before author", func(t *testing.T) {
		err := ValidateCreate(entities.CreateBookRequest{Title: " ", Author: "", Year: -5})
		requireFieldError(t, err, FieldTitle)
	})

	t.Run("author is checked before year", func(t *testing.T) {
		err := ValidateCreate(entities.CreateBookRequest{Title: "Dune", Author: "", Year: -5})
		requireFieldError(t, err, FieldAuthor)
	})

	yearTests := []struct {
		name  string
		year  int
		valid bool
	}{
		{"year zero is valid", 0, true},
		{"current year is valid", 2024, true},
		{"ordinary year is valid", 1851, true},
		{"negative year is invalid", -1, false},
		{"next year is invalid", 2025, false},
	}
	for _, tt := range yearTests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreate(entities.CreateBookRequest{Title: "T", Author: "A", Year: tt.year})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			vErr := requireFieldError(t, err, FieldYear)
			assert.Contains(t, vErr.Error(), "year")
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	pinYear(t, 2024)

	t.Run("rejects an empty update", func(t *testing.T) {
		err := ValidateUpdate(entities.UpdateBookRequest{})
		vErr := requireFieldError(t, err, "")
		assert.Equal(t, "at least one field required", vErr.Error())
	})

	t.Run("accepts a single valid field", func(t *testing.T) {
		assert.NoError(t, ValidateUpdate(entities.UpdateBookRequest{Year: intPtr(2000)}))
		assert.NoError(t, ValidateUpdate(entities.UpdateBookRequest{Title: strPtr("New")}))
		assert.NoError(t, ValidateUpdate(entities.UpdateBookRequest{Author: strPtr("Someone")}))
	})

	t.Run("rejects a supplied blank title", func(t *testing.T) {
		err := ValidateUpdate(entities.UpdateBookRequest{Title: strPtr("   ")})
		requireFieldError(t, err, FieldTitle)
	})

	t.Run("rejects a supplied blank author", func(t *testing.T) {
		err := ValidateUpdate(entities.UpdateBookRequest{Author: strPtr("")})
		requireFieldError(t, err, FieldAuthor)
	})

	t.Run("rejects out of range years", func(t *testing.T) {
		requireFieldError(t, ValidateUpdate(entities.UpdateBookRequest{Year: intPtr(-1)}), FieldYear)
		requireFieldError(t, ValidateUpdate(entities.UpdateBookRequest{Year: intPtr(2025)}), FieldYear)
	})

	t.Run("boundary years are valid", func(t *testing.T) {
		assert.NoError(t, ValidateUpdate(entities.UpdateBookRequest{Year: intPtr(0)}))
		assert.NoError(t, ValidateUpdate(entities.UpdateBookRequest{Year: intPtr(2024)}))
	})
}

func TestParseYear(t *testing.T) {
	year, err := ParseYear(" 1999 ")
	require.NoError(t, err)
	assert.Equal(t, 1999, year)

	for _, input := range []string{"", "abc", "19.5", "1e3"} {
		_, err := ParseYear(input)
		vErr := requireFieldError(t, err, FieldYear)
		assert.Contains(t, vErr.Error(), "integer")
	}
}

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	t.Run("back to back calls differ", func(t *testing.T) {
		assert.NotEqual(t, GenerateID(), GenerateID())
	})
}
