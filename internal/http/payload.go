package http

import (
	"math"

	jsoniter "github.com/json-iterator/go"

	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/validation"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	reasonNotString  = "must be a non-empty string"
	reasonNotInteger = "must be an integer"
)

// bookPayload holds the raw JSON fields of a create or update body so that
// wrongly typed values can be reported as validation errors instead of
// generic decode failures.
type bookPayload map[string]jsoniter.RawMessage

func parseBookPayload(body []byte) (bookPayload, error) {
	var payload bookPayload
	if err := jsonAPI.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// field returns the raw value of key, treating JSON null as absent.
func (p bookPayload) field(key string) (jsoniter.RawMessage, bool) {
	raw, ok := p[key]
	if !ok || string(raw) == "null" {
		return nil, false
	}
	return raw, true
}

func (p bookPayload) text(key string) (*string, error) {
	raw, ok := p.field(key)
	if !ok {
		return nil, nil
	}
	var s string
	if err := jsonAPI.Unmarshal(raw, &s); err != nil {
		return nil, bookstore.NewValidationError(key, reasonNotString)
	}
	return &s, nil
}

func (p bookPayload) year() (*int, error) {
	raw, ok := p.field(validation.FieldYear)
	if !ok {
		return nil, nil
	}
	var f float64
	if err := jsonAPI.Unmarshal(raw, &f); err != nil || f != math.Trunc(f) {
		return nil, bookstore.NewValidationError(validation.FieldYear, reasonNotInteger)
	}
	// Whole numbers beyond int32 saturate so the range rule reports them.
	year := int(math.Max(math.MinInt32, math.Min(math.MaxInt32, f)))
	return &year, nil
}

// toCreateRequest converts the payload, reporting type problems in the same
// order the store checks its rules: title, author, year.
func (p bookPayload) toCreateRequest() (entities.CreateBookRequest, error) {
	var req entities.CreateBookRequest

	title, err := p.text(validation.FieldTitle)
	if err != nil {
		return req, err
	}
	author, err := p.text(validation.FieldAuthor)
	if err != nil {
		return req, err
	}
	if title != nil {
		req.Title = *title
	}
	if author != nil {
		req.Author = *author
	}

	year, yearErr := p.year()
	if yearErr == nil && year == nil {
		yearErr = bookstore.NewValidationError(validation.FieldYear, reasonNotInteger)
	}
	if yearErr != nil {
		// Text rules outrank the year-type rule.
		if err := validation.ValidateCreate(entities.CreateBookRequest{Title: req.Title, Author: req.Author}); err != nil {
			return req, bookstore.FromValidation(err)
		}
		return req, yearErr
	}
	req.Year = *year
	return req, nil
}

func (p bookPayload) toUpdateRequest() (entities.UpdateBookRequest, error) {
	var req entities.UpdateBookRequest

	title, err := p.text(validation.FieldTitle)
	if err != nil {
		return req, err
	}
	author, err := p.text(validation.FieldAuthor)
	if err != nil {
		return req, err
	}
	req.Title = title
	req.Author = author

	year, yearErr := p.year()
	if yearErr != nil {
		if !req.IsEmpty() {
			if err := validation.ValidateUpdate(req); err != nil {
				return req, bookstore.FromValidation(err)
			}
		}
		return req, yearErr
	}
	req.Year = year
	return req, nil
}
