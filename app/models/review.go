package models

import (
	"strings"
	"time"

	"yelpcamp/app/validation"
)

// BeforeCreate sets up any necessary fields before creation
func (r *Review) BeforeCreate() {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
}

// NewReview builds an unsaved review from a validated input.
func NewReview(in *ReviewInput) *Review {
	r := &Review{Body: in.Body}
	if in.Rating != nil {
		r.Rating = *in.Rating
	}
	r.BeforeCreate()
	return r
}

// Normalize trims surrounding whitespace so blank fields fail "required".
func (in *CampgroundInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	in.Description = strings.TrimSpace(in.Description)
	in.Image = strings.TrimSpace(in.Image)
}

// MarkInvalid records a field that could not be decoded, such as a price that
// is not a number. Validate reports it in place of any tag failure on that field.
func (in *CampgroundInput) MarkInvalid(field, tag, message string) {
	in.invalid = markInvalid(in.invalid, field, tag, message)
}

// Validate checks the input against its struct tags. A nil result means valid.
func (in *CampgroundInput) Validate() *validation.RequestValidationError {
	return validation.Combine(in.invalid, validation.ValidateStruct(in).Without(in.invalid))
}

// Normalize trims surrounding whitespace so blank fields fail "required".
func (in *ReviewInput) Normalize() {
	in.Body = strings.TrimSpace(in.Body)
}

// MarkInvalid records a field that could not be decoded.
func (in *ReviewInput) MarkInvalid(field, tag, message string) {
	in.invalid = markInvalid(in.invalid, field, tag, message)
}

// Validate checks the input against its struct tags. A nil result means valid.
func (in *ReviewInput) Validate() *validation.RequestValidationError {
	return validation.Combine(in.invalid, validation.ValidateStruct(in).Without(in.invalid))
}

func markInvalid(ve *validation.RequestValidationError, field, tag, message string) *validation.RequestValidationError {
	if ve == nil {
		ve = &validation.RequestValidationError{}
	}
	ve.Add(field, tag, message)
	return ve
}
