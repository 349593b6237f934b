package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidCurrency indicates a missing or unsupported currency code.
// It is always returned wrapped together with ErrValidation.
var ErrInvalidCurrency = errors.New("invalid currency code")

// ErrInvalidAmount indicates an amount that could not be parsed as a finite number.
// It is always returned wrapped together with ErrValidation.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrUpstream indicates that the external rate provider failed or returned an unusable response.
var ErrUpstream = errors.New("rate provider error")
