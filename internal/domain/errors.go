package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the scoring engine and its callers.
var (
	// ErrInvalidCabinLabel is returned when a cabin string is not one of the four known classes.
	ErrInvalidCabinLabel = errors.New("invalid cabin label")

	// ErrEmptyIdealHours is returned when a preference set has no ideal departure hours.
	ErrEmptyIdealHours = errors.New("ideal departure hours must not be empty")

	// ErrEmptyOfferSet is returned when ranking is requested over zero offers.
	// Callers should treat it as "no flights found" rather than a fault.
	ErrEmptyOfferSet = errors.New("no flight offers to rank")

	// ErrInvalidOffer is returned when an offer violates its structural invariants.
	ErrInvalidOffer = errors.New("invalid flight offer")

	// ErrInvalidPreferences is returned when a preference set has out-of-range values.
	ErrInvalidPreferences = errors.New("invalid preferences")

	// ErrInvalidRequest is returned when the search request is malformed.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSearchNotFound is returned when a re-rank refers to a search that is not cached.
	ErrSearchNotFound = errors.New("search not found")
)

// OfferError records which offer in a batch failed to score.
type OfferError struct {
	Index   int
	OfferID string
	Err     error
}

// NewOfferError creates an OfferError for the offer at the given index.
func NewOfferError(index int, offerID string, err error) *OfferError {
	return &OfferError{
		Index:   index,
		OfferID: offerID,
		Err:     err,
	}
}

func (e *OfferError) Error() string {
	if e.OfferID != "" {
		return fmt.Sprintf("offer %d (%s): %v", e.Index, e.OfferID, e.Err)
	}
	return fmt.Sprintf("offer %d: %v", e.Index, e.Err)
}

func (e *OfferError) Unwrap() error {
	return e.Err
}

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// WrapInvalidRequest formats a message and wraps it with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsEmptyOfferSet reports whether err is or wraps ErrEmptyOfferSet.
func IsEmptyOfferSet(err error) bool {
	return errors.Is(err, ErrEmptyOfferSet)
}

// IsSearchNotFound reports whether err is or wraps ErrSearchNotFound.
func IsSearchNotFound(err error) bool {
	return errors.Is(err, ErrSearchNotFound)
}

// IsValidationFailure reports whether err stems from bad input rather than a server fault.
func IsValidationFailure(err error) bool {
	return errors.Is(err, ErrInvalidCabinLabel) ||
		errors.Is(err, ErrEmptyIdealHours) ||
		errors.Is(err, ErrInvalidOffer) ||
		errors.Is(err, ErrInvalidPreferences) ||
		errors.Is(err, ErrInvalidRequest)
}
