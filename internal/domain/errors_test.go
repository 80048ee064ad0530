package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfferError(t *testing.T) {
	tests := []struct {
		name         string
		index        int
		offerID      string
		err          error
		wantContains []string
	}{
		{
			name:         "with offer id",
			index:        2,
			offerID:      "offer-3",
			err:          ErrInvalidCabinLabel,
			wantContains: []string{"offer 2", "offer-3", "invalid cabin label"},
		},
		{
			name:         "without offer id",
			index:        0,
			err:          ErrEmptyIdealHours,
			wantContains: []string{"offer 0", "ideal departure hours"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewOfferError(tt.index, tt.offerID, tt.err)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}
			assert.True(t, errors.Is(err, tt.err))
			assert.Equal(t, tt.index, err.Index)
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("preferences.idealDepartureHours", "must not be empty")

	assert.Equal(t, "preferences.idealDepartureHours: must not be empty", err.Error())
	assert.Equal(t, "preferences.idealDepartureHours", err.Field)
	assert.Equal(t, "must not be empty", err.Message)
}

func TestWrapInvalidRequest(t *testing.T) {
	tests := []struct {
		name         string
		format       string
		args         []interface{}
		wantContains string
	}{
		{
			name:         "single argument",
			format:       "field %s is required",
			args:         []interface{}{"origin"},
			wantContains: "field origin is required",
		},
		{
			name:         "no arguments",
			format:       "invalid request format",
			args:         nil,
			wantContains: "invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapInvalidRequest(tt.format, tt.args...)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Contains(t, err.Error(), tt.wantContains)
		})
	}
}

func TestErrorCheckers(t *testing.T) {
	tests := []struct {
		name       string
		checkFunc  func(error) bool
		err        error
		wantResult bool
	}{
		{
			name:       "IsEmptyOfferSet with sentinel",
			checkFunc:  IsEmptyOfferSet,
			err:        ErrEmptyOfferSet,
			wantResult: true,
		},
		{
			name:       "IsEmptyOfferSet with wrapped sentinel",
			checkFunc:  IsEmptyOfferSet,
			err:        fmt.Errorf("rank: %w", ErrEmptyOfferSet),
			wantResult: true,
		},
		{
			name:       "IsEmptyOfferSet with scoring error",
			checkFunc:  IsEmptyOfferSet,
			err:        ErrInvalidCabinLabel,
			wantResult: false,
		},
		{
			name:       "IsSearchNotFound with sentinel",
			checkFunc:  IsSearchNotFound,
			err:        ErrSearchNotFound,
			wantResult: true,
		},
		{
			name:       "IsValidationFailure with cabin label inside offer error",
			checkFunc:  IsValidationFailure,
			err:        NewOfferError(1, "x", ErrInvalidCabinLabel),
			wantResult: true,
		},
		{
			name:       "IsValidationFailure with empty ideal hours",
			checkFunc:  IsValidationFailure,
			err:        ErrEmptyIdealHours,
			wantResult: true,
		},
		{
			name:       "IsValidationFailure with empty offer set",
			checkFunc:  IsValidationFailure,
			err:        ErrEmptyOfferSet,
			wantResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantResult, tt.checkFunc(tt.err))
		})
	}
}
