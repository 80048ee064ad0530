package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCabin(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    Cabin
		wantErr bool
	}{
		{name: "economy", label: "ECONOMY", want: CabinEconomy},
		{name: "premium economy", label: "PREMIUM_ECONOMY", want: CabinPremiumEconomy},
		{name: "business lowercase", label: "business", want: CabinBusiness},
		{name: "first with spaces", label: "  First ", want: CabinFirst},
		{name: "unknown label", label: "ULTRA", wantErr: true},
		{name: "empty label", label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCabin(tt.label)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCabinLabel))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCabin_Rank(t *testing.T) {
	for want, c := range AllCabins() {
		got, err := c.Rank()
		require.NoError(t, err)
		assert.Equal(t, want, got, "rank of %s", c)
	}

	_, err := Cabin("ULTRA").Rank()
	assert.True(t, errors.Is(err, ErrInvalidCabinLabel))
}

func TestCabin_Order(t *testing.T) {
	cabins := AllCabins()
	require.Len(t, cabins, 4)
	assert.Equal(t, []Cabin{CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst}, cabins)

	// Mutating the returned slice must not affect the package order.
	cabins[0] = CabinFirst
	assert.Equal(t, CabinEconomy, AllCabins()[0])
}

func TestEffectiveCabin(t *testing.T) {
	tests := []struct {
		name    string
		cabins  []Cabin
		want    Cabin
		wantErr error
	}{
		{name: "single segment", cabins: []Cabin{CabinEconomy}, want: CabinEconomy},
		{name: "mixed takes highest", cabins: []Cabin{CabinEconomy, CabinBusiness, CabinPremiumEconomy}, want: CabinBusiness},
		{name: "all first", cabins: []Cabin{CabinFirst, CabinFirst}, want: CabinFirst},
		{name: "empty", cabins: nil, wantErr: ErrInvalidOffer},
		{name: "unknown label", cabins: []Cabin{CabinEconomy, "ULTRA"}, wantErr: ErrInvalidCabinLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EffectiveCabin(tt.cabins)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCabinLabel(t *testing.T) {
	assert.Equal(t, "ECONOMY", CabinLabel([]Cabin{CabinEconomy, CabinEconomy}))
	assert.Equal(t, "ECONOMY, BUSINESS", CabinLabel([]Cabin{CabinEconomy, CabinBusiness, CabinEconomy}))
	assert.Equal(t, "", CabinLabel(nil))
}
