package domain

import (
	"fmt"
	"strings"
)

// Cabin is a travel class. The zero value is not a valid cabin.
type Cabin string

// Known cabins, lowest to highest.
const (
	CabinEconomy        Cabin = "ECONOMY"
	CabinPremiumEconomy Cabin = "PREMIUM_ECONOMY"
	CabinBusiness       Cabin = "BUSINESS"
	CabinFirst          Cabin = "FIRST"
)

// cabinOrder is the fixed total order over cabins; the index is the rank.
var cabinOrder = []Cabin{CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst}

var cabinRanks = map[Cabin]int{
	CabinEconomy:        0,
	CabinPremiumEconomy: 1,
	CabinBusiness:       2,
	CabinFirst:          3,
}

// AllCabins returns the known cabins from lowest to highest.
func AllCabins() []Cabin {
	out := make([]Cabin, len(cabinOrder))
	copy(out, cabinOrder)
	return out
}

// ParseCabin converts a label to a Cabin. Matching ignores case and
// surrounding whitespace; anything else fails with ErrInvalidCabinLabel.
func ParseCabin(label string) (Cabin, error) {
	c := Cabin(strings.ToUpper(strings.TrimSpace(label)))
	if _, ok := cabinRanks[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCabinLabel, label)
	}
	return c, nil
}

// IsValid reports whether c is one of the known cabins.
func (c Cabin) IsValid() bool {
	_, ok := cabinRanks[c]
	return ok
}

// Rank returns the position of c in the cabin order (0 = ECONOMY).
func (c Cabin) Rank() (int, error) {
	r, ok := cabinRanks[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCabinLabel, string(c))
	}
	return r, nil
}

func (c Cabin) String() string {
	return string(c)
}

// EffectiveCabin returns the highest-ranked cabin among the segments.
func EffectiveCabin(cabins []Cabin) (Cabin, error) {
	if len(cabins) == 0 {
		return "", fmt.Errorf("%w: no cabins", ErrInvalidOffer)
	}

	best := -1
	for _, c := range cabins {
		r, err := c.Rank()
		if err != nil {
			return "", err
		}
		if r > best {
			best = r
		}
	}
	return cabinOrder[best], nil
}

// CabinLabel joins the distinct cabins in first-seen order, e.g. "ECONOMY, BUSINESS".
func CabinLabel(cabins []Cabin) string {
	seen := make(map[Cabin]struct{}, len(cabins))
	labels := make([]string, 0, len(cabins))
	for _, c := range cabins {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		labels = append(labels, string(c))
	}
	return strings.Join(labels, ", ")
}
