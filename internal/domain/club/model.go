package club

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Club is a registered football club. FoundedOn carries a calendar date;
// the time part is always midnight.
type Club struct {
	ID        int64
	Name      string
	State     string
	FoundedOn time.Time
	Active    bool
}

// states holds the 27 Brazilian federative unit codes.
var states = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

func NormalizeState(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsValidState(value string) bool {
	_, ok := states[NormalizeState(value)]
	return ok
}

func (c Club) Validate(now time.Time) error {
	if utf8.RuneCountInString(strings.TrimSpace(c.Name)) < 2 {
		return fmt.Errorf("club name must have at least 2 characters")
	}
	if !IsValidState(c.State) {
		return fmt.Errorf("state %q is not a Brazilian federative unit", c.State)
	}
	if c.FoundedOn.IsZero() {
		return fmt.Errorf("club founding date is required")
	}
	if c.FoundedOn.After(now) {
		return fmt.Errorf("club founding date cannot be in the future")
	}

	return nil
}
