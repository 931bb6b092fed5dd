package stadium

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Stadium is a match venue. Names are globally unique.
type Stadium struct {
	ID   int64
	Name string
}

func (s Stadium) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(s.Name)) < 3 {
		return fmt.Errorf("stadium name must have at least 3 characters")
	}

	return nil
}
