package stadium

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStadiumValidate(t *testing.T) {
	assert.NoError(t, Stadium{Name: "Maracanã"}.Validate())
	assert.NoError(t, Stadium{Name: "Açu"}.Validate())

	assert.Error(t, Stadium{Name: ""}.Validate())
	assert.Error(t, Stadium{Name: "  ab  "}.Validate())
	// Two accented runes span four bytes but still miss the minimum.
	assert.Error(t, Stadium{Name: "Éé"}.Validate())
}
