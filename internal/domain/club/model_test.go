package club

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidState(t *testing.T) {
	assert.True(t, IsValidState("SP"))
	assert.True(t, IsValidState(" rj "))
	assert.True(t, IsValidState("to"))
	assert.False(t, IsValidState("XX"))
	assert.False(t, IsValidState(""))
	assert.False(t, IsValidState("SPP"))
}

func TestClubValidate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	valid := Club{
		Name:      "Palmeiras",
		State:     "SP",
		FoundedOn: time.Date(1914, 8, 26, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}
	assert.NoError(t, valid.Validate(now))

	tests := []struct {
		name   string
		mutate func(*Club)
	}{
		{name: "short name", mutate: func(c *Club) { c.Name = " a " }},
		{name: "empty name", mutate: func(c *Club) { c.Name = "" }},
		{name: "single accented rune", mutate: func(c *Club) { c.Name = "É" }},
		{name: "bad state", mutate: func(c *Club) { c.State = "ZZ" }},
		{name: "zero founding date", mutate: func(c *Club) { c.FoundedOn = time.Time{} }},
		{name: "future founding date", mutate: func(c *Club) { c.FoundedOn = now.AddDate(0, 0, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			tt.mutate(&item)
			assert.Error(t, item.Validate(now))
		})
	}
}
