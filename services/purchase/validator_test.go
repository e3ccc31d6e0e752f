package purchase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedPayload(t *testing.T) {
	normalized, err := Validate(&Payload{
		GameName: "  Friday Night  ",
		Players:  float64(10),
		Addons:   []interface{}{"Guilds"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Friday Night", normalized.Name)
	assert.Equal(t, 10, normalized.Players)
	assert.Equal(t, []string{"Guilds"}, normalized.Addons)
}

func TestValidateGameName(t *testing.T) {
	tests := []struct {
		name     string
		gameName interface{}
	}{
		{"missing", nil},
		{"empty", ""},
		{"whitespace only", "   "},
		{"not a string", 42.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(&Payload{GameName: tt.gameName, Players: float64(4)})
			assert.ErrorIs(t, err, ErrEmptyGameName)
		})
	}
}

func TestValidatePlayers(t *testing.T) {
	invalid := []struct {
		name    string
		players interface{}
	}{
		{"missing", nil},
		{"zero", float64(0)},
		{"negative", float64(-3)},
		{"fractional", 2.5},
		{"not a number", "abc"},
		{"boolean", true},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(&Payload{GameName: "Friday Night", Players: tt.players})
			assert.ErrorIs(t, err, ErrInvalidPlayers)
		})
	}

	// The frontend has historically sent numbers as strings
	normalized, err := Validate(&Payload{GameName: "Friday Night", Players: "7"})
	require.NoError(t, err)
	assert.Equal(t, 7, normalized.Players)
}

func TestValidateAddonsAreLenient(t *testing.T) {
	tests := []struct {
		name   string
		addons interface{}
		want   []string
	}{
		{"missing", nil, []string{}},
		{"not an array", "Guilds", []string{}},
		{"mixed entries", []interface{}{"Guilds", "  ", float64(5), "Saboteurs"}, []string{"Guilds", "Saboteurs"}},
		{"duplicates and order preserved", []interface{}{"Guilds", "Guilds", "Saboteurs"}, []string{"Guilds", "Guilds", "Saboteurs"}},
		{"entries trimmed", []interface{}{"  Guilds  "}, []string{"Guilds"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := Validate(&Payload{GameName: "Friday Night", Players: float64(4), Addons: tt.addons})
			require.NoError(t, err)
			assert.Equal(t, tt.want, normalized.Addons)
		})
	}
}

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		players int
		addons  int
		want    int
	}{
		{1, 0, 1},
		{10, 1, 15},
		{4, 2, 14},
		{8, 0, 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculatePrice(tt.players, tt.addons))
	}
}
