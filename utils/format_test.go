package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"simple", "alice", "Alice"},
		{"already capitalized", "Alice", "Alice"},
		{"shouty", "ALICE", "Alice"},
		{"two words", "mary jane", "Mary Jane"},
		{"collapses spaces", "  mary   jane  ", "Mary Jane"},
		{"strips punctuation", "o'brien!", "Obrien"},
		{"keeps underscores and digits", "agent_99", "Agent_99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatName(tt.input))
		})
	}
}
