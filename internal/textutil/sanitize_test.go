package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"commas removed", "Name, with commas", "Name_with_commas"},
		{"periods kept", "Name.with.periods", "Name.with.periods"},
		{"empty", "", ""},
		{"spaces to underscores", "Brandon Sanderson", "Brandon_Sanderson"},
		{"punctuation dropped", "Disney Agent Stitch: The M-Files", "Disney_Agent_Stitch_The_MFiles"},
		{"ampersand and parens dropped", "Books 1, 2 & 3 (Boxset)", "Books_1_2__3_Boxset"},
		{"already sanitized", "Already_Safe_Name", "Already_Safe_Name"},
		{"unicode letters kept", "Héro d'Été", "Héro_dÉté"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.input))
		})
	}
}

func TestSanitizeName_Deterministic(t *testing.T) {
	input := "The Archemi Online Chronicles Boxset: Books 1, 2 & 3"
	first := SanitizeName(input)
	assert.Equal(t, first, SanitizeName(input))
	// Sanitizing an already sanitized name is a no-op.
	assert.Equal(t, first, SanitizeName(first))
}
