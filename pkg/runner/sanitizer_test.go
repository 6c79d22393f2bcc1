package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	_, err := SanitizeInput(strings.Repeat("w", DefaultMaxInputSize))
	assert.NoError(t, err)

	_, err = SanitizeInput(strings.Repeat("w", DefaultMaxInputSize+1))
	assert.ErrorIs(t, err, ErrInputTooLarge)
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain command", "w 1 2 t", "w 1 2 t"},
		{"Tab kept", "w\t1\t2\tt", "w\t1\t2\tt"},
		{"ANSI code", "\x1b[31mclear t", "[31mclear t"},
		{"Null byte", "w 1\x00 2 t", "w 1 2 t"},
		{"Carriage return", "invert\r", "invert"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "10")

	_, err := SanitizeInput("dc 1 1 1 t")
	assert.NoError(t, err)
	_, err = SanitizeInput("dc 10 10 1 t")
	assert.ErrorIs(t, err, ErrInputTooLarge)
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	_, err := SanitizeInput("w \xbd\xb2 1 t")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
