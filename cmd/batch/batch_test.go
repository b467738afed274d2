package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchCommand_Metadata(t *testing.T) {
	assert.Equal(t, "batch", Cmd.Use)
	assert.Contains(t, Cmd.Short, "directory")
	assert.NotNil(t, Cmd.Run)
}

func TestBatchCommand_Flags(t *testing.T) {
	assert.NotNil(t, Cmd.Flags().Lookup("input-dir"))
	assert.NotNil(t, Cmd.Flags().Lookup("output-dir"))
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/exports/january.xlsx", "january.csv"},
		{"/exports/statement.ofx", "statement.csv"},
		{"already.csv", "already.csv"},
		{"no-extension", "no-extension.csv"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, outputName(tc.input))
	}
}
