package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRegistersPersistentFlags(t *testing.T) {
	Init()

	input := Cmd.PersistentFlags().Lookup("input")
	require.NotNil(t, input)
	assert.Equal(t, "i", input.Shorthand)

	output := Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
}

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "konto-csv", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotNil(t, Cmd.PersistentPreRunE)
}
