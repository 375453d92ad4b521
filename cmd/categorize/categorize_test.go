package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandFlags(t *testing.T) {
	for flag, shorthand := range map[string]string{
		"description": "d",
		"category":    "c",
		"keyword":     "k",
	} {
		f := Cmd.Flags().Lookup(flag)
		require.NotNil(t, f, "flag %q", flag)
		assert.Equal(t, shorthand, f.Shorthand)
	}
}

func TestCommandMetadata(t *testing.T) {
	assert.Equal(t, "categorize", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
}
