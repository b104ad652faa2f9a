package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	// Collect subcommand names.
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	// Verify expected subcommands are registered.
	expected := []string{"proximity", "volcanoes", "evidence", "map", "serve"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "volcano-cli", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestProximityCommand_Flags(t *testing.T) {
	flag := proximityCmd.Flags().Lookup("threshold")
	require.NotNil(t, flag, "proximity command should have --threshold flag")
	assert.Equal(t, "0", flag.DefValue)

	flag = proximityCmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "json", flag.DefValue)

	flag = proximityCmd.Flags().ShorthandLookup("o")
	require.NotNil(t, flag)
	assert.Equal(t, "output", flag.Name)
}

func TestVolcanoesCommand_Flags(t *testing.T) {
	for _, name := range []string{"category", "value", "options", "format", "output"} {
		assert.NotNil(t, volcanoesCmd.Flags().Lookup(name), "volcanoes should have --%s flag", name)
	}
	assert.Equal(t, "country", volcanoesCmd.Flags().Lookup("category").DefValue)
}

func TestEvidenceCommand_Flags(t *testing.T) {
	assert.Equal(t, "activity-evidence", evidenceCmd.Flags().Lookup("category").DefValue)
	assert.Equal(t, "false", evidenceCmd.Flags().Lookup("nearby").DefValue)
}

func TestMapCommand_Flags(t *testing.T) {
	assert.Equal(t, "geojson", mapCmd.Flags().Lookup("format").DefValue)
	assert.Equal(t, "volcanoes", mapCmd.Flags().Lookup("layer").DefValue)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}
