package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"scrape", "fulltext", "enrich", "publish", "run"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "opencall-cli", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestScrapeCommand_Flags(t *testing.T) {
	flag := scrapeCmd.Flags().Lookup("out")
	require.NotNil(t, flag, "scrape command should have --out flag")
	assert.Equal(t, "", flag.DefValue)
}

func TestEnrichCommand_Flags(t *testing.T) {
	flag := enrichCmd.Flags().Lookup("table")
	require.NotNil(t, flag, "enrich command should have --table flag")
}

func TestFulltextCommand_Flags(t *testing.T) {
	flag := fulltextCmd.Flags().Lookup("file")
	require.NotNil(t, flag, "fulltext command should have --file flag")
}

func TestPublishCommand_Flags(t *testing.T) {
	flag := publishCmd.Flags().Lookup("file")
	require.NotNil(t, flag, "publish command should have --file flag")
}

func TestRunCommand_Flags(t *testing.T) {
	flag := runCmd.Flags().Lookup("skip-scrape")
	require.NotNil(t, flag, "run command should have --skip-scrape flag")
	assert.Equal(t, "false", flag.DefValue)
}
