package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxCmdStructure(t *testing.T) {
	cmd := txCmd()

	names := make(map[string]bool)
	for _, subcmd := range cmd.Commands() {
		names[subcmd.Name()] = true
	}

	assert.True(t, names["add"], "add subcommand should exist")
	assert.True(t, names["list"], "list subcommand should exist")
}

func TestTxAddCmdVariants(t *testing.T) {
	cmd := txAddCmd()

	names := make(map[string]bool)
	for _, subcmd := range cmd.Commands() {
		names[subcmd.Name()] = true
	}

	assert.True(t, names["income"])
	assert.True(t, names["expense"])
	assert.True(t, names["transfer"])
}

func TestTxAddTransferCmdFlags(t *testing.T) {
	cmd := txAddTransferCmd()

	for _, name := range []string{"amount", "from", "to", "description", "date"} {
		assert.NotNil(t, cmd.Flag(name), "%s flag should exist", name)
	}
}

func TestTxListCmdFlags(t *testing.T) {
	cmd := txListCmd()

	typeFlag := cmd.Flag("type")
	require.NotNil(t, typeFlag)
	assert.Equal(t, "all", typeFlag.DefValue)

	categoryFlag := cmd.Flag("category")
	require.NotNil(t, categoryFlag)
	assert.Equal(t, "all", categoryFlag.DefValue)
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = parseDate("09/01/2026")
	assert.Error(t, err)

	today, err := parseDate("")
	require.NoError(t, err)
	now := time.Now()
	assert.Equal(t, now.Year(), today.Year())
	assert.Equal(t, now.Month(), today.Month())
	assert.Equal(t, now.Day(), today.Day())
}
