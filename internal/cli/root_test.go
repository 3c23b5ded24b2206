package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "sillaba", cmd.Use)
	assert.Contains(t, cmd.Long, "sonority")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := [][]string{
		{"scan"},
		{"lexicon"},
		{"lexicon", "check"},
		{"lexicon", "show"},
		{"history"},
		{"test"},
	}

	for _, path := range commands {
		name := path[len(path)-1]
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err, "Command %v should exist", path)
			require.NotNil(t, subCmd)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestScanCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	scanCmd, _, err := cmd.Find([]string{"scan"})
	require.NoError(t, err)

	tests := []struct {
		flag string
		def  string
	}{
		{"lexicon", ""},
		{"separator", "|"},
		{"workers", "1"},
		{"metre", "false"},
		{"db", ""},
		{"no-count", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := scanCmd.Flags().Lookup(tt.flag)
			require.NotNil(t, f)
			assert.Equal(t, tt.def, f.DefValue)
		})
	}
}

func TestHistoryCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	historyCmd, _, err := cmd.Find([]string{"history"})
	require.NoError(t, err)

	for _, name := range []string{"db", "run", "find", "lexicon", "separator"} {
		assert.NotNil(t, historyCmd.Flags().Lookup(name), name)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := executeCommand(t, "bello\n", "scan", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
