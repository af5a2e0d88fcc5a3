package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempHome(t *testing.T) {
	t.Helper()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })
}

func TestPrefsSetLanguageRejectsUnknownCode(t *testing.T) {
	withTempHome(t)

	cmd := PrefsCmd()
	cmd.SetArgs([]string{"set", "language", "klingon"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestPrefsSetThemeRejectsUnknownMode(t *testing.T) {
	withTempHome(t)

	cmd := PrefsCmd()
	cmd.SetArgs([]string{"set", "theme", "sepia"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported theme mode")
}

func TestPrefsSetAndShowRoundTrip(t *testing.T) {
	withTempHome(t)

	set := PrefsCmd()
	set.SetArgs([]string{"set", "language", "fr"})
	require.NoError(t, set.Execute())

	set = PrefsCmd()
	set.SetArgs([]string{"set", "theme", "dark"})
	require.NoError(t, set.Execute())

	show := PrefsCmd()
	show.SetArgs([]string{"show"})
	assert.NoError(t, show.Execute())
}

func TestListCmdRuns(t *testing.T) {
	withTempHome(t)

	cmd := ListCmd()
	cmd.SetArgs([]string{"--category", "Setup", "--query", "install"})
	assert.NoError(t, cmd.Execute())
}

func TestPrefsHelpWorks(t *testing.T) {
	cmd := PrefsCmd()
	cmd.SetArgs([]string{"--help"})
	assert.NoError(t, cmd.Execute())
}
