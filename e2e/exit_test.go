//go:build e2e && unix

package main

import (
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuitSavesPreferences(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Dashboard should render")

	// Hide the category column, grow the page, then quit
	require.NoError(t, tf.Type("lv"))
	require.True(t, tf.SeePlain("View: 1 hidden"), "Column should be hidden")
	require.NoError(t, tf.SendKeys("+"))

	require.NoError(t, tf.Quit())
	if err := tf.WaitExit(2 * time.Second); err != nil {
		tf.DumpTailOnFail(t, "quit-failure", 4096)
		t.Fatal(err)
	}

	raw, err := os.ReadFile(tf.ConfigPath())
	require.NoError(t, err, "Config should be written on quit")
	cfg := string(raw)
	require.Regexp(t, regexp.MustCompile(`about = \[['"]category['"]\]`), cfg)
	require.Regexp(t, regexp.MustCompile(`page_size = 20`), cfg)
}

func TestSavedPreferencesAreApplied(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.WriteConfig(`version = 1

[ui]
page_size = 10
show_drag_handles = true
mouse = true
autosave_on_exit = false

[hidden_columns]
about = ["body", "order"]
`))
	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Dashboard should render")
	require.True(t, tf.SeePlain("View: 2 hidden"), "Hidden columns should come from the config")
}

func TestCtrlCExits(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Dashboard should render")

	require.NoError(t, tf.SendKeys(KeyCtrlC))
	require.NoError(t, tf.WaitExit(2*time.Second), "App should exit on ctrl+c")
}
