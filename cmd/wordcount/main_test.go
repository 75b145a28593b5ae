package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return cmd
}

func TestRunCount(t *testing.T) {
	logger = zap.NewNop()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("a b\nc"), 0o644))

	var out bytes.Buffer
	err := runCount(newTestCmd(&out), []string{path})

	require.NoError(t, err)
	assert.Equal(t, path+"\t3\n", out.String())
}

func TestRunCount_ReportsFailures(t *testing.T) {
	logger = zap.NewNop()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("one two"), 0o644))
	missing := filepath.Join(dir, "missing.txt")

	var out bytes.Buffer
	err := runCount(newTestCmd(&out), []string{good, missing})

	require.ErrorIs(t, err, errSomeFailed)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out.String(), good+"\t2\n")
	assert.Contains(t, out.String(), missing+"\terror: read "+missing)
}

func TestRootCmd_RequiresPath(t *testing.T) {
	logger = zap.NewNop()

	rootCmd.SetArgs([]string{})
	rootCmd.SetOut(&bytes.Buffer{})
	defer rootCmd.SetArgs(nil)

	assert.Error(t, rootCmd.Execute())
}
