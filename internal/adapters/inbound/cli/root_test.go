package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gomsv.yaml"), []byte(content), 0o644))
	return dir
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "gomsv")
}

func TestRootCommand_Help(t *testing.T) {
	out, err := runCommand(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "find")
	assert.Contains(t, out, "list")
	assert.Contains(t, out, "mcp")
}
