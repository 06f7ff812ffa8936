package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "", ResolvePath(""))
	assert.Equal(t, "/etc/qrv.yaml", ResolvePath("/etc/qrv.yaml"))

	root := GetProjectRoot()
	assert.Equal(t, filepath.Join(root, "does-not-exist.yaml"), ResolvePath("does-not-exist.yaml"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "paths.go", ResolvePath("paths.go"), "existing relative paths are kept (cwd %s)", wd)
}

func TestGetProjectRootFindsGoMod(t *testing.T) {
	root := GetProjectRoot()
	_, err := os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err)
}
