package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "go.mod")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestModuleName(t *testing.T) {
	path := writeManifest(t, "module github.com/hsqStephenZhang/emoji-cheat-sheet\n\ngo 1.24.3\n")
	name, err := ModuleName(path)
	require.NoError(t, err)
	assert.Equal(t, "emoji-cheat-sheet", name)
}

func TestModuleNameSingleElement(t *testing.T) {
	path := writeManifest(t, "module emojisheet\n")
	name, err := ModuleName(path)
	require.NoError(t, err)
	assert.Equal(t, "emojisheet", name)
}

func TestModuleNameQuoted(t *testing.T) {
	path := writeManifest(t, "module \"example.com/quoted/name\"\n")
	name, err := ModuleName(path)
	require.NoError(t, err)
	assert.Equal(t, "name", name)
}

func TestModuleNameMissingDirective(t *testing.T) {
	path := writeManifest(t, "go 1.24.3\n")
	_, err := ModuleName(path)
	assert.Error(t, err)
}

func TestModuleNameMissingFile(t *testing.T) {
	_, err := ModuleName(filepath.Join(t.TempDir(), "absent", "go.mod"))
	assert.Error(t, err)
}
