package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, ".", cfg.Input)
	require.Equal(t, "./site", cfg.Output)
	require.Equal(t, "index", cfg.RootDoc)
	require.False(t, cfg.HideRootTitle)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "designkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"input: docs\noutput: public\ntitle: My Docs\nroot_doc: home\nhide_root_title: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "docs", cfg.Input)
	require.Equal(t, "public", cfg.Output)
	require.Equal(t, "My Docs", cfg.Title)
	require.Equal(t, "home", cfg.RootDoc)
	require.True(t, cfg.HideRootTitle)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "designkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [unclosed"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
