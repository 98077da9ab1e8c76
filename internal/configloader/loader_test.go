package configloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdtree/internal/configloader"
	"github.com/yaklabco/gomdtree/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveExplicitPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yaml", "flavor: pandoc\n")

	cfg, source, err := configloader.Resolve(path, dir, "")
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, config.FlavorPandoc, cfg.Flavor)
	assert.False(t, cfg.Extensions.QuartoShortcodes)
}

func TestResolveExplicitMissing(t *testing.T) {
	t.Parallel()

	_, _, err := configloader.Resolve(filepath.Join(t.TempDir(), "nope.yaml"), "", "")
	require.Error(t, err)
}

func TestResolveEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "env.yaml", "flavor: commonmark\n")
	t.Setenv(configloader.EnvConfigPath, path)

	cfg, source, err := configloader.Resolve("", dir, "")
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, config.FlavorCommonMark, cfg.Flavor)
}

func TestResolveDiscoversProjectFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	writeConfig(t, root, ".gomdtree.yml", "flavor: pandoc\n")
	nested := filepath.Join(root, "docs", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, source, err := configloader.Resolve("", nested, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".gomdtree.yml"), source)
	assert.Equal(t, config.FlavorPandoc, cfg.Flavor)
}

func TestResolveStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	writeConfig(t, outer, ".gomdtree.yml", "flavor: pandoc\n")
	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	cfg, source, err := configloader.Resolve("", repo, "")
	require.NoError(t, err)
	assert.Empty(t, source, "config outside the repo root should not apply")
	assert.Equal(t, config.FlavorQuarto, cfg.Flavor)
}

func TestResolveFallbackFlavor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

	cfg, source, err := configloader.Resolve("", dir, config.FlavorCommonMark)
	require.NoError(t, err)
	assert.Empty(t, source)
	assert.Equal(t, config.FlavorCommonMark, cfg.Flavor)

	_, _, err = configloader.Resolve("", dir, "klingon")
	require.Error(t, err)
}
