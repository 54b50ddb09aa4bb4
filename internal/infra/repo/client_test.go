package repo

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/runoshun/shellmate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	t.Run("finds root from repository directory", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)

		root, err := Root(dir)
		require.NoError(t, err)
		assertSamePath(t, dir, root)
	})

	t.Run("finds root from a subdirectory", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		sub := filepath.Join(dir, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0o750))

		root, err := Root(sub)
		require.NoError(t, err)
		assertSamePath(t, dir, root)
	})

	t.Run("outside a repository", func(t *testing.T) {
		_, err := Root(t.TempDir())
		assert.ErrorIs(t, err, domain.ErrNotGitRepository)
	})

	t.Run("bare repository has no root", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.PlainInit(dir, true)
		require.NoError(t, err)

		_, err = Root(dir)
		assert.ErrorIs(t, err, domain.ErrNotGitRepository)
	})
}

// assertSamePath compares paths after symlink resolution; t.TempDir may
// sit behind a symlink (e.g. /tmp on macOS).
func assertSamePath(t *testing.T, want, got string) {
	t.Helper()
	wantResolved, err := filepath.EvalSymlinks(want)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, wantResolved, gotResolved)
}
