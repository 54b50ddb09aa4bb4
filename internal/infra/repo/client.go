// Package repo detects the enclosing git repository so that
// repository-local configuration is found from any subdirectory.
package repo

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/runoshun/shellmate/internal/domain"
)

// Root returns the repository root for the given directory, walking up
// to the nearest .git like the git CLI does. Returns
// domain.ErrNotGitRepository when dir is not inside a repository.
func Root(dir string) (string, error) {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", domain.ErrNotGitRepository
		}
		return "", fmt.Errorf("open repository: %w", err)
	}

	wt, err := r.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", domain.ErrNotGitRepository
		}
		return "", fmt.Errorf("resolve worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}
