// Package detect locates the enclosing repository and identifies which
// working-copy model manages it.
package detect

import (
	"os"
	"path/filepath"
	"strings"
)

// RepoType identifies the working-copy model managing a directory.
type RepoType int

const (
	// RepoNone means no repository encloses the directory.
	RepoNone RepoType = iota
	// RepoGit is a plain git repository.
	RepoGit
	// RepoJJ is a jj repository with its own backing store.
	RepoJJ
	// RepoJJColocated is a jj repository sharing a .git directory.
	RepoJJColocated
)

func (t RepoType) String() string {
	switch t {
	case RepoGit:
		return "git"
	case RepoJJ:
		return "jj"
	case RepoJJColocated:
		return "jj (colocated)"
	default:
		return "none"
	}
}

// Result is the outcome of repository detection.
type Result struct {
	Type RepoType
	// Root is the repository root directory; empty when Type is RepoNone.
	Root string
}

// Detect walks from dir toward the filesystem root looking for a
// repository marker. A .jj directory wins over .git at the same level:
// colocated repos have both and are managed by jj.
func Detect(dir string) Result {
	current := dir
	for {
		if hasDir(current, ".jj") {
			repoType := RepoJJ
			if hasGitMarker(current) {
				repoType = RepoJJColocated
			}
			return Result{Type: repoType, Root: current}
		}
		if hasGitMarker(current) {
			return Result{Type: RepoGit, Root: current}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return Result{Type: RepoNone}
		}
		current = parent
	}
}

// InRepo reports whether dir is inside any supported repository. Used by
// the detect subcommand for starship "when" conditions.
func InRepo(dir string) bool {
	return Detect(dir).Type != RepoNone
}

func hasDir(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.IsDir()
}

// hasGitMarker accepts both a .git directory and a worktree .git file
// containing a gitdir reference.
func hasGitMarker(dir string) bool {
	gitPath := filepath.Join(dir, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return true
	}
	content, err := os.ReadFile(gitPath)
	return err == nil && strings.HasPrefix(string(content), "gitdir: ")
}
