package gitrepo

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/prasant081/jj-starship/internal/domain"
)

const defaultHashLen = 7

// Collect gathers the working-tree status of the git repository rooted
// at path into a domain.GitStatus. idLength controls how many hash
// characters land in HeadShort; values outside 1..40 fall back to the
// conventional 7.
func Collect(path string, idLength int) (*domain.GitStatus, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}
	return collect(repo, idLength)
}

func collect(repo *git.Repository, idLength int) (*domain.GitStatus, error) {
	if idLength <= 0 || idLength > 40 {
		idLength = defaultHashLen
	}
	st := &domain.GitStatus{}

	head, err := repo.Head()
	if err == plumbing.ErrReferenceNotFound {
		// Unborn HEAD, fresh repository with no commits yet.
		return st, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	st.HeadShort = head.Hash().String()[:idLength]
	if head.Name().IsBranch() {
		st.Branch = head.Name().Short()
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree status: %w", err)
	}
	foldStatus(status, st)

	if st.Branch != "" {
		if err := countAheadBehind(repo, st.Branch, head.Hash(), st); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// foldStatus reduces go-git's per-file status into the counters the
// prompt displays. A path in conflict counts only as conflicted.
func foldStatus(status git.Status, st *domain.GitStatus) {
	for _, fs := range status {
		if fs.Staging == git.UpdatedButUnmerged || fs.Worktree == git.UpdatedButUnmerged {
			st.Conflicted++
			continue
		}
		if fs.Worktree == git.Untracked {
			st.Untracked++
			continue
		}
		switch fs.Staging {
		case git.Added, git.Modified, git.Deleted, git.Renamed, git.Copied:
			st.Staged++
		}
		switch fs.Worktree {
		case git.Modified, git.Renamed, git.Copied:
			st.Modified++
		case git.Deleted:
			st.Deleted++
		}
	}
}

// countAheadBehind compares the branch head against its configured
// remote-tracking ref. Branches with no upstream report zero both ways.
func countAheadBehind(repo *git.Repository, branch string, local plumbing.Hash, st *domain.GitStatus) error {
	cfg, err := repo.Branch(branch)
	if err == git.ErrBranchNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read branch config for %s: %w", branch, err)
	}
	if cfg.Remote == "" || cfg.Merge == "" {
		return nil
	}

	trackName := plumbing.NewRemoteReferenceName(cfg.Remote, strings.TrimPrefix(string(cfg.Merge), "refs/heads/"))
	trackRef, err := repo.Reference(trackName, true)
	if err == plumbing.ErrReferenceNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to resolve tracking ref %s: %w", trackName, err)
	}

	localCommit, err := repo.CommitObject(local)
	if err != nil {
		return fmt.Errorf("failed to read local head commit: %w", err)
	}
	remoteCommit, err := repo.CommitObject(trackRef.Hash())
	if err != nil {
		return fmt.Errorf("failed to read remote head commit: %w", err)
	}

	bases, err := localCommit.MergeBase(remoteCommit)
	if err != nil {
		return fmt.Errorf("failed to compute merge base: %w", err)
	}
	ignore := make([]plumbing.Hash, 0, len(bases))
	for _, b := range bases {
		ignore = append(ignore, b.Hash)
	}

	st.Ahead, err = countReachable(localCommit, ignore)
	if err != nil {
		return err
	}
	st.Behind, err = countReachable(remoteCommit, ignore)
	return err
}

// countReachable counts commits reachable from start without crossing
// any of the ignored commits.
func countReachable(start *object.Commit, ignore []plumbing.Hash) (int, error) {
	n := 0
	iter := object.NewCommitPreorderIter(start, nil, ignore)
	err := iter.ForEach(func(*object.Commit) error {
		n++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to walk commit history: %w", err)
	}
	return n, nil
}
