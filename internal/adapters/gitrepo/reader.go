// Package gitrepo adapts a git object store to the status-collection
// ports using go-git. It serves two roles: the status collector for
// plain git repositories, and the commit-graph reader over the git store
// that backs a jj repository.
package gitrepo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/prasant081/jj-starship/internal/domain"
	"github.com/prasant081/jj-starship/internal/ports"
)

// Reader is a ports.CommitGraphReader over a go-git repository. Refs are
// scanned once at construction; commit objects are read on demand during
// the ancestor search.
type Reader struct {
	repo *git.Repository

	branchesAt map[plumbing.Hash][]string
	branches   map[string]plumbing.Hash
	remotes    []ports.RemoteBookmark
	tags       []domain.RefTarget
}

var _ ports.CommitGraphReader = (*Reader)(nil)

// NewReader opens the repository at path (a worktree or a bare store)
// and indexes its refs.
func NewReader(path string) (*Reader, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open git store at %s: %w", path, err)
	}
	return NewReaderFromRepo(repo)
}

// NewReaderFromRepo indexes the refs of an already-open repository.
func NewReaderFromRepo(repo *git.Repository) (*Reader, error) {
	r := &Reader{
		repo:       repo,
		branchesAt: make(map[plumbing.Hash][]string),
		branches:   make(map[string]plumbing.Hash),
	}

	refs, err := repo.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			// Symbolic refs like refs/remotes/origin/HEAD carry no
			// position of their own.
			return nil
		}
		name := ref.Name()
		switch {
		case name.IsBranch():
			short := name.Short()
			r.branches[short] = ref.Hash()
			r.branchesAt[ref.Hash()] = append(r.branchesAt[ref.Hash()], short)
		case name.IsRemote():
			remote, bookmark, ok := splitRemoteRef(name)
			if ok {
				r.remotes = append(r.remotes, ports.RemoteBookmark{
					Name:   bookmark,
					Remote: remote,
					Target: domain.RefTarget{ID: domain.CommitID(ref.Hash().String())},
				})
			}
		case name.IsTag():
			target, err := r.resolveTag(ref.Hash())
			if err != nil {
				return err
			}
			r.tags = append(r.tags, target)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to index references: %w", err)
	}

	// Reference iteration order is storage-dependent; sort so the same
	// repository state always yields the same snapshot.
	for _, names := range r.branchesAt {
		sort.Strings(names)
	}
	sort.Slice(r.remotes, func(i, j int) bool {
		if r.remotes[i].Remote != r.remotes[j].Remote {
			return r.remotes[i].Remote < r.remotes[j].Remote
		}
		return r.remotes[i].Name < r.remotes[j].Name
	})

	return r, nil
}

// splitRemoteRef breaks refs/remotes/<remote>/<name...> into its remote
// and bookmark name. Bookmark names may themselves contain slashes.
func splitRemoteRef(name plumbing.ReferenceName) (remote, bookmark string, ok bool) {
	rest := strings.TrimPrefix(string(name), "refs/remotes/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// resolveTag peels an annotated tag down to its commit; lightweight tags
// already point at one.
func (r *Reader) resolveTag(hash plumbing.Hash) (domain.RefTarget, error) {
	tag, err := r.repo.TagObject(hash)
	if err == plumbing.ErrObjectNotFound {
		return domain.RefTarget{ID: domain.CommitID(hash.String())}, nil
	}
	if err != nil {
		return domain.RefTarget{}, fmt.Errorf("failed to read tag object: %w", err)
	}
	commit, err := tag.Commit()
	if err != nil {
		// Tags can point at trees or blobs; those are no barrier.
		return domain.RefTarget{Absent: true}, nil
	}
	return domain.RefTarget{ID: domain.CommitID(commit.Hash.String())}, nil
}

// Parents returns the parent commit ids of the given commit.
func (r *Reader) Parents(id domain.CommitID) ([]domain.CommitID, error) {
	commit, err := r.repo.CommitObject(plumbing.NewHash(string(id)))
	if err != nil {
		return nil, fmt.Errorf("failed to read commit %s: %w", id, err)
	}
	parents := make([]domain.CommitID, 0, len(commit.ParentHashes))
	for _, h := range commit.ParentHashes {
		parents = append(parents, domain.CommitID(h.String()))
	}
	return parents, nil
}

// BookmarksAt returns the local branch names attached to the commit.
func (r *Reader) BookmarksAt(id domain.CommitID) ([]string, error) {
	return r.branchesAt[plumbing.NewHash(string(id))], nil
}

// LocalBookmark resolves a local branch by name.
func (r *Reader) LocalBookmark(name string) (domain.RefTarget, error) {
	hash, ok := r.branches[name]
	if !ok {
		return domain.RefTarget{Absent: true}, nil
	}
	return domain.RefTarget{ID: domain.CommitID(hash.String())}, nil
}

// RemoteBookmarks returns every remote-tracking branch.
func (r *Reader) RemoteBookmarks() ([]ports.RemoteBookmark, error) {
	return r.remotes, nil
}

// Tags returns the resolved target of every tag.
func (r *Reader) Tags() ([]domain.RefTarget, error) {
	return r.tags, nil
}
