// Package ports defines the interfaces between the status-collection core
// and the VCS backends, following the driven-port style used across the
// codebase: the core depends only on these read contracts, never on a
// concrete repository implementation.
package ports

import (
	"github.com/prasant081/jj-starship/internal/domain"
)

// RemoteBookmark is one remote-tracking bookmark reference.
type RemoteBookmark struct {
	Name   string
	Remote string
	Target domain.RefTarget
}

// CommitGraphReader is a read-only view of the commit graph and its refs.
// This is a driven port (implemented by adapters). All lookups are local
// and bounded; implementations must not mutate repository state.
type CommitGraphReader interface {
	// Parents returns the parent commit ids of the given commit.
	Parents(id domain.CommitID) ([]domain.CommitID, error)

	// BookmarksAt returns the names of local bookmarks attached exactly
	// to the given commit.
	BookmarksAt(id domain.CommitID) ([]string, error)

	// LocalBookmark resolves a local bookmark by name. A bookmark that
	// does not exist resolves to an absent target, not an error.
	LocalBookmark(name string) (domain.RefTarget, error)

	// RemoteBookmarks returns every remote-tracking bookmark, including
	// those on the pass-through "git" remote.
	RemoteBookmarks() ([]RemoteBookmark, error)

	// Tags returns the resolved target of every tag.
	Tags() ([]domain.RefTarget, error)
}
