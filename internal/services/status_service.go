package services

import (
	"fmt"

	"github.com/prasant081/jj-starship/internal/domain"
	"github.com/prasant081/jj-starship/internal/ports"
)

// CollectOptions bounds a single status collection.
type CollectOptions struct {
	// IDLength is the display length for the change id.
	IDLength int
	// AncestorDepth is the maximum parent-hop distance for the bookmark
	// search; 0 disables it.
	AncestorDepth int
}

// StatusService assembles a status snapshot from one read-only view of
// the repository. It holds no state across invocations.
type StatusService struct {
	reader ports.CommitGraphReader
}

// NewStatusService creates a status service over the given graph reader.
func NewStatusService(reader ports.CommitGraphReader) *StatusService {
	return &StatusService{reader: reader}
}

// Collect combines the working-copy attributes with direct and ancestor
// bookmark discoveries into one immutable snapshot. Any reader failure
// aborts the whole collection; partial snapshots are never returned.
func (s *StatusService) Collect(wc domain.WorkingCopy, opts CollectOptions) (*domain.Snapshot, error) {
	changeID := wc.ChangeID
	if opts.IDLength > 0 && len(changeID) > opts.IDLength {
		changeID = changeID[:opts.IDLength]
	}
	prefixLen := wc.ChangeIDPrefixLen
	if prefixLen > len(changeID) {
		prefixLen = len(changeID)
	}

	// Direct bookmarks (distance 0) are looked up on the working-copy
	// commit itself, independent of the ancestor search, and always
	// precede ancestor results.
	direct, err := s.reader.BookmarksAt(wc.CommitID)
	if err != nil {
		return nil, fmt.Errorf("bookmarks at working copy: %w", err)
	}
	bookmarks := make([]domain.Bookmark, 0, len(direct))
	for _, name := range direct {
		bookmarks = append(bookmarks, domain.Bookmark{Name: name, Distance: 0})
	}

	if opts.AncestorDepth > 0 {
		immutable, err := ImmutableHeads(s.reader)
		if err != nil {
			return nil, err
		}
		ancestors, err := AncestorBookmarks(s.reader, wc.ParentIDs, opts.AncestorDepth, immutable)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, ancestors...)
	}

	hasRemote, isSynced, err := s.remoteSync(bookmarks)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		ChangeID:          changeID,
		ChangeIDPrefixLen: prefixLen,
		Bookmarks:         bookmarks,
		EmptyDescription:  wc.EmptyDescription,
		HasConflict:       wc.HasConflict,
		IsDivergent:       wc.IsDivergent,
		HasRemote:         hasRemote,
		IsSynced:          isSynced,
	}, nil
}

// remoteSync computes the push-state flags from the first (closest)
// bookmark only. In stacked-change workflows the closest bookmark is the
// one a push would act on; sync state of farther bookmarks is ignored on
// purpose. No bookmarks means nothing is tracked, which counts as synced.
func (s *StatusService) remoteSync(bookmarks []domain.Bookmark) (hasRemote, isSynced bool, err error) {
	if len(bookmarks) == 0 {
		return false, true, nil
	}
	name := bookmarks[0].Name

	local, err := s.reader.LocalBookmark(name)
	if err != nil {
		return false, false, fmt.Errorf("resolve local bookmark %q: %w", name, err)
	}

	remotes, err := s.reader.RemoteBookmarks()
	if err != nil {
		return false, false, fmt.Errorf("list remote bookmarks: %w", err)
	}
	for _, rb := range remotes {
		if rb.Name != name || rb.Remote == passThroughRemote {
			continue
		}
		hasRemote = true
		// Full target identity, not just the commit id: an absent or
		// conflicted target never equals a normal one.
		if rb.Target == local {
			isSynced = true
			break
		}
	}

	if !hasRemote {
		isSynced = true
	}
	return hasRemote, isSynced, nil
}
