package services

import (
	"fmt"
	"sort"

	"github.com/prasant081/jj-starship/internal/domain"
	"github.com/prasant081/jj-starship/internal/ports"
)

// queueEntry is one pending BFS visit.
type queueEntry struct {
	id    domain.CommitID
	depth int
}

// AncestorBookmarks walks the ancestry of the working-copy commit breadth
// first, collecting local bookmark names at increasing distance. The walk
// is seeded with the working copy's parents at depth 1 and bounded by
// maxDepth; maxDepth 0 disables the search entirely (no reader calls).
//
// The commit graph is a DAG, not a tree: merge ancestry reaches the same
// commit through multiple paths, so a visited set keyed by commit id is
// required for termination. Immutable heads are a hard barrier - bookmarks
// on the head itself are still recorded, but its parents are not enqueued.
//
// Each bookmark name keeps only its first (shortest) discovery distance.
// The result is sorted by ascending distance; same-distance entries keep
// their discovery order. Any reader failure aborts the whole search.
func AncestorBookmarks(
	reader ports.CommitGraphReader,
	parents []domain.CommitID,
	maxDepth int,
	immutable map[domain.CommitID]struct{},
) ([]domain.Bookmark, error) {
	if maxDepth <= 0 {
		return nil, nil
	}

	queue := make([]queueEntry, 0, len(parents))
	for _, id := range parents {
		queue = append(queue, queueEntry{id: id, depth: 1})
	}

	visited := make(map[domain.CommitID]struct{})
	found := make(map[string]int)
	var order []string

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		if entry.depth > maxDepth {
			continue
		}
		if _, seen := visited[entry.id]; seen {
			continue
		}
		visited[entry.id] = struct{}{}

		names, err := reader.BookmarksAt(entry.id)
		if err != nil {
			return nil, fmt.Errorf("bookmarks at %s: %w", entry.id, err)
		}
		for _, name := range names {
			if _, ok := found[name]; !ok {
				found[name] = entry.depth
				order = append(order, name)
			}
		}

		// Trunk, tags, and untracked remote positions mark released
		// history; nothing past them is worth showing in a prompt.
		if _, barrier := immutable[entry.id]; barrier {
			continue
		}

		if entry.depth < maxDepth {
			next, err := reader.Parents(entry.id)
			if err != nil {
				return nil, fmt.Errorf("parents of %s: %w", entry.id, err)
			}
			for _, id := range next {
				queue = append(queue, queueEntry{id: id, depth: entry.depth + 1})
			}
		}
	}

	bookmarks := make([]domain.Bookmark, 0, len(order))
	for _, name := range order {
		bookmarks = append(bookmarks, domain.Bookmark{Name: name, Distance: found[name]})
	}
	sort.SliceStable(bookmarks, func(i, j int) bool {
		return bookmarks[i].Distance < bookmarks[j].Distance
	})
	return bookmarks, nil
}
