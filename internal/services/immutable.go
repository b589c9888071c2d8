// Package services implements the status-collection core: the immutable
// head index, the bounded ancestor bookmark search, and the snapshot
// assembler that combines both with the working-copy attributes.
package services

import (
	"fmt"

	"github.com/prasant081/jj-starship/internal/domain"
	"github.com/prasant081/jj-starship/internal/ports"
)

// passThroughRemote is the special remote jj uses for git interop.
// It is not a real remote and never counts for trunk or sync checks.
const passThroughRemote = "git"

// isTrunkRef reports whether a remote bookmark names trunk. The match is
// fixed and case-sensitive, mirroring jj's builtin immutable_heads().
func isTrunkRef(remote, name string) bool {
	switch remote {
	case "origin", "upstream":
	default:
		return false
	}
	switch name {
	case "main", "master", "trunk":
		return true
	}
	return false
}

// ImmutableHeads computes the set of commits the ancestor search must not
// traverse past: trunk bookmarks on well-known remotes, untracked remote
// bookmarks (no local counterpart), and tag targets. A single linear pass
// over the ref collections, no graph walking.
func ImmutableHeads(reader ports.CommitGraphReader) (map[domain.CommitID]struct{}, error) {
	immutable := make(map[domain.CommitID]struct{})

	remotes, err := reader.RemoteBookmarks()
	if err != nil {
		return nil, fmt.Errorf("list remote bookmarks: %w", err)
	}
	for _, rb := range remotes {
		if rb.Remote == passThroughRemote {
			continue
		}

		trunk := isTrunkRef(rb.Remote, rb.Name)

		untracked := false
		if !trunk {
			local, err := reader.LocalBookmark(rb.Name)
			if err != nil {
				return nil, fmt.Errorf("resolve local bookmark %q: %w", rb.Name, err)
			}
			untracked = local.Absent
		}

		if (trunk || untracked) && rb.Target.IsNormal() {
			immutable[rb.Target.ID] = struct{}{}
		}
	}

	tags, err := reader.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	for _, target := range tags {
		if target.IsNormal() {
			immutable[target.ID] = struct{}{}
		}
	}

	return immutable, nil
}
