// Package domain contains the core value types for working-copy status:
// commit identifiers, bookmark discoveries, and the assembled status
// snapshot that the renderer consumes.
package domain

// CommitID is an opaque commit identifier. It carries no ordering beyond
// equality and is usable as a map key.
type CommitID string

// RefTarget is the resolved target of a bookmark or tag. A target can be
// absent (the ref exists only on a remote, or was deleted locally) or
// conflicted (the jj model allows unresolved ref conflicts). Two targets
// compare equal only when all three fields match.
type RefTarget struct {
	ID         CommitID
	Absent     bool
	Conflicted bool
}

// IsNormal reports whether the target resolves to exactly one commit.
func (t RefTarget) IsNormal() bool {
	return !t.Absent && !t.Conflicted
}

// Bookmark is a named ref found at some ancestor distance from the
// working-copy commit. Distance 0 means it is attached directly.
type Bookmark struct {
	Name     string
	Distance int
}

// WorkingCopy holds the attributes read directly off the working-copy
// commit, before any bookmark search runs.
type WorkingCopy struct {
	CommitID  CommitID
	ParentIDs []CommitID
	// ChangeID is the full change identifier in its canonical string form.
	ChangeID string
	// ChangeIDPrefixLen is the shortest number of leading characters that
	// uniquely identifies this change within the repository.
	ChangeIDPrefixLen int
	EmptyDescription  bool
	HasConflict       bool
	IsDivergent       bool
}

// Snapshot is the assembled status for one prompt invocation.
//
// The boolean fields are independent, orthogonal flags - any combination
// can hold at once, so they are deliberately not an enum.
type Snapshot struct {
	// ChangeID is the display form, already truncated to the configured
	// length. ChangeIDPrefixLen is capped at len(ChangeID).
	ChangeID          string
	ChangeIDPrefixLen int
	// Bookmarks is sorted by non-decreasing distance; direct bookmarks
	// (distance 0) come first. Names are unique within the list.
	Bookmarks []Bookmark

	EmptyDescription bool
	HasConflict      bool
	IsDivergent      bool
	// HasRemote and IsSynced describe only the first (closest) bookmark.
	// An empty bookmark list is vacuously synced.
	HasRemote bool
	IsSynced  bool
}
