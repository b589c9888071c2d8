package domain

// GitStatus holds the file-level and upstream status of a git working copy.
// Counts are absolute; the renderer only cares whether each is non-zero,
// except Ahead/Behind which are printed with their value.
type GitStatus struct {
	// Branch is the short branch name, or empty when HEAD is detached.
	Branch    string
	HeadShort string

	Staged     int
	Modified   int
	Untracked  int
	Deleted    int
	Conflicted int

	Ahead  int
	Behind int
}
