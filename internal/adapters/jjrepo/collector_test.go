package jjrepo

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/prasant081/jj-starship/internal/domain"
)

func TestStorePath(t *testing.T) {
	tests := []struct {
		name      string
		colocated bool
		want      string
	}{
		{"colocated uses the worktree store", true, "repo"},
		{"separate store lives under .jj", false, filepath.Join("repo", ".jj", "repo", "store", "git")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StorePath("repo", tt.colocated); got != tt.want {
				t.Errorf("StorePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func record(fields ...string) string {
	return strings.Join(fields, fieldSep) + "\n"
}

func TestParseWorkingCopy(t *testing.T) {
	out := record(
		"yzxvkwpmqrstuvwxyzqr",
		"yzxv",
		"aaaa1111",
		"bbbb2222 cccc3333",
		"y",
		"n",
		"n",
	)
	wc, err := parseWorkingCopy(out)
	if err != nil {
		t.Fatalf("parseWorkingCopy() error = %v", err)
	}
	if wc.ChangeID != "yzxvkwpmqrstuvwxyzqr" {
		t.Errorf("ChangeID = %q", wc.ChangeID)
	}
	if wc.ChangeIDPrefixLen != 4 {
		t.Errorf("ChangeIDPrefixLen = %d, want 4", wc.ChangeIDPrefixLen)
	}
	if wc.CommitID != domain.CommitID("aaaa1111") {
		t.Errorf("CommitID = %q", wc.CommitID)
	}
	want := []domain.CommitID{"bbbb2222", "cccc3333"}
	if len(wc.ParentIDs) != 2 || wc.ParentIDs[0] != want[0] || wc.ParentIDs[1] != want[1] {
		t.Errorf("ParentIDs = %v, want %v", wc.ParentIDs, want)
	}
	if !wc.EmptyDescription {
		t.Error("EmptyDescription = false, want true")
	}
	if wc.HasConflict || wc.IsDivergent {
		t.Errorf("flags = conflict %v, divergent %v, want both false", wc.HasConflict, wc.IsDivergent)
	}
}

func TestParseWorkingCopy_Flags(t *testing.T) {
	out := record("qq", "q", "aaaa", "bbbb", "n", "y", "y")
	wc, err := parseWorkingCopy(out)
	if err != nil {
		t.Fatalf("parseWorkingCopy() error = %v", err)
	}
	if wc.EmptyDescription {
		t.Error("EmptyDescription = true, want false")
	}
	if !wc.HasConflict {
		t.Error("HasConflict = false, want true")
	}
	if !wc.IsDivergent {
		t.Error("IsDivergent = false, want true")
	}
}

func TestParseWorkingCopy_NoParents(t *testing.T) {
	out := record("qq", "q", "aaaa", "", "y", "n", "n")
	wc, err := parseWorkingCopy(out)
	if err != nil {
		t.Fatalf("parseWorkingCopy() error = %v", err)
	}
	if len(wc.ParentIDs) != 0 {
		t.Errorf("ParentIDs = %v, want none", wc.ParentIDs)
	}
}

func TestParseWorkingCopy_Malformed(t *testing.T) {
	if _, err := parseWorkingCopy("not a record\n"); err == nil {
		t.Error("parseWorkingCopy() accepted malformed output")
	}
}
