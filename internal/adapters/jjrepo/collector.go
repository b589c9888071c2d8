// Package jjrepo collects status snapshots from jj repositories. The
// commit graph and refs come from the git store that backs every jj
// repository; only the working-copy metadata (change id, conflict and
// divergence state) requires invoking jj itself.
package jjrepo

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/prasant081/jj-starship/internal/adapters/gitrepo"
	"github.com/prasant081/jj-starship/internal/domain"
	"github.com/prasant081/jj-starship/internal/services"
)

// fieldSep separates template fields in the jj log output. A control
// character cannot appear in change ids, commit ids or flag values.
const fieldSep = "\x1e"

// wcTemplate renders the working-copy fields the snapshot needs in a
// single jj invocation.
var wcTemplate = strings.Join([]string{
	"change_id",
	"change_id.shortest()",
	"commit_id",
	`parents.map(|c| c.commit_id()).join(" ")`,
	`if(description, "n", "y")`,
	`if(conflict, "y", "n")`,
	`if(divergent, "y", "n")`,
}, ` ++ "`+fieldSep+`" ++ `)

// StorePath returns the path of the git store backing the jj repository
// at root. Colocated repositories share the worktree's own .git store.
func StorePath(root string, colocated bool) string {
	if colocated {
		return root
	}
	return filepath.Join(root, ".jj", "repo", "store", "git")
}

// ReadWorkingCopy queries jj for the working-copy commit's metadata.
func ReadWorkingCopy(ctx context.Context, root string) (*domain.WorkingCopy, error) {
	cmd := exec.CommandContext(ctx, "jj", "log", "-r", "@", "--no-graph",
		"--ignore-working-copy", "-T", wcTemplate)
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to query jj working copy: %w", err)
	}
	return parseWorkingCopy(string(out))
}

// parseWorkingCopy decodes one record of wcTemplate output.
func parseWorkingCopy(out string) (*domain.WorkingCopy, error) {
	fields := strings.Split(strings.TrimRight(out, "\n"), fieldSep)
	if len(fields) != 7 {
		return nil, fmt.Errorf("malformed jj log output: got %d fields, want 7", len(fields))
	}

	parentIDs := make([]domain.CommitID, 0, 1)
	for _, p := range strings.Fields(fields[3]) {
		parentIDs = append(parentIDs, domain.CommitID(p))
	}

	return &domain.WorkingCopy{
		ChangeID:          fields[0],
		ChangeIDPrefixLen: utf8.RuneCountInString(fields[1]),
		CommitID:          domain.CommitID(fields[2]),
		ParentIDs:         parentIDs,
		EmptyDescription:  fields[4] == "y",
		HasConflict:       fields[5] == "y",
		IsDivergent:       fields[6] == "y",
	}, nil
}

// Collect builds the full status snapshot for the jj repository at root.
func Collect(ctx context.Context, root string, colocated bool, opts services.CollectOptions) (*domain.Snapshot, error) {
	reader, err := gitrepo.NewReader(StorePath(root, colocated))
	if err != nil {
		return nil, err
	}
	wc, err := ReadWorkingCopy(ctx, root)
	if err != nil {
		return nil, err
	}
	return services.NewStatusService(reader).Collect(*wc, opts)
}
