// Package render turns a status snapshot into the final prompt fragment.
// Everything in here is a pure function of its inputs: no I/O, no clock,
// no terminal queries. Rendering the same snapshot and config twice must
// produce identical bytes.
package render

import (
	"fmt"
	"strings"

	"github.com/prasant081/jj-starship/internal/config"
	"github.com/prasant081/jj-starship/internal/domain"
)

// segment wraps text in a color and the universal reset, or returns it
// unchanged when coloring is off.
func segment(text, color string, showColor bool) string {
	if !showColor {
		return text
	}
	return color + text + Reset
}

// changeID renders the identity split at its unique-prefix length: the
// prefix in an accent color, the remainder dimmed. Both halves are reset
// independently so the fragment stays safe to embed mid-prompt.
func changeID(id string, prefixLen int) string {
	if prefixLen > len(id) {
		prefixLen = len(id)
	}
	prefix := id[:prefixLen]
	rest := id[prefixLen:]
	if rest == "" {
		return BrightMagenta + prefix + Reset
	}
	return BrightMagenta + prefix + Reset + BrightBlack + rest + Reset
}

// JJ formats a jj-model snapshot as a prompt fragment.
// Pattern: on {symbol}{change_id} ({bookmarks}) [{status}]
func JJ(snap *domain.Snapshot, cfg *config.Config) string {
	var out strings.Builder
	display := cfg.JJ

	if display.ShowPrefix {
		out.WriteString("on ")
		out.WriteString(segment(display.Symbol, Blue, display.ShowColor))
	}

	if display.ShowID && snap.ChangeID != "" {
		if display.ShowColor && display.ShowPrefixColor {
			out.WriteString(changeID(snap.ChangeID, snap.ChangeIDPrefixLen))
		} else {
			out.WriteString(segment(snap.ChangeID, Purple, display.ShowColor))
		}
	}

	if display.ShowName && len(snap.Bookmarks) > 0 {
		if out.Len() > 0 {
			out.WriteByte(' ')
		}

		total := len(snap.Bookmarks)
		shown := total
		if cfg.BookmarkLimit > 0 && cfg.BookmarkLimit < total {
			shown = cfg.BookmarkLimit
		}

		names := make([]string, 0, shown+1)
		for _, bm := range snap.Bookmarks[:shown] {
			name := cfg.Truncate(cfg.StripPrefix(bm.Name))
			if bm.Distance > 0 {
				name = fmt.Sprintf("%s~%d", name, bm.Distance)
			}
			names = append(names, name)
		}
		if hidden := total - shown; hidden > 0 {
			names = append(names, fmt.Sprintf("…+%d", hidden))
		}

		out.WriteString(segment("("+strings.Join(names, ", ")+")", Green, display.ShowColor))
	}

	if display.ShowStatus {
		// Fixed priority order: conflict, divergence, empty description,
		// needs-push. One character per condition at most.
		var status strings.Builder
		if snap.HasConflict {
			status.WriteByte('!')
		}
		if snap.IsDivergent {
			status.WriteRune('⇔')
		}
		if snap.EmptyDescription {
			status.WriteByte('?')
		}
		if snap.HasRemote && !snap.IsSynced {
			status.WriteRune('⇡')
		}

		if status.Len() > 0 {
			if out.Len() > 0 {
				out.WriteByte(' ')
			}
			out.WriteString(segment("["+status.String()+"]", Red, display.ShowColor))
		}
	}

	return out.String()
}

// Git formats a git-model status as a prompt fragment.
// Pattern: on {symbol}{name} ({id}) [{status}]
func Git(st *domain.GitStatus, cfg *config.Config) string {
	var out strings.Builder
	display := cfg.Git

	if display.ShowPrefix {
		out.WriteString("on ")
		out.WriteString(segment(display.Symbol, Blue, display.ShowColor))
	}

	if display.ShowName {
		name := st.Branch
		if name == "" {
			name = "HEAD"
		}
		out.WriteString(segment(cfg.Truncate(name), Purple, display.ShowColor))
	}

	if display.ShowID && st.HeadShort != "" {
		if out.Len() > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(segment("("+st.HeadShort+")", Green, display.ShowColor))
	}

	if display.ShowStatus {
		var status strings.Builder
		if st.Conflicted > 0 {
			status.WriteByte('=')
		}
		if st.Staged > 0 {
			status.WriteByte('+')
		}
		if st.Modified > 0 {
			status.WriteByte('!')
		}
		if st.Untracked > 0 {
			status.WriteByte('?')
		}
		if st.Deleted > 0 {
			status.WriteRune('✘')
		}
		if st.Ahead > 0 {
			fmt.Fprintf(&status, "⇡%d", st.Ahead)
		}
		if st.Behind > 0 {
			fmt.Fprintf(&status, "⇣%d", st.Behind)
		}

		if status.Len() > 0 {
			if out.Len() > 0 {
				out.WriteByte(' ')
			}
			out.WriteString(segment("["+status.String()+"]", Red, display.ShowColor))
		}
	}

	return out.String()
}
