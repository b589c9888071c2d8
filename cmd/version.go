package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var versionTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("5"))

// versionCmd prints build information. Unlike the prompt output this is
// meant for humans, so styling follows the terminal.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		title := "jj-starship"
		if isatty.IsTerminal(os.Stdout.Fd()) {
			title = versionTitleStyle.Render(title)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", title, Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", GitCommit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", BuildDate)
	},
}
