package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prasant081/jj-starship/internal/adapters/gitrepo"
	"github.com/prasant081/jj-starship/internal/adapters/jjrepo"
	"github.com/prasant081/jj-starship/internal/detect"
	"github.com/prasant081/jj-starship/internal/render"
	"github.com/prasant081/jj-starship/internal/services"
)

// promptCmd prints the status segment. It is also the root command's
// default action so shell configs can invoke the binary bare.
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the status segment for the current directory",
	Args:  cobra.NoArgs,
	RunE:  runPrompt,
}

func runPrompt(cmd *cobra.Command, args []string) error {
	dir, err := workDir()
	if err != nil {
		return errSilent
	}

	res := detect.Detect(dir)

	var out string
	switch res.Type {
	case detect.RepoNone:
		return errSilent
	case detect.RepoGit:
		st, err := gitrepo.Collect(res.Root, appConfig.IDLength)
		if err != nil {
			return errSilent
		}
		out = render.Git(st, appConfig)
	default:
		opts := services.CollectOptions{
			IDLength:      appConfig.IDLength,
			AncestorDepth: appConfig.AncestorDepth,
		}
		snap, err := jjrepo.Collect(cmd.Context(), res.Root, res.Type == detect.RepoJJColocated, opts)
		if err != nil {
			return errSilent
		}
		out = render.JJ(snap, appConfig)
	}

	// No trailing newline: starship and friends splice the output into
	// the prompt line as-is.
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
