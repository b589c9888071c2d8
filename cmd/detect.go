package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prasant081/jj-starship/internal/detect"
)

// detectCmd reports which repository type encloses the directory. Handy
// for shell configs that only want to run the prompt inside repos.
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Report the repository type containing the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := workDir()
		if err != nil {
			return err
		}
		res := detect.Detect(dir)
		if res.Type == detect.RepoNone {
			return errSilent
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", res.Type, res.Root)
		return nil
	},
}
