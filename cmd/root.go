// Package cmd provides the CLI commands for jj-starship.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prasant081/jj-starship/internal/config"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	cwd           string
	truncateName  int
	idLength      int
	ancestorDepth int
	bookmarkLimit int
	stripPrefixes []string
	jjSymbol      string
	gitSymbol     string
	noSymbol      bool
	noColor       bool
	noPrefixColor bool
	noJJPrefix    bool
	noJJName      bool
	noJJID        bool
	noJJStatus    bool
	noGitPrefix   bool
	noGitName     bool
	noGitID       bool
	noGitStatus   bool

	appConfig *config.Config
)

// errSilent marks failures that must not write to the shell. A prompt
// helper that prints errors corrupts every prompt line, so the command
// exits non-zero with no output instead.
var errSilent = errors.New("silent failure")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jj-starship",
	Short: "jj-starship - a jj and git status segment for shell prompts",
	Long: `jj-starship prints a single-line status segment for the repository
containing the current directory: the working-copy change id and nearby
bookmarks for jj, or the branch and file counts for git.

Run "jj-starship" with no arguments to print the segment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	RunE: runPrompt,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cwd, "cwd", "", "Directory to inspect (default: current directory)")
	pf.IntVar(&truncateName, "truncate-name", 0, "Maximum bookmark name length, 0 for unlimited")
	pf.IntVar(&idLength, "id-length", 0, "Number of change-id characters to show")
	pf.IntVar(&ancestorDepth, "ancestor-depth", 0, "Maximum ancestor distance for the bookmark search")
	pf.IntVar(&bookmarkLimit, "bookmark-limit", 0, "Maximum bookmarks to show, 0 for all")
	pf.StringSliceVar(&stripPrefixes, "strip-bookmark-prefix", nil, "Prefixes to strip from bookmark names")
	pf.StringVar(&jjSymbol, "jj-symbol", "", "Symbol shown before the jj segment")
	pf.StringVar(&gitSymbol, "git-symbol", "", "Symbol shown before the git segment")
	pf.BoolVar(&noSymbol, "no-symbol", false, "Hide the repository symbol")
	pf.BoolVar(&noColor, "no-color", false, "Disable all color output")
	pf.BoolVar(&noPrefixColor, "no-prefix-color", false, "Disable the change-id prefix highlight")
	pf.BoolVar(&noJJPrefix, "no-jj-prefix", false, "Hide the leading \"on\" in jj repos")
	pf.BoolVar(&noJJName, "no-jj-name", false, "Hide bookmark names in jj repos")
	pf.BoolVar(&noJJID, "no-jj-id", false, "Hide the change id in jj repos")
	pf.BoolVar(&noJJStatus, "no-jj-status", false, "Hide the status characters in jj repos")
	pf.BoolVar(&noGitPrefix, "no-git-prefix", false, "Hide the leading \"on\" in git repos")
	pf.BoolVar(&noGitName, "no-git-name", false, "Hide the branch name in git repos")
	pf.BoolVar(&noGitID, "no-git-id", false, "Hide the commit hash in git repos")
	pf.BoolVar(&noGitStatus, "no-git-status", false, "Hide the status characters in git repos")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("jj-starship\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the effective configuration: file values first,
// then any flags the user set on this invocation.
func loadConfig(cmd *cobra.Command) error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	f := cmd.Flags()
	if f.Changed("truncate-name") {
		appConfig.TruncateName = truncateName
	}
	if f.Changed("id-length") {
		appConfig.IDLength = idLength
	}
	if f.Changed("ancestor-depth") {
		appConfig.AncestorDepth = ancestorDepth
	}
	if f.Changed("bookmark-limit") {
		appConfig.BookmarkLimit = bookmarkLimit
	}
	if f.Changed("strip-bookmark-prefix") {
		appConfig.StripBookmarkPrefix = stripPrefixes
	}
	if f.Changed("jj-symbol") {
		appConfig.JJ.Symbol = jjSymbol
	}
	if f.Changed("git-symbol") {
		appConfig.Git.Symbol = gitSymbol
	}
	if noSymbol {
		appConfig.JJ.Symbol = ""
		appConfig.Git.Symbol = ""
	}

	// NO_COLOR is respected like an implicit --no-color; stdout tty state
	// is not consulted because prompt engines always pipe the output.
	if noColor || os.Getenv("NO_COLOR") != "" {
		appConfig.JJ.ShowColor = false
		appConfig.Git.ShowColor = false
	}
	if noPrefixColor {
		appConfig.JJ.ShowPrefixColor = false
		appConfig.Git.ShowPrefixColor = false
	}
	applyHideFlags(&appConfig.JJ, noJJPrefix, noJJName, noJJID, noJJStatus)
	applyHideFlags(&appConfig.Git, noGitPrefix, noGitName, noGitID, noGitStatus)
	return nil
}

func applyHideFlags(seg *config.SegmentConfig, prefix, name, id, status bool) {
	if prefix {
		seg.ShowPrefix = false
	}
	if name {
		seg.ShowName = false
	}
	if id {
		seg.ShowID = false
	}
	if status {
		seg.ShowStatus = false
	}
}

// workDir returns the directory to inspect.
func workDir() (string, error) {
	if cwd != "" {
		return cwd, nil
	}
	return os.Getwd()
}
