package cmd

import (
	"fmt"

	"github.com/bethropolis/dir-tree/internal/app"
	"github.com/bethropolis/dir-tree/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCommand creates and returns the root cobra command for dir-tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(afero.NewOsFs())
}

func newRootCommand(fsys afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir-tree <path>",
		Short: "Print a directory as an indented tree",
		Long: `dir-tree walks a directory recursively and prints its contents as an
indented tree, like the classic tree utility.

Hidden entries are skipped unless --all is given, and entries matched by the
.gitignore file at the root are left out unless --show-gitignore is given.
Patterns support '*' and '?' and are matched against entry names; a trailing
'/' restricts a pattern to directories.

Defaults can be kept in a YAML file (see --config).`,
		Version: config.Version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, fsys, args[0])
			if err != nil {
				return err
			}
			return app.New(cfg).
				WithFs(fsys).
				WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()).
				Run()
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.BoolP("all", "a", false, "Show hidden files and directories")
	flags.Int("level", 0, "Limit the depth of the directory tree to display (1 = root only)")
	flags.BoolP("directories-only", "d", false, "Show only directories, not files")
	flags.Bool("no-color", false, "Disable colorized output")
	flags.Bool("ascii", false, "Use ASCII characters only for tree display")
	flags.Bool("no-sorting", false, "Disable sorting of directory entries")
	flags.Bool("show-gitignore", false, "Show entries matched by the root .gitignore")
	flags.StringSlice("ignore", nil, "Extra ignore patterns (comma-separated or repeated, gitignore-like syntax)")
	flags.StringP("output", "o", "", "Write the tree to a file instead of stdout")
	flags.Bool("report", false, "Print the number of directories and files after the tree")
	flags.Bool("show-skipped", false, "List skipped entries and reasons on stderr at the end")
	flags.BoolP("verbose", "v", false, "Enable verbose logging on stderr")
	flags.String("log-level", "", "Set the logging level (debug, info, warn, error, none)")
	flags.String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/dir-tree/config.yaml)")

	return cmd
}

// buildConfig loads the config file and lays the explicitly set flags over it
func buildConfig(cmd *cobra.Command, fsys afero.Fs, path string) (*config.Config, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(fsys, configPath)
	if err != nil {
		return nil, err
	}

	cfg.Path = path

	if flags.Changed("level") {
		level, _ := flags.GetInt("level")
		if level < 1 {
			return nil, fmt.Errorf("--level must be a positive integer, got %d", level)
		}
		cfg.MaxDepth = level
	}
	if flags.Changed("all") {
		cfg.ShowHidden, _ = flags.GetBool("all")
	}
	if flags.Changed("directories-only") {
		cfg.DirsOnly, _ = flags.GetBool("directories-only")
	}
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		cfg.WithColor = !noColor
	}
	if flags.Changed("ascii") {
		cfg.ASCIIOnly, _ = flags.GetBool("ascii")
	}
	if flags.Changed("no-sorting") {
		noSorting, _ := flags.GetBool("no-sorting")
		cfg.Sort = !noSorting
	}
	// Inverted: showing ignored entries means not respecting the file
	if flags.Changed("show-gitignore") {
		show, _ := flags.GetBool("show-gitignore")
		cfg.RespectIgnoreFile = !show
	}
	if flags.Changed("ignore") {
		patterns, _ := flags.GetStringSlice("ignore")
		cfg.CustomIgnore = append(cfg.CustomIgnore, patterns...)
	}
	if flags.Changed("output") {
		cfg.OutputFile, _ = flags.GetString("output")
	}
	if flags.Changed("report") {
		cfg.Report, _ = flags.GetBool("report")
	}
	if flags.Changed("show-skipped") {
		cfg.ShowSkipped, _ = flags.GetBool("show-skipped")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	return cfg, cfg.Validate()
}
