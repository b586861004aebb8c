// Package cli implements the pkgpulse command-line interface.
package cli

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pkgpulse/pkg/buildinfo"
	"github.com/matzehuels/pkgpulse/pkg/observability"
)

const appName = "pkgpulse"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrReported is returned when a command has already printed its failure.
// Callers should exit non-zero without printing it again.
var ErrReported = errors.New("failure already reported")

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newRunLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself inspects the packages given as arguments.
func (c *CLI) RootCommand() *cobra.Command {
	opts := &inspectOptions{}

	root := &cobra.Command{
		Use:   appName + " [packages...]",
		Short: "pkgpulse reports health metrics for npm packages",
		Long: `pkgpulse looks up npm packages and reports their latest version, release time,
weekly downloads, deprecation status and GitHub repository statistics.`,
		Example: `  pkgpulse react lodash
  pkgpulse --json @babel/core
  pkgpulse inspect express --fail-fast`,
		Version:       buildinfo.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				hooks := &logHooks{logger: c.Logger}
				observability.SetInspectHooks(hooks)
				observability.SetHTTPHooks(hooks)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.runInspect(cmd, opts, args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	opts.register(root)

	root.AddCommand(c.inspectCommand(opts))
	root.AddCommand(c.completionCommand())

	return root
}
