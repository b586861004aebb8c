package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pkgpulse/pkg/config"
	"github.com/matzehuels/pkgpulse/pkg/errors"
	"github.com/matzehuels/pkgpulse/pkg/inspect"
	"github.com/matzehuels/pkgpulse/pkg/integrations"
	"github.com/matzehuels/pkgpulse/pkg/integrations/github"
	"github.com/matzehuels/pkgpulse/pkg/integrations/npm"
)

// inspectOptions holds the flags shared by the root and inspect commands.
type inspectOptions struct {
	configPath  string
	jsonOut     bool
	failFast    bool
	concurrency int
	timeout     time.Duration
}

func (o *inspectOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "path to a TOML config file")
	flags.BoolVar(&o.jsonOut, "json", false, "print records as a JSON array")
	flags.BoolVar(&o.failFast, "fail-fast", false, "print nothing if any package fails")
	flags.IntVar(&o.concurrency, "concurrency", 0, "maximum packages inspected at once (0 = all)")
	flags.DurationVar(&o.timeout, "timeout", config.DefaultTimeout, "HTTP request timeout")
}

// config loads the config file, if any, and applies explicitly set flags.
func (o *inspectOptions) config(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("fail-fast") {
		cfg.FailFast = o.failFast
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}
	if flags.Changed("timeout") {
		cfg.Timeout = config.Duration{Duration: o.timeout}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// inspectCommand creates the inspect command, an explicit form of the root command.
func (c *CLI) inspectCommand(opts *inspectOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <package>...",
		Short: "Report health metrics for npm packages",
		Long: `Inspect looks up each package in the npm registry, its weekly download count
and, when the package names a GitHub repository, the repository's stars,
open issues and last update time.

Packages are inspected in parallel. Packages that fail are listed on stderr
and the command exits non-zero; the others are still printed unless
--fail-fast is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, opts, args)
		},
	}
}

func (c *CLI) runInspect(cmd *cobra.Command, opts *inspectOptions, names []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := opts.config(cmd)
	if err != nil {
		return err
	}

	hc := integrations.NewHTTPClient(cfg.Timeout.Duration)
	registry := npm.NewClient(hc, cfg.RegistryURL, cfg.DownloadsURL)
	insp := inspect.New(registry, registry, github.NewClient(hc, cfg.GitHubAPIURL, cfg.RepoHost),
		inspect.WithLogger(logger),
		inspect.WithConcurrency(cfg.Concurrency),
	)

	logger.Debug("inspecting", "packages", len(names), "concurrency", cfg.Concurrency, "fail_fast", cfg.FailFast)
	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, stderr, fmt.Sprintf("Inspecting %d package(s)...", len(names)))
	spin.Start()

	if cfg.FailFast {
		records, err := insp.InspectAllStrict(ctx, names)
		spin.Stop()
		if err != nil {
			printError(stderr, "Error inspecting packages: %s", errors.UserMessage(err))
			return ErrReported
		}
		prog.done(fmt.Sprintf("Inspected %d package(s)", len(records)))
		return c.printRecords(stdout, records, opts.jsonOut)
	}

	results := insp.InspectAll(ctx, names)
	spin.Stop()
	records := inspect.Records(results)
	prog.done(fmt.Sprintf("Inspected %d of %d package(s)", len(records), len(names)))

	if err := c.printRecords(stdout, records, opts.jsonOut); err != nil {
		return err
	}

	failed := inspect.Failed(results)
	for _, r := range failed {
		printError(stderr, "%s: %s", r.Name, errors.UserMessage(r.Err))
	}
	if len(failed) > 0 {
		return ErrReported
	}
	return nil
}

func (c *CLI) printRecords(w io.Writer, records []*inspect.Record, jsonOut bool) error {
	for _, rec := range records {
		for _, issue := range rec.Issues {
			c.Logger.Warn("using placeholder values", "package", rec.Name, "source", issue.Source, "err", issue.Err)
		}
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	if len(records) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, renderTable(records))
	return err
}
