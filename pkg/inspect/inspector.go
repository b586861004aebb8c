package inspect

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pkgpulse/pkg/errors"
	"github.com/matzehuels/pkgpulse/pkg/integrations"
	"github.com/matzehuels/pkgpulse/pkg/integrations/github"
	"github.com/matzehuels/pkgpulse/pkg/integrations/npm"
	"github.com/matzehuels/pkgpulse/pkg/observability"
)

// MetadataFetcher retrieves the registry document for a package.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, pkg string) (*npm.Metadata, error)
}

// DownloadsFetcher retrieves the weekly download count for a package.
type DownloadsFetcher interface {
	FetchDownloads(ctx context.Context, pkg string) (*int64, error)
}

// RepoStatsFetcher retrieves repository statistics for a repository URL.
// Implementations should return [github.Unavailable] alongside any error.
type RepoStatsFetcher interface {
	StatsForURL(ctx context.Context, rawURL string) (github.RepoStats, error)
}

// Inspector builds a [Record] per package from three upstream lookups.
// It keeps no state between calls and is safe for concurrent use.
type Inspector struct {
	registry    MetadataFetcher
	downloads   DownloadsFetcher
	repos       RepoStatsFetcher
	logger      *log.Logger
	concurrency int
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithLogger sets the logger that receives per-package diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(i *Inspector) {
		if l != nil {
			i.logger = l
		}
	}
}

// WithConcurrency bounds how many packages a batch inspects at once.
// Zero or less means no bound.
func WithConcurrency(n int) Option {
	return func(i *Inspector) { i.concurrency = n }
}

// New creates an Inspector. With the clients from this module:
//
//	npmClient := npm.NewClient(hc, "", "")
//	inspect.New(npmClient, npmClient, github.NewClient(hc, "", ""))
func New(registry MetadataFetcher, downloads DownloadsFetcher, repos RepoStatsFetcher, opts ...Option) *Inspector {
	i := &Inspector{
		registry:  registry,
		downloads: downloads,
		repos:     repos,
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

type downloadsResult struct {
	count *int64
	err   error
}

// Inspect reports on one package. Metadata and download count are fetched
// concurrently; repository statistics are fetched after metadata, and only
// when it names a repository.
//
// Only a metadata failure is returned as an error. Download and repository
// failures leave placeholders in the record and are listed in Record.Issues.
func (i *Inspector) Inspect(ctx context.Context, name string) (rec *Record, err error) {
	hooks := observability.Inspect()
	hooks.OnInspectStart(ctx, name)
	start := time.Now()
	defer func() { hooks.OnInspectComplete(ctx, name, time.Since(start), err) }()

	if err := errors.ValidatePackageName(name); err != nil {
		return nil, err
	}
	logger := i.logger.With("package", name)

	dl := make(chan downloadsResult, 1)
	go func() {
		n, err := i.downloads.FetchDownloads(ctx, name)
		dl <- downloadsResult{n, err}
	}()

	meta, err := i.registry.FetchMetadata(ctx, name)
	if err != nil {
		logger.Debug("metadata fetch failed", "err", err)
		return nil, metadataError(name, err)
	}

	rec = &Record{Name: name, LatestVersion: Unknown, ReleaseTime: Unknown}

	if v, ok := meta.LatestVersion(); ok {
		rec.LatestVersion = v
		rec.PURL = npm.PackageURL(name, v)
	} else {
		rec.PURL = npm.PackageURL(name, "")
	}
	if t, ok := meta.ReleaseTime(rec.LatestVersion); ok {
		rec.ReleaseTime = t
	}
	if msg, ok := meta.DeprecationOf(rec.LatestVersion); ok {
		rec.Deprecated = &msg
	}

	rec.Repo = github.Unavailable()
	var repoErr error
	if repoURL := meta.RepositoryURL(); repoURL != "" {
		var stats github.RepoStats
		if stats, repoErr = i.repos.StatsForURL(ctx, repoURL); repoErr == nil {
			rec.Repo = stats
		}
	}

	d := <-dl
	if d.err != nil {
		i.degrade(ctx, logger, rec, SourceDownloads, d.err)
	} else {
		rec.Downloads = d.count
	}
	if repoErr != nil {
		i.degrade(ctx, logger, rec, SourceRepository, repoErr)
	}

	return rec, nil
}

func (i *Inspector) degrade(ctx context.Context, logger *log.Logger, rec *Record, source string, err error) {
	logger.Debug("using placeholders", "source", source, "err", err)
	observability.Inspect().OnDegraded(ctx, rec.Name, source, err)
	rec.Issues = append(rec.Issues, Issue{Source: source, Err: err})
}

func metadataError(name string, err error) error {
	switch {
	case stderrors.Is(err, integrations.ErrNotFound):
		return errors.Wrap(errors.ErrCodePackageNotFound, err, "package %s not found in registry", name)
	case stderrors.Is(err, integrations.ErrDecode):
		return errors.Wrap(errors.ErrCodeInvalidResponse, err, "registry returned malformed metadata for %s", name)
	default:
		return errors.Wrap(errors.ErrCodeNetwork, err, "fetch metadata for %s", name)
	}
}
