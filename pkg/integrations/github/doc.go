// Package github provides an HTTP client for the GitHub REST API.
//
// # Overview
//
// This package turns the repository URL found in package metadata into
// repository statistics: star count, open-issue count and the time the
// repository was last updated.
//
// # Usage
//
//	client := github.NewClient(nil, "", "") // https://api.github.com
//
//	stats, err := client.StatsForURL(ctx, "git+https://github.com/expressjs/express.git")
//	if err != nil {
//	    // stats is Unavailable(); err explains why
//	}
//
// # URL Parsing
//
// [ParseRepoURL] normalizes the URL forms npm allows ("git+https://...",
// "git@host:owner/repo.git", "git://...") and extracts owner and repository.
// Owner and repository names are checked against GitHub naming rules before
// they are placed in an API path.
//
// # RepoStats
//
// Each [RepoStats] field is nil when unavailable; [NotAvailable] is the
// placeholder used for display. Requests are unauthenticated, so the public
// rate limit of 60 requests/hour applies.
package github
