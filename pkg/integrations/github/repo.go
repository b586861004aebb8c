package github

import (
	"regexp"
	"sync"

	"github.com/matzehuels/pkgpulse/pkg/errors"
	"github.com/matzehuels/pkgpulse/pkg/integrations"
)

// NotAvailable is the placeholder shown for a repository statistic that
// could not be obtained.
const NotAvailable = "N/A"

// RepoRef identifies a repository by owner and name.
type RepoRef struct {
	Owner string
	Repo  string
}

// String returns "owner/repo".
func (r RepoRef) String() string { return r.Owner + "/" + r.Repo }

// RepoStats holds the repository statistics reported for a package. Each
// field is nil when that statistic is unavailable.
type RepoStats struct {
	Stars       *int
	OpenIssues  *int
	LastUpdated *string
}

// Unavailable returns stats with every field unavailable.
func Unavailable() RepoStats { return RepoStats{} }

// Available reports whether any statistic is present.
func (s RepoStats) Available() bool {
	return s.Stars != nil || s.OpenIssues != nil || s.LastUpdated != nil
}

// LastUpdatedText returns the last-update timestamp or [NotAvailable].
func (s RepoStats) LastUpdatedText() string {
	if s.LastUpdated == nil {
		return NotAvailable
	}
	return *s.LastUpdated
}

var (
	patternsMu sync.Mutex
	patterns   = map[string]*regexp.Regexp{}
)

func repoPattern(host string) *regexp.Regexp {
	patternsMu.Lock()
	defer patternsMu.Unlock()
	re, ok := patterns[host]
	if !ok {
		re = regexp.MustCompile(`(?:^|[/@.])` + regexp.QuoteMeta(host) + `/([^/]+)/([^/?#]+)`)
		patterns[host] = re
	}
	return re
}

// ParseRepoURL extracts owner and repository from a repository URL on host.
// The URL is normalized first (see [integrations.NormalizeRepoURL]), so
// "git+https://github.com/o/r.git", "git@github.com:o/r.git" and
// "https://github.com/o/r/tree/main" all yield o/r. URLs on other hosts, or
// whose owner or name GitHub would reject, fail with code INVALID_REPO_URL.
func ParseRepoURL(host, rawURL string) (RepoRef, error) {
	normalized := integrations.NormalizeRepoURL(rawURL)
	m := repoPattern(host).FindStringSubmatch(normalized)
	if m == nil {
		return RepoRef{}, errors.New(errors.ErrCodeInvalidRepoURL, "repository URL %q is not a valid %s URL", rawURL, host)
	}

	ref := RepoRef{Owner: m[1], Repo: m[2]}
	if err := ValidateRepoRef(ref.Owner, ref.Repo); err != nil {
		return RepoRef{}, errors.Wrap(errors.ErrCodeInvalidRepoURL, err, "repository URL %q", rawURL)
	}
	return ref, nil
}
