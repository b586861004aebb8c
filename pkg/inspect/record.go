package inspect

import (
	"encoding/json"

	"github.com/matzehuels/pkgpulse/pkg/integrations/github"
)

// Unknown is the placeholder for a version or release time the registry
// document does not carry.
const Unknown = "Unknown"

// Issue sources.
const (
	SourceDownloads  = "downloads"
	SourceRepository = "repository"
)

// Record is the merged health report for one package. A Record is built
// once by [Inspector.Inspect] and not modified afterwards.
type Record struct {
	Name          string
	LatestVersion string
	ReleaseTime   string
	Downloads     *int64
	Deprecated    *string
	Repo          github.RepoStats
	PURL          string

	// Issues lists the sub-fetches that fell back to placeholder values.
	Issues []Issue
}

// Issue is a degraded sub-fetch: the record is still valid but the values
// from Source are placeholders.
type Issue struct {
	Source string
	Err    error
}

func (i Issue) Error() string { return i.Source + ": " + i.Err.Error() }

func (i Issue) Unwrap() error { return i.Err }

// MarshalJSON encodes the record in its flat form. Unavailable downloads and
// deprecation encode as null, unavailable repository fields as "N/A".
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name          string  `json:"name"`
		LatestVersion string  `json:"latestVersion"`
		ReleaseTime   string  `json:"releaseTime"`
		Downloads     *int64  `json:"downloads"`
		Deprecated    *string `json:"deprecated"`
		Stars         any     `json:"stars"`
		OpenIssues    any     `json:"openIssues"`
		LastUpdated   string  `json:"lastUpdated"`
		PURL          string  `json:"purl,omitempty"`
	}{
		Name:          r.Name,
		LatestVersion: r.LatestVersion,
		ReleaseTime:   r.ReleaseTime,
		Downloads:     r.Downloads,
		Deprecated:    r.Deprecated,
		Stars:         countOrNA(r.Repo.Stars),
		OpenIssues:    countOrNA(r.Repo.OpenIssues),
		LastUpdated:   r.Repo.LastUpdatedText(),
		PURL:          r.PURL,
	})
}

func countOrNA(p *int) any {
	if p == nil {
		return github.NotAvailable
	}
	return *p
}
