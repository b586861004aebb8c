// Package pkg provides the libraries behind pkgpulse, a health report for
// npm packages.
//
// # Overview
//
// For each package name pkgpulse looks up three sources and merges them into
// one record:
//
//	npm registry document ──┐
//	npm weekly downloads ───┼──→ [inspect] ──→ Record
//	GitHub repository ──────┘
//
// The registry lookup is required; a package that cannot be found there is
// reported as failed. Download counts and repository statistics are best
// effort and fall back to placeholder values.
//
// # Quick Start
//
//	hc := integrations.NewHTTPClient(integrations.DefaultTimeout)
//	registry := npm.NewClient(hc, "", "")
//	insp := inspect.New(registry, registry, github.NewClient(hc, "", ""))
//
//	rec, err := insp.Inspect(ctx, "express")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rec.LatestVersion, *rec.Downloads)
//
// # Main Packages
//
// [inspect] - The inspector: per-package fan-out, record assembly and batch
// inspection with partial or all-or-nothing results.
//
// [integrations] - Shared HTTP client and repository URL normalization.
// [integrations/npm] reads registry metadata and download counts,
// [integrations/github] reads repository statistics.
//
// [config] - Endpoint, timeout and batch settings loaded from TOML.
//
// [errors] - Coded errors and package name validation.
//
// [observability] - Hooks for inspection and HTTP events.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
//	go test ./...
//
// [inspect]: https://pkg.go.dev/github.com/matzehuels/pkgpulse/pkg/inspect
// [integrations]: https://pkg.go.dev/github.com/matzehuels/pkgpulse/pkg/integrations
// [integrations/npm]: https://pkg.go.dev/github.com/matzehuels/pkgpulse/pkg/integrations/npm
// [integrations/github]: https://pkg.go.dev/github.com/matzehuels/pkgpulse/pkg/integrations/github
// [config]: https://pkg.go.dev/github.com/matzehuels/pkgpulse/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/pkgpulse/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pkgpulse/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pkgpulse/pkg/buildinfo
package pkg
