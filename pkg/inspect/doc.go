// Package inspect aggregates registry metadata, download counts and
// repository statistics into one [Record] per package.
//
// # Overview
//
// [Inspector.Inspect] runs three lookups for a package:
//
//  1. registry metadata, which is required
//  2. last-week download count, fetched concurrently with (1)
//  3. repository statistics, fetched after (1) when the metadata names a
//     repository
//
// A failed metadata lookup fails the inspection with a coded error from
// [errors]. Failed download or repository lookups degrade instead: the
// record carries placeholders (nil downloads, "N/A" repository fields) and
// the cause in Record.Issues.
//
// # Batches
//
// [Inspector.InspectAll] inspects many packages in parallel and reports
// every outcome, so one missing package does not hide the rest.
// [Inspector.InspectAllStrict] is the all-or-nothing variant: any failure
// discards the whole batch.
//
// # Placeholders
//
//   - LatestVersion, ReleaseTime: [Unknown]
//   - Downloads, Deprecated: nil
//   - Repo fields: nil, shown as [github.NotAvailable]
//
// [errors]: github.com/matzehuels/pkgpulse/pkg/errors
// [github.NotAvailable]: github.com/matzehuels/pkgpulse/pkg/integrations/github.NotAvailable
package inspect
