// Package integrations provides HTTP clients for the services pkgpulse reads.
//
// # Overview
//
// Each upstream has its own subpackage:
//
//   - [npm]: npm registry metadata and the npm downloads API
//   - [github]: GitHub repository statistics
//
// # Shared Infrastructure
//
// The [Client] type wraps an *http.Client built by [NewHTTPClient]. It sets
// the User-Agent, applies per-client default headers, decodes JSON bodies and
// maps failures onto three sentinel errors:
//
//   - [ErrNotFound]: the upstream answered 404
//   - [ErrNetwork]: transport failure or any other non-2xx status
//   - [ErrDecode]: the body was not the expected JSON
//
// Requests are issued exactly once. There is no response cache and no retry;
// a failed request is final and callers decide whether it is fatal.
//
// [npm]: github.com/matzehuels/pkgpulse/pkg/integrations/npm
// [github]: github.com/matzehuels/pkgpulse/pkg/integrations/github
package integrations
