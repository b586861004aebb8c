// Package npm provides an HTTP client for the npm registry and the npm
// downloads API.
//
// # Usage
//
//	client := npm.NewClient(nil, "", "") // public endpoints
//
//	meta, err := client.FetchMetadata(ctx, "express")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	latest, _ := meta.LatestVersion()
//
//	weekly, err := client.FetchDownloads(ctx, "express")
//
// # Metadata
//
// [FetchMetadata] decodes the registry document into [Metadata], a typed
// partial view. Registry documents vary in shape: "repository" may be a
// string or an object, "deprecated" may be a string or a boolean. The
// decoder accepts all of them and the accessors report absence instead of
// failing, so callers never inspect raw JSON.
//
// # Downloads
//
// [FetchDownloads] reads /point/last-week/{package} and returns a nil count
// when the response carries none.
//
// # Package URLs
//
// [PackageURL] builds the purl identifying a package version.
package npm
