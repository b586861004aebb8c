package npm

import (
	"strings"

	packageurl "github.com/package-url/packageurl-go"
)

// PackageURL returns the package URL (purl) for name at version, for example
// "pkg:npm/%40babel/core@7.24.0". An empty version yields a versionless purl.
func PackageURL(name, version string) string {
	var namespace string
	if scope, rest, ok := strings.Cut(name, "/"); ok && strings.HasPrefix(scope, "@") {
		namespace, name = scope, rest
	}
	return packageurl.NewPackageURL(packageurl.TypeNPM, namespace, name, version, nil, "").ToString()
}
