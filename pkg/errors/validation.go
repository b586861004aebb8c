package errors

import (
	"strings"
	"unicode"
)

// maxPackageNameLen is the npm registry limit for package names.
const maxPackageNameLen = 214

// ValidatePackageName validates a package name before it is placed in a
// request path. It rejects names that could be used for path traversal or
// that no registry would accept:
//   - No empty names
//   - No whitespace or control characters
//   - No path traversal sequences (.., //, backslash)
//   - At most one slash, and only in a scoped name (@scope/name)
//   - Maximum length of 214 characters
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > maxPackageNameLen {
		return New(ErrCodeInvalidPackage, "package name too long (max %d characters)", maxPackageNameLen)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidPackage, "package name %q contains whitespace or control characters", name)
		}
	}

	for _, pattern := range []string{"..", "//", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", pattern)
		}
	}

	if strings.Contains(name, "/") {
		scope, pkg, _ := strings.Cut(name, "/")
		if !strings.HasPrefix(scope, "@") || len(scope) < 2 || pkg == "" || strings.Contains(pkg, "/") {
			return New(ErrCodeInvalidPackage, "package name %q must be plain or of the form @scope/name", name)
		}
	}

	return nil
}
