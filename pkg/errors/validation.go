package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePackageName rejects names that are unsafe to splice into a
// registry URL path.
//
// The rules are conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path traversal sequences (.., //) or backslashes
//   - Maximum length of 214 characters (npm's own limit)
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 214 {
		return New(ErrCodeInvalidPackage, "package name too long (max 214 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "//", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// npmPackageNameRegex matches valid npm package names. Legacy packages may
// contain uppercase letters, so case is not enforced.
var npmPackageNameRegex = regexp.MustCompile(`^(@[a-zA-Z0-9-~][a-zA-Z0-9-._~]*/)?[a-zA-Z0-9-~][a-zA-Z0-9-._~]*$`)

// ValidateNpmPackageName validates an npm package name, scoped or not.
func ValidateNpmPackageName(name string) error {
	if err := ValidatePackageName(name); err != nil {
		return err
	}

	if !npmPackageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPackage, "invalid npm package name: %q", name)
	}

	return nil
}
