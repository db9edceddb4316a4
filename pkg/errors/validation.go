package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// catalogNameRegex matches catalog entry names: lowercase words joined by
// single hyphens, such as "truncated-cube" or "24-cell".
var catalogNameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateCatalogName validates a catalog entry name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - Maximum length of 64 characters
//   - Lowercase alphanumeric words joined by single hyphens
func ValidateCatalogName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidCatalog, "entry name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidCatalog, "entry name too long (max 64 characters)")
	}

	if !catalogNameRegex.MatchString(name) {
		return New(ErrCodeInvalidCatalog, "invalid entry name: %q", name)
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path cannot be a directory")
	}

	return nil
}
