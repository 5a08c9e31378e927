package errors

import (
	"strconv"
	"strings"
	"unicode"
)

const maxPathLength = 4096

// ValidateFilePath checks a graph document path before it is opened or
// created. Absolute and relative paths are both accepted.
//
// Validation rules:
//   - Path cannot be empty or only whitespace
//   - Maximum length of 4096 bytes
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path %q names a directory", path)
	}

	return nil
}

// ParseNodeID parses a node id given on the command line.
func ParseNodeID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "invalid node id %q", s)
	}
	return id, nil
}
