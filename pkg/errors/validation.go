package errors

import (
	"strings"
	"unicode"
)

// ValidateSceneName validates a scene name for safety and correctness.
// Scene names end up in cache keys, file names, and store documents, so the
// rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, backslash)
//   - Maximum length of 256 characters
func ValidateSceneName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidScene, "scene name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidScene, "scene name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "scene name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidScene, "scene name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output path for exports.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "path too long (max 500 characters)")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	return nil
}
