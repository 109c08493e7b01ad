package errors

import (
	"strings"
	"unicode"
)

// ValidateThemePath validates a theme file path supplied on the command line
// or over HTTP. It rejects paths that could be used for traversal or
// injection, leaving existence checks to the theme loader.
func ValidateThemePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "theme path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "theme path too long (max 500 characters)")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "theme path contains invalid control characters")
		}
	}

	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidPath, "theme path contains a null byte")
	}

	if !strings.HasSuffix(path, ".toml") {
		return New(ErrCodeInvalidTheme, "theme file must be a .toml file: %s", path)
	}

	return nil
}

// ValidateOutputPath validates an output file path.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if len(path) > 500 {
		return New(ErrCodeInvalidPath, "output path too long (max 500 characters)")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}

	return nil
}

// ValidateHexColor validates a #RRGGBB color literal from a theme file.
func ValidateHexColor(c string) error {
	if len(c) != 7 || c[0] != '#' {
		return New(ErrCodeInvalidTheme, "color must be #RRGGBB: %q", c)
	}
	for _, r := range c[1:] {
		isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
		if !isHex {
			return New(ErrCodeInvalidTheme, "color contains non-hex digit: %q", c)
		}
	}
	return nil
}
