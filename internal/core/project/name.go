package project

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName trims surrounding whitespace and converts the name to NFC,
// so the directory name is the same on every filesystem.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// ValidateName checks a normalized project name before any file is touched.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyProjectName
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	}
	return nil
}
