// Package util provides a collection of domain-agnostic utility functions and cross-platform helpers.
package util

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/castgrab/castgrab/filesystem"
)

// MaxFilenameLength bounds a sanitized name, in bytes.
const MaxFilenameLength = 255

// invalidFilenameChars matches characters rejected by at least one supported filesystem,
// every control character and every rune unicode.IsSpace accepts.
var invalidFilenameChars = regexp.MustCompile(`[\\/<>:"|?*\p{Cc}\p{Z}\s]`)

// SanitizeFilename normalizes a string into a safe, cross-platform filesystem-compliant name.
// The result never exceeds MaxFilenameLength bytes and SanitizeFilename(SanitizeFilename(s)) == SanitizeFilename(s).
func SanitizeFilename(filename string) string {
	filename = strings.ToValidUTF8(filename, "_")
	filename = strings.TrimSpace(filename)
	filename = invalidFilenameChars.ReplaceAllString(filename, "_")
	filename = truncate(filename, MaxFilenameLength)

	if filename == "." || filename == ".." {
		return "_"
	}

	return filename
}

// SanitizeFilenameWithExt sanitizes name and appends ext, shortening name so the result fits in MaxFilenameLength bytes.
func SanitizeFilenameWithExt(name, ext string) string {
	return truncate(SanitizeFilename(name), MaxFilenameLength-len(ext)) + ext
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	s = s[:n]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}

// Quantify returns a pluralized string representation of a count and its associated labels.
func Quantify(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Capitalize transforms the first rune of a string to its uppercase equivalent.
func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Ignore executes a function and explicitly discards its error return value.
func Ignore(f func() error) {
	_ = f()
}

// Delete recursively removes a file or directory using the virtualized filesystem API.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
