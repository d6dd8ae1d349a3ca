package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// videoExtensions are the path suffixes exempt from rate limiting and used
// for media-type classification fallbacks.
var videoExtensions = []string{".mp4", ".mov", ".avi", ".webm", ".mkv"}

// ExtensionFromName returns the lowercased extension of a filename without
// the leading dot. An extensionless name yields "".
func ExtensionFromName(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// HasVideoExtension reports whether the path ends in a known video extension.
func HasVideoExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range videoExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}

	return false
}

// FormatMB renders a byte count as megabytes with one decimal, e.g. "3.0MB".
func FormatMB(bytes int64) string {
	return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
}
