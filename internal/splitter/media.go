package splitter

import (
	"path/filepath"
	"sort"
	"strings"
)

// Supported media file extensions (lowercase, with leading dot).
var mediaExtensions = map[string]bool{
	".mkv":  true,
	".mp4":  true,
	".avi":  true,
	".m4v":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".ts":   true,
	".m2ts": true,
	".mpg":  true,
	".mpeg": true,
	".vob":  true,
	".ogv":  true,
}

// IsMediaFile reports whether path has a recognized video extension.
// Advisory only: the probe is the real gatekeeper, so unknown extensions
// are rejected early while anything probeable still works via the GUI
// "all files" filter.
func IsMediaFile(path string) bool {
	return mediaExtensions[strings.ToLower(filepath.Ext(path))]
}

// Extensions returns the recognized extensions sorted lexicographically,
// for building file picker filters.
func Extensions() []string {
	exts := make([]string, 0, len(mediaExtensions))
	for e := range mediaExtensions {
		exts = append(exts, e)
	}
	sort.Strings(exts)
	return exts
}
