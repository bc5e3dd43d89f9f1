package naming

import (
	"path/filepath"
	"strings"
)

// ClipExt is the container extension for produced clips. Clips are always
// written as MP4 regardless of the source container.
const ClipExt = ".mp4"

// DefaultOutputDirName is the directory created next to the source file
// when the user does not choose an output path.
const DefaultOutputDirName = "output_split"

// BaseName returns the file name of path without directory or extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Sanitize strips characters from a filename component that are unsafe on
// common filesystems (path separators, colons).
func Sanitize(name string) string {
	r := strings.NewReplacer(":", "-", "/", "-", "\\", "-")
	return r.Replace(name)
}

// ClipFilename derives the output filename for one segment, e.g.
// "movie_00-00 - 10-00.mp4". Start and end are offsets in seconds;
// withHours selects the HH-MM-SS label form.
func ClipFilename(base string, start, end float64, withHours bool) string {
	startLabel := Sanitize(FormatLabel(start, withHours))
	endLabel := Sanitize(FormatLabel(end, withHours))
	return Sanitize(base) + "_" + startLabel + " - " + endLabel + ClipExt
}

// DefaultOutputDir returns the default output directory for a source file:
// an "output_split" sibling of the input.
func DefaultOutputDir(inputPath string) string {
	abs, err := filepath.Abs(inputPath)
	if err != nil {
		abs = inputPath
	}
	return filepath.Join(filepath.Dir(abs), DefaultOutputDirName)
}
