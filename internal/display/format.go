// Package display provides human-readable formatting helpers shared by the
// front ends and the report generator.
package display

import (
	"fmt"
	"strings"
)

// FormatSize returns a human-readable file size: "%.2f GB" at or above one
// gibibyte, "%.1f MB" below it.
func FormatSize(bytes int64) string {
	const (
		mib = 1024 * 1024
		gib = 1024 * mib
	)
	if bytes >= gib {
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(gib))
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mib))
}

// FormatBitrateLabel returns a short label for bitrate in kbps
// (e.g. "1200 kbps", "5.0 Mbps").
func FormatBitrateLabel(kbps int64) string {
	if kbps < 1000 {
		return fmt.Sprintf("%d kbps", kbps)
	}
	return fmt.Sprintf("%.1f Mbps", float64(kbps)/1000)
}

// FormatHHMMSS renders a duration in seconds as zero-padded "HH:MM:SS".
// Fractional seconds are truncated.
func FormatHHMMSS(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// DurationLabel renders a duration in seconds as a compact label like
// "1h 2m 3s", omitting zero components. Zero input yields "0s".
func DurationLabel(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if s > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return strings.Join(parts, " ")
}
