// Package naming derives clip filenames and output paths from time ranges.
package naming

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatLabel renders a time offset in seconds as a zero-padded "MM-SS"
// label, or "HH-MM-SS" when withHours is set. Fractional seconds are
// truncated; labels are filename-safe by construction.
func FormatLabel(seconds float64, withHours bool) string {
	total := int(seconds)
	if withHours {
		h := total / 3600
		m := (total % 3600) / 60
		s := total % 60
		return fmt.Sprintf("%02d-%02d-%02d", h, m, s)
	}
	m := total / 60
	s := total % 60
	return fmt.Sprintf("%02d-%02d", m, s)
}

// ParseLabel converts a "MM-SS" or "HH-MM-SS" label back to seconds.
// Inverse of [FormatLabel] up to truncation of fractional seconds.
func ParseLabel(label string) (float64, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time label %q", label)
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time label %q", label)
		}
		total = total*60 + n
	}
	return float64(total), nil
}
