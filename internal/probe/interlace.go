package probe

import "strings"

// IsInterlaced returns true if the primary video stream's field_order
// indicates interlaced content (tt, bb, tb, bt).
func (r *Result) IsInterlaced() bool {
	if r.PrimaryVideo == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(r.PrimaryVideo.FieldOrder)) {
	case "tt", "bb", "tb", "bt":
		return true
	}
	return false
}
