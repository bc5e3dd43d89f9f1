package probe

// HDRType returns "hdr10" if the primary video stream carries HDR color
// metadata (smpte2084/arib-std-b67 transfer or bt2020 primaries),
// otherwise "sdr".
func (r *Result) HDRType() string {
	if r.PrimaryVideo == nil {
		return "sdr"
	}

	switch r.PrimaryVideo.ColorTransfer {
	case "smpte2084", "arib-std-b67":
		return "hdr10"
	}

	if r.PrimaryVideo.ColorPrimaries == "bt2020" {
		return "hdr10"
	}

	return "sdr"
}
