// Package ffmpeg builds and executes the ffmpeg command for one clip.
//
// Build produces the full argument slice from a Job: seek, input, clip
// duration, then either stream copy or an H.264 re-encode. Execute runs
// the command with stderr captured (tee'd to the terminal when verbose)
// so failures can be reported with ffmpeg's own diagnostics.
package ffmpeg
