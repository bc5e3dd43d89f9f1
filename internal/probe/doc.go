// Package probe provides ffprobe-based media inspection and typed result
// structures. A single JSON call per file yields everything the planner,
// the front ends, and the report need: duration, codecs, resolution,
// frame rate, and bitrates.
//
// Failures are returned as *Error values whose Kind distinguishes a
// missing ffprobe binary, a nonzero ffprobe exit, and unparseable output.
package probe
