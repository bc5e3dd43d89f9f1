// Package splitter orchestrates a full split run: probe the source, plan
// the segments, cut each one with ffmpeg, and write the README report.
//
// The run is sequential and cancellable between segments. A failed
// segment is recorded and the run continues; only setup problems (an
// unreadable source, an output directory that cannot be created, a
// report that cannot be written) abort the run. Front ends observe
// progress through the Observer callback.
package splitter
