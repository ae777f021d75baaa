// Package logtail reads and highlights the dashboard's own log file.
//
// # Reading Log Files
//
// Read extracts the last maxLines from a file using a ring buffer of size
// maxLines, so memory stays O(maxLines) regardless of file size. A missing
// file returns nil, nil; other I/O errors are returned wrapped.
//
//	lines, err := logtail.Read(cfg.LogFile, 400)
//
// # Highlighting
//
// The dashboard logs with logrus' TextFormatter (colors disabled), which
// writes logfmt:
//
//	time="2026-10-14T09:30:01Z" level=info msg="stream connected" component=push
//
// Parse splits such a line into time, level, message, and the remaining
// fields in order. Highlight renders an Entry with Lip Gloss styles supplied
// by the caller, trimming the timestamp to its clock portion and the level
// to four letters. Lines that do not parse (panics, stray output) are
// returned unchanged.
//
// The package has no global state and never watches the file; the log
// overlay re-reads it when opened.
package logtail
