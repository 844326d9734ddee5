// Package terminal provides raw console access for the frame pipeline.
//
// It owns raw mode, key decoding, window size queries and restore-on-exit.
// Rendering lives in package render; this package only moves bytes.
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
