// Package widget provides the stock widgets used by vtframe layers:
// static labels, bordered panels, a scrolling text view and a single-line editor.
package widget
