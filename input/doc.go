// Package input routes decoded key events from the worker loop to consumers.
//
// Every key lands in the global Queue consumed by the main loop (one event per
// tick) and is copied to the active named handle, if any, so a focused widget
// can read its own stream at its own pace.
package input
