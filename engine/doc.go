// Package engine runs the frame pipeline.
//
// An Engine owns two goroutines. The worker drains terminal input into the global
// queue and the active input handle, and samples console dimensions. The main loop
// consumes one queued key per tick, runs update tasks, draws active layers in
// ascending z order into a render.Context and writes the frame only when it differs
// from the previous one. Both loops are paced by a timing.Limiter.
//
// Layer activation, focus changes and update-task edits must happen on the main
// loop: from key actions, update tasks, layer hooks, or a function scheduled with After.
package engine
