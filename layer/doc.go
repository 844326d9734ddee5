// Package layer holds the z-ordered layer stack and the widget contract.
//
// A Registry owns a fixed number of z-slots. Activating a layer in a slot hides
// whatever was there (removing its update tasks, calling OnHide) and then
// installs the new layer's tasks under "{Type}.{Task}" keys and calls OnShow.
// All Registry and Focus methods are meant to be called from the main loop.
package layer
