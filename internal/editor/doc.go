// Package editor implements the editing session that sits on top of the
// grid, the history engine and the panel element tree.
//
// An Editor holds an explicit State (selection, focused input, in-progress
// draft, caret phase) instead of package globals, so several editors can run
// side by side. Every selection change rebuilds the panel Tree wholesale;
// the front end asks for addresses from that tree, registers them as hit
// regions and feeds clicked addresses back through Activate.
//
// All grid writes go through the history engine. A draft is only written
// when committed (Enter, Tab, or clicking another widget) and becomes a
// single undo step for the whole selection; Cancel discards it without
// touching the grid or the log.
package editor
