// Package terminal is the tcell front end of gridedit.
//
// Screen wraps a tcell.Screen. PointerTranslator turns tcell mouse events,
// which report the full button mask on every event, into the down, move and
// up events a collision.Dispatcher consumes. Renderer draws the grid and
// the attribute panel each frame and registers the collision regions of
// everything it drew.
package terminal
