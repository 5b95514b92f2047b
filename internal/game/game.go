// Package game implements Klondike solitaire: cards, the stacks of a table,
// which cards each stack accepts and the moves between stacks.
//
// It's single-threaded: every operation runs to completion on the caller's
// goroutine, and stacks call their OnChanged handler before returning.
package game

// Version of the game, shown by the UIs.
// Bumping it makes browsers reload the WASM on their next visit.
var Version = "v0.1.0"
