// Package ui provides the terminal front-end for chesscore.
//
// It implements a Bubbletea program with a single text-entry line: the
// player types a command (move a piece, request a random move, load a
// position, inspect a square), the board re-renders, and the result or
// error is printed below it. There are no menus, no bot difficulty
// selection, and nothing is persisted across runs — the front-end exists
// to exercise the engine through a concrete command surface, not to be a
// full chess GUI.
package ui
