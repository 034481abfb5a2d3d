// Package ui renders a board of tiles in the terminal with Bubble Tea.
//
// The package is the rendering collaborator of the grid core:
//   - View: a screen region with its own model, update, view (Elm-style)
//   - GridView: draws the visible window of a board and maps keys to shifts
//   - KeybindRegistry / KeyHandler: leader-key (SPC) command sequences
//   - AppModel: root model routing messages to the grid and the key handler
//
// Nothing here changes layout rules; every structural change goes through
// board.Board.
package ui
