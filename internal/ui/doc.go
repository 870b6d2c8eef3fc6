// Package ui renders the essentials screen with Bubble Tea.
//
// Core pieces:
//   - View: a screen region with its own update and view (Elm-style)
//   - AppModel: composes the header, core concepts, and examples sections
//   - ExamplesView: owns the topic Selection and renders the tab buttons and panel
//   - KeybindRegistry / KeyHandler: single keys and SPC-prefixed leader sequences
//
// The selected topic lives only in ExamplesView. Every other section renders from
// the static content registry and is unaffected by selection.
package ui
