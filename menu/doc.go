// Package menu implements a floating menu that follows the editor selection.
//
// A Controller is bound to one editor view. It receives every state
// transition, hides the menu when the selection is empty, and shows it near
// the selection head either immediately or once selection activity has
// paused for the configured debounce. The debounce is a tea.Tick whose
// message comes back through the editor, so every transition runs on the
// Bubble Tea loop and no locking is needed.
package menu
