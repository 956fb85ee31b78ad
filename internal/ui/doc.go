// Package ui implements the interactive terminal interface using
// bubbletea's Elm architecture.
//
// The TUI is a thin presentation layer over the store:
//  1. [ListView] : browse the filtered record sequence, toggle with enter
//  2. [InputView] : capture text for a new record
//  3. [ConfirmDeleteView] : the confirmation gate in front of removal
//
// Every mutation goes through the store's intent methods and the visible
// list is rebuilt from a fresh [store.Store.Filtered] snapshot afterwards;
// the UI never owns record state. Removal is the one destructive intent,
// so it sits behind the confirm view, while the store itself deletes
// unconditionally.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, a, d, f, y/n,
// q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
