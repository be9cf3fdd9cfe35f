// Package ui is the terminal front end of the MedCare dashboard, built on
// Bubble Tea.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - Panel: A bounded region within a layout that hosts a View
//   - Layout: Arranges the header, sidebar and content panels
//   - FocusManager: Tracks and rotates focus across panels
//   - History: Route navigation history (back with backspace)
//   - Overlay: Modal or popup views with dismiss key
//   - GuardedView: A View mounted inside a fault-isolation boundary
//
// Every routed screen is mounted inside a GuardedView, so a screen that
// panics shows a fallback with a retry action instead of taking down the
// program.
package ui
