// Package tui is the terminal front end for the contact form.
//
// A [Model] hosts one [form.Controller] and renders it with Bubble Tea.
// Every edit is forwarded to the controller as a change event, focus
// moves emit focus and blur events, and the submit path is split in
// three so the event loop never blocks on the network:
//
//	Begin (validate, enter submitting) → tea.Cmd (Send) → Complete
//
// The controller owns all form state. The model keeps only widget state
// (cursor positions, focus index, window width) and copies values back
// from the controller after each edit, so stripping of non-digits in the
// phone field and the post-success reset show up in the widgets.
package tui
