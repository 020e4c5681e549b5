// SPDX-License-Identifier: MPL-2.0

// Package trace emits human-readable pass/fail lines for resolution checks.
//
// The sink is a reporting concern only: nothing in the resolution engine
// branches on what a sink does, and a silent sink produces identical
// resolution outcomes. Production output is lipgloss-styled "checking for
// ... ok/no" lines gated by a verbosity flag, with a debug mirror on a
// charmbracelet logger; tests use Recorder.
package trace
