// SPDX-License-Identifier: MPL-2.0

// Package probe answers one question: does this executable exist here?
//
// Probes are read-only filesystem checks. A missing executable is a
// normal, silent result, never an error.
package probe
