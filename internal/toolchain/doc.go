// SPDX-License-Identifier: MPL-2.0

// Package toolchain resolves abstract tool kinds to concrete executables.
//
// A Kind ("cc", "ld", "strip") maps to an ordered list of Candidates;
// the Checker walks the list and, inside each candidate, a fixed
// fallback ladder: cached value, environment override, custom
// validator, toolchain-directory probe, PATH probe, bare-name probe.
// The first hit wins, is written back to the session, and ends the
// search for that kind. A kind that resolves nowhere is left unset in
// the session; that absence is the caller's signal, not an error.
package toolchain
