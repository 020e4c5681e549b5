// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// It consolidates the 3-step CUE parsing pattern used for toolchain
// table files:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with the schema
//  3. Validate and decode to a Go struct
//
// Errors are reformatted with JSON-path prefixes (e.g.
// "cc[0].validator: expected string") so users can locate the offending
// field without reading raw CUE diagnostics.
package cueutil
