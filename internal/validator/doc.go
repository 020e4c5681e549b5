// SPDX-License-Identifier: MPL-2.0

// Package validator builds candidate validation functions.
//
// A validator receives the fully-qualified candidate name (cross prefix
// plus tool name) and returns nil when that exact string is usable. Any
// failure, including panics in user-supplied functions, is contained
// here: the resolution engine only ever sees "validated" or "did not
// validate", never a propagated validator error.
package validator
