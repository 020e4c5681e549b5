// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types for resolution failures.
//
// Soft misses never surface as errors at all; the types here cover the
// cases that do reach the user: actionable errors carrying remediation
// suggestions, and fatal errors that abort a configuration pass.
package issue
