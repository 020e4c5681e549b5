// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes the OS and architecture naming conventions that
// toolchain resolution depends on: runtime.GOOS comparison constants, the
// executable suffix used when probing restricted directories on Windows,
// and the mapping from Go's GOARCH spellings to the spellings toolchains
// and SDK locators expect (x86_64, i386, ...).
package platform
