// SPDX-License-Identifier: MPL-2.0

// Package sdk resolves platform SDK attributes: target architecture,
// the Xcode developer directory, and the Xcode SDK version.
//
// Each check follows the same shape as tool resolution (cached value
// first, then probe, then persist) but over non-executable artifacts.
// The Xcode checks differ from tool checks in their failure mode: an
// unresolvable value is fatal and aborts the configuration pass with a
// remediation message naming the exact override command. The
// architecture check never fails; it falls back to the host's native
// architecture.
package sdk
