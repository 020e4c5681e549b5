// SPDX-License-Identifier: MPL-2.0

package toolchain

import "strings"

// EnvHint derives the override environment variable name for a kind:
// upper-case the identifier and keep only the segment before the first
// hyphen. "cc" → "CC", "c-compiler" → "C", "xcode_dir" → "XCODE_DIR".
//
// Kept as a standalone pure function because the truncation rule is
// subtle enough to deserve its own tests.
func EnvHint(kind Kind) string {
	upper := strings.ToUpper(string(kind))
	if i := strings.IndexByte(upper, '-'); i >= 0 {
		return upper[:i]
	}
	return upper
}
