// SPDX-License-Identifier: MPL-2.0

package toolchain

import "testing"

func TestEnvHint(t *testing.T) {
	t.Parallel()
	cases := map[Kind]string{
		"cc":           "CC",
		"ld":           "LD",
		"c-compiler":   "C",
		"c++-compiler": "C++",
		"xcode_dir":    "XCODE_DIR",
		"ar-tool-x":    "AR",
	}
	for kind, want := range cases {
		if got := EnvHint(kind); got != want {
			t.Errorf("EnvHint(%q) = %q, want %q", kind, got, want)
		}
	}
}
