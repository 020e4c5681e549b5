// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"runtime"
	"testing"
)

func TestNormalizeArch_KnownSpellings(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"amd64":   "x86_64",
		"386":     "i386",
		"arm":     "armv7",
		"arm64":   "arm64",
		"riscv64": "riscv64",
	}
	for goarch, want := range cases {
		if got := normalizeArch(goarch); got != want {
			t.Errorf("normalizeArch(%q) = %q, want %q", goarch, got, want)
		}
	}
}

func TestNativeArch_MatchesHost(t *testing.T) {
	t.Parallel()
	want := normalizeArch(runtime.GOARCH)
	if got := NativeArch(); got != want {
		t.Errorf("NativeArch() = %q, want %q", got, want)
	}
	// Cached value must be stable across calls.
	if got := NativeArch(); got != want {
		t.Errorf("second NativeArch() = %q, want %q", got, want)
	}
}

func TestExeSuffix(t *testing.T) {
	t.Parallel()
	got := ExeSuffix()
	if runtime.GOOS == Windows && got != ".exe" {
		t.Errorf("ExeSuffix() = %q on windows, want .exe", got)
	}
	if runtime.GOOS != Windows && got != "" {
		t.Errorf("ExeSuffix() = %q, want empty", got)
	}
}
