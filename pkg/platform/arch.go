// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"runtime"
	"sync"
)

// archNames maps Go's GOARCH spellings to the spellings compilers and SDK
// locators use. GOARCH values without an entry pass through unchanged.
var archNames = map[string]string{
	"amd64": "x86_64",
	"386":   "i386",
	"arm":   "armv7",
}

// nativeOnce caches the normalized host architecture for the process
// lifetime. The value is derived from compile-time constants, so
// process-wide caching is safe.
var nativeOnce = sync.OnceValue(func() string {
	return normalizeArch(runtime.GOARCH)
})

// NativeArch returns the host machine's architecture in toolchain
// spelling (e.g. "x86_64" on amd64 hosts, "arm64" on Apple silicon).
func NativeArch() string {
	return nativeOnce()
}

func normalizeArch(goarch string) string {
	if name, ok := archNames[goarch]; ok {
		return name
	}
	return goarch
}
