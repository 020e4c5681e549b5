// SPDX-License-Identifier: MPL-2.0

package sdk

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultPlatform is the SDK platform checked when none is specified.
const DefaultPlatform = "MacOSX"

// xcodeAppDir is the conventional Xcode install location, probed when
// xcode-select has no answer.
const xcodeAppDir = "/Applications/Xcode.app/Contents/Developer"

// XcodeLocator finds Xcode artifacts via DEVELOPER_DIR, xcode-select,
// and the SDK directory layout under the developer directory.
type XcodeLocator struct{}

// FindDeveloperDir implements Locator.
func (XcodeLocator) FindDeveloperDir(ctx context.Context) (string, bool) {
	if dir := os.Getenv("DEVELOPER_DIR"); dir != "" && isDir(dir) {
		return dir, true
	}

	cmd := exec.CommandContext(ctx, "xcode-select", "-p")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err == nil {
		if dir := strings.TrimSpace(out.String()); dir != "" && isDir(dir) {
			return dir, true
		}
	}

	if isDir(xcodeAppDir) {
		return xcodeAppDir, true
	}
	return "", false
}

// FindSDKVersions implements Locator by listing the platform's SDKs
// directory and extracting version suffixes from entries shaped like
// "MacOSX14.2.sdk". Versions come back best (highest) first.
func (XcodeLocator) FindSDKVersions(_ context.Context, criteria Criteria) []string {
	platform := criteria.Platform
	if platform == "" {
		platform = DefaultPlatform
	}
	sdksDir := filepath.Join(criteria.DeveloperDir,
		"Platforms", platform+".platform", "Developer", "SDKs")

	entries, err := os.ReadDir(sdksDir)
	if err != nil {
		return nil
	}

	var versions []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, platform) || !strings.HasSuffix(name, ".sdk") {
			continue
		}
		ver := strings.TrimSuffix(strings.TrimPrefix(name, platform), ".sdk")
		if ver != "" {
			versions = append(versions, ver)
		}
	}

	sort.Slice(versions, func(i, j int) bool {
		return compareVersions(versions[i], versions[j]) > 0
	})
	return versions
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// compareVersions compares dotted numeric versions segment by segment.
func compareVersions(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var av, bv int
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av > bv {
				return 1
			}
			return -1
		}
	}
	return 0
}
