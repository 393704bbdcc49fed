package native

import (
	"regexp"

	"github.com/matzehuels/addonscan/pkg/survey"
)

// assetPattern matches prebuild and node-pre-gyp archive names:
//
//	leveldown-v5.6.0-node-v64-linux-x64.tar.gz
//	sharp-v0.33.5-napi-v9-linuxmusl-arm64.tar.gz
//	bufferutil-v4.0.1-electron-v69-win32-ia32.tar.gz
//	canvas-v3.0.0-rc.2-napi-v7-darwin-arm64.tar.gz
var assetPattern = regexp.MustCompile(
	`-v.+?-(node|napi|electron)-v([0-9.]+)-` +
		`(linux|darwin|win32|freebsd|openbsd|android|sunos|aix)(musl|glibc)?-` +
		`([a-z0-9]+)\.tar\.gz$`)

// ParseAsset parses a release asset name. ok is false for files that do not
// follow the prebuild naming convention.
func ParseAsset(name string) (p survey.Prebuild, ok bool) {
	m := assetPattern.FindStringSubmatch(name)
	if m == nil {
		return survey.Prebuild{}, false
	}
	return survey.Prebuild{
		Runtime:  m[1],
		ABI:      m[2],
		Platform: m[3],
		Libc:     m[4],
		Arch:     m[5],
		File:     name,
	}, true
}

// ParseAssets keeps the asset names that are prebuilt binaries, in order.
func ParseAssets(names []string) []survey.Prebuild {
	var out []survey.Prebuild
	for _, n := range names {
		if p, ok := ParseAsset(n); ok {
			out = append(out, p)
		}
	}
	return out
}
