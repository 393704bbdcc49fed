// Package exclude holds the denylist of package names that are dropped
// before any registry lookup.
package exclude

import "slices"

// Known lists packages that look native but are tests, stubs, abandoned
// forks or otherwise noise in a survey.
var Known = []string{
	"no-one-left-behind",
	"a-native-module",
	"a-native-module-without-prebuild",
	"require-rebuild",
	"@s524797336/require-rebuild",
	"@eugeneware/rocksdb",
	"ssss-nodewrap",
	"wc-starterkit",
	"sabers",
	"ocpp-js",
	"rockmsvc",
	"wedmaster",
	"customer-service",
	"@paulcbetts/electron-rxdb",
	"iohook-prebuild-test",
	"pivot-authentication-service",
	"sdk-billtobill",
	"sdkn-billtobill",
	"sdk-snr",
	"rue-mist",
}

// Tooling lists build helpers. They depend on native toolchains
// themselves but ship no addon of their own.
var Tooling = []string{
	"bindings",
	"cmake-js",
	"nan",
	"napi-macros",
	"node-addon-api",
	"node-gyp",
	"node-gyp-build",
	"node-pre-gyp",
	"@mapbox/node-pre-gyp",
	"prebuild",
	"prebuild-install",
	"prebuildify",
	"prebuildify-ci",
	"prebuildify-cross",
	"neon-cli",
	"@neon-rs/cli",
	"@napi-rs/cli",
}

// Set is an immutable set of package names. It is safe for concurrent use.
type Set struct {
	names map[string]struct{}
}

// New returns the union of [Known], [Tooling] and any extra lists.
// Duplicates collapse and empty names are ignored.
func New(extra ...[]string) *Set {
	s := &Set{names: make(map[string]struct{}, len(Known)+len(Tooling))}
	for _, list := range append([][]string{Known, Tooling}, extra...) {
		for _, name := range list {
			if name != "" {
				s.names[name] = struct{}{}
			}
		}
	}
	return s
}

// Contains reports whether name is excluded. A nil Set excludes nothing.
func (s *Set) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.names[name]
	return ok
}

// Len returns the number of names in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns the names in sorted order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
