package native

import (
	"strings"

	"github.com/matzehuels/addonscan/pkg/survey"
)

// Build toolchains reported in the Type column.
const (
	TypePrebuildify = "prebuildify"
	TypePrebuild    = "prebuild"
	TypeNodePreGyp  = "node-pre-gyp"
	TypeCmakeJS     = "cmake-js"
	TypeNeon        = "neon"
	TypeNapiRS      = "napi-rs"
	TypeNodeGyp     = "node-gyp"
)

type rule struct {
	typ   string
	match func(*survey.Record) bool
}

var rules = []rule{
	{TypePrebuildify, func(r *survey.Record) bool {
		return r.DependsOn("node-gyp-build") && r.DependsOn("prebuildify")
	}},
	{TypePrebuild, dependsOnAny("prebuild-install")},
	{TypeNodePreGyp, dependsOnAny("node-pre-gyp", "@mapbox/node-pre-gyp")},
	{TypeCmakeJS, dependsOnAny("cmake-js")},
	{TypeNeon, dependsOnAny("neon-cli", "@neon-rs/cli")},
	{TypeNapiRS, dependsOnAny("@napi-rs/cli")},
	{TypeNodeGyp, func(r *survey.Record) bool {
		return r.Gypfile || runsNodeGyp(r.Scripts)
	}},
}

func dependsOnAny(names ...string) func(*survey.Record) bool {
	return func(r *survey.Record) bool {
		for _, n := range names {
			if r.DependsOn(n) {
				return true
			}
		}
		return false
	}
}

var installScripts = []string{"preinstall", "install", "postinstall"}

func runsNodeGyp(scripts map[string]string) bool {
	for _, s := range installScripts {
		if strings.Contains(scripts[s], "node-gyp") {
			return true
		}
	}
	return false
}

// DetectType returns the build toolchain of rec, or "" if none is found.
func DetectType(rec *survey.Record) string {
	for _, r := range rules {
		if r.match(rec) {
			return r.typ
		}
	}
	return ""
}

var napiDeps = []string{"node-addon-api", "napi-macros", "@napi-rs/cli"}

// DeclaresNapi reports whether rec opts into N-API through its binary block
// or a N-API helper dependency.
func DeclaresNapi(rec *survey.Record) bool {
	if rec.Binary != nil && len(rec.Binary.NapiVersions) > 0 {
		return true
	}
	return dependsOnAny(napiDeps...)(rec)
}
