// Package native implements [survey.Provider] for npm packages with native
// addons.
//
// # Type Detection
//
// The build toolchain is read from package.json without any network access.
// The first matching rule wins:
//
//	node-gyp-build with prebuildify   prebuildify
//	prebuild-install                  prebuild
//	(@mapbox/)node-pre-gyp            node-pre-gyp
//	cmake-js                          cmake-js
//	neon-cli, @neon-rs/cli            neon
//	@napi-rs/cli                      napi-rs
//	gypfile or node-gyp install       node-gyp
//
// # Enrichment
//
// Download counts come from the npm downloads API. Prebuilt binaries are
// read from the assets of the GitHub release matching the package version
// (falling back to the latest release), and the language from the GitHub
// repository. Packages hosted elsewhere fail enrichment softly with
// [ErrNoRepository].
package native
