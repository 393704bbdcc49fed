// Package github provides an HTTP client for the GitHub REST API.
//
// # Overview
//
// addonscan reads two things from GitHub: the assets attached to a release
// (prebuilt binaries uploaded by prebuild, prebuildify or node-pre-gyp) and
// the repository's primary language.
//
// # Usage
//
//	client := github.NewClient(c, os.Getenv("GITHUB_TOKEN"), 24*time.Hour)
//	owner, repo, ok := github.ParseRepoURL("git+https://github.com/lovell/sharp.git")
//	if !ok {
//	    return errNoRepo
//	}
//	rel, err := client.FetchRelease(ctx, owner, repo, "v0.33.5", false)
//
// # Authentication
//
// Unauthenticated requests are limited to 60 per hour. Pass a token to
// [NewClient] for surveys of any size.
//
// # Caching
//
// Responses are cached under the "github:" namespace. Pass refresh=true to
// bypass the cache.
package github
