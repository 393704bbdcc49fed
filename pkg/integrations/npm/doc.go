// Package npm provides an HTTP client for the npm download-counts API.
//
// # Overview
//
// This package fetches point download counts from https://api.npmjs.org,
// which addonscan uses as the popularity metric of a package.
//
// # Usage
//
//	client := npm.NewClient(c, 24*time.Hour)
//	d, err := client.FetchDownloads(ctx, "sharp", false)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d.Package, d.Downloads)
//
// Scoped names ("@serialport/bindings-cpp") are passed to the API verbatim.
// Names are validated before they are spliced into the URL.
//
// # Caching
//
// Responses are cached under the "npm:downloads:" namespace for the TTL given
// to [NewClient]. Pass refresh=true to bypass the cache.
package npm
