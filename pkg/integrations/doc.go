// Package integrations provides HTTP clients for the services addonscan
// queries while enriching records.
//
// # Overview
//
// Each service has its own subpackage:
//
//   - [npm]: download counts from api.npmjs.org
//   - [github]: release assets and repository language from api.github.com
//
// # Client Pattern
//
// Service clients embed the shared [Client], which provides:
//   - Response caching through any [cache.Cache] backend, namespaced per service
//   - Retry with exponential backoff for transient failures
//   - Optional rate limiting of outbound requests
//   - Observability hooks for every request
//
// Example:
//
//	c, _ := cache.NewFileCache(dir)
//	downloads := npm.NewClient(c, 24*time.Hour, integrations.WithRateLimit(5))
//	n, err := downloads.FetchDownloads(ctx, "sharp", false)
//
// [npm]: github.com/matzehuels/addonscan/pkg/integrations/npm
// [github]: github.com/matzehuels/addonscan/pkg/integrations/github
// [cache.Cache]: github.com/matzehuels/addonscan/pkg/cache.Cache
package integrations
