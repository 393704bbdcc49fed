package survey

import "context"

// Provider classifies and enriches records.
//
// DetectType is expected to be cheap and local. FetchDownloads and
// FetchPrebuilds usually talk to remote services; they may fill the record
// partially before failing.
type Provider interface {
	// DetectType sets rec.Type and reports whether a type was resolved.
	DetectType(rec *Record) bool

	// FetchDownloads sets rec.Downloads.
	FetchDownloads(ctx context.Context, rec *Record) error

	// FetchPrebuilds sets rec.Prebuilds, rec.Napi and rec.Language.
	FetchPrebuilds(ctx context.Context, rec *Record) error
}

// Excluder decides which identifiers are rejected before any enrichment.
// exclude.Set implements it.
type Excluder interface {
	Contains(name string) bool
}
