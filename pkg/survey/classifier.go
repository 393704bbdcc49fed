package survey

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/addonscan/pkg/observability"
)

// DefaultMinDownloads is the popularity threshold: records with fewer
// monthly downloads are dropped as unpopular.
const DefaultMinDownloads = 1000

// State is the position of a record in the classification pipeline.
type State int

// Every record starts Received and ends in exactly one of the other states.
const (
	Received State = iota
	Excluded
	TypeUnresolved
	Unpopular
	Included
)

var stateNames = [...]string{
	Received:       "received",
	Excluded:       "excluded",
	TypeUnresolved: "type-unresolved",
	Unpopular:      "unpopular",
	Included:       "included",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether s ends the pipeline.
func (s State) Terminal() bool {
	return s > Received && s <= Included
}

// Classifier walks a single record through exclusion, type detection, the
// download threshold and prebuild enrichment.
//
// Enrichment errors never abort a record. They are written to Diag as
// "<title> <message>" and the record continues with whatever data it has:
// a failed download lookup counts as zero downloads, a failed prebuild
// lookup still admits the record.
type Classifier struct {
	exclude      Excluder
	provider     Provider
	minDownloads int
	diag         io.Writer
	logger       *log.Logger
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithMinDownloads overrides [DefaultMinDownloads].
func WithMinDownloads(n int) ClassifierOption {
	return func(c *Classifier) { c.minDownloads = n }
}

// WithDiagnostics sets where soft failures are reported. Defaults to io.Discard.
func WithDiagnostics(w io.Writer) ClassifierOption {
	return func(c *Classifier) { c.diag = w }
}

// WithLogger sets the logger used for per-record debug output.
func WithLogger(l *log.Logger) ClassifierOption {
	return func(c *Classifier) { c.logger = l }
}

// NewClassifier creates a classifier. The exclusion set is consulted
// read-only and may be shared.
func NewClassifier(exclude Excluder, provider Provider, opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		exclude:      exclude,
		provider:     provider,
		minDownloads: DefaultMinDownloads,
		diag:         io.Discard,
		logger:       log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify drives rec to a terminal state. Each provider call returns before
// the next one starts, and Classify returns only after the last one has.
func (c *Classifier) Classify(ctx context.Context, rec *Record) State {
	hooks := observability.Survey()
	hooks.OnRecordStart(ctx, rec.Name)
	start := time.Now()

	state := c.classify(ctx, rec)

	hooks.OnRecordDone(ctx, rec.Name, state.String(), time.Since(start))
	c.logger.Debug("classified", "name", rec.Name, "state", state, "type", rec.Type, "downloads", rec.Downloads)
	return state
}

func (c *Classifier) classify(ctx context.Context, rec *Record) State {
	if c.exclude != nil && c.exclude.Contains(rec.Name) {
		return Excluded
	}

	if !c.provider.DetectType(rec) {
		return TypeUnresolved
	}

	if err := c.provider.FetchDownloads(ctx, rec); err != nil {
		c.softFail(ctx, rec, "downloads", err)
		// Unknown and zero are deliberately indistinguishable.
		rec.Downloads = 0
	}
	if rec.Downloads < c.minDownloads {
		return Unpopular
	}

	if err := c.provider.FetchPrebuilds(ctx, rec); err != nil {
		c.softFail(ctx, rec, "prebuilds", err)
	}
	return Included
}

func (c *Classifier) softFail(ctx context.Context, rec *Record, stage string, err error) {
	observability.Survey().OnEnrichError(ctx, rec.Name, stage, err)
	fmt.Fprintf(c.diag, "%s %s\n", rec.Title(), err.Error())
}
