package survey

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Consumer pulls records from a [Source] and classifies them strictly one at
// a time: the next record is requested only after the current one has
// reached a terminal state. This bounds outbound enrichment traffic to a
// single record's calls.
type Consumer struct {
	classifier *Classifier
	logger     *log.Logger
}

// NewConsumer creates a consumer driving records through c.
func NewConsumer(c *Classifier, logger *log.Logger) *Consumer {
	if logger == nil {
		logger = log.Default()
	}
	return &Consumer{classifier: c, logger: logger}
}

// Run consumes src until io.EOF and returns the report. A source error or
// a cancelled context stops the survey; no report is returned then.
func (c *Consumer) Run(ctx context.Context, src Source) (*Report, error) {
	var tally Tally
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		tally.Add(rec, c.classifier.Classify(ctx, rec))
	}

	counters := tally.Counters()
	c.logger.Debug("stream finished", "seen", counters.Seen, "included", counters.Included)
	return NewReport(counters, tally.Admitted()), nil
}
