package survey

import (
	"context"
	"io"

	apperrors "github.com/matzehuels/addonscan/pkg/errors"
	"github.com/matzehuels/addonscan/pkg/ndjson"
)

// Source yields records one at a time. Next returns io.EOF when the stream
// is exhausted; any other error ends the survey.
type Source interface {
	Next(ctx context.Context) (*Record, error)
}

// JSONSource reads records from newline-delimited package documents.
type JSONSource struct {
	dec *ndjson.Decoder
}

// NewJSONSource returns a source decoding one record per line of r.
func NewJSONSource(r io.Reader) *JSONSource {
	return &JSONSource{dec: ndjson.NewDecoder(r)}
}

// Next decodes the next record. Records without a name are rejected.
func (s *JSONSource) Next(ctx context.Context) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rec Record
	if err := s.dec.Decode(&rec); err != nil {
		return nil, err
	}
	if rec.Name == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRecord, "line %d: missing name", s.dec.Line())
	}
	return &rec, nil
}

// SliceSource serves records from memory.
type SliceSource struct {
	recs []*Record
	pos  int
}

// NewSliceSource returns a source over recs.
func NewSliceSource(recs ...*Record) *SliceSource {
	return &SliceSource{recs: recs}
}

// Next returns the next record or io.EOF.
func (s *SliceSource) Next(ctx context.Context) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.recs) {
		return nil, io.EOF
	}
	rec := s.recs[s.pos]
	s.pos++
	return rec, nil
}
