// Package ndjson decodes newline-delimited JSON streams one value at a time.
//
// A [Decoder] never reads ahead more than one line, so a slow consumer
// applies backpressure all the way to the underlying reader.
package ndjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	apperrors "github.com/matzehuels/addonscan/pkg/errors"
)

// MaxLineSize bounds a single line. npm package documents with long
// READMEs can run to several megabytes.
const MaxLineSize = 32 << 20

// Decoder reads JSON values from an NDJSON stream.
type Decoder struct {
	sc   *bufio.Scanner
	line int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &Decoder{sc: sc}
}

// Decode unmarshals the next non-blank line into v. It returns io.EOF once
// the stream is exhausted. Malformed JSON yields an INVALID_RECORD error
// naming the line; read failures yield INVALID_INPUT.
func (d *Decoder) Decode(v any) error {
	for d.sc.Scan() {
		d.line++
		data := bytes.TrimSpace(d.sc.Bytes())
		if len(data) == 0 {
			continue
		}
		if err := json.Unmarshal(data, v); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidRecord, err, "line %d", d.line)
		}
		return nil
	}
	if err := d.sc.Err(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read line %d", d.line+1)
	}
	return io.EOF
}

// Line returns the number of the line most recently read (1-based).
func (d *Decoder) Line() int { return d.line }
