// Package jsonl reads and writes newline-delimited JSON records with
// goccy/go-json.
package jsonl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
)

// ErrNotObject is returned for a record that is not a JSON object.
var ErrNotObject = errors.New("jsonl: record is not an object")

// Reader decodes successive JSON objects. Numbers are kept as json.Number so
// their text survives until a schema says what they should become.
type Reader struct {
	dec *j.Decoder
	n   int
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	dec := j.NewDecoder(bufio.NewReader(r))
	dec.UseNumber()
	return &Reader{dec: dec}
}

// Next returns the next record, or (nil, io.EOF) at the end of the stream.
func (r *Reader) Next() (map[string]any, error) {
	var v any
	if err := r.dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("jsonl: record %d: %w", r.n+1, err)
	}
	r.n++
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: record %d is %T", ErrNotObject, r.n, v)
	}
	return m, nil
}

// Count returns how many records have been decoded so far.
func (r *Reader) Count() int { return r.n }

// Writer encodes one record per line.
type Writer struct {
	bw  *bufio.Writer
	enc *j.Encoder
}

// NewWriter wraps w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	bw := bufio.NewWriter(w)
	enc := j.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &Writer{bw: bw, enc: enc}
}

// Write encodes v followed by a newline.
func (w *Writer) Write(v any) error { return w.enc.Encode(v) }

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error { return w.bw.Flush() }
