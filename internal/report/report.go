// Package report writes constructor call records to a diagnostic stream.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mpyw/implicitctor/internal/ctor"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown report format")

// Sink consumes records in the order they are written.
type Sink interface {
	Write(rec ctor.Record) error
}

// New returns the sink for format writing to w.
func New(format string, w io.Writer) (Sink, error) {
	switch format {
	case FormatText, "":
		return NewTextSink(w), nil
	case FormatJSON:
		return NewJSONSink(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Formats lists the names accepted by New.
func Formats() []string {
	return []string{FormatText, FormatJSON}
}

// TextSink writes two lines per record:
//
//	Implicit constructor detected: <callee>
//	Type: <kind>
type TextSink struct {
	w io.Writer
}

// NewTextSink creates a TextSink.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

// Write implements Sink.
func (s *TextSink) Write(rec ctor.Record) error {
	_, err := fmt.Fprintf(s.w, "Implicit constructor detected: %s\nType: %s\n", rec.Callee, rec.Kind)
	return err
}

// JSONSink writes one JSON object per record.
type JSONSink struct {
	enc *json.Encoder
}

// NewJSONSink creates a JSONSink.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

type jsonRecord struct {
	Caller string    `json:"caller,omitempty"`
	Callee string    `json:"callee"`
	Kind   ctor.Kind `json:"kind"`
}

// Write implements Sink.
func (s *JSONSink) Write(rec ctor.Record) error {
	return s.enc.Encode(jsonRecord{
		Caller: rec.Caller,
		Callee: rec.Callee,
		Kind:   rec.Kind,
	})
}

// Collector keeps records in memory.
type Collector struct {
	Records []ctor.Record
}

// Write implements Sink.
func (c *Collector) Write(rec ctor.Record) error {
	c.Records = append(c.Records, rec)
	return nil
}
