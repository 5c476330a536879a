package encoder

import (
	"io"
	"net/http"

	// Packages
	schema "github.com/mutablelogic/go-agui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Writer encodes events onto an io.Writer, flushing after every event when
// the writer is an http.Flusher
type Writer struct {
	w       io.Writer
	flusher http.Flusher
	enc     *Encoder
	count   int
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewWriter(w io.Writer, opts ...Opt) *Writer {
	writer := &Writer{w: w, enc: New(opts...)}
	if flusher, ok := w.(http.Flusher); ok {
		writer.flusher = flusher
	}
	return writer
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Emit writes one framed event. An error means the reader has gone away.
func (w *Writer) Emit(event schema.Event) error {
	if _, err := w.w.Write(w.enc.Encode(event)); err != nil {
		return err
	}
	if w.flusher != nil {
		w.flusher.Flush()
	}
	w.count++
	return nil
}

// Count returns the number of events written
func (w *Writer) Count() int {
	return w.count
}
