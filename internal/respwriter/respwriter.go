// Package respwriter records the status code and body size written through
// an http.ResponseWriter.
package respwriter

import "net/http"

// Recorder wraps an http.ResponseWriter. Status is 200 until WriteHeader is
// called with something else.
type Recorder struct {
	http.ResponseWriter
	Status      int
	Bytes       int
	wroteHeader bool
}

// Wrap returns w as a *Recorder, reusing it when it already is one.
func Wrap(w http.ResponseWriter) *Recorder {
	if rec, ok := w.(*Recorder); ok {
		return rec
	}
	return &Recorder{ResponseWriter: w, Status: http.StatusOK}
}

func (r *Recorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.Status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *Recorder) Write(p []byte) (int, error) {
	r.wroteHeader = true
	n, err := r.ResponseWriter.Write(p)
	r.Bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *Recorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
