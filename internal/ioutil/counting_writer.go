package ioutil

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CRLF terminates every line of an HTTP message head.
const CRLF = "\r\n"

// CountingWriter wraps an io.Writer and tracks the total number of bytes written.
// After the first failed write all subsequent writes are skipped and the error is kept,
// so RenderTo implementations can chain writes and check the result once.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// NewCountingWriter creates a new CountingWriter wrapping the given writer.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

// Write implements io.Writer and tracks bytes written.
func (cw *CountingWriter) Write(p []byte) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = cw.w.Write(p)
	return cw.track(n, err)
}

// WriteString writes a string and tracks bytes written.
func (cw *CountingWriter) WriteString(s string) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = io.WriteString(cw.w, s)
	return cw.track(n, err)
}

// Fprint writes formatted output and tracks bytes written.
func (cw *CountingWriter) Fprint(args ...any) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = fmt.Fprint(cw.w, args...)
	return cw.track(n, err)
}

// Fprintf writes formatted output with a format string and tracks bytes written.
func (cw *CountingWriter) Fprintf(format string, args ...any) (n int, err error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err = fmt.Fprintf(cw.w, format, args...)
	return cw.track(n, err)
}

// Line writes a single header field line "name: value\r\n".
func (cw *CountingWriter) Line(name string, value any) *CountingWriter {
	cw.Fprintf("%s: %v%s", name, value, CRLF) //nolint:errcheck
	return cw
}

// Call executes a RenderTo-style function and tracks bytes written.
// This is useful for chaining RenderTo calls.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	if cw.err != nil {
		return cw
	}
	cw.track(fn(cw.w)) //nolint:errcheck
	return cw
}

func (cw *CountingWriter) track(n int, err error) (int, error) {
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
		return n, errtrace.Wrap(cw.err)
	}
	return n, nil
}

// Result returns the total number of bytes written and any error encountered.
func (cw *CountingWriter) Result() (num int, err error) {
	return cw.num, errtrace.Wrap(cw.err)
}

// Count returns the total number of bytes written.
func (cw *CountingWriter) Count() int {
	return cw.num
}

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
