package bytestring

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// DefaultFormatStack is the size of the scratch array Format renders into
// before falling back to an exactly sized allocation.
const DefaultFormatStack = 4096

// Format returns the fmt.Sprintf rendering of format and args. Output of any
// length is produced in full.
func Format(format string, args ...any) *String {
	out := &String{}
	out.Appendf(format, args...)
	return out
}

// Appendf appends the fmt.Sprintf rendering of format and args.
func (s *String) Appendf(format string, args ...any) {
	var stack [DefaultFormatStack]byte
	s.appendFormatted(stack[:], format, args)
}

// appendFormatted renders once into scratch. When the output does not fit,
// it renders again into a buffer of exactly the reported size. s is only
// modified once rendering has finished, so args may refer to s itself.
func (s *String) appendFormatted(scratch []byte, format string, args []any) {
	w := boundedWriter{buf: scratch}
	render(&w, format, args)
	if w.n <= len(scratch) {
		s.Append(scratch[:w.n])
		return
	}

	size := w.n
	w = boundedWriter{buf: make([]byte, size)}
	render(&w, format, args)
	if w.n != size {
		panic(errors.AssertionFailedf("bytestring: format %q rendered %d bytes, then %d", format, size, w.n))
	}
	s.Append(w.buf)
}

func render(w *boundedWriter, format string, args []any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "bytestring: format %q", format))
	}
}

// boundedWriter copies what fits into buf and counts every byte offered.
type boundedWriter struct {
	buf []byte
	n   int
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	if w.n < len(w.buf) {
		copy(w.buf[w.n:], p)
	}
	w.n += len(p)
	return len(p), nil
}
