package ui

import (
	"io"
	"strings"
)

type colorWriter struct {
	w     io.Writer
	paint func(a ...interface{}) string
}

// NewColorWriter returns a writer that paints each message with paint before
// passing it to w. A trailing newline is kept outside the color codes.
func NewColorWriter(w io.Writer, paint func(a ...interface{}) string) io.Writer {
	return &colorWriter{w: w, paint: paint}
}

func (cw *colorWriter) Write(p []byte) (int, error) {
	msg := string(p)
	body := strings.TrimSuffix(msg, "\n")
	out := cw.paint(body)
	if len(body) != len(msg) {
		out += "\n"
	}
	if _, err := io.WriteString(cw.w, out); err != nil {
		return 0, err
	}
	return len(p), nil
}
