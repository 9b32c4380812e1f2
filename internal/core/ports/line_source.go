package ports

import "errors"

// ErrInterrupted is returned by a LineSource when the user interrupts the
// line being edited (e.g., Ctrl-C). The partial line is discarded.
var ErrInterrupted = errors.New("line input interrupted")

/*
LineSource supplies one line of user input per call.
ReadLine returns io.EOF once the input is exhausted. A final line without a
trailing newline is returned before io.EOF is reported.
*/
type LineSource interface {
	ReadLine(prompt string) (string, error)
	Close() error
}
