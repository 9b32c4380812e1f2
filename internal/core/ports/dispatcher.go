package ports

// Dispatcher runs the read-parse-dispatch-execute loop.
type Dispatcher interface {
	// Run returns nil when the shell stops normally (exit or end of input).
	Run() error
}
