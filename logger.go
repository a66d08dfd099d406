package fuzzstream

// Logf is the package-level diagnostic logger for evictions, merges and
// rejected points. It is a no-op by default; use SetLogger to enable it.
var Logf func(format string, v ...any) = func(string, ...any) {}

// SetLogger replaces the package logger, e.g. SetLogger(log.Printf).
// Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}
