package solmeta

import (
	"fmt"
	"io"
	"sync"
)

// Logger receives one-line diagnostics when a load fails. Implementations
// must be safe for concurrent use.
type Logger interface {
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Errorf(string, ...any) {}

// ConsoleLogger writes diagnostics to a single writer, one line per message.
type ConsoleLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleLogger creates a ConsoleLogger writing to w, typically os.Stderr.
func NewConsoleLogger(w io.Writer) *ConsoleLogger {
	return &ConsoleLogger{w: w}
}

func (l *ConsoleLogger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "sol: "+format+"\n", args...)
}
