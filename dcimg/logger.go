package dcimg

import (
	"fmt"
	"os"
	"time"
)

// Logger is a minimal step/progress logger for tools built on this
// package.
type Logger struct {
	stepStart  time.Time
	totalStart time.Time
}

func NewLogger() *Logger {
	return &Logger{
		totalStart: time.Now(),
	}
}

// Step starts a processing step.
// Format: [name] param ...
func (l *Logger) Step(name string, params ...interface{}) {
	l.stepStart = time.Now()
	if len(params) > 0 {
		fmt.Printf("[%s] %v ... ", name, params[0])
	} else {
		fmt.Printf("[%s] ", name)
	}
}

// Done finishes the current step.
// Format: -> result (elapsed)
func (l *Logger) Done(result string) {
	elapsed := time.Since(l.stepStart)
	if elapsed > 100*time.Millisecond {
		fmt.Printf("-> %s (%.2fs)\n", result, elapsed.Seconds())
	} else {
		fmt.Printf("-> %s\n", result)
	}
}

// Total prints the total elapsed time.
func (l *Logger) Total() {
	total := time.Since(l.totalStart)
	fmt.Printf("\ntotal: %.2fs\n", total.Seconds())
}

// Info prints an informational line (untimed).
func (l *Logger) Info(format string, args ...interface{}) {
	fmt.Printf("  - "+format+"\n", args...)
}

// Warn prints a warning line.
func (l *Logger) Warn(format string, args ...interface{}) {
	fmt.Printf("  ! "+format+"\n", args...)
}

var debugEnabled = os.Getenv("DCIMG_DEBUG") != ""

func debug(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
