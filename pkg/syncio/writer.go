// Package syncio provides a mutex-guarded writer for serializing output
// from concurrently running tasks. It is independent of the pool; the pool
// core never writes anything.
package syncio

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Writer wraps an io.Writer so that each print call lands as one
// uninterrupted unit, regardless of how many goroutines write through it.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// New creates a Writer over out. A nil out defaults to standard output.
func New(out io.Writer) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

// Print formats its arguments like fmt.Print and writes them atomically.
func (w *Writer) Print(args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprint(w.out, args...)
}

// Println formats its arguments like fmt.Println and writes them atomically.
func (w *Writer) Println(args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, args...)
}

// Printf formats according to format and writes the result atomically.
func (w *Writer) Printf(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, format, args...)
}
