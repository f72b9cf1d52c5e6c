// Package writer provides an indentation-aware text writer used by all code
// generators. Errors from the underlying sink are sticky: the first failure
// is remembered and later writes become no-ops, so emission code can stay
// free of per-line error checks.
package writer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Writer emits formatted code with proper indentation into an io.Writer.
type Writer struct {
	out              *bufio.Writer
	indentLevel      int
	indentString     string
	linePrefix       string
	needsIndent      bool
	trailingNewlines int
	wroteAny         bool
	err              error
}

// New creates a writer emitting into out with the given indentation string.
func New(out io.Writer, indentString string) *Writer {
	return &Writer{
		out:          bufio.NewWriter(out),
		indentString: indentString,
		needsIndent:  true,
	}
}

// Indent increases the indentation level.
func (w *Writer) Indent() {
	w.indentLevel++
	w.updatePrefix()
}

// Dedent decreases the indentation level.
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
		w.updatePrefix()
	}
}

// Write writes a string without adding a newline.
func (w *Writer) Write(s string) {
	if w.err != nil || s == "" {
		return
	}
	if w.needsIndent {
		if _, err := w.out.WriteString(w.linePrefix); err != nil {
			w.err = err
			return
		}
		w.needsIndent = false
	}
	if _, err := w.out.WriteString(s); err != nil {
		w.err = err
		return
	}
	w.wroteAny = true
	w.trailingNewlines = 0
}

// Writef writes a formatted string without adding a newline.
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes a string and adds a newline.
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef writes a formatted string and adds a newline.
func (w *Writer) WriteLinef(format string, args ...any) {
	w.Writef(format, args...)
	w.Newline()
}

// Newline adds a newline character.
func (w *Writer) Newline() {
	if w.err != nil {
		return
	}
	if err := w.out.WriteByte('\n'); err != nil {
		w.err = err
		return
	}
	w.wroteAny = true
	w.trailingNewlines++
	w.needsIndent = true
}

// BlankLine adds an empty line unless one is already pending.
func (w *Writer) BlankLine() {
	if w.wroteAny && w.trailingNewlines < 2 {
		w.Newline()
	}
}

// IndentLevel returns the current indentation level.
func (w *Writer) IndentLevel() int {
	return w.indentLevel
}

// WriteBlock writes content inside a block with proper indentation.
// Example: WriteBlock("if true {", "}", func() { w.WriteLine("return") })
func (w *Writer) WriteBlock(opener, closer string, content func()) {
	w.WriteLine(opener)
	w.Indent()
	content()
	w.Dedent()
	w.WriteLine(closer)
}

// Err returns the first error encountered by the underlying sink.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes any buffered output to the sink and returns the first error
// seen, if any.
func (w *Writer) Flush() error {
	if err := w.out.Flush(); err != nil && w.err == nil {
		w.err = err
	}
	return w.err
}

func (w *Writer) updatePrefix() {
	w.linePrefix = strings.Repeat(w.indentString, w.indentLevel)
}
