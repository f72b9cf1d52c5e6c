package writer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(fn func(w *Writer)) string {
	var buf bytes.Buffer
	w := New(&buf, "\t")
	fn(w)
	_ = w.Flush()
	return buf.String()
}

func TestWriter_BasicWriting(t *testing.T) {
	// Test: Basic write operations
	out := render(func(w *Writer) {
		w.Write("hello")
		w.Write(" world")
	})
	assert.Equal(t, "hello world", out)
}

func TestWriter_WriteLine(t *testing.T) {
	// Test: WriteLine adds newline
	out := render(func(w *Writer) {
		w.WriteLine("line1")
		w.WriteLine("line2")
	})
	assert.Equal(t, "line1\nline2\n", out)
}

func TestWriter_Indentation(t *testing.T) {
	// Test: Proper indentation handling
	out := render(func(w *Writer) {
		w.WriteLine("func main() {")
		w.Indent()
		w.WriteLine("return")
		w.Dedent()
		w.WriteLine("}")
	})
	assert.Equal(t, "func main() {\n\treturn\n}\n", out)
}

func TestWriter_DedentBelowZero(t *testing.T) {
	// Test: Dedent never goes below zero
	out := render(func(w *Writer) {
		w.Dedent()
		w.WriteLine("top")
	})
	assert.Equal(t, "top\n", out)
}

func TestWriter_BlankLine(t *testing.T) {
	// Test: BlankLine collapses repeats and does nothing before any output
	out := render(func(w *Writer) {
		w.BlankLine()
		w.WriteLine("a")
		w.BlankLine()
		w.BlankLine()
		w.WriteLine("b")
	})
	assert.Equal(t, "a\n\nb\n", out)
}

func TestWriter_WriteBlock(t *testing.T) {
	// Test: WriteBlock indents its content
	out := render(func(w *Writer) {
		w.WriteBlock("if ok {", "}", func() {
			w.WriteLine("return")
		})
	})
	assert.Equal(t, "if ok {\n\treturn\n}\n", out)
}

func TestWriter_Writef(t *testing.T) {
	// Test: Formatted writes
	out := render(func(w *Writer) {
		w.WriteLinef("package %s", "demo")
	})
	assert.Equal(t, "package demo\n", out)
}

type failingSink struct{}

func (failingSink) Write(p []byte) (int, error) {
	return 0, errors.New("sink failed")
}

func TestWriter_StickyError(t *testing.T) {
	// Test: The first sink error is remembered and returned by Flush
	w := New(failingSink{}, "\t")
	for i := 0; i < 10000; i++ {
		w.WriteLine("some line long enough to overflow the internal buffer")
	}
	require.Error(t, w.Flush())
	assert.Error(t, w.Err())
}
