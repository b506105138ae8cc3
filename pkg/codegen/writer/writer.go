package writer

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer accumulates generated source with indentation tracking
type Writer struct {
	buf         bytes.Buffer
	indent      string
	level       int
	atLineStart bool
}

// NewWriter creates a writer indenting each level with indent
func NewWriter(indent string) *Writer {
	return &Writer{indent: indent, atLineStart: true}
}

// Indent increases the indentation level
func (w *Writer) Indent() {
	w.level++
}

// Dedent decreases the indentation level
func (w *Writer) Dedent() {
	if w.level > 0 {
		w.level--
	}
}

// Write writes s, indenting it when it starts a line
func (w *Writer) Write(s string) {
	if s == "" {
		return
	}
	if w.atLineStart {
		w.buf.WriteString(strings.Repeat(w.indent, w.level))
		w.atLineStart = false
	}
	w.buf.WriteString(s)
}

// Writef writes a formatted string without adding a newline
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes s followed by a newline
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef writes a formatted line
func (w *Writer) WriteLinef(format string, args ...any) {
	w.WriteLine(fmt.Sprintf(format, args...))
}

// Newline ends the current line
func (w *Writer) Newline() {
	w.buf.WriteByte('\n')
	w.atLineStart = true
}

// BlankLine adds an empty line unless the output is empty or already ends
// with one
func (w *Writer) BlankLine() {
	b := w.buf.Bytes()
	if len(b) == 0 || bytes.HasSuffix(b, []byte("\n\n")) {
		return
	}
	if !w.atLineStart {
		w.Newline()
	}
	w.Newline()
}

// WriteBlock writes opener, the indented content and closer
func (w *Writer) WriteBlock(opener, closer string, content func()) {
	w.WriteLine(opener)
	w.Indent()
	content()
	w.Dedent()
	w.WriteLine(closer)
}

// WriteDocComment writes doc as // comment lines; nothing for an empty doc
func (w *Writer) WriteDocComment(doc string) {
	for _, line := range docLines(doc) {
		if line == "" {
			w.WriteLine("//")
			continue
		}
		w.WriteLine("// " + line)
	}
}

// WriteJSDoc writes doc as a /** */ block; a single line stays on one line
func (w *Writer) WriteJSDoc(doc string) {
	lines := docLines(doc)
	switch len(lines) {
	case 0:
		return
	case 1:
		w.WriteLinef("/** %s */", escapeJSDoc(lines[0]))
		return
	}
	w.WriteLine("/**")
	for _, line := range lines {
		if line == "" {
			w.WriteLine(" *")
			continue
		}
		w.WriteLine(" * " + escapeJSDoc(line))
	}
	w.WriteLine(" */")
}

// String returns the generated source
func (w *Writer) String() string {
	return w.buf.String()
}

// Bytes returns a copy of the generated source
func (w *Writer) Bytes() []byte {
	return bytes.Clone(w.buf.Bytes())
}

func docLines(doc string) []string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

func escapeJSDoc(s string) string {
	return strings.ReplaceAll(s, "*/", "*\\/")
}
