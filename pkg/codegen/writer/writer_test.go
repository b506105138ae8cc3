package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterIndentation(t *testing.T) {
	w := NewWriter("\t")

	w.WriteBlock("func main() {", "}", func() {
		w.WriteLine("if ok {")
		w.Indent()
		w.WriteLine("return")
		w.Dedent()
		w.WriteLine("}")
	})

	assert.Equal(t, "func main() {\n\tif ok {\n\t\treturn\n\t}\n}\n", w.String())
}

func TestWriterDedentFloor(t *testing.T) {
	w := NewWriter("  ")
	w.Dedent()
	w.WriteLine("x")
	assert.Equal(t, "x\n", w.String())
}

func TestWriterBlankLine(t *testing.T) {
	w := NewWriter("\t")
	w.BlankLine()
	assert.Equal(t, "", w.String())

	w.WriteLine("a")
	w.BlankLine()
	w.BlankLine()
	w.Write("b")
	w.BlankLine()
	w.WriteLine("c")

	assert.Equal(t, "a\n\nb\n\nc\n", w.String())
}

func TestWriterDocComments(t *testing.T) {
	w := NewWriter("\t")
	w.WriteDocComment("")
	w.WriteDocComment("  first\n\n   second  ")
	assert.Equal(t, "// first\n//\n// second\n", w.String())

	js := NewWriter("  ")
	js.WriteJSDoc("one line */ here")
	js.WriteJSDoc("a\nb")
	assert.Equal(t, "/** one line *\\/ here */\n/**\n * a\n * b\n */\n", js.String())
}

func TestWriterBytesIsCopy(t *testing.T) {
	w := NewWriter("\t")
	w.Write("abc")
	b := w.Bytes()
	b[0] = 'x'
	assert.Equal(t, "abc", w.String())
}
