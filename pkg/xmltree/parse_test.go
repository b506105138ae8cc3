package xmltree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTree(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<w:definitions xmlns:w="urn:w" name="Svc" targetNamespace="urn:t">
  <w:documentation>  Hello  </w:documentation>
  <w:message name="A"/>
  <w:message name="B"/>
</w:definitions>`

	root, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.True(t, root.Is("urn:w", "definitions"))
	assert.Equal(t, "Svc", root.AttrValue("name"))
	v, ok := root.Attr("targetNamespace")
	assert.True(t, ok)
	assert.Equal(t, "urn:t", v)
	_, ok = root.Attr("missing")
	assert.False(t, ok)

	// namespace declarations are not attributes
	assert.Len(t, root.Attrs, 2)

	messages := root.ChildrenNamed("urn:w", "message")
	require.Len(t, messages, 2)
	assert.Equal(t, "A", messages[0].AttrValue("name"))
	assert.Equal(t, "B", messages[1].AttrValue("name"))
	assert.Same(t, root, messages[0].Parent)
	assert.Same(t, root, messages[1].Ancestor("urn:w", "definitions"))

	doc2 := root.FirstChild("urn:w", "documentation")
	require.NotNil(t, doc2)
	assert.Equal(t, "  Hello  ", doc2.Text())
	assert.Greater(t, doc2.Line, 1)
}

func TestParseScopesAreShared(t *testing.T) {
	root, err := ParseBytes([]byte(`<r xmlns:p="urn:p"><c><d xmlns:q="urn:q"/></c></r>`))
	require.NoError(t, err)

	c := root.Children[0]
	d := c.Children[0]

	assert.Same(t, root.Scope(), c.Scope())
	assert.NotSame(t, c.Scope(), d.Scope())
	assert.Same(t, c.Scope(), d.Scope().Parent())
	assert.Equal(t, map[string]string{"p": "urn:p", "q": "urn:q"}, d.Scope().Bindings())
	assert.Equal(t, []string{"p", "q"}, d.Scope().Prefixes())
}

func TestParseLatin1(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><r>caf\xe9</r>"
	root, err := ParseBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "café", root.Text())
}

func TestParseErrors(t *testing.T) {
	_, err := ParseBytes([]byte(""))
	assert.ErrorIs(t, err, ErrNoRoot)

	_, err = ParseBytes([]byte("<a><b></a>"))
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	root, err := ParseBytes([]byte(`<a><b><c/></b><d/></a>`))
	require.NoError(t, err)

	var seen []string
	root.Walk(func(n *Node) bool {
		seen = append(seen, n.Local)
		return n.Local != "b"
	})
	assert.Equal(t, []string{"a", "b", "d"}, seen)
}

func TestInnerText(t *testing.T) {
	root, err := ParseBytes([]byte(`<doc>Returns <b>the <i>last</i> trade</b> price.<br/> Delayed.</doc>`))
	require.NoError(t, err)

	assert.Equal(t, "Returns  price. Delayed.", root.Text())
	assert.Equal(t, "Returns the last trade price. Delayed.", root.InnerText())
	assert.Equal(t, "the last trade", root.Children[0].InnerText())
	assert.Equal(t, "", root.Children[1].InnerText())

	var missing *Node
	assert.Equal(t, "", missing.InnerText())
}
