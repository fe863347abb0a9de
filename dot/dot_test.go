package dot

import (
	"testing"

	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/nsmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChildLinksParentAndSiblings(t *testing.T) {
	doc := NewDocument()
	html := doc.CreateElement("html")
	body := doc.CreateElement("body")
	p1 := doc.CreateElement("p")
	p2 := doc.CreateElement("p")

	require.NoError(t, AppendChild(doc, html))
	require.NoError(t, AppendChild(html, body))
	require.NoError(t, AppendChild(body, p1))
	require.NoError(t, AppendChild(body, p2))

	assert.Same(t, html, doc.DocumentElement())
	assert.Equal(t, Node(body), p1.Parent())
	assert.Equal(t, Node(p2), p1.NextSibling())
	assert.Equal(t, Node(p1), p2.PrevSibling())
	assert.Nil(t, p1.PrevSibling())
	assert.Nil(t, p2.NextSibling())
	assert.Same(t, doc, html.OwnerDocument())
	assert.Same(t, doc, p1.OwnerDocument())
}

func TestInsertBeforeRejectsCycle(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("div")
	b := doc.CreateElement("span")
	require.NoError(t, AppendChild(a, b))

	err := AppendChild(b, a)
	require.Error(t, err)
	domErr, ok := err.(*domerr.DOMError)
	require.True(t, ok)
	assert.Equal(t, domerr.HierarchyRequestError, domErr.Code)
}

func TestDocumentRejectsTextChild(t *testing.T) {
	doc := NewDocument()
	txt := doc.CreateTextNode("stray")
	err := AppendChild(doc, txt)
	require.Error(t, err)
	domErr, ok := err.(*domerr.DOMError)
	require.True(t, ok)
	assert.Equal(t, domerr.HierarchyRequestError, domErr.Code)
}

func TestRemoveChildDetaches(t *testing.T) {
	doc := NewDocument()
	body := doc.CreateElement("body")
	p := doc.CreateElement("p")
	require.NoError(t, AppendChild(body, p))
	require.NoError(t, RemoveChild(body, p))
	assert.Nil(t, p.Parent())
	assert.Empty(t, body.Children())
}

func TestReplaceChildSwapsInPlace(t *testing.T) {
	doc := NewDocument()
	body := doc.CreateElement("body")
	p := doc.CreateElement("p")
	section := doc.CreateElement("section")
	require.NoError(t, AppendChild(body, p))
	require.NoError(t, ReplaceChild(body, section, p))
	assert.Equal(t, []Node{section}, body.Children())
	assert.Nil(t, p.Parent())
}

func TestAdoptNodeRestampsWholeSubtree(t *testing.T) {
	docA := NewDocument()
	docB := NewDocument()
	div := docA.CreateElement("div")
	span := docA.CreateElement("span")
	require.NoError(t, AppendChild(div, span))

	require.NoError(t, AdoptNode(docB, div))
	assert.Same(t, docB, div.OwnerDocument())
	assert.Same(t, docB, span.OwnerDocument())
}

func TestNamedNodeMapLowercasesForHTMLNativeElements(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	div.SetAttribute("Class", "x")
	assert.Equal(t, "x", div.GetAttribute("class"))
	assert.True(t, div.HasAttribute("CLASS"))
}

func TestNamedNodeMapPreservesCaseForForeignElements(t *testing.T) {
	doc := NewDocument()
	svg := doc.CreateElementNS(nsmap.SVG, "svg")
	a := newAttr(doc.Namespaces, nsmap.None, "", "viewBox")
	a.SetValue("0 0 1 1")
	svg.Attributes.Set(a)
	assert.Nil(t, svg.Attributes.Get("viewbox"))
	assert.Equal(t, a, svg.Attributes.Get("viewBox"))
}

func TestAttrNoValueIsDistinctFromEmptyValue(t *testing.T) {
	doc := NewDocument()
	input := doc.CreateElement("input")
	input.SetAttribute("disabled", "")
	assert.True(t, input.Attributes.Get("disabled").HasValue())

	attr := newAttr(doc.Namespaces, nsmap.None, "", "hidden")
	input.Attributes.Set(attr)
	assert.False(t, input.Attributes.Get("hidden").HasValue())
}

func TestAttrSiblingLinksWalkOwnerAttributeList(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	div.SetAttribute("id", "x")
	div.SetAttribute("class", "y")
	first := div.Attributes.Item(0)
	second := div.Attributes.Item(1)
	assert.Equal(t, Node(second), first.NextSibling())
	assert.Equal(t, Node(first), second.PrevSibling())
	assert.Nil(t, first.PrevSibling())
	assert.Nil(t, second.NextSibling())
}

func TestTemplateElementGetsContentFragment(t *testing.T) {
	doc := NewDocument()
	tmpl := doc.CreateElement("template")
	require.NotNil(t, tmpl.TemplateContent)

	other := doc.CreateElement("div")
	assert.Nil(t, other.TemplateContent)
}

func TestQuirksModeClassification(t *testing.T) {
	doc := NewDocument()
	doc.SetQuirksModeFromDoctype("html", "", "", false)
	assert.Equal(t, NoQuirks, doc.QuirksMode)

	doc2 := NewDocument()
	doc2.SetQuirksModeFromDoctype("html", "-//W3C//DTD HTML 4.01 Transitional//EN", "", false)
	assert.Equal(t, Quirks, doc2.QuirksMode)

	doc3 := NewDocument()
	doc3.SetQuirksModeFromDoctype("html", "-//W3C//DTD HTML 4.01 Transitional//EN", "http://www.w3.org/TR/html4/loose.dtd", false)
	assert.Equal(t, LimitedQuirks, doc3.QuirksMode)

	doc4 := NewDocument()
	doc4.SetQuirksModeFromDoctype("not-html", "", "", false)
	assert.Equal(t, Quirks, doc4.QuirksMode)
}

func TestTextContentConcatenatesDescendants(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement("p")
	require.NoError(t, AppendChild(p, doc.CreateTextNode("Hello, ")))
	b := doc.CreateElement("b")
	require.NoError(t, AppendChild(b, doc.CreateTextNode("world")))
	require.NoError(t, AppendChild(p, b))
	require.NoError(t, AppendChild(p, doc.CreateTextNode("!")))

	assert.Equal(t, "Hello, world!", p.TextContent())
}
