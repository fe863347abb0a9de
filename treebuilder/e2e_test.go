package treebuilder_test

import (
	"testing"

	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/htmldot"
	"github.com/arbor-dot/htmldot/kb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// elementChildren filters n's children down to *dot.Element, in order.
func elementChildren(n dot.Node) []*dot.Element {
	var out []*dot.Element
	for _, c := range n.Children() {
		if el, ok := c.(*dot.Element); ok {
			out = append(out, el)
		}
	}
	return out
}

func textOf(n dot.Node) (string, bool) {
	if t, ok := n.(*dot.Text); ok {
		return t.Data(), true
	}
	return "", false
}

// E1: minimal document.
func TestE2E_MinimalDocument(t *testing.T) {
	doc, errs := htmldot.Parse("<!doctype html><html><head></head><body>hi</body></html>")
	require.Empty(t, errs)

	require.NotNil(t, doc.Doctype)
	assert.Equal(t, "html", doc.Doctype.Name)

	html := doc.DocumentElement()
	require.NotNil(t, html)
	kids := elementChildren(html)
	require.Len(t, kids, 2)
	assert.Equal(t, kb.Head, kids[0].Tag)
	assert.Equal(t, kb.Body, kids[1].Tag)

	require.Len(t, kids[1].Children(), 1)
	text, ok := textOf(kids[1].Children()[0])
	require.True(t, ok)
	assert.Equal(t, "hi", text)
}

// E2: implicit html/head/body synthesis.
func TestE2E_ImplicitHTMLHeadBody(t *testing.T) {
	doc, errs := htmldot.Parse("<p>x</p>")
	require.Empty(t, errs)

	html := doc.DocumentElement()
	require.NotNil(t, html)
	kids := elementChildren(html)
	require.Len(t, kids, 2)
	assert.Equal(t, kb.Head, kids[0].Tag)
	assert.Equal(t, kb.Body, kids[1].Tag)

	body := kids[1]
	bodyKids := elementChildren(body)
	require.Len(t, bodyKids, 1)
	assert.Equal(t, kb.P, bodyKids[0].Tag)
}

// E3: misnested formatting runs through the adoption agency algorithm.
func TestE2E_AdoptionAgency(t *testing.T) {
	doc, errs := htmldot.Parse("<!doctype html><html><body><p>1<b>2<i>3</b>4</i>5</p></body></html>",
		htmldot.WithComplianceLevel(domerr.Partial))

	var sawMismatch bool
	for _, e := range errs {
		if e.Code == domerr.EndTagDoesNotMatchCurrentOpenElement {
			sawMismatch = true
		}
	}
	assert.True(t, sawMismatch, "expected an end-tag-mismatch parse error for </b>")

	html := doc.DocumentElement()
	body := elementChildren(html)[1]
	p := elementChildren(body)[0]

	// p's children: Text("1"), Element(b)[Text("2"), Element(i)[Text("3")]],
	// Element(i)[Text("4")], Text("5")
	pChildren := p.Children()
	require.GreaterOrEqual(t, len(pChildren), 4)

	text1, ok := textOf(pChildren[0])
	require.True(t, ok)
	assert.Equal(t, "1", text1)

	b, ok := pChildren[1].(*dot.Element)
	require.True(t, ok)
	assert.Equal(t, kb.B, b.Tag)

	bKids := b.Children()
	require.Len(t, bKids, 2)
	text2, ok := textOf(bKids[0])
	require.True(t, ok)
	assert.Equal(t, "2", text2)

	innerI, ok := bKids[1].(*dot.Element)
	require.True(t, ok)
	assert.Equal(t, kb.I, innerI.Tag)

	var secondI *dot.Element
	for _, c := range pChildren[2:] {
		if el, ok := c.(*dot.Element); ok && el.Tag == kb.I {
			secondI = el
			break
		}
	}
	require.NotNil(t, secondI, "expected a second <i> produced by the adoption agency's reconstruction")
	text4, ok := textOf(secondI.Children()[0])
	require.True(t, ok)
	assert.Equal(t, "4", text4)

	last := pChildren[len(pChildren)-1]
	text5, ok := textOf(last)
	require.True(t, ok)
	assert.Equal(t, "5", text5)
}

// E4: attribute order and no-value attributes are preserved as parsed.
func TestE2E_AttributeOrderPreserved(t *testing.T) {
	doc, errs := htmldot.Parse(`<!doctype html><html><body><div id=x class='a b' hidden data-n="1"></div></body></html>`)
	require.Empty(t, errs)

	html := doc.DocumentElement()
	body := elementChildren(html)[1]
	div := elementChildren(body)[0]
	assert.Equal(t, kb.Div, div.Tag)

	items := div.Attributes.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "id", items[0].QualifiedName())
	assert.Equal(t, "x", items[0].Value())
	assert.Equal(t, "class", items[1].QualifiedName())
	assert.Equal(t, "a b", items[1].Value())
	assert.Equal(t, "hidden", items[2].QualifiedName())
	assert.False(t, items[2].HasValue())
	assert.Equal(t, "data-n", items[3].QualifiedName())
	assert.Equal(t, "1", items[3].Value())
}

// E5: foreign content namespace switching across svg/foreignObject.
func TestE2E_ForeignContentNamespaces(t *testing.T) {
	doc, errs := htmldot.Parse(`<!doctype html><html><body><svg><circle cx="1"/><foreignObject><div>x</div></foreignObject></svg></body></html>`)
	require.Empty(t, errs)

	html := doc.DocumentElement()
	body := elementChildren(html)[1]
	svg := elementChildren(body)[0]
	assert.False(t, svg.IsHTMLNative())

	svgKids := elementChildren(svg)
	require.Len(t, svgKids, 2)

	circle := svgKids[0]
	assert.False(t, circle.IsHTMLNative())

	foreignObject := svgKids[1]
	assert.False(t, foreignObject.IsHTMLNative())

	foKids := elementChildren(foreignObject)
	require.Len(t, foKids, 1)
	div := foKids[0]
	assert.True(t, div.IsHTMLNative())
	assert.Equal(t, kb.Div, div.Tag)

	text, ok := textOf(div.Children()[0])
	require.True(t, ok)
	assert.Equal(t, "x", text)
}

// E6: character references decode inside attribute values.
func TestE2E_CharacterReferencesInAttributeValue(t *testing.T) {
	doc, errs := htmldot.Parse(`<!doctype html><html><body><div title="a&amp;b&#65;c"></div></body></html>`)
	require.Empty(t, errs)

	html := doc.DocumentElement()
	body := elementChildren(html)[1]
	div := elementChildren(body)[0]
	assert.Equal(t, "a&Ac", div.GetAttribute("title"))
}
