package htmldot

import (
	"testing"

	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/kb"
	"github.com/arbor-dot/htmldot/nsmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MinimalDocument(t *testing.T) {
	doc, errs := Parse("<!DOCTYPE html><html><head></head><body></body></html>")
	require.Empty(t, errs)
	require.NotNil(t, doc.Doctype)
	assert.Equal(t, "html", doc.Doctype.Name)
	assert.Equal(t, dot.NoQuirks, doc.QuirksMode)

	html := doc.DocumentElement()
	require.NotNil(t, html)
	assert.Equal(t, kb.HTML, html.Tag)
}

func TestParse_ImplicitHeadAndBody(t *testing.T) {
	doc, _ := Parse("<p>hello</p>")
	html := doc.DocumentElement()
	require.NotNil(t, html)

	var headFound, bodyFound bool
	for _, c := range html.Children() {
		el, ok := c.(*dot.Element)
		if !ok {
			continue
		}
		switch el.Tag {
		case kb.Head:
			headFound = true
		case kb.Body:
			bodyFound = true
		}
	}
	assert.True(t, headFound, "expected an implicit head element")
	assert.True(t, bodyFound, "expected an implicit body element")
}

// Bare EOF input still drives the full Initial/BeforeHTML/BeforeHead/
// InHead/AfterHead cascade, which synthesizes the implied html/head/body
// skeleton per the tree-construction "anything else" rules in each of
// those modes (documented in DESIGN.md's open-question ledger) — it
// does not leave the Document childless.
func TestParse_EOFOnlyProducesImpliedSkeleton(t *testing.T) {
	doc, errs := Parse("")
	assert.Empty(t, errs)
	html := doc.DocumentElement()
	require.NotNil(t, html)
	assert.Equal(t, kb.HTML, html.Tag)
}

func TestParseFragment_ContextDrivenMode(t *testing.T) {
	nodes, errs := ParseFragment("<tr><td>1</td></tr>", "table", nsmap.HTML)
	require.Empty(t, errs)
	require.Len(t, nodes, 1)

	tbody, ok := nodes[0].(*dot.Element)
	require.True(t, ok)
	assert.Equal(t, kb.Tbody, tbody.Tag)
}

func TestParse_IframeSrcdocNeverQuirks(t *testing.T) {
	doc, _ := Parse("garbage doctype forces quirks in a normal document\n<html></html>",
		WithIframeSrcdoc(true))
	assert.Equal(t, dot.NoQuirks, doc.QuirksMode)
}
