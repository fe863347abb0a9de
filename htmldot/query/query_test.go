package query

import (
	"testing"

	"github.com/arbor-dot/htmldot/dot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T) *dot.Document {
	t.Helper()
	doc := dot.NewDocument()
	html := doc.CreateElement("html")
	require.NoError(t, dot.AppendChild(doc, html))

	div := doc.CreateElement("div")
	div.SetAttribute("class", "x")
	require.NoError(t, dot.AppendChild(html, div))

	span := doc.CreateElement("span")
	span.SetAttribute("class", "y")
	require.NoError(t, dot.AppendChild(html, span))

	return doc
}

func TestQuery_MatchesByTagAndAttr(t *testing.T) {
	doc := buildTree(t)

	matches, err := Query(doc, `Tag == "div" && Attr("class") == "x"`)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	el, ok := matches[0].(*dot.Element)
	require.True(t, ok)
	assert.Equal(t, "div", el.QualifiedName())
}

func TestQuery_NoMatches(t *testing.T) {
	doc := buildTree(t)

	matches, err := Query(doc, `Tag == "nope"`)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestQuery_InvalidExpressionErrors(t *testing.T) {
	doc := buildTree(t)
	_, err := Query(doc, `not valid expr (((`)
	assert.Error(t, err)
}
