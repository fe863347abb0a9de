package htmldot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// oracleTextContent extracts the same kind of data TextContent would —
// the concatenation of every descendant text node — from an x/net/html
// tree, the way the teacher's ConvertHTMLToXML walks an x/net/html.Node
// tree. It exists purely as an independent cross-check oracle; core
// parsing never imports x/net/html.
func oracleTextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// TestAgainstReferenceOracle cross-checks this package's own parser
// against x/net/html on every fixture under testdata/, including the
// adoption-agency case in misnested.html: both parsers should see the
// same text content (§8.2's round-trip property,
// tested against an independent implementation rather than ourselves).
func TestAgainstReferenceOracle(t *testing.T) {
	matches, err := filepath.Glob("testdata/*.html")
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for _, fixture := range matches {
		fixture := fixture
		t.Run(filepath.Base(fixture), func(t *testing.T) {
			data, err := os.ReadFile(fixture)
			require.NoError(t, err)

			oracleRoot, err := html.Parse(strings.NewReader(string(data)))
			require.NoError(t, err)

			doc, errs := Parse(string(data))
			require.Empty(t, errs)

			assert.Equal(t, oracleTextContent(oracleRoot), doc.TextContent())
		})
	}
}
