package htmldot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_VoidElementOmitsClosingTag(t *testing.T) {
	doc, errs := Parse("<!DOCTYPE html><html><body><img src=\"a.png\"><p>x</p></body></html>")
	require.Empty(t, errs)

	out := String(doc)
	assert.Contains(t, out, `<img src="a.png">`)
	assert.NotContains(t, out, "</img>")
	assert.Contains(t, out, "<p>x</p>")
}

func TestSerialize_EscapesReservedCharacters(t *testing.T) {
	doc, _ := Parse(`<!DOCTYPE html><html><body><p>a &lt; b &amp; c</p></body></html>`)
	out := String(doc)
	assert.Contains(t, out, "a &lt; b &amp; c")
}

func TestSerialize_DoctypeAndComment(t *testing.T) {
	doc, _ := Parse("<!DOCTYPE html><!--hi--><html></html>")
	out := String(doc)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<!--hi-->")
}

func TestSerialize_RoundTripStructuralEquality(t *testing.T) {
	doc, errs := Parse("<!doctype html><html><head></head><body>hi</body></html>")
	require.Empty(t, errs)

	serialized := String(doc)
	doc2, errs2 := Parse(serialized)
	require.Empty(t, errs2)

	assert.Equal(t, String(doc), String(doc2))
}
