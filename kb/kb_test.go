package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagRoundTripHTML(t *testing.T) {
	for _, s := range []string{"div", "DIV", "Div"} {
		assert.Equal(t, Div, TagFromHTMLString(s))
	}
	assert.Equal(t, "div", Div.String())
}

func TestTagRoundTripUnknownIsOther(t *testing.T) {
	assert.Equal(t, Other, TagFromHTMLString("frobnicate"))
}

func TestSVGTagCanonicalCamelCase(t *testing.T) {
	assert.Equal(t, ForeignObject, TagFromSVGString("foreignobject"))
	assert.Equal(t, ForeignObject, TagFromSVGString("FOREIGNOBJECT"))
	assert.Equal(t, "foreignObject", ForeignObject.String())
}

func TestAdjustSVGTagNameIdempotent(t *testing.T) {
	once := AdjustSVGTagName("foreignObject")
	twice := AdjustSVGTagName(once)
	assert.Equal(t, once, twice)
}

func TestMathMLIsCaseSensitive(t *testing.T) {
	assert.Equal(t, Math, TagFromMathMLString("math"))
	assert.Equal(t, Other, TagFromMathMLString("MATH"))
}

func TestVoidElementsAreWHATWGAuthoritative(t *testing.T) {
	for _, tag := range []Tag{Area, Base, Br, Col, Embed, Hr, Img, Input, Link, Meta, Param, Source, Track, Wbr} {
		assert.True(t, IsVoid(tag), "%s should be void", tag)
		assert.Equal(t, Void, tag.Structure())
	}
	assert.False(t, IsVoid(Div))
	assert.Equal(t, Paired, Div.Structure())
}

func TestAttributeFromStringPrefixes(t *testing.T) {
	assert.Equal(t, AttrDataPrefix, AttributeFromString("data-foo"))
	assert.Equal(t, AttrAriaPrefix, AttributeFromString("aria-hidden"))
	assert.Equal(t, AttrXMLNSPrefix, AttributeFromString("xmlns:xlink"))
	assert.Equal(t, AttrHref, AttributeFromString("HREF"))
}

func TestGlobalAttributesLegalEverywhere(t *testing.T) {
	assert.True(t, IsAttributeLegal(Div, AttrClass))
	assert.True(t, IsAttributeLegal(Span, AttrDataPrefix))
}

func TestPerTagAttributeLegality(t *testing.T) {
	assert.True(t, IsAttributeLegal(A, AttrHref))
	assert.False(t, IsAttributeLegal(Div, AttrHref))
}

func TestAutoCloseTable(t *testing.T) {
	assert.True(t, AutoCloses(P, Div))
	assert.True(t, AutoCloses(Li, Li))
	assert.True(t, AutoCloses(Td, Th))
	assert.False(t, AutoCloses(Span, Div))
}

func TestNamedCharRefTrieLongestMatch(t *testing.T) {
	trie := NewCharRefTrie()
	n := trie.Root()
	var lastRef CharRef
	var found bool
	for _, b := range []byte("amp;") {
		next, ok := trie.Step(n, b)
		if !ok {
			break
		}
		n = next
		if ref, ok2, _ := n.Ref(); ok2 {
			lastRef = ref
			found = true
		}
	}
	if assert.True(t, found) {
		assert.Equal(t, []rune{'&'}, lastRef.CodePoints)
	}
}

func TestNamedCharRefWithoutSemicolon(t *testing.T) {
	trie := NewCharRefTrie()
	n := trie.Root()
	for _, b := range []byte("amp") {
		next, ok := trie.Step(n, b)
		if !assert.True(t, ok) {
			return
		}
		n = next
	}
	ref, ok, hasSemi := n.Ref()
	if assert.True(t, ok) {
		assert.Equal(t, []rune{'&'}, ref.CodePoints)
		assert.False(t, hasSemi)
	}
}
