package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/stream"
	"github.com/arbor-dot/htmldot/token"
)

func tokenize(t *testing.T, input string) ([]token.Token, *domerr.Reporter) {
	t.Helper()
	r := domerr.NewReporter(domerr.Strict)
	tk := New(stream.New([]rune(input)), r)
	var toks []token.Token
	for {
		tok := tk.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, r
}

func charsOf(toks []token.Token) string {
	var s []rune
	for _, tok := range toks {
		if tok.Kind == token.Character {
			s = append(s, tok.CodePoint)
		}
	}
	return string(s)
}

func TestDataStateEmitsCharactersAndEOF(t *testing.T) {
	toks, _ := tokenize(t, "hi")
	require.Len(t, toks, 3)
	assert.Equal(t, "hi", charsOf(toks))
	assert.Equal(t, token.EOF, toks[2].Kind)
}

func TestSimpleStartAndEndTag(t *testing.T) {
	toks, _ := tokenize(t, "<p>hi</p>")
	require.Len(t, toks, 5)
	assert.Equal(t, token.StartTag, toks[0].Kind)
	assert.Equal(t, "p", toks[0].TagName)
	assert.Equal(t, "hi", charsOf(toks))
	assert.Equal(t, token.EndTag, toks[3].Kind)
	assert.Equal(t, "p", toks[3].TagName)
}

func TestStartTagWithAttributes(t *testing.T) {
	toks, _ := tokenize(t, `<a href="x" target='_blank' disabled>`)
	require.GreaterOrEqual(t, len(toks), 1)
	tag := toks[0]
	require.Equal(t, token.StartTag, tag.Kind)
	require.Len(t, tag.Attributes, 3)
	assert.Equal(t, "href", tag.Attributes[0].Name)
	assert.Equal(t, "x", tag.Attributes[0].Value)
	assert.Equal(t, dot.QuoteDouble, tag.Attributes[0].Quote)
	assert.Equal(t, "target", tag.Attributes[1].Name)
	assert.Equal(t, "_blank", tag.Attributes[1].Value)
	assert.Equal(t, dot.QuoteSingle, tag.Attributes[1].Quote)
	assert.Equal(t, "disabled", tag.Attributes[2].Name)
	assert.False(t, tag.Attributes[2].HasValue)
}

func TestDuplicateAttributeDropped(t *testing.T) {
	toks, r := tokenize(t, `<a href="x" href="y">`)
	require.Len(t, toks[0].Attributes, 1)
	assert.Equal(t, "x", toks[0].Attributes[0].Value)
	found := false
	for _, e := range r.Events() {
		if e.Code == domerr.DuplicateAttribute {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAttributeImmediatelyAdjacentResetsBuilders(t *testing.T) {
	toks, _ := tokenize(t, `<a b="1"c="2">`)
	require.Len(t, toks[0].Attributes, 2)
	assert.Equal(t, "b", toks[0].Attributes[0].Name)
	assert.Equal(t, "1", toks[0].Attributes[0].Value)
	assert.Equal(t, "c", toks[0].Attributes[1].Name)
	assert.Equal(t, "2", toks[0].Attributes[1].Value)
}

func TestSelfClosingStartTag(t *testing.T) {
	toks, _ := tokenize(t, `<br/>`)
	require.Equal(t, token.StartTag, toks[0].Kind)
	assert.True(t, toks[0].SelfClosing)
}

func TestEndTagWithAttributesReportsError(t *testing.T) {
	_, r := tokenize(t, `<p></p a="1">`)
	found := false
	for _, e := range r.Events() {
		if e.Code == domerr.EndTagWithAttributes {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBasicComment(t *testing.T) {
	toks, _ := tokenize(t, `<!-- hello -->`)
	require.Equal(t, token.Comment, toks[0].Kind)
	assert.Equal(t, " hello ", toks[0].Data)
}

func TestAbruptClosingOfEmptyComment(t *testing.T) {
	toks, r := tokenize(t, `<!-->`)
	require.Equal(t, token.Comment, toks[0].Kind)
	assert.Equal(t, "", toks[0].Data)
	found := false
	for _, e := range r.Events() {
		if e.Code == domerr.AbruptClosingOfEmptyComment {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNestedCommentReportsError(t *testing.T) {
	_, r := tokenize(t, `<!-- a <!-- b --> c -->`)
	found := false
	for _, e := range r.Events() {
		if e.Code == domerr.NestedComment {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBogusCommentFromBangNotDoctypeOrComment(t *testing.T) {
	toks, r := tokenize(t, `<!weird>`)
	require.Equal(t, token.Comment, toks[0].Kind)
	assert.Equal(t, "weird", toks[0].Data)
	found := false
	for _, e := range r.Events() {
		if e.Code == domerr.IncorrectlyOpenedComment {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDoctypeBasic(t *testing.T) {
	toks, _ := tokenize(t, `<!DOCTYPE html>`)
	require.Equal(t, token.DOCTYPE, toks[0].Kind)
	assert.Equal(t, "html", toks[0].Name)
	assert.False(t, toks[0].ForceQuirks)
}

func TestDoctypeWithPublicAndSystemIdentifiers(t *testing.T) {
	toks, _ := tokenize(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`)
	d := toks[0]
	require.Equal(t, token.DOCTYPE, d.Kind)
	assert.True(t, d.HasPublicID)
	assert.Equal(t, "-//W3C//DTD HTML 4.01//EN", d.PublicID)
	assert.True(t, d.HasSystemID)
	assert.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", d.SystemID)
}

func TestDoctypeMissingNameForcesQuirks(t *testing.T) {
	toks, r := tokenize(t, `<!DOCTYPE >`)
	require.Equal(t, token.DOCTYPE, toks[0].Kind)
	assert.True(t, toks[0].ForceQuirks)
	found := false
	for _, e := range r.Events() {
		if e.Code == domerr.MissingDoctypeName {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDoctypeSystemKeywordMissingWhitespaceBeforeQuote(t *testing.T) {
	toks, r := tokenize(t, `<!DOCTYPE html SYSTEM"x">`)
	require.Equal(t, token.DOCTYPE, toks[0].Kind)
	assert.True(t, toks[0].HasSystemID)
	assert.Equal(t, "x", toks[0].SystemID)
	found := false
	for _, e := range r.Events() {
		if e.Code == domerr.MissingWhitespaceAfterDoctypeSystemKeyword {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNamedCharacterReferenceWithSemicolon(t *testing.T) {
	toks, _ := tokenize(t, `a &amp; b`)
	assert.Equal(t, "a & b", charsOf(toks))
}

func TestNamedCharacterReferenceLongestMatch(t *testing.T) {
	toks, r := tokenize(t, `&notin;`)
	assert.Equal(t, "∉", charsOf(toks))
	assert.Empty(t, r.Events())
}

func TestNamedCharacterReferenceWithoutSemicolonReportsError(t *testing.T) {
	toks, r := tokenize(t, `&amp b`)
	assert.Equal(t, "& b", charsOf(toks))
	found := false
	for _, e := range r.Events() {
		if e.Code == domerr.MissingSemicolonAfterCharacterReference {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAmbiguousAmpersandFallsThrough(t *testing.T) {
	toks, _ := tokenize(t, `&notareference;`)
	assert.Equal(t, "&notareference;", charsOf(toks))
}

func TestNamedCharacterReferenceInAttributeWithoutSemicolonBeforeEquals(t *testing.T) {
	toks, _ := tokenize(t, `<a b="&amp=1">`)
	require.Len(t, toks[0].Attributes, 1)
	assert.Equal(t, "&amp=1", toks[0].Attributes[0].Value)
}

func TestDecimalCharacterReference(t *testing.T) {
	toks, _ := tokenize(t, `&#65;`)
	assert.Equal(t, "A", charsOf(toks))
}

func TestHexCharacterReference(t *testing.T) {
	toks, _ := tokenize(t, `&#x41;`)
	assert.Equal(t, "A", charsOf(toks))
}

func TestNumericCharacterReferenceZeroBecomesReplacementChar(t *testing.T) {
	toks, r := tokenize(t, `&#0;`)
	assert.Equal(t, "�", charsOf(toks))
	found := false
	for _, e := range r.Events() {
		if e.Code == domerr.NullCharacterReference {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNumericCharacterReferenceWindows1252Remap(t *testing.T) {
	toks, r := tokenize(t, `&#128;`)
	assert.Equal(t, "€", charsOf(toks))
	found := false
	for _, e := range r.Events() {
		if e.Code == domerr.ControlCharacterReference {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNumericCharacterReferenceOutOfRange(t *testing.T) {
	toks, r := tokenize(t, `&#99999999;`)
	assert.Equal(t, "�", charsOf(toks))
	found := false
	for _, e := range r.Events() {
		if e.Code == domerr.CharacterReferenceOutsideUnicodeRange {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCDATASectionOutsideForeignContentIsBogusComment(t *testing.T) {
	toks, r := tokenize(t, `<![CDATA[x]]>`)
	require.Equal(t, token.Comment, toks[0].Kind)
	assert.Equal(t, "[CDATA[x]]", toks[0].Data)
	found := false
	for _, e := range r.Events() {
		if e.Code == domerr.CDATAInHTMLContent {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRCDATAStateDoesNotParseTagsAsMarkup(t *testing.T) {
	r := domerr.NewReporter(domerr.Strict)
	tk := New(stream.New([]rune(`<p>x</textarea>`)), r)
	tk.SetState(RCDATAState)
	tk.SetLastStartTag("textarea")
	var toks []token.Token
	for {
		tok := tk.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	assert.Equal(t, "<p>x", charsOf(toks))
	require.Equal(t, token.EndTag, toks[len(toks)-2].Kind)
	assert.Equal(t, "textarea", toks[len(toks)-2].TagName)
}

func TestRCDATAStateIgnoresInappropriateEndTag(t *testing.T) {
	r := domerr.NewReporter(domerr.Strict)
	tk := New(stream.New([]rune(`x</p>y</textarea>`)), r)
	tk.SetState(RCDATAState)
	tk.SetLastStartTag("textarea")
	var toks []token.Token
	for {
		tok := tk.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	assert.Equal(t, "x</p>y", charsOf(toks))
	require.Equal(t, token.EndTag, toks[len(toks)-2].Kind)
	assert.Equal(t, "textarea", toks[len(toks)-2].TagName)
}
