package tokenizer

import (
	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/kb"
	"github.com/arbor-dot/htmldot/stream"
)

func (t *Tokenizer) stepCharacterReference() {
	t.tmp.Reset()
	t.tmp.WriteRune('&')
	r := t.stream.Consume()
	switch {
	case isASCIIAlphanumeric(r):
		t.stream.Reconsume()
		t.state = NamedCharacterReferenceState
	case r == '#':
		t.tmp.WriteRune('#')
		t.state = NumericCharacterReferenceState
	default:
		t.stream.Reconsume()
		t.flushCodePointsConsumedAsCharacterReference()
		t.state = t.retState
	}
}

// flushCodePointsConsumedAsCharacterReference appends the temporary
// buffer to the attribute value under construction, or emits it as
// character tokens, depending on where the reference was found (§4.6
// "character reference in attribute value" vs. "in text").
func (t *Tokenizer) flushCodePointsConsumedAsCharacterReference() {
	s := t.tmp.String()
	if t.charRefInAttr {
		t.attrValue.WriteString(s)
	} else {
		t.emitCharStr(s)
	}
	t.tmp.Reset()
}

func (t *Tokenizer) stepNamedCharacterReference() {
	node := charRefTrie.Root()

	haveMatch := false
	var matchRef kb.CharRef
	var matchHasSemicolon bool
	var matchMark stream.Checkpoint
	var matchTmp string

	for {
		mark := t.stream.Mark()
		r := t.stream.Consume()
		if r == stream.EOF || r > 127 {
			t.stream.Reset(mark)
			break
		}
		next, ok := charRefTrie.Step(node, byte(r))
		if !ok {
			t.stream.Reset(mark)
			break
		}
		node = next
		t.tmp.WriteRune(r)
		if ref, ok2, hasSemi := node.Ref(); ok2 {
			haveMatch = true
			matchRef = ref
			matchHasSemicolon = hasSemi
			matchMark = t.stream.Mark()
			matchTmp = t.tmp.String()
		}
	}

	if !haveMatch {
		t.flushCodePointsConsumedAsCharacterReference()
		t.state = AmbiguousAmpersandState
		return
	}

	// Rewind past any extra, non-matching characters the greedy walk
	// consumed beyond the longest actual match.
	t.stream.Reset(matchMark)
	t.tmp.Reset()
	t.tmp.WriteString(matchTmp)

	if t.charRefInAttr && !matchHasSemicolon {
		next := t.stream.Peek()
		if next == '=' || isASCIIAlphanumeric(next) {
			t.flushCodePointsConsumedAsCharacterReference()
			t.state = t.retState
			return
		}
	}

	if !matchHasSemicolon {
		t.report(domerr.MissingSemicolonAfterCharacterReference)
	}

	t.tmp.Reset()
	for _, cp := range matchRef.CodePoints {
		t.tmp.WriteRune(cp)
	}
	t.flushCodePointsConsumedAsCharacterReference()
	t.state = t.retState
}

func (t *Tokenizer) stepAmbiguousAmpersand() {
	r := t.stream.Consume()
	switch {
	case isASCIIAlphanumeric(r):
		if t.charRefInAttr {
			t.attrValue.WriteRune(r)
		} else {
			t.emitChar(r)
		}
	case r == ';':
		t.report(domerr.UnknownNamedCharacterReference)
		t.stream.Reconsume()
		t.state = t.retState
	default:
		t.stream.Reconsume()
		t.state = t.retState
	}
}

func (t *Tokenizer) stepNumericCharacterReference() {
	t.charRefCode = 0
	r := t.stream.Consume()
	if r == 'x' || r == 'X' {
		t.tmp.WriteRune(r)
		t.state = HexadecimalCharacterReferenceStartState
		return
	}
	t.stream.Reconsume()
	t.state = DecimalCharacterReferenceStartState
}

func (t *Tokenizer) stepHexadecimalCharacterReferenceStart() {
	r := t.stream.Consume()
	if isHexDigit(r) {
		t.stream.Reconsume()
		t.state = HexadecimalCharacterReferenceState
		return
	}
	t.report(domerr.AbsenceOfDigitsInNumericCharReference)
	t.stream.Reconsume()
	t.flushCodePointsConsumedAsCharacterReference()
	t.state = t.retState
}

func (t *Tokenizer) stepDecimalCharacterReferenceStart() {
	r := t.stream.Consume()
	if isASCIIDigit(r) {
		t.stream.Reconsume()
		t.state = DecimalCharacterReferenceState
		return
	}
	t.report(domerr.AbsenceOfDigitsInNumericCharReference)
	t.stream.Reconsume()
	t.flushCodePointsConsumedAsCharacterReference()
	t.state = t.retState
}

func (t *Tokenizer) stepHexadecimalCharacterReference() {
	r := t.stream.Consume()
	switch {
	case isASCIIDigit(r):
		t.charRefCode = t.charRefCode*16 + int64(r-'0')
	case r >= 'A' && r <= 'F':
		t.charRefCode = t.charRefCode*16 + int64(r-'A'+10)
	case r >= 'a' && r <= 'f':
		t.charRefCode = t.charRefCode*16 + int64(r-'a'+10)
	case r == ';':
		t.state = NumericCharacterReferenceEndState
	default:
		t.report(domerr.MissingSemicolonAfterCharacterReference)
		t.stream.Reconsume()
		t.state = NumericCharacterReferenceEndState
	}
}

func (t *Tokenizer) stepDecimalCharacterReference() {
	r := t.stream.Consume()
	switch {
	case isASCIIDigit(r):
		t.charRefCode = t.charRefCode*10 + int64(r-'0')
	case r == ';':
		t.state = NumericCharacterReferenceEndState
	default:
		t.report(domerr.MissingSemicolonAfterCharacterReference)
		t.stream.Reconsume()
		t.state = NumericCharacterReferenceEndState
	}
}

func (t *Tokenizer) stepNumericCharacterReferenceEnd() {
	code := t.charRefCode
	switch {
	case code == 0:
		t.report(domerr.NullCharacterReference)
		code = 0xFFFD
	case code > 0x10FFFF:
		t.report(domerr.CharacterReferenceOutsideUnicodeRange)
		code = 0xFFFD
	case isSurrogateCodePoint(code):
		t.report(domerr.SurrogateCharacterReference)
		code = 0xFFFD
	case isNoncharacterCodePoint(code):
		t.report(domerr.NoncharacterCharacterReference)
	case code == 0x0D || (isControlCodePoint(code) && !isASCIIWhitespaceCode(code)):
		t.report(domerr.ControlCharacterReference)
		if replacement, ok := kb.NumericReferenceReplacement(code); ok {
			code = int64(replacement)
		}
	}

	t.tmp.Reset()
	t.tmp.WriteRune(rune(code))
	t.flushCodePointsConsumedAsCharacterReference()
	t.state = t.retState
}

func isHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'A' && r <= 'F') || (r >= 'a' && r <= 'f')
}

func isSurrogateCodePoint(n int64) bool { return n >= 0xD800 && n <= 0xDFFF }

func isNoncharacterCodePoint(n int64) bool {
	if n >= 0xFDD0 && n <= 0xFDEF {
		return true
	}
	return n&0xFFFE == 0xFFFE
}

func isControlCodePoint(n int64) bool {
	return n <= 0x1F || (n >= 0x7F && n <= 0x9F)
}

func isASCIIWhitespaceCode(n int64) bool {
	switch n {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	default:
		return false
	}
}
