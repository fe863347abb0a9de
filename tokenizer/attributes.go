package tokenizer

import (
	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/stream"
	"github.com/arbor-dot/htmldot/token"
)

func (t *Tokenizer) stepBeforeAttributeName() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		return
	case r == '/' || r == '>' || r == stream.EOF:
		t.stream.Reconsume()
		t.startAttribute()
		t.state = AfterAttributeNameState
	case r == '=':
		t.report(domerr.UnexpectedEqualsSignBeforeAttributeName)
		t.startAttribute()
		t.attrName.WriteRune(r)
		t.state = AttributeNameState
	default:
		t.startAttribute()
		t.stream.Reconsume()
		t.state = AttributeNameState
	}
}

func (t *Tokenizer) startAttribute() {
	t.attrName.Reset()
	t.attrValue.Reset()
	t.attrHasValue = false
	t.attrQuote = dot.QuoteNone
}

func (t *Tokenizer) stepAttributeName() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r) || r == '/' || r == '>' || r == stream.EOF:
		t.stream.Reconsume()
		t.state = AfterAttributeNameState
	case r == '=':
		t.state = BeforeAttributeValueState
	case isASCIIUpperAlpha(r):
		t.attrName.WriteRune(toLowerASCII(r))
	case r == 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.attrName.WriteRune('�')
	case r == '"' || r == '\'' || r == '<':
		t.report(domerr.UnexpectedCharacterInAttributeName)
		t.attrName.WriteRune(r)
	default:
		t.attrName.WriteRune(r)
	}
}

func (t *Tokenizer) stepAfterAttributeName() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		return
	case r == '/':
		t.commitAttribute()
		t.state = SelfClosingStartTagState
	case r == '=':
		t.state = BeforeAttributeValueState
	case r == '>':
		t.commitAttribute()
		t.finishTag()
	case r == stream.EOF:
		t.commitAttribute()
		t.report(domerr.EOFInTag)
		t.emitEOF()
	default:
		t.commitAttribute()
		t.startAttribute()
		t.stream.Reconsume()
		t.state = AttributeNameState
	}
}

func (t *Tokenizer) stepBeforeAttributeValue() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		return
	case r == '"':
		t.attrQuote = dot.QuoteDouble
		t.state = AttributeValueDoubleQuotedState
	case r == '\'':
		t.attrQuote = dot.QuoteSingle
		t.state = AttributeValueSingleQuotedState
	case r == '>':
		t.report(domerr.MissingAttributeValue)
		t.commitAttribute()
		t.finishTag()
	default:
		t.attrQuote = dot.QuoteNone
		t.stream.Reconsume()
		t.state = AttributeValueUnquotedState
	}
}

func (t *Tokenizer) stepAttributeValueQuoted(quote rune) {
	r := t.stream.Consume()
	switch r {
	case quote:
		t.attrHasValue = true
		t.state = AfterAttributeValueQuotedState
	case '&':
		t.retState = t.state
		t.charRefInAttr = true
		t.state = CharacterReferenceState
	case 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.attrValue.WriteRune('�')
	case stream.EOF:
		t.report(domerr.EOFInTag)
		t.emitEOF()
	default:
		t.attrValue.WriteRune(r)
	}
}

func (t *Tokenizer) stepAttributeValueUnquoted() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		t.attrHasValue = true
		t.commitAttribute()
		t.state = BeforeAttributeNameState
	case r == '&':
		t.retState = t.state
		t.charRefInAttr = true
		t.state = CharacterReferenceState
	case r == '>':
		t.attrHasValue = true
		t.commitAttribute()
		t.finishTag()
	case r == 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.attrValue.WriteRune('�')
	case r == '"' || r == '\'' || r == '<' || r == '=' || r == '`':
		t.report(domerr.UnexpectedCharacterInAttributeName)
		t.attrValue.WriteRune(r)
	case r == stream.EOF:
		t.report(domerr.EOFInTag)
		t.emitEOF()
	default:
		t.attrValue.WriteRune(r)
	}
}

func (t *Tokenizer) stepAfterAttributeValueQuoted() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		t.commitAttribute()
		t.state = BeforeAttributeNameState
	case r == '/':
		t.commitAttribute()
		t.state = SelfClosingStartTagState
	case r == '>':
		t.commitAttribute()
		t.finishTag()
	case r == stream.EOF:
		t.commitAttribute()
		t.report(domerr.EOFInTag)
		t.emitEOF()
	default:
		t.report(domerr.MissingWhitespaceBetweenAttributes)
		t.commitAttribute()
		t.stream.Reconsume()
		t.state = BeforeAttributeNameState
	}
}

// commitAttribute finalises the (name, value) pair the attribute states
// just built onto the current tag token, dropping it per §3.2 if its
// name duplicates an already-kept attribute.
func (t *Tokenizer) commitAttribute() {
	if t.curTag == nil || t.attrName.Len() == 0 {
		return
	}
	attr := token.Attribute{
		Name:     t.attrName.String(),
		Value:    t.attrValue.String(),
		HasValue: t.attrHasValue,
		Quote:    t.attrQuote,
	}
	if !t.curTag.AddAttribute(attr) {
		t.report(domerr.DuplicateAttribute)
	}
}
