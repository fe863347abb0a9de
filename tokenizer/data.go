package tokenizer

import (
	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/stream"
	"github.com/arbor-dot/htmldot/token"
)

func (t *Tokenizer) stepData() {
	r := t.stream.Consume()
	switch r {
	case '&':
		t.retState = DataState
		t.charRefInAttr = false
		t.state = CharacterReferenceState
	case '<':
		t.tokenStart = t.pos()
		t.restrictToEndTag = false
		t.state = TagOpenState
	case 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.emitChar(r)
	case stream.EOF:
		t.emitEOF()
	default:
		t.emitChar(r)
	}
}

func (t *Tokenizer) stepRCDATA() {
	r := t.stream.Consume()
	switch r {
	case '&':
		t.retState = RCDATAState
		t.charRefInAttr = false
		t.state = CharacterReferenceState
	case '<':
		t.tokenStart = t.pos()
		t.restrictToEndTag = true
		t.textReturnState = RCDATAState
		t.state = TagOpenState
	case 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.emitChar('�')
	case stream.EOF:
		t.emitEOF()
	default:
		t.emitChar(r)
	}
}

func (t *Tokenizer) stepRAWTEXT() {
	r := t.stream.Consume()
	switch r {
	case '<':
		t.tokenStart = t.pos()
		t.restrictToEndTag = true
		t.textReturnState = RAWTEXTState
		t.state = TagOpenState
	case 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.emitChar('�')
	case stream.EOF:
		t.emitEOF()
	default:
		t.emitChar(r)
	}
}

func (t *Tokenizer) stepScriptData() {
	r := t.stream.Consume()
	switch r {
	case '<':
		t.tokenStart = t.pos()
		t.restrictToEndTag = true
		t.textReturnState = ScriptDataState
		t.state = TagOpenState
	case 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.emitChar('�')
	case stream.EOF:
		t.emitEOF()
	default:
		t.emitChar(r)
	}
}

func (t *Tokenizer) stepPLAINTEXT() {
	r := t.stream.Consume()
	switch r {
	case 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.emitChar('�')
	case stream.EOF:
		t.emitEOF()
	default:
		t.emitChar(r)
	}
}

func (t *Tokenizer) emitEOF() {
	t.emit(token.NewEOF(t.pos()))
}
