package tokenizer

import (
	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/stream"
	"github.com/arbor-dot/htmldot/token"
)

func (t *Tokenizer) startDoctype() {
	tok := token.NewDoctype(t.tokenStart)
	t.doctype = &tok
}

func (t *Tokenizer) stepDoctype() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		t.startDoctype()
		t.state = BeforeDoctypeNameState
	case r == '>':
		t.startDoctype()
		t.stream.Reconsume()
		t.state = BeforeDoctypeNameState
	case r == stream.EOF:
		t.startDoctype()
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.report(domerr.MissingWhitespaceBeforeDoctypeName)
		t.startDoctype()
		t.stream.Reconsume()
		t.state = BeforeDoctypeNameState
	}
}

func (t *Tokenizer) stepBeforeDoctypeName() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		return
	case isASCIIUpperAlpha(r):
		t.doctype.Name = string(toLowerASCII(r))
		t.state = DoctypeNameState
	case r == 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.doctype.Name = "�"
		t.state = DoctypeNameState
	case r == '>':
		t.report(domerr.MissingDoctypeName)
		t.doctype.ForceQuirks = true
		t.emitDoctypeAndReturnToData()
	case r == stream.EOF:
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.doctype.Name = string(r)
		t.state = DoctypeNameState
	}
}

func (t *Tokenizer) stepDoctypeName() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		t.state = AfterDoctypeNameState
	case r == '>':
		t.emitDoctypeAndReturnToData()
	case isASCIIUpperAlpha(r):
		t.doctype.Name += string(toLowerASCII(r))
	case r == 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.doctype.Name += "�"
	case r == stream.EOF:
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.doctype.Name += string(r)
	}
}

func (t *Tokenizer) stepAfterDoctypeName() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		return
	case r == '>':
		t.emitDoctypeAndReturnToData()
	case r == stream.EOF:
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.stream.Reconsume()
		if t.consumeLiteralCaseInsensitive("PUBLIC") {
			t.state = AfterDoctypePublicKeywordState
			return
		}
		if t.consumeLiteralCaseInsensitive("SYSTEM") {
			t.state = AfterDoctypeSystemKeywordState
			return
		}
		t.report(domerr.InvalidCharacterSequenceAfterDoctypeName)
		t.doctype.ForceQuirks = true
		t.stream.Consume()
		t.state = BogusDoctypeState
	}
}

func (t *Tokenizer) stepAfterDoctypePublicKeyword() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		t.state = BeforeDoctypePublicIdentifierState
	case r == '"':
		t.report(domerr.MissingWhitespaceAfterDoctypePublicKeyword)
		t.doctype.HasPublicID = true
		t.doctype.PublicID = ""
		t.state = DoctypePublicIdentifierDoubleQuotedState
	case r == '\'':
		t.doctype.HasPublicID = true
		t.doctype.PublicID = ""
		t.state = DoctypePublicIdentifierSingleQuotedState
	case r == '>':
		t.report(domerr.MissingDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.emitDoctypeAndReturnToData()
	case r == stream.EOF:
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.report(domerr.MissingQuoteBeforeDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.stream.Reconsume()
		t.state = BogusDoctypeState
	}
}

func (t *Tokenizer) stepBeforeDoctypePublicIdentifier() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		return
	case r == '"':
		t.doctype.HasPublicID = true
		t.doctype.PublicID = ""
		t.state = DoctypePublicIdentifierDoubleQuotedState
	case r == '\'':
		t.doctype.HasPublicID = true
		t.doctype.PublicID = ""
		t.state = DoctypePublicIdentifierSingleQuotedState
	case r == '>':
		t.report(domerr.MissingDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.emitDoctypeAndReturnToData()
	case r == stream.EOF:
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.report(domerr.MissingQuoteBeforeDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.stream.Reconsume()
		t.state = BogusDoctypeState
	}
}

func (t *Tokenizer) stepDoctypePublicIdentifierQuoted(quote rune) {
	r := t.stream.Consume()
	switch r {
	case quote:
		t.state = AfterDoctypePublicIdentifierState
	case 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.doctype.PublicID += "�"
	case '>':
		t.report(domerr.AbruptDoctypePublicIdentifier)
		t.doctype.ForceQuirks = true
		t.emitDoctypeAndReturnToData()
	case stream.EOF:
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.doctype.PublicID += string(r)
	}
}

func (t *Tokenizer) stepAfterDoctypePublicIdentifier() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		t.state = BetweenDoctypePublicAndSystemIdentifiersState
	case r == '>':
		t.emitDoctypeAndReturnToData()
	case r == '"':
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = DoctypeSystemIdentifierSingleQuotedState
	case r == stream.EOF:
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.report(domerr.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.stream.Reconsume()
		t.state = BogusDoctypeState
	}
}

func (t *Tokenizer) stepBetweenDoctypePublicAndSystemIdentifiers() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		return
	case r == '>':
		t.emitDoctypeAndReturnToData()
	case r == '"':
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = DoctypeSystemIdentifierSingleQuotedState
	case r == stream.EOF:
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.report(domerr.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.stream.Reconsume()
		t.state = BogusDoctypeState
	}
}

func (t *Tokenizer) stepAfterDoctypeSystemKeyword() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		t.state = BeforeDoctypeSystemIdentifierState
	case r == '"':
		t.report(domerr.MissingWhitespaceAfterDoctypeSystemKeyword)
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		t.report(domerr.MissingWhitespaceAfterDoctypeSystemKeyword)
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = DoctypeSystemIdentifierSingleQuotedState
	case r == '>':
		t.report(domerr.MissingDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.emitDoctypeAndReturnToData()
	case r == stream.EOF:
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.report(domerr.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.stream.Reconsume()
		t.state = BogusDoctypeState
	}
}

func (t *Tokenizer) stepBeforeDoctypeSystemIdentifier() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		return
	case r == '"':
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = DoctypeSystemIdentifierDoubleQuotedState
	case r == '\'':
		t.doctype.HasSystemID = true
		t.doctype.SystemID = ""
		t.state = DoctypeSystemIdentifierSingleQuotedState
	case r == '>':
		t.report(domerr.MissingDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.emitDoctypeAndReturnToData()
	case r == stream.EOF:
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.report(domerr.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.stream.Reconsume()
		t.state = BogusDoctypeState
	}
}

func (t *Tokenizer) stepDoctypeSystemIdentifierQuoted(quote rune) {
	r := t.stream.Consume()
	switch r {
	case quote:
		t.state = AfterDoctypeSystemIdentifierState
	case 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.doctype.SystemID += "�"
	case '>':
		t.report(domerr.AbruptDoctypeSystemIdentifier)
		t.doctype.ForceQuirks = true
		t.emitDoctypeAndReturnToData()
	case stream.EOF:
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.doctype.SystemID += string(r)
	}
}

func (t *Tokenizer) stepAfterDoctypeSystemIdentifier() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		return
	case r == '>':
		t.emitDoctypeAndReturnToData()
	case r == stream.EOF:
		t.doctype.ForceQuirks = true
		t.report(domerr.EOFInDoctype)
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
		t.report(domerr.UnexpectedCharacterAfterDoctypeSystemIdentifier)
		t.stream.Reconsume()
		t.state = BogusDoctypeState
	}
}

func (t *Tokenizer) stepBogusDoctype() {
	r := t.stream.Consume()
	switch r {
	case '>':
		t.emitDoctypeAndReturnToData()
	case 0:
		t.report(domerr.UnexpectedNullCharacter)
	case stream.EOF:
		t.emitDoctypeAndReturnToData()
		t.emitEOF()
	default:
	}
}

func (t *Tokenizer) emitDoctypeAndReturnToData() {
	tok := *t.doctype
	t.doctype = nil
	t.state = DataState
	t.emit(tok)
}
