package tokenizer

import (
	"strings"

	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/stream"
	"github.com/arbor-dot/htmldot/token"
)

func (t *Tokenizer) stepTagOpen() {
	if t.restrictToEndTag {
		r := t.stream.Consume()
		if r == '/' {
			t.state = EndTagOpenState
			return
		}
		t.emitChar('<')
		t.stream.Reconsume()
		t.state = t.textReturnState
		return
	}
	r := t.stream.Consume()
	switch {
	case r == '!':
		t.state = MarkupDeclarationOpenState
	case r == '/':
		t.state = EndTagOpenState
	case isASCIIAlpha(r):
		t.curTag = tagPtr(token.NewStartTag(t.tokenStart, ""))
		t.stream.Reconsume()
		t.state = TagNameState
	case r == '?':
		t.report(domerr.UnexpectedQuestionMarkInsteadOfTagName)
		t.commentData.Reset()
		t.stream.Reconsume()
		t.state = BogusCommentState
	case r == stream.EOF:
		t.report(domerr.EOFBeforeTagName)
		t.emitChar('<')
		t.emitEOF()
	default:
		t.report(domerr.InvalidFirstCharacterOfTagName)
		t.emitChar('<')
		t.stream.Reconsume()
		t.state = DataState
	}
}

// consumeTagNameLookahead peeks and consumes a run of ASCII letters
// without committing past them if the caller resets to a prior mark,
// used to test whether an RCDATA/RAWTEXT/ScriptData end tag is the
// "appropriate" one before deciding whether to treat it as markup.
func (t *Tokenizer) consumeTagNameLookahead() string {
	var b strings.Builder
	for {
		r := t.stream.Peek()
		if !isASCIIAlpha(r) {
			break
		}
		t.stream.Consume()
		b.WriteRune(r)
	}
	return b.String()
}

func (t *Tokenizer) stepEndTagOpen() {
	if t.restrictToEndTag {
		mark := t.stream.Mark()
		name := t.consumeTagNameLookahead()
		next := t.stream.Peek()
		appropriate := name != "" && strings.EqualFold(name, t.lastStartTag) &&
			(isWhitespace(next) || next == '/' || next == '>' || next == stream.EOF)
		t.stream.Reset(mark)
		if !appropriate {
			t.emitChar('<')
			t.emitChar('/')
			t.state = t.textReturnState
			return
		}
	}
	r := t.stream.Consume()
	switch {
	case isASCIIAlpha(r):
		t.curTag = tagPtr(token.NewEndTag(t.tokenStart, ""))
		t.stream.Reconsume()
		t.state = TagNameState
	case r == '>':
		t.report(domerr.MissingEndTagName)
		t.state = DataState
	case r == stream.EOF:
		t.report(domerr.EOFBeforeTagName)
		t.emitChar('<')
		t.emitChar('/')
		t.emitEOF()
	default:
		t.report(domerr.InvalidFirstCharacterOfTagName)
		t.commentData.Reset()
		t.stream.Reconsume()
		t.state = BogusCommentState
	}
}

func (t *Tokenizer) stepTagName() {
	r := t.stream.Consume()
	switch {
	case isWhitespace(r):
		t.state = BeforeAttributeNameState
	case r == '/':
		t.state = SelfClosingStartTagState
	case r == '>':
		t.finishTag()
	case isASCIIUpperAlpha(r):
		t.curTag.TagName += string(toLowerASCII(r))
	case r == 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.curTag.TagName += "�"
	case r == stream.EOF:
		t.report(domerr.EOFInTag)
		t.emitEOF()
	default:
		t.curTag.TagName += string(r)
	}
}

func (t *Tokenizer) stepSelfClosingStartTag() {
	r := t.stream.Consume()
	switch r {
	case '>':
		t.curTag.SelfClosing = true
		t.finishTag()
	case stream.EOF:
		t.report(domerr.EOFInTag)
		t.emitEOF()
	default:
		t.report(domerr.UnexpectedSolidusInTag)
		t.stream.Reconsume()
		t.state = BeforeAttributeNameState
	}
}

// finishTag closes out the current start/end tag token, applying the
// "duplicates after the first are dropped" rule's companion check for
// end tags (§3.2: an end tag with attributes or a trailing solidus is
// itself a parse error, independent of the attribute dedup rule applied
// while building StartTag attributes).
func (t *Tokenizer) finishTag() {
	tag := *t.curTag
	if tag.Kind == token.EndTag {
		if len(tag.Attributes) > 0 {
			t.report(domerr.EndTagWithAttributes)
			tag.Attributes = nil
		}
		if tag.SelfClosing {
			t.report(domerr.EndTagWithTrailingSolidus)
		}
	} else {
		t.lastStartTag = tag.TagName
	}
	t.curTag = nil
	t.restrictToEndTag = false
	t.state = DataState
	t.emit(tag)
}

func tagPtr(tok token.Token) *token.Token { return &tok }
