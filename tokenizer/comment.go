package tokenizer

import (
	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/nsmap"
	"github.com/arbor-dot/htmldot/stream"
	"github.com/arbor-dot/htmldot/token"
)

func (t *Tokenizer) stepMarkupDeclarationOpen() {
	if t.consumeLiteralCaseSensitive("--") {
		t.commentData.Reset()
		t.state = CommentStartState
		return
	}
	if t.consumeLiteralCaseInsensitive("DOCTYPE") {
		t.state = DoctypeState
		return
	}
	if t.consumeLiteralCaseSensitive("[CDATA[") {
		nonHTML := false
		if t.query != nil {
			if id, ok := t.query.AdjustedCurrentNodeNamespace(); ok && id != nsmap.HTML {
				nonHTML = true
			}
		}
		if nonHTML {
			t.state = CDATASectionState
		} else {
			t.report(domerr.CDATAInHTMLContent)
			t.commentData.Reset()
			t.commentData.WriteString("[CDATA[")
			t.state = BogusCommentState
		}
		return
	}
	t.report(domerr.IncorrectlyOpenedComment)
	t.commentData.Reset()
	t.state = BogusCommentState
}

// consumeLiteralCaseSensitive consumes lit from the stream iff the next
// len(lit) code points equal it exactly, leaving the stream unchanged
// otherwise.
func (t *Tokenizer) consumeLiteralCaseSensitive(lit string) bool {
	return t.tryConsumeLiteral(lit, false)
}

func (t *Tokenizer) consumeLiteralCaseInsensitive(lit string) bool {
	return t.tryConsumeLiteral(lit, true)
}

func (t *Tokenizer) tryConsumeLiteral(lit string, foldCase bool) bool {
	mark := t.stream.Mark()
	for _, want := range lit {
		got := t.stream.Consume()
		match := got == want
		if foldCase {
			match = toLowerASCII(got) == toLowerASCII(want)
		}
		if !match {
			t.stream.Reset(mark)
			return false
		}
	}
	return true
}

func (t *Tokenizer) stepBogusComment() {
	r := t.stream.Consume()
	switch r {
	case '>':
		t.emitCommentAndReturnToData()
	case 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.commentData.WriteRune('�')
	case stream.EOF:
		t.emitCommentAndReturnToData()
		t.emitEOF()
	default:
		t.commentData.WriteRune(r)
	}
}

func (t *Tokenizer) emitCommentAndReturnToData() {
	data := t.commentData.String()
	t.commentData.Reset()
	t.state = DataState
	t.emit(token.NewComment(t.tokenStart, data))
}

func (t *Tokenizer) stepCommentStart() {
	r := t.stream.Consume()
	switch r {
	case '-':
		t.state = CommentStartDashState
	case '>':
		t.report(domerr.AbruptClosingOfEmptyComment)
		t.emitCommentAndReturnToData()
	default:
		t.stream.Reconsume()
		t.state = CommentState
	}
}

func (t *Tokenizer) stepCommentStartDash() {
	r := t.stream.Consume()
	switch r {
	case '-':
		t.state = CommentEndState
	case '>':
		t.report(domerr.AbruptClosingOfEmptyComment)
		t.emitCommentAndReturnToData()
	case stream.EOF:
		t.report(domerr.EOFInComment)
		t.emitCommentAndReturnToData()
		t.emitEOF()
	default:
		t.commentData.WriteRune('-')
		t.stream.Reconsume()
		t.state = CommentState
	}
}

func (t *Tokenizer) stepComment() {
	r := t.stream.Consume()
	switch r {
	case '<':
		t.commentData.WriteRune(r)
		// §4.6 comment states traverse CommentLessThanSign* sub-states
		// only to special-case "<!--" inside a comment for a parse
		// error; the data itself is unaffected either way, so this
		// collapses that detour into the main Comment state.
		if t.consumeLiteralCaseSensitive("!--") {
			t.report(domerr.NestedComment)
			t.commentData.WriteString("!--")
		}
	case '-':
		t.state = CommentEndDashState
	case 0:
		t.report(domerr.UnexpectedNullCharacter)
		t.commentData.WriteRune('�')
	case stream.EOF:
		t.report(domerr.EOFInComment)
		t.emitCommentAndReturnToData()
		t.emitEOF()
	default:
		t.commentData.WriteRune(r)
	}
}

func (t *Tokenizer) stepCommentEndDash() {
	r := t.stream.Consume()
	switch r {
	case '-':
		t.state = CommentEndState
	case stream.EOF:
		t.report(domerr.EOFInComment)
		t.emitCommentAndReturnToData()
		t.emitEOF()
	default:
		t.commentData.WriteRune('-')
		t.stream.Reconsume()
		t.state = CommentState
	}
}

func (t *Tokenizer) stepCommentEnd() {
	r := t.stream.Consume()
	switch r {
	case '>':
		t.emitCommentAndReturnToData()
	case '!':
		t.state = CommentEndBangState
	case '-':
		t.commentData.WriteRune('-')
	case stream.EOF:
		t.report(domerr.EOFInComment)
		t.emitCommentAndReturnToData()
		t.emitEOF()
	default:
		t.commentData.WriteString("--")
		t.stream.Reconsume()
		t.state = CommentState
	}
}

func (t *Tokenizer) stepCommentEndBang() {
	r := t.stream.Consume()
	switch r {
	case '-':
		t.commentData.WriteString("--!")
		t.state = CommentEndDashState
	case '>':
		t.report(domerr.IncorrectlyClosedComment)
		t.emitCommentAndReturnToData()
	case stream.EOF:
		t.report(domerr.EOFInComment)
		t.emitCommentAndReturnToData()
		t.emitEOF()
	default:
		t.commentData.WriteString("--!")
		t.stream.Reconsume()
		t.state = CommentState
	}
}

func (t *Tokenizer) stepCDATASection() {
	r := t.stream.Consume()
	switch r {
	case ']':
		if t.consumeLiteralCaseSensitive("]>") {
			t.state = DataState
			return
		}
		t.emitChar(r)
	case stream.EOF:
		t.report(domerr.EOFInCDATA)
		t.emitEOF()
	default:
		t.emitChar(r)
	}
}
