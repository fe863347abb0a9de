package treebuilder

import (
	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/kb"
	"github.com/arbor-dot/htmldot/token"
)

func (b *Builder) processAfterBody(tok token.Token) bool {
	switch tok.Kind {
	case token.Character:
		if isWhitespaceTok(tok.CodePoint) {
			return b.processInBody(tok)
		}
	case token.Comment:
		b.insertCommentAsLastChildOfHTML(tok.Data)
		return false
	case token.DOCTYPE:
		b.report(domerr.MisplacedDoctype, tok)
		return false
	case token.StartTag:
		if tok.TagName == "html" {
			return b.processInBody(tok)
		}
	case token.EndTag:
		if tok.TagName == "html" {
			b.mode = AfterAfterBody
			return false
		}
	case token.EOF:
		b.stopped = true
		return false
	}
	b.report(domerr.UnexpectedEndTag, tok)
	b.mode = InBody
	return true
}

func (b *Builder) insertCommentAsLastChildOfHTML(data string) {
	if len(b.stack) == 0 {
		b.insertCommentAtDocument(data)
		return
	}
	_ = dot.AppendChild(b.stack[0], b.doc.CreateComment(data))
}

func (b *Builder) processInFrameset(tok token.Token) bool {
	switch tok.Kind {
	case token.Character:
		if isWhitespaceTok(tok.CodePoint) {
			b.insertCharacter(tok.CodePoint)
			return false
		}
	case token.Comment:
		b.insertComment(tok.Data)
		return false
	case token.DOCTYPE:
		b.report(domerr.MisplacedDoctype, tok)
		return false
	case token.StartTag:
		switch tok.TagName {
		case "html":
			return b.processInBody(tok)
		case "frameset":
			b.insertHTMLElement(tok)
			return false
		case "frame":
			b.insertHTMLElement(tok)
			b.pop()
			return false
		case "noframes":
			return b.processInHead(tok)
		}
	case token.EndTag:
		if tok.TagName == "frameset" {
			if len(b.stack) > 1 {
				b.pop()
			}
			if len(b.stack) <= 1 || !b.currentIsFrameset() {
				b.mode = AfterFrameset
			}
			return false
		}
	case token.EOF:
		b.stopped = true
		return false
	}
	b.report(domerr.UnexpectedEndTag, tok)
	return false
}

func (b *Builder) currentIsFrameset() bool {
	cur := b.currentElement()
	return cur != nil && cur.IsHTMLNative() && cur.Tag == kb.Frameset
}

func (b *Builder) processAfterFrameset(tok token.Token) bool {
	switch tok.Kind {
	case token.Character:
		if isWhitespaceTok(tok.CodePoint) {
			b.insertCharacter(tok.CodePoint)
			return false
		}
	case token.Comment:
		b.insertComment(tok.Data)
		return false
	case token.DOCTYPE:
		b.report(domerr.MisplacedDoctype, tok)
		return false
	case token.StartTag:
		switch tok.TagName {
		case "html":
			return b.processInBody(tok)
		case "noframes":
			return b.processInHead(tok)
		}
	case token.EndTag:
		if tok.TagName == "html" {
			b.mode = AfterAfterFrameset
			return false
		}
	case token.EOF:
		b.stopped = true
		return false
	}
	b.report(domerr.UnexpectedEndTag, tok)
	return false
}

func (b *Builder) processAfterAfterBody(tok token.Token) bool {
	switch tok.Kind {
	case token.Comment:
		b.insertCommentAtDocument(tok.Data)
		return false
	case token.DOCTYPE:
		return b.processInBody(tok)
	case token.Character:
		if isWhitespaceTok(tok.CodePoint) {
			return b.processInBody(tok)
		}
	case token.StartTag:
		if tok.TagName == "html" {
			return b.processInBody(tok)
		}
	case token.EOF:
		b.stopped = true
		return false
	}
	b.report(domerr.UnexpectedEndTag, tok)
	b.mode = InBody
	return true
}

func (b *Builder) processAfterAfterFrameset(tok token.Token) bool {
	switch tok.Kind {
	case token.Comment:
		b.insertCommentAtDocument(tok.Data)
		return false
	case token.DOCTYPE:
		return b.processInBody(tok)
	case token.Character:
		if isWhitespaceTok(tok.CodePoint) {
			return b.processInBody(tok)
		}
	case token.StartTag:
		switch tok.TagName {
		case "html":
			return b.processInBody(tok)
		case "noframes":
			return b.processInHead(tok)
		}
	case token.EOF:
		b.stopped = true
		return false
	}
	b.report(domerr.UnexpectedEndTag, tok)
	return false
}
