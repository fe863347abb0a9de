package treebuilder

import (
	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/kb"
	"github.com/arbor-dot/htmldot/token"
	"github.com/arbor-dot/htmldot/tokenizer"
)

func isWhitespaceTok(r rune) bool { return isWhitespaceRune(r) }

func (b *Builder) processInitial(tok token.Token) bool {
	switch tok.Kind {
	case token.Character:
		if isWhitespaceTok(tok.CodePoint) {
			return false
		}
	case token.Comment:
		b.insertCommentAtDocument(tok.Data)
		return false
	case token.DOCTYPE:
		dt := b.doc.CreateDocumentType(tok.Name, tok.PublicID, tok.SystemID)
		_ = dot.AppendChild(b.doc, dt)
		b.doc.Doctype = dt
		b.doc.SetQuirksModeFromDoctype(tok.Name, tok.PublicID, tok.SystemID, tok.ForceQuirks)
		b.mode = BeforeHTML
		return false
	}
	b.mode = BeforeHTML
	return true
}

func (b *Builder) processBeforeHTML(tok token.Token) bool {
	switch tok.Kind {
	case token.DOCTYPE:
		b.report(domerr.MisplacedDoctype, tok)
		return false
	case token.Comment:
		b.insertCommentAtDocument(tok.Data)
		return false
	case token.Character:
		if isWhitespaceTok(tok.CodePoint) {
			return false
		}
	case token.StartTag:
		if tok.TagName == "html" {
			el := b.createElementForToken(tok)
			_ = dot.AppendChild(b.doc, el)
			b.push(el)
			b.mode = BeforeHead
			return false
		}
	case token.EndTag:
		switch tok.TagName {
		case "head", "body", "html", "br":
		default:
			return false
		}
	}
	el := b.doc.CreateElement("html")
	_ = dot.AppendChild(b.doc, el)
	b.push(el)
	b.mode = BeforeHead
	return true
}

func (b *Builder) processBeforeHead(tok token.Token) bool {
	switch tok.Kind {
	case token.Character:
		if isWhitespaceTok(tok.CodePoint) {
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
		case "head":
			el := b.insertHTMLElement(tok)
			b.headElement = el
			b.mode = InHead
			return false
		}
	case token.EndTag:
		switch tok.TagName {
		case "head", "body", "html", "br":
		default:
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
	}
	el := b.insertHTMLElement(token.NewStartTag(tok.Pos, "head"))
	b.headElement = el
	b.mode = InHead
	return true
}

func (b *Builder) processInHead(tok token.Token) bool {
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
		case "base", "basefont", "bgsound", "link":
			b.insertHTMLElement(tok)
			b.pop()
			return false
		case "meta":
			b.insertHTMLElement(tok)
			b.pop()
			return false
		case "title":
			b.insertGenericTextElement(tok, tokenizer.RCDATAState)
			return false
		case "noscript":
			if b.scripting {
				b.insertGenericTextElement(tok, tokenizer.RAWTEXTState)
				return false
			}
			b.insertHTMLElement(tok)
			b.mode = InHeadNoscript
			return false
		case "noframes", "style":
			b.insertGenericTextElement(tok, tokenizer.RAWTEXTState)
			return false
		case "script":
			b.insertGenericTextElement(tok, tokenizer.ScriptDataState)
			return false
		case "template":
			el := b.insertHTMLElement(tok)
			b.pushFormattingMarker()
			b.framesetOK = false
			b.mode = InTemplate
			b.templateModes = append(b.templateModes, InTemplate)
			_ = el
			return false
		case "head":
			b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
			return false
		}
	case token.EndTag:
		switch tok.TagName {
		case "head":
			b.pop()
			b.mode = AfterHead
			return false
		case "body", "html", "br":
		case "template":
			if !b.stackHasTag(kb.Template) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			b.generateImpliedEndTags()
			b.popUntilTag(kb.Template)
			b.clearFormattingToMarker()
			if len(b.templateModes) > 0 {
				b.templateModes = b.templateModes[:len(b.templateModes)-1]
			}
			b.mode = b.resetInsertionModeAppropriately()
			return false
		default:
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
	}
	b.pop()
	b.mode = AfterHead
	return true
}

func (b *Builder) processInHeadNoscript(tok token.Token) bool {
	switch tok.Kind {
	case token.DOCTYPE:
		b.report(domerr.MisplacedDoctype, tok)
		return false
	case token.StartTag:
		switch tok.TagName {
		case "html":
			return b.processInBody(tok)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return b.processInHead(tok)
		case "head", "noscript":
			b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
			return false
		}
	case token.EndTag:
		switch tok.TagName {
		case "noscript":
			b.pop()
			b.mode = InHead
			return false
		case "br":
		default:
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
	case token.Character:
		if isWhitespaceTok(tok.CodePoint) {
			return b.processInHead(tok)
		}
	case token.Comment:
		return b.processInHead(tok)
	}
	b.report(domerr.UnexpectedEndTag, tok)
	b.pop()
	b.mode = InHead
	return true
}

func (b *Builder) processAfterHead(tok token.Token) bool {
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
		case "body":
			b.insertHTMLElement(tok)
			b.framesetOK = false
			b.mode = InBody
			return false
		case "frameset":
			b.insertHTMLElement(tok)
			b.mode = InFrameset
			return false
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
			"style", "template", "title":
			b.report(domerr.MisplacedStartTagForHeadElement, tok)
			b.push(b.headElement)
			reprocess := b.processInHead(tok)
			b.removeFromStack(b.headElement)
			return reprocess
		case "head":
			b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
			return false
		}
	case token.EndTag:
		switch tok.TagName {
		case "template":
			return b.processInHead(tok)
		case "body", "html", "br":
		default:
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
	}
	b.insertHTMLElement(token.NewStartTag(tok.Pos, "body"))
	b.mode = InBody
	return true
}
