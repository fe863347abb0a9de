package treebuilder

import (
	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/kb"
	"github.com/arbor-dot/htmldot/token"
)

func (b *Builder) processInSelect(tok token.Token) bool {
	switch tok.Kind {
	case token.Character:
		if tok.CodePoint == 0 {
			b.report(domerr.UnexpectedNullCharacter, tok)
			return false
		}
		b.insertCharacter(tok.CodePoint)
		return false
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
		case "option":
			if cur := b.currentElement(); cur != nil && cur.IsHTMLNative() && cur.Tag == kb.Option {
				b.pop()
			}
			b.insertHTMLElement(tok)
			return false
		case "optgroup":
			if cur := b.currentElement(); cur != nil && cur.IsHTMLNative() && cur.Tag == kb.Option {
				b.pop()
			}
			if cur := b.currentElement(); cur != nil && cur.IsHTMLNative() && cur.Tag == kb.Optgroup {
				b.pop()
			}
			b.insertHTMLElement(tok)
			return false
		case "hr":
			if cur := b.currentElement(); cur != nil && cur.IsHTMLNative() && cur.Tag == kb.Option {
				b.pop()
			}
			if cur := b.currentElement(); cur != nil && cur.IsHTMLNative() && cur.Tag == kb.Optgroup {
				b.pop()
			}
			b.insertHTMLElement(tok)
			b.pop()
			return false
		case "select":
			b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
			if !b.hasElementInSelectScope(kb.Select) {
				return false
			}
			b.popUntilTag(kb.Select)
			b.mode = b.resetInsertionModeAppropriately()
			return false
		case "input", "keygen", "textarea":
			b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
			if !b.hasElementInSelectScope(kb.Select) {
				return false
			}
			b.popUntilTag(kb.Select)
			b.mode = b.resetInsertionModeAppropriately()
			return true
		case "script", "template":
			return b.processInHead(tok)
		}
	case token.EndTag:
		switch tok.TagName {
		case "optgroup":
			if cur := b.currentElement(); cur != nil && cur.IsHTMLNative() && cur.Tag == kb.Option && len(b.stack) > 1 {
				if prev := b.stack[len(b.stack)-2]; prev.IsHTMLNative() && prev.Tag == kb.Optgroup {
					b.pop()
				}
			}
			if cur := b.currentElement(); cur != nil && cur.IsHTMLNative() && cur.Tag == kb.Optgroup {
				b.pop()
				return false
			}
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		case "option":
			if cur := b.currentElement(); cur != nil && cur.IsHTMLNative() && cur.Tag == kb.Option {
				b.pop()
				return false
			}
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		case "select":
			if !b.hasElementInSelectScope(kb.Select) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			b.popUntilTag(kb.Select)
			b.mode = b.resetInsertionModeAppropriately()
			return false
		case "template":
			return b.processInHead(tok)
		}
	case token.EOF:
		return b.processInBody(tok)
	}
	b.report(domerr.UnexpectedEndTag, tok)
	return false
}

func (b *Builder) processInSelectInTable(tok token.Token) bool {
	switch tok.Kind {
	case token.StartTag:
		switch tok.TagName {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
			b.popUntilTag(kb.Select)
			b.mode = b.resetInsertionModeAppropriately()
			return true
		}
	case token.EndTag:
		switch tok.TagName {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			target := kb.TagFromHTMLString(tok.TagName)
			if !b.hasElementInTableScope(target) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			b.popUntilTag(kb.Select)
			b.mode = b.resetInsertionModeAppropriately()
			return true
		}
	}
	return b.processInSelect(tok)
}

// processInTemplate implements the InTemplate mode: a small dispatcher
// layered over whichever mode currently matches the token, falling back
// to InBody-style content when the token isn't one of the template-
// content starters (§4.7).
func (b *Builder) processInTemplate(tok token.Token) bool {
	switch tok.Kind {
	case token.Character, token.Comment, token.DOCTYPE:
		return b.processInBody(tok)
	case token.StartTag:
		switch tok.TagName {
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
			"style", "template", "title":
			return b.processInHead(tok)
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			b.templateModes[len(b.templateModes)-1] = InTable
			b.mode = InTable
			return true
		case "col":
			b.templateModes[len(b.templateModes)-1] = InColumnGroup
			b.mode = InColumnGroup
			return true
		case "tr":
			b.templateModes[len(b.templateModes)-1] = InTableBody
			b.mode = InTableBody
			return true
		case "td", "th":
			b.templateModes[len(b.templateModes)-1] = InRow
			b.mode = InRow
			return true
		default:
			b.templateModes[len(b.templateModes)-1] = InBody
			b.mode = InBody
			return true
		}
	case token.EndTag:
		if tok.TagName == "template" {
			return b.processInHead(tok)
		}
		b.report(domerr.UnexpectedEndTag, tok)
		return false
	case token.EOF:
		if !b.stackHasTag(kb.Template) {
			b.stopped = true
			return false
		}
		b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
		b.generateImpliedEndTags()
		b.popUntilTag(kb.Template)
		b.clearFormattingToMarker()
		if len(b.templateModes) > 0 {
			b.templateModes = b.templateModes[:len(b.templateModes)-1]
		}
		b.mode = b.resetInsertionModeAppropriately()
		return true
	}
	return false
}
