package treebuilder

import (
	"strings"

	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/kb"
	"github.com/arbor-dot/htmldot/nsmap"
	"github.com/arbor-dot/htmldot/token"
	"github.com/arbor-dot/htmldot/tokenizer"
)

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func (b *Builder) addFormatting(tok token.Token, el *dot.Element) {
	b.pushFormatting(el, tok.Attributes)
}

func (b *Builder) closeAllOpenP() {
	if b.hasElementInButtonScope(kb.P) {
		b.closePElement()
	}
}

func (b *Builder) closePElement() {
	b.generateImpliedEndTagsExcept(kb.P)
	b.popUntilTag(kb.P)
}

func (b *Builder) processInBody(tok token.Token) bool {
	switch tok.Kind {
	case token.Character:
		if tok.CodePoint == 0 {
			b.report(domerr.UnexpectedNullCharacter, tok)
			return false
		}
		b.reconstructActiveFormattingElements()
		b.insertCharacter(tok.CodePoint)
		if !isWhitespaceTok(tok.CodePoint) {
			b.framesetOK = false
		}
		return false
	case token.Comment:
		b.insertComment(tok.Data)
		return false
	case token.DOCTYPE:
		b.report(domerr.MisplacedDoctype, tok)
		return false
	case token.StartTag:
		return b.startTagInBody(tok)
	case token.EndTag:
		return b.endTagInBody(tok)
	case token.EOF:
		if len(b.templateModes) > 0 {
			return b.processInTemplate(tok)
		}
		b.stopped = true
		return false
	}
	return false
}

func (b *Builder) startTagInBody(tok token.Token) bool {
	switch tok.TagName {
	case "html":
		b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
		if len(b.stack) > 0 {
			attrsToNamedMap(b.stack[0], tok.Attributes, b.doc.Namespaces)
		}
		return false
	case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
		"style", "template", "title":
		return b.processInHead(tok)
	case "body":
		b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
		if len(b.stack) > 1 {
			attrsToNamedMap(b.stack[1], tok.Attributes, b.doc.Namespaces)
		}
		b.framesetOK = false
		return false
	case "frameset":
		b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
		return false
	case "address", "article", "aside", "blockquote", "center", "details",
		"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure",
		"footer", "header", "hgroup", "main", "menu", "nav", "ol", "p",
		"section", "summary", "ul":
		b.closeAllOpenP()
		b.insertHTMLElement(tok)
		return false
	case "h1", "h2", "h3", "h4", "h5", "h6":
		b.closeAllOpenP()
		if cur := b.currentElement(); cur != nil && cur.IsHTMLNative() && headingTags[cur.LocalName] {
			b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
			b.pop()
		}
		b.insertHTMLElement(tok)
		return false
	case "pre", "listing":
		b.closeAllOpenP()
		b.insertHTMLElement(tok)
		b.framesetOK = false
		return false
	case "form":
		if b.formElement != nil && !b.stackHasTag(kb.Template) {
			b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
			return false
		}
		b.closeAllOpenP()
		el := b.insertHTMLElement(tok)
		if !b.stackHasTag(kb.Template) {
			b.formElement = el
		}
		return false
	case "li":
		b.framesetOK = false
		for i := len(b.stack) - 1; i >= 0; i-- {
			el := b.stack[i]
			if el.IsHTMLNative() && el.Tag == kb.Li {
				b.generateImpliedEndTagsExcept(kb.Li)
				b.popUntilTag(kb.Li)
				break
			}
			if isSpecialTag(el) && el.Tag != kb.Address && el.Tag != kb.Div && el.Tag != kb.P {
				break
			}
		}
		b.closeAllOpenP()
		b.insertHTMLElement(tok)
		return false
	case "dd", "dt":
		b.framesetOK = false
		for i := len(b.stack) - 1; i >= 0; i-- {
			el := b.stack[i]
			if el.IsHTMLNative() && (el.Tag == kb.Dd || el.Tag == kb.Dt) {
				b.generateImpliedEndTagsExcept(el.Tag)
				b.popUntilTag(el.Tag)
				break
			}
			if isSpecialTag(el) && el.Tag != kb.Address && el.Tag != kb.Div && el.Tag != kb.P {
				break
			}
		}
		b.closeAllOpenP()
		b.insertHTMLElement(tok)
		return false
	case "plaintext":
		b.closeAllOpenP()
		b.insertHTMLElement(tok)
		b.tok.SetState(tokenizer.PLAINTEXTState)
		return false
	case "button":
		if b.hasElementInDefaultScope(kb.Button) {
			b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
			b.generateImpliedEndTags()
			b.popUntilTag(kb.Button)
		}
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(tok)
		b.framesetOK = false
		return false
	case "a":
		for i := len(b.activeFormatting) - 1; i >= 0; i-- {
			e := b.activeFormatting[i]
			if e.marker {
				break
			}
			if e.element.Tag == kb.A {
				b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
				b.runAdoptionAgency(kb.A, token.NewEndTag(tok.Pos, "a"))
				b.removeFromFormatting(e.element)
				b.removeFromStack(e.element)
				break
			}
		}
		b.reconstructActiveFormattingElements()
		el := b.insertHTMLElement(tok)
		b.addFormatting(tok, el)
		return false
	case "b", "code", "em", "i", "s", "small", "strong", "u":
		b.reconstructActiveFormattingElements()
		el := b.insertHTMLElement(tok)
		b.addFormatting(tok, el)
		return false
	case "applet", "marquee", "object":
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(tok)
		b.pushFormattingMarker()
		b.framesetOK = false
		return false
	case "table":
		b.closeAllOpenP()
		b.insertHTMLElement(tok)
		b.framesetOK = false
		b.mode = InTable
		return false
	case "area", "br", "embed", "img", "keygen", "wbr":
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(tok)
		b.pop()
		b.framesetOK = false
		return false
	case "input":
		b.reconstructActiveFormattingElements()
		el := b.insertHTMLElement(tok)
		b.pop()
		if t := el.GetAttribute("type"); !strings.EqualFold(t, "hidden") {
			b.framesetOK = false
		}
		return false
	case "param", "source", "track":
		b.insertHTMLElement(tok)
		b.pop()
		return false
	case "hr":
		b.closeAllOpenP()
		b.insertHTMLElement(tok)
		b.pop()
		b.framesetOK = false
		return false
	case "image":
		tok.TagName = "img"
		return b.startTagInBody(tok)
	case "textarea":
		b.insertHTMLElement(tok)
		b.tok.SetLastStartTag("textarea")
		b.tok.SetState(tokenizer.RCDATAState)
		b.originalMode = b.mode
		b.framesetOK = false
		b.mode = Text
		return false
	case "xmp":
		b.closeAllOpenP()
		b.reconstructActiveFormattingElements()
		b.framesetOK = false
		b.insertGenericTextElement(tok, tokenizer.RAWTEXTState)
		return false
	case "iframe":
		b.framesetOK = false
		b.insertGenericTextElement(tok, tokenizer.RAWTEXTState)
		return false
	case "noembed":
		b.insertGenericTextElement(tok, tokenizer.RAWTEXTState)
		return false
	case "select":
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(tok)
		b.framesetOK = false
		switch b.mode {
		case InTable, InCaption, InTableBody, InRow, InCell:
			b.mode = InSelectInTable
		default:
			b.mode = InSelect
		}
		return false
	case "optgroup", "option":
		if cur := b.currentElement(); cur != nil && cur.IsHTMLNative() && cur.Tag == kb.Option {
			b.pop()
		}
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(tok)
		return false
	case "rb", "rtc":
		if b.hasElementInDefaultScope(kb.Ruby) {
			b.generateImpliedEndTags()
		}
		b.insertHTMLElement(tok)
		return false
	case "rp", "rt":
		if b.hasElementInDefaultScope(kb.Ruby) {
			b.generateImpliedEndTagsExcept(kb.Rp)
		}
		b.insertHTMLElement(tok)
		return false
	case "math":
		b.reconstructActiveFormattingElements()
		b.insertForeignElement("math", nsmap.MathML, tok.Attributes, tok.SelfClosing)
		return false
	case "svg":
		b.reconstructActiveFormattingElements()
		b.insertForeignElement("svg", nsmap.SVG, tok.Attributes, tok.SelfClosing)
		return false
	case "caption", "col", "colgroup", "frame", "head", "tbody", "td", "tfoot", "th", "thead", "tr":
		b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
		return false
	}
	b.reconstructActiveFormattingElements()
	b.insertHTMLElement(tok)
	return false
}

func (b *Builder) endTagInBody(tok token.Token) bool {
	switch tok.TagName {
	case "body":
		if !b.hasElementInDefaultScope(kb.Body) {
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
		b.mode = AfterBody
		return false
	case "html":
		if !b.hasElementInDefaultScope(kb.Body) {
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
		b.mode = AfterBody
		return true
	case "address", "article", "aside", "blockquote", "button", "center",
		"details", "dialog", "dir", "div", "dl", "fieldset", "figcaption",
		"figure", "footer", "header", "hgroup", "listing", "main", "menu",
		"nav", "ol", "pre", "section", "summary", "ul":
		target := kb.TagFromHTMLString(tok.TagName)
		if !b.hasElementInDefaultScope(target) {
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
		b.generateImpliedEndTags()
		if cur := b.currentElement(); cur == nil || cur.Tag != target {
			b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
		}
		b.popUntilTag(target)
		return false
	case "form":
		if !b.stackHasTag(kb.Template) {
			node := b.formElement
			b.formElement = nil
			if node == nil || !b.hasElementInDefaultScope(kb.Form) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			b.generateImpliedEndTags()
			if b.currentElement() != node {
				b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
			}
			b.removeFromStack(node)
			return false
		}
		if !b.hasElementInDefaultScope(kb.Form) {
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
		b.generateImpliedEndTags()
		if cur := b.currentElement(); cur == nil || cur.Tag != kb.Form {
			b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
		}
		b.popUntilTag(kb.Form)
		return false
	case "p":
		if !b.hasElementInButtonScope(kb.P) {
			b.report(domerr.UnexpectedEndTag, tok)
			b.insertHTMLElement(token.NewStartTag(tok.Pos, "p"))
		}
		b.closePElement()
		return false
	case "li":
		if !b.hasElementInListItemScope(kb.Li) {
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
		b.generateImpliedEndTagsExcept(kb.Li)
		if cur := b.currentElement(); cur == nil || cur.Tag != kb.Li {
			b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
		}
		b.popUntilTag(kb.Li)
		return false
	case "dd", "dt":
		target := kb.Dd
		if tok.TagName == "dt" {
			target = kb.Dt
		}
		if !b.hasElementInDefaultScope(target) {
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
		b.generateImpliedEndTagsExcept(target)
		if cur := b.currentElement(); cur == nil || cur.Tag != target {
			b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
		}
		b.popUntilTag(target)
		return false
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if !b.hasElementInDefaultScope(kb.H1) && !b.hasElementInDefaultScope(kb.H2) &&
			!b.hasElementInDefaultScope(kb.H3) && !b.hasElementInDefaultScope(kb.H4) &&
			!b.hasElementInDefaultScope(kb.H5) && !b.hasElementInDefaultScope(kb.H6) {
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
		b.generateImpliedEndTags()
		if cur := b.currentElement(); cur == nil || !headingTags[cur.LocalName] {
			b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
		}
		for len(b.stack) > 0 {
			cur := b.pop()
			if headingTags[cur.LocalName] {
				break
			}
		}
		return false
	case "a", "b", "code", "em", "i", "s", "small", "strong", "u":
		b.runAdoptionAgency(kb.TagFromHTMLString(tok.TagName), tok)
		return false
	case "applet", "marquee", "object":
		target := kb.TagFromHTMLString(tok.TagName)
		if !b.hasElementInDefaultScope(target) {
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
		b.generateImpliedEndTags()
		if cur := b.currentElement(); cur == nil || cur.Tag != target {
			b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
		}
		b.popUntilTag(target)
		b.clearFormattingToMarker()
		return false
	case "br":
		b.report(domerr.UnexpectedEndTag, tok)
		b.reconstructActiveFormattingElements()
		b.insertHTMLElement(token.NewStartTag(tok.Pos, "br"))
		b.pop()
		return false
	case "template":
		return b.processInHead(tok)
	}
	b.defaultEndTagInBody(tok)
	return false
}

func (b *Builder) processText(tok token.Token) bool {
	switch tok.Kind {
	case token.Character:
		b.insertCharacter(tok.CodePoint)
		return false
	case token.EOF:
		b.pop()
		b.mode = b.originalMode
		return true
	case token.EndTag:
		b.pop()
		b.mode = b.originalMode
		return false
	}
	return false
}
