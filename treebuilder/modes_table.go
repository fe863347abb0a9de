package treebuilder

import (
	"strings"

	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/kb"
	"github.com/arbor-dot/htmldot/token"
)

// clearStackBackToTableContext pops elements until the current node is a
// table, template, or html element (§4.7, used before inserting a
// caption/colgroup/tbody).
func (b *Builder) clearStackBackToTableContext() {
	for {
		cur := b.currentElement()
		if cur == nil || !cur.IsHTMLNative() {
			return
		}
		switch cur.Tag {
		case kb.Table, kb.Template, kb.HTML:
			return
		}
		b.pop()
	}
}

func (b *Builder) clearStackBackToTableBodyContext() {
	for {
		cur := b.currentElement()
		if cur == nil || !cur.IsHTMLNative() {
			return
		}
		switch cur.Tag {
		case kb.Tbody, kb.Tfoot, kb.Thead, kb.Template, kb.HTML:
			return
		}
		b.pop()
	}
}

func (b *Builder) clearStackBackToTableRowContext() {
	for {
		cur := b.currentElement()
		if cur == nil || !cur.IsHTMLNative() {
			return
		}
		switch cur.Tag {
		case kb.Tr, kb.Template, kb.HTML:
			return
		}
		b.pop()
	}
}

func (b *Builder) processInTable(tok token.Token) bool {
	switch tok.Kind {
	case token.Character:
		if cur := b.currentElement(); cur != nil && cur.IsHTMLNative() {
			switch cur.Tag {
			case kb.Table, kb.Tbody, kb.Tfoot, kb.Thead, kb.Tr:
				b.pendingTableChars = nil
				b.pendingTableOriginal = b.mode
				b.mode = InTableText
				return true
			}
		}
	case token.Comment:
		b.insertComment(tok.Data)
		return false
	case token.DOCTYPE:
		b.report(domerr.MisplacedDoctype, tok)
		return false
	case token.StartTag:
		switch tok.TagName {
		case "caption":
			b.clearStackBackToTableContext()
			b.pushFormattingMarker()
			b.insertHTMLElement(tok)
			b.mode = InCaption
			return false
		case "colgroup":
			b.clearStackBackToTableContext()
			b.insertHTMLElement(tok)
			b.mode = InColumnGroup
			return false
		case "col":
			b.clearStackBackToTableContext()
			b.insertHTMLElement(token.NewStartTag(tok.Pos, "colgroup"))
			b.mode = InColumnGroup
			return true
		case "tbody", "tfoot", "thead":
			b.clearStackBackToTableContext()
			b.insertHTMLElement(tok)
			b.mode = InTableBody
			return false
		case "td", "th", "tr":
			b.clearStackBackToTableContext()
			b.insertHTMLElement(token.NewStartTag(tok.Pos, "tbody"))
			b.mode = InTableBody
			return true
		case "table":
			b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
			if !b.hasElementInTableScope(kb.Table) {
				return false
			}
			b.popUntilTag(kb.Table)
			b.mode = b.resetInsertionModeAppropriately()
			return true
		case "style", "script", "template":
			return b.processInHead(tok)
		case "input":
			if isInputHidden(tok) {
				b.insertHTMLElement(tok)
				b.pop()
				return false
			}
		case "form":
			if b.formElement == nil && !b.stackHasTag(kb.Template) {
				el := b.insertHTMLElement(tok)
				b.formElement = el
				b.pop()
			}
			return false
		}
	case token.EndTag:
		switch tok.TagName {
		case "table":
			if !b.hasElementInTableScope(kb.Table) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			b.popUntilTag(kb.Table)
			b.mode = b.resetInsertionModeAppropriately()
			return false
		case "body", "caption", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		case "template":
			return b.processInHead(tok)
		}
	case token.EOF:
		return b.processInBody(tok)
	}
	b.fosterParenting = true
	reprocess := b.processInBody(tok)
	b.fosterParenting = false
	return reprocess
}

func isInputHidden(tok token.Token) bool {
	for _, a := range tok.Attributes {
		if strings.EqualFold(a.Name, "type") {
			return strings.EqualFold(a.Value, "hidden")
		}
	}
	return false
}

func (b *Builder) processInTableText(tok token.Token) bool {
	switch tok.Kind {
	case token.Character:
		if tok.CodePoint == 0 {
			b.report(domerr.UnexpectedNullCharacter, tok)
			return false
		}
		b.pendingTableChars = append(b.pendingTableChars, tok)
		return false
	}
	allWhitespace := true
	for _, c := range b.pendingTableChars {
		if !isWhitespaceTok(c.CodePoint) {
			allWhitespace = false
			break
		}
	}
	chars := b.pendingTableChars
	b.pendingTableChars = nil
	b.mode = b.pendingTableOriginal
	if allWhitespace {
		for _, c := range chars {
			b.insertCharacter(c.CodePoint)
		}
	} else {
		for _, c := range chars {
			b.report(domerr.NonSpaceCharacterInTableText, c)
			b.fosterParenting = true
			b.reconstructActiveFormattingElements()
			b.insertCharacter(c.CodePoint)
			b.fosterParenting = false
			b.framesetOK = false
		}
	}
	return true
}

func (b *Builder) processInCaption(tok token.Token) bool {
	switch tok.Kind {
	case token.EndTag:
		switch tok.TagName {
		case "caption":
			return b.endCaption(tok)
		case "table":
			if !b.hasElementInTableScope(kb.Caption) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			if !b.endCaption(tok) {
				return false
			}
			return true
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
	case token.StartTag:
		switch tok.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !b.hasElementInTableScope(kb.Caption) {
				b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
				return false
			}
			b.endCaption(tok)
			return true
		}
	}
	return b.processInBody(tok)
}

func (b *Builder) endCaption(tok token.Token) bool {
	if !b.hasElementInTableScope(kb.Caption) {
		b.report(domerr.UnexpectedEndTag, tok)
		return false
	}
	b.generateImpliedEndTags()
	if cur := b.currentElement(); cur == nil || cur.Tag != kb.Caption {
		b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
	}
	b.popUntilTag(kb.Caption)
	b.clearFormattingToMarker()
	b.mode = InTable
	return true
}

func (b *Builder) processInColumnGroup(tok token.Token) bool {
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
		case "col":
			b.insertHTMLElement(tok)
			b.pop()
			return false
		case "template":
			return b.processInHead(tok)
		}
	case token.EndTag:
		switch tok.TagName {
		case "colgroup":
			if cur := b.currentElement(); cur == nil || cur.Tag != kb.Colgroup {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			b.pop()
			b.mode = InTable
			return false
		case "col":
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		case "template":
			return b.processInHead(tok)
		}
	case token.EOF:
		return b.processInBody(tok)
	}
	if cur := b.currentElement(); cur == nil || cur.Tag != kb.Colgroup {
		b.report(domerr.UnexpectedEndTag, tok)
		return false
	}
	b.pop()
	b.mode = InTable
	return true
}

func (b *Builder) processInTableBody(tok token.Token) bool {
	switch tok.Kind {
	case token.StartTag:
		switch tok.TagName {
		case "tr":
			b.clearStackBackToTableBodyContext()
			b.insertHTMLElement(tok)
			b.mode = InRow
			return false
		case "th", "td":
			b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
			b.clearStackBackToTableBodyContext()
			b.insertHTMLElement(token.NewStartTag(tok.Pos, "tr"))
			b.mode = InRow
			return true
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !b.hasElementInTableScope(kb.Tbody) && !b.hasElementInTableScope(kb.Thead) && !b.hasElementInTableScope(kb.Tfoot) {
				b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
				return false
			}
			b.clearStackBackToTableBodyContext()
			b.pop()
			b.mode = InTable
			return true
		}
	case token.EndTag:
		switch tok.TagName {
		case "tbody", "tfoot", "thead":
			target := kb.TagFromHTMLString(tok.TagName)
			if !b.hasElementInTableScope(target) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			b.clearStackBackToTableBodyContext()
			b.pop()
			b.mode = InTable
			return false
		case "table":
			if !b.hasElementInTableScope(kb.Tbody) && !b.hasElementInTableScope(kb.Thead) && !b.hasElementInTableScope(kb.Tfoot) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			b.clearStackBackToTableBodyContext()
			b.pop()
			b.mode = InTable
			return true
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
	}
	return b.processInTable(tok)
}

func (b *Builder) processInRow(tok token.Token) bool {
	switch tok.Kind {
	case token.StartTag:
		switch tok.TagName {
		case "th", "td":
			b.clearStackBackToTableRowContext()
			b.insertHTMLElement(tok)
			b.mode = InCell
			b.pushFormattingMarker()
			return false
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !b.hasElementInTableScope(kb.Tr) {
				b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
				return false
			}
			b.clearStackBackToTableRowContext()
			b.pop()
			b.mode = InTableBody
			return true
		}
	case token.EndTag:
		switch tok.TagName {
		case "tr":
			if !b.hasElementInTableScope(kb.Tr) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			b.clearStackBackToTableRowContext()
			b.pop()
			b.mode = InTableBody
			return false
		case "table":
			if !b.hasElementInTableScope(kb.Tr) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			b.clearStackBackToTableRowContext()
			b.pop()
			b.mode = InTableBody
			return true
		case "tbody", "tfoot", "thead":
			target := kb.TagFromHTMLString(tok.TagName)
			if !b.hasElementInTableScope(target) || !b.hasElementInTableScope(kb.Tr) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			b.clearStackBackToTableRowContext()
			b.pop()
			b.mode = InTableBody
			return true
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		}
	}
	return b.processInTable(tok)
}

func (b *Builder) processInCell(tok token.Token) bool {
	switch tok.Kind {
	case token.EndTag:
		switch tok.TagName {
		case "td", "th":
			target := kb.TagFromHTMLString(tok.TagName)
			if !b.hasElementInTableScope(target) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			b.generateImpliedEndTags()
			if cur := b.currentElement(); cur == nil || cur.Tag != target {
				b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
			}
			b.popUntilTag(target)
			b.clearFormattingToMarker()
			b.mode = InRow
			return false
		case "body", "caption", "col", "colgroup", "html":
			b.report(domerr.UnexpectedEndTag, tok)
			return false
		case "table", "tbody", "tfoot", "thead", "tr":
			target := kb.TagFromHTMLString(tok.TagName)
			if !b.hasElementInTableScope(target) {
				b.report(domerr.UnexpectedEndTag, tok)
				return false
			}
			return b.closeCellAndReprocess(tok)
		}
	case token.StartTag:
		switch tok.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !b.hasElementInTableScope(kb.Td) && !b.hasElementInTableScope(kb.Th) {
				b.report(domerr.UnexpectedStartTagImpliesEnd, tok)
				return false
			}
			return b.closeCellAndReprocess(tok)
		}
	}
	return b.processInBody(tok)
}

func (b *Builder) closeCellAndReprocess(tok token.Token) bool {
	b.generateImpliedEndTags()
	if cur := b.currentElement(); cur != nil && cur.Tag != kb.Td && cur.Tag != kb.Th {
		b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
	}
	for {
		cur := b.currentElement()
		if cur == nil {
			break
		}
		done := cur.Tag == kb.Td || cur.Tag == kb.Th
		b.pop()
		if done {
			break
		}
	}
	b.clearFormattingToMarker()
	b.mode = InRow
	return true
}
