package treebuilder

import (
	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/kb"
	"github.com/arbor-dot/htmldot/nsmap"
	"github.com/arbor-dot/htmldot/token"
	"github.com/arbor-dot/htmldot/tokenizer"
)

// FragmentContext describes the context element a fragment parse runs
// against (§4.7's "parsing HTML fragments" entry point).
type FragmentContext struct {
	TagName     string
	NamespaceID nsmap.ID
}

// formattingEntry is one entry of §4.7's "list of active formatting
// elements". Entries with marker set are the sentinels that scope
// boundaries (table cells, captions, applet/marquee/object, template)
// push onto the list.
type formattingEntry struct {
	element *dot.Element
	attrs   []token.Attribute // the token attributes in effect when pushed, for adoption-agency reconstruction
	marker  bool
}

// Builder drives tree construction: it consumes tokens from a
// tokenizer.Tokenizer and builds a dot.Document, feeding state back to
// the tokeniser for the RCDATA/RAWTEXT/ScriptData content models (§4.7).
type Builder struct {
	doc *dot.Document

	stack []*dot.Element

	mode         InsertionMode
	originalMode InsertionMode

	headElement *dot.Element
	formElement *dot.Element

	activeFormatting []formattingEntry
	templateModes    []InsertionMode

	framesetOK      bool
	fosterParenting bool
	scripting       bool

	tok      *tokenizer.Tokenizer
	reporter *domerr.Reporter

	pendingTableChars    []token.Token
	pendingTableOriginal InsertionMode

	fragmentContext *FragmentContext
	fragmentElement *dot.Element

	forceHTMLMode bool
	stopped       bool

	iframeSrcdoc bool
}

// New creates a Builder for full-document parsing.
func New(tok *tokenizer.Tokenizer, r *domerr.Reporter, scripting bool) *Builder {
	b := &Builder{
		doc:        dot.NewDocument(),
		mode:       Initial,
		tok:        tok,
		reporter:   r,
		framesetOK: true,
		scripting:  scripting,
	}
	tok.SetTreeConstructorQuerier(b)
	return b
}

// NewFragment creates a Builder for fragment parsing against ctx,
// per §4.7's fragment-parsing algorithm.
func NewFragment(tok *tokenizer.Tokenizer, r *domerr.Reporter, scripting bool, ctx *FragmentContext) *Builder {
	b := &Builder{
		doc:             dot.NewDocument(),
		mode:            Initial,
		tok:             tok,
		reporter:        r,
		framesetOK:      true,
		scripting:       scripting,
		fragmentContext: ctx,
	}
	tok.SetTreeConstructorQuerier(b)

	html := b.doc.CreateElement("html")
	dot.AppendChild(b.doc, html)
	b.stack = append(b.stack, html)

	if ctx != nil {
		var ctxEl *dot.Element
		if ctx.NamespaceID != nsmap.HTML && ctx.NamespaceID != nsmap.None {
			ctxEl = b.doc.CreateElementNS(ctx.NamespaceID, ctx.TagName)
		} else {
			ctxEl = b.doc.CreateElement(ctx.TagName)
		}
		dot.AppendChild(html, ctxEl)
		b.stack = append(b.stack, ctxEl)
		b.fragmentElement = ctxEl

		if ctxEl.IsHTMLNative() {
			switch ctxEl.Tag {
			case kb.Title, kb.Textarea:
				tok.SetLastStartTag(ctx.TagName)
				tok.SetState(tokenizer.RCDATAState)
			case kb.Style, kb.Xmp, kb.Iframe, kb.Noembed, kb.Noframes:
				tok.SetLastStartTag(ctx.TagName)
				tok.SetState(tokenizer.RAWTEXTState)
			case kb.Script:
				tok.SetLastStartTag(ctx.TagName)
				tok.SetState(tokenizer.ScriptDataState)
			case kb.Plaintext:
				tok.SetLastStartTag(ctx.TagName)
				tok.SetState(tokenizer.PLAINTEXTState)
			}
			switch ctxEl.Tag {
			case kb.HTML:
				b.mode = BeforeHead
			case kb.Tbody, kb.Thead, kb.Tfoot:
				b.mode = InTableBody
			case kb.Tr:
				b.mode = InRow
			case kb.Td, kb.Th:
				b.mode = InCell
			case kb.Caption:
				b.mode = InCaption
			case kb.Colgroup:
				b.mode = InColumnGroup
			case kb.Table:
				b.mode = InTable
			case kb.Select:
				b.mode = InSelect
			default:
				b.mode = InBody
			}
		} else {
			b.mode = InBody
		}
		b.resetFormOwner()
		b.mode = b.resetInsertionModeAppropriately()
	}
	return b
}

func (b *Builder) resetFormOwner() {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i].IsHTMLNative() && b.stack[i].Tag == kb.Form {
			b.formElement = b.stack[i]
			return
		}
	}
}

// Document returns the tree built so far.
func (b *Builder) Document() *dot.Document { return b.doc }

// FragmentNodes returns the context element's children, for fragment
// parsing callers.
func (b *Builder) FragmentNodes() []dot.Node {
	if b.fragmentElement == nil {
		return nil
	}
	return b.fragmentElement.Children()
}

// Run drains the tokeniser to EOF, feeding every token through the tree
// constructor.
func (b *Builder) Run() *dot.Document {
	for {
		tok := b.tok.Next()
		b.ProcessToken(tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return b.doc
}

// AdjustedCurrentNodeNamespace implements tokenizer.TreeConstructorQuerier:
// the fragment case substitutes the context element when the stack only
// has one entry (§4.6's cross-component coupling note).
func (b *Builder) AdjustedCurrentNodeNamespace() (nsmap.ID, bool) {
	n := b.adjustedCurrentNode()
	if n == nil {
		return nsmap.HTML, false
	}
	return n.NamespaceID(), true
}

func (b *Builder) adjustedCurrentNode() *dot.Element {
	if b.fragmentContext != nil && len(b.stack) == 1 {
		return b.fragmentElement
	}
	return b.currentElement()
}

func (b *Builder) currentElement() *dot.Element {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) currentNode() dot.Node {
	if len(b.stack) == 0 {
		return b.doc
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) report(code domerr.Code, tok token.Token) {
	b.reporter.Report(code, domerr.Position{Line: tok.Pos.Line, Column: tok.Pos.Column})
}

// ProcessToken feeds tok through the insertion-mode dispatcher,
// rerunning it in the mode-appropriate algorithm until that algorithm
// stops requesting reprocessing (§4.7).
func (b *Builder) ProcessToken(tok token.Token) {
	if b.stopped {
		return
	}
	for {
		if !b.forceHTMLMode && b.shouldUseForeignContent(tok) {
			if !b.processForeignContent(tok) {
				return
			}
			continue
		}
		b.forceHTMLMode = false
		if !b.dispatch(tok) {
			return
		}
	}
}

func (b *Builder) dispatch(tok token.Token) bool {
	switch b.mode {
	case Initial:
		return b.processInitial(tok)
	case BeforeHTML:
		return b.processBeforeHTML(tok)
	case BeforeHead:
		return b.processBeforeHead(tok)
	case InHead:
		return b.processInHead(tok)
	case InHeadNoscript:
		return b.processInHeadNoscript(tok)
	case AfterHead:
		return b.processAfterHead(tok)
	case InBody:
		return b.processInBody(tok)
	case Text:
		return b.processText(tok)
	case InTable:
		return b.processInTable(tok)
	case InTableText:
		return b.processInTableText(tok)
	case InCaption:
		return b.processInCaption(tok)
	case InColumnGroup:
		return b.processInColumnGroup(tok)
	case InTableBody:
		return b.processInTableBody(tok)
	case InRow:
		return b.processInRow(tok)
	case InCell:
		return b.processInCell(tok)
	case InSelect:
		return b.processInSelect(tok)
	case InSelectInTable:
		return b.processInSelectInTable(tok)
	case InTemplate:
		return b.processInTemplate(tok)
	case AfterBody:
		return b.processAfterBody(tok)
	case InFrameset:
		return b.processInFrameset(tok)
	case AfterFrameset:
		return b.processAfterFrameset(tok)
	case AfterAfterBody:
		return b.processAfterAfterBody(tok)
	case AfterAfterFrameset:
		return b.processAfterAfterFrameset(tok)
	default:
		return b.processInBody(tok)
	}
}

// --- stack of open elements -------------------------------------------------

func (b *Builder) push(el *dot.Element)   { b.stack = append(b.stack, el) }
func (b *Builder) pop() *dot.Element {
	if len(b.stack) == 0 {
		return nil
	}
	el := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return el
}

func (b *Builder) popUntilTag(t kb.Tag) {
	for len(b.stack) > 0 {
		el := b.pop()
		if el.IsHTMLNative() && el.Tag == t {
			return
		}
	}
}

func (b *Builder) stackHasTag(t kb.Tag) bool {
	for _, el := range b.stack {
		if el.IsHTMLNative() && el.Tag == t {
			return true
		}
	}
	return false
}

func (b *Builder) removeFromStack(el *dot.Element) {
	for i, e := range b.stack {
		if e == el {
			b.stack = append(b.stack[:i], b.stack[i+1:]...)
			return
		}
	}
}

// --- scope -------------------------------------------------------------

var defaultScopeStop = map[kb.Tag]bool{
	kb.HTML: true, kb.Table: true, kb.Template: true, kb.Caption: true,
	kb.Td: true, kb.Th: true, kb.Object: true,
}

func isForeignScopeStopper(el *dot.Element) bool {
	switch el.NamespaceID() {
	case nsmap.MathML:
		switch el.Tag {
		case kb.Mi, kb.Mn, kb.Mo, kb.Ms, kb.Mtext, kb.AnnotationXML:
			return true
		}
	case nsmap.SVG:
		switch el.Tag {
		case kb.ForeignObject, kb.Desc, kb.Title:
			return true
		}
	}
	return false
}

func (b *Builder) hasElementInScope(target kb.Tag, extra map[kb.Tag]bool) bool {
	for i := len(b.stack) - 1; i >= 0; i-- {
		el := b.stack[i]
		if el.IsHTMLNative() && el.Tag == target {
			return true
		}
		if isForeignScopeStopper(el) {
			return false
		}
		if el.IsHTMLNative() && (defaultScopeStop[el.Tag] || extra[el.Tag]) {
			return false
		}
	}
	return false
}

func (b *Builder) hasElementInDefaultScope(target kb.Tag) bool {
	return b.hasElementInScope(target, nil)
}

var listItemScopeExtra = map[kb.Tag]bool{kb.Ol: true, kb.Ul: true}
var buttonScopeExtra = map[kb.Tag]bool{kb.Button: true}

func (b *Builder) hasElementInListItemScope(target kb.Tag) bool {
	return b.hasElementInScope(target, listItemScopeExtra)
}

func (b *Builder) hasElementInButtonScope(target kb.Tag) bool {
	return b.hasElementInScope(target, buttonScopeExtra)
}

func (b *Builder) hasElementInTableScope(target kb.Tag) bool {
	for i := len(b.stack) - 1; i >= 0; i-- {
		el := b.stack[i]
		if el.IsHTMLNative() && el.Tag == target {
			return true
		}
		if el.IsHTMLNative() && (el.Tag == kb.HTML || el.Tag == kb.Table || el.Tag == kb.Template) {
			return false
		}
	}
	return false
}

// hasElementInSelectScope implements the inverted "select scope" check:
// everything except optgroup/option blocks the search (§4.7).
func (b *Builder) hasElementInSelectScope(target kb.Tag) bool {
	for i := len(b.stack) - 1; i >= 0; i-- {
		el := b.stack[i]
		if !el.IsHTMLNative() {
			return false
		}
		if el.Tag == target {
			return true
		}
		if el.Tag != kb.Option && el.Tag != kb.Optgroup {
			return false
		}
	}
	return false
}

// --- insertion location / foster parenting ------------------------------

func tableFosterTarget(el *dot.Element) bool {
	if el == nil || !el.IsHTMLNative() {
		return false
	}
	switch el.Tag {
	case kb.Table, kb.Tbody, kb.Tfoot, kb.Thead, kb.Tr:
		return true
	}
	return false
}

func (b *Builder) appropriateInsertionLocation() (dot.Node, dot.Node) {
	cur := b.currentElement()
	if cur != nil && cur.IsHTMLNative() && cur.Tag == kb.Template {
		return cur.TemplateContent, nil
	}
	if !b.fosterParenting || !tableFosterTarget(cur) {
		return b.currentNode(), nil
	}
	return b.fosterInsertionLocation()
}

func (b *Builder) lastOfTagInStack(t kb.Tag) (*dot.Element, int) {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i].IsHTMLNative() && b.stack[i].Tag == t {
			return b.stack[i], i
		}
	}
	return nil, -1
}

func (b *Builder) fosterInsertionLocation() (dot.Node, dot.Node) {
	table, tableIdx := b.lastOfTagInStack(kb.Table)
	template, templateIdx := b.lastOfTagInStack(kb.Template)
	if template != nil && (table == nil || templateIdx > tableIdx) {
		return template.TemplateContent, nil
	}
	if table == nil {
		return b.stack[0], nil
	}
	if p := table.Parent(); p != nil {
		return p, table
	}
	if tableIdx > 0 {
		return b.stack[tableIdx-1], nil
	}
	return b.doc, nil
}

func (b *Builder) insertNodeAt(n dot.Node, parent, before dot.Node) {
	if before == nil {
		children := parent.Children()
		if txt, ok := n.(*dot.Text); ok && len(children) > 0 {
			if last, ok := children[len(children)-1].(*dot.Text); ok {
				last.SetData(last.Data() + txt.Data())
				return
			}
		}
		_ = dot.AppendChild(parent, n)
		return
	}
	if txt, ok := n.(*dot.Text); ok {
		children := parent.Children()
		for i, c := range children {
			if c == before {
				if i > 0 {
					if prev, ok := children[i-1].(*dot.Text); ok {
						prev.SetData(prev.Data() + txt.Data())
						return
					}
				}
				break
			}
		}
		if beforeText, ok := before.(*dot.Text); ok {
			beforeText.SetData(txt.Data() + beforeText.Data())
			return
		}
	}
	_ = dot.InsertBefore(parent, n, before)
}

func (b *Builder) insertComment(data string) {
	parent, before := b.appropriateInsertionLocation()
	b.insertNodeAt(b.doc.CreateComment(data), parent, before)
}

func (b *Builder) insertCommentAtDocument(data string) {
	_ = dot.AppendChild(b.doc, b.doc.CreateComment(data))
}

func (b *Builder) insertCharacter(r rune) {
	parent, before := b.appropriateInsertionLocation()
	if !canInsertTextInto(parent) {
		return
	}
	b.insertNodeAt(b.doc.CreateTextNode(string(r)), parent, before)
}

func canInsertTextInto(n dot.Node) bool {
	return n.Type() != dot.DocumentNode
}

// attrsToNamedMap copies a token's attributes onto el, preserving quote
// style and the present-but-empty/absent distinction (§3.1). Later
// duplicates are skipped: the tokeniser already drops same-tag
// duplicates, but foster/clone paths can re-offer an attribute already
// present from the "add missing attributes" case in InBody's `<html>`/
// `<body>` handling.
func attrsToNamedMap(el *dot.Element, attrs []token.Attribute, ns *nsmap.Map) {
	for _, a := range attrs {
		if el.HasAttribute(a.Name) {
			continue
		}
		el.SetAttribute(a.Name, a.Value)
		if set := el.Attributes.Get(a.Name); set != nil {
			set.Quote = a.Quote
			if !a.HasValue {
				set.ClearValue()
			}
		}
	}
}

// createElementForToken builds an HTML-namespace element for tok,
// resolving its tag and copying its attributes (§4.7's "create an
// element for the token" algorithm, simplified to this module's single
// shared namespace map per document).
func (b *Builder) createElementForToken(tok token.Token) *dot.Element {
	el := b.doc.CreateElement(tok.TagName)
	attrsToNamedMap(el, tok.Attributes, b.doc.Namespaces)
	if el.Tag == kb.Template {
		el.TemplateContent = b.doc.CreateDocumentFragment()
	}
	return el
}

func (b *Builder) insertHTMLElement(tok token.Token) *dot.Element {
	el := b.createElementForToken(tok)
	parent, before := b.appropriateInsertionLocation()
	b.insertNodeAt(el, parent, before)
	b.push(el)
	return el
}

// insertGenericTextElement implements the generic RAWTEXT/RCDATA parsing
// algorithm (§4.7): switch the tokeniser into the matching content
// model, insert the element, and hand control to the Text mode.
func (b *Builder) insertGenericTextElement(tok token.Token, state tokenizer.State) {
	b.insertHTMLElement(tok)
	b.tok.SetLastStartTag(tok.TagName)
	b.tok.SetState(state)
	b.originalMode = b.mode
	b.mode = Text
}

// --- active formatting elements -----------------------------------------

func (b *Builder) pushFormattingMarker() {
	b.activeFormatting = append(b.activeFormatting, formattingEntry{marker: true})
}

func attrsEqual(a, c []token.Attribute) bool {
	if len(a) != len(c) {
		return false
	}
	for _, x := range a {
		found := false
		for _, y := range c {
			if x.Name == y.Name && x.Value == y.Value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// pushFormatting appends el to the active-formatting-elements list,
// applying the Noah's Ark clause: at most three matching entries (same
// tag, namespace, and attribute set) may exist since the last marker.
func (b *Builder) pushFormatting(el *dot.Element, attrs []token.Attribute) {
	matches := 0
	firstMatch := -1
	for i := len(b.activeFormatting) - 1; i >= 0; i-- {
		e := b.activeFormatting[i]
		if e.marker {
			break
		}
		if e.element.Tag == el.Tag && e.element.NamespaceID() == el.NamespaceID() && attrsEqual(e.attrs, attrs) {
			matches++
			firstMatch = i
		}
	}
	if matches >= 3 {
		b.activeFormatting = append(b.activeFormatting[:firstMatch], b.activeFormatting[firstMatch+1:]...)
	}
	b.activeFormatting = append(b.activeFormatting, formattingEntry{element: el, attrs: attrs})
}

func (b *Builder) clearFormattingToMarker() {
	for len(b.activeFormatting) > 0 {
		last := b.activeFormatting[len(b.activeFormatting)-1]
		b.activeFormatting = b.activeFormatting[:len(b.activeFormatting)-1]
		if last.marker {
			return
		}
	}
}

func (b *Builder) removeFromFormatting(el *dot.Element) {
	for i, e := range b.activeFormatting {
		if e.element == el {
			b.activeFormatting = append(b.activeFormatting[:i], b.activeFormatting[i+1:]...)
			return
		}
	}
}

func (b *Builder) formattingIndexOf(el *dot.Element) int {
	for i, e := range b.activeFormatting {
		if e.element == el {
			return i
		}
	}
	return -1
}

// reconstructActiveFormattingElements re-opens formatting elements that
// were implicitly closed by an intervening block element (§4.7).
func (b *Builder) reconstructActiveFormattingElements() {
	if len(b.activeFormatting) == 0 {
		return
	}
	last := b.activeFormatting[len(b.activeFormatting)-1]
	if last.marker || b.isInStack(last.element) {
		return
	}
	i := len(b.activeFormatting) - 1
	for i > 0 {
		i--
		e := b.activeFormatting[i]
		if e.marker || b.isInStack(e.element) {
			i++
			break
		}
	}
	for ; i < len(b.activeFormatting); i++ {
		e := b.activeFormatting[i]
		clone := b.cloneFormattingElement(e)
		b.activeFormatting[i] = formattingEntry{element: clone, attrs: e.attrs}
	}
}

func (b *Builder) cloneFormattingElement(e formattingEntry) *dot.Element {
	clone := b.doc.CreateElement(e.element.LocalName)
	attrsToNamedMap(clone, e.attrs, b.doc.Namespaces)
	parent, before := b.appropriateInsertionLocation()
	b.insertNodeAt(clone, parent, before)
	b.push(clone)
	return clone
}

func (b *Builder) isInStack(el *dot.Element) bool {
	for _, e := range b.stack {
		if e == el {
			return true
		}
	}
	return false
}

// --- adoption agency -----------------------------------------------------

// runAdoptionAgency implements the HTML5 adoption agency algorithm's
// outer loop (§4.7, at most 8 iterations, misnested formatting element
// `subject` closed against the stack of open elements and the active
// formatting elements list).
func (b *Builder) runAdoptionAgency(subject kb.Tag, tok token.Token) {
	for outer := 0; outer < 8; outer++ {
		formattingIdx := -1
		for i := len(b.activeFormatting) - 1; i >= 0; i-- {
			e := b.activeFormatting[i]
			if e.marker {
				break
			}
			if e.element.Tag == subject {
				formattingIdx = i
				break
			}
		}
		if formattingIdx == -1 {
			b.defaultEndTagInBody(tok)
			return
		}
		formattingEl := b.activeFormatting[formattingIdx].element
		formattingAttrs := b.activeFormatting[formattingIdx].attrs

		if !b.isInStack(formattingEl) {
			b.report(domerr.UnexpectedEndTag, tok)
			b.activeFormatting = append(b.activeFormatting[:formattingIdx], b.activeFormatting[formattingIdx+1:]...)
			return
		}
		if !b.hasElementInScope(subject, nil) {
			b.report(domerr.UnexpectedEndTag, tok)
			return
		}

		stackIdx := -1
		for i, e := range b.stack {
			if e == formattingEl {
				stackIdx = i
				break
			}
		}
		if stackIdx != len(b.stack)-1 {
			b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
		}

		furthestIdx := -1
		for i := stackIdx + 1; i < len(b.stack); i++ {
			if isSpecialTag(b.stack[i]) {
				furthestIdx = i
				break
			}
		}
		if furthestIdx == -1 {
			b.stack = b.stack[:stackIdx]
			b.activeFormatting = append(b.activeFormatting[:formattingIdx], b.activeFormatting[formattingIdx+1:]...)
			return
		}
		furthestBlock := b.stack[furthestIdx]

		commonAncestor := b.stack[stackIdx-1]
		bookmark := formattingIdx + 1

		lastNode := furthestBlock
		nodeIdx := furthestIdx
		for inner := 0; inner < 3; inner++ {
			nodeIdx--
			if nodeIdx <= stackIdx {
				break
			}
			node := b.stack[nodeIdx]
			nodeFmtIdx := b.formattingIndexOf(node)
			if nodeFmtIdx == -1 {
				b.removeStackIndex(nodeIdx)
				continue
			}
			clone := b.doc.CreateElement(node.LocalName)
			attrsToNamedMap(clone, b.activeFormatting[nodeFmtIdx].attrs, b.doc.Namespaces)
			b.activeFormatting[nodeFmtIdx] = formattingEntry{element: clone, attrs: b.activeFormatting[nodeFmtIdx].attrs}
			b.stack[nodeIdx] = clone
			if nodeFmtIdx < bookmark {
				bookmark = nodeFmtIdx
			}
			if p := lastNode.Parent(); p != nil {
				_ = dot.RemoveChild(p, lastNode)
			}
			_ = dot.AppendChild(clone, lastNode)
			lastNode = clone
		}

		if p := lastNode.Parent(); p != nil {
			_ = dot.RemoveChild(p, lastNode)
		}
		target, before := b.insertionLocationFor(commonAncestor)
		b.insertNodeAt(lastNode, target, before)

		clone := b.doc.CreateElement(formattingEl.LocalName)
		attrsToNamedMap(clone, formattingAttrs, b.doc.Namespaces)
		for _, c := range append([]dot.Node(nil), furthestBlock.Children()...) {
			_ = dot.RemoveChild(furthestBlock, c)
			_ = dot.AppendChild(clone, c)
		}
		_ = dot.AppendChild(furthestBlock, clone)

		b.activeFormatting = append(b.activeFormatting[:formattingIdx], b.activeFormatting[formattingIdx+1:]...)
		if bookmark > formattingIdx {
			bookmark--
		}
		if bookmark > len(b.activeFormatting) {
			bookmark = len(b.activeFormatting)
		}
		entry := formattingEntry{element: clone, attrs: formattingAttrs}
		tail := append([]formattingEntry{entry}, b.activeFormatting[bookmark:]...)
		b.activeFormatting = append(b.activeFormatting[:bookmark], tail...)

		b.removeFromStack(formattingEl)
		furthestIdx = -1
		for i, e := range b.stack {
			if e == furthestBlock {
				furthestIdx = i
				break
			}
		}
		if furthestIdx >= 0 {
			b.stack = append(b.stack[:furthestIdx+1], append([]*dot.Element{clone}, b.stack[furthestIdx+1:]...)...)
		} else {
			b.push(clone)
		}
	}
}

func (b *Builder) insertionLocationFor(commonAncestor *dot.Element) (dot.Node, dot.Node) {
	if b.fosterParenting && tableFosterTarget(commonAncestor) {
		return b.fosterInsertionLocation()
	}
	return commonAncestor, nil
}

func (b *Builder) removeStackIndex(i int) {
	b.stack = append(b.stack[:i], b.stack[i+1:]...)
}

func isFormattingTag(t kb.Tag) bool {
	switch t {
	case kb.A, kb.B, kb.Big, kb.Code, kb.Em, kb.Font, kb.I, kb.Nobr, kb.S, kb.Small,
		kb.Strike, kb.Strong, kb.Tt, kb.U:
		return true
	}
	return false
}

// defaultEndTagInBody handles the "any other end tag" branch of InBody,
// shared by the adoption agency fallback.
func (b *Builder) defaultEndTagInBody(tok token.Token) {
	target := kb.TagFromHTMLString(tok.TagName)
	for i := len(b.stack) - 1; i >= 0; i-- {
		el := b.stack[i]
		if el.IsHTMLNative() && el.Tag == target {
			b.generateImpliedEndTagsExcept(target)
			if b.currentElement() != el {
				b.report(domerr.EndTagDoesNotMatchCurrentOpenElement, tok)
			}
			b.stack = b.stack[:i]
			return
		}
		if isSpecialTag(el) {
			b.report(domerr.UnexpectedEndTag, tok)
			return
		}
	}
}

var impliedEndTags = map[kb.Tag]bool{
	kb.Dd: true, kb.Dt: true, kb.Li: true, kb.Optgroup: true, kb.Option: true,
	kb.P: true, kb.Rp: true, kb.Rt: true,
}

func (b *Builder) generateImpliedEndTags() {
	for len(b.stack) > 0 {
		cur := b.currentElement()
		if !cur.IsHTMLNative() || !impliedEndTags[cur.Tag] {
			return
		}
		b.pop()
	}
}

func (b *Builder) generateImpliedEndTagsExcept(except kb.Tag) {
	for len(b.stack) > 0 {
		cur := b.currentElement()
		if !cur.IsHTMLNative() || cur.Tag == except || !impliedEndTags[cur.Tag] {
			return
		}
		b.pop()
	}
}

var specialTags = map[kb.Tag]bool{
	kb.Address: true, kb.Article: true, kb.Aside: true, kb.Base: true, kb.Blockquote: true,
	kb.Body: true, kb.Br: true, kb.Button: true, kb.Caption: true, kb.Center: true, kb.Col: true,
	kb.Colgroup: true, kb.Dd: true, kb.Details: true, kb.Dir: true, kb.Div: true, kb.Dl: true, kb.Dt: true,
	kb.Embed: true, kb.Fieldset: true, kb.Figcaption: true, kb.Figure: true, kb.Footer: true,
	kb.Form: true, kb.Frameset: true, kb.H1: true, kb.H2: true, kb.H3: true, kb.H4: true, kb.H5: true, kb.H6: true,
	kb.Head: true, kb.Header: true, kb.Hr: true, kb.HTML: true, kb.Iframe: true, kb.Img: true,
	kb.Input: true, kb.Li: true, kb.Link: true, kb.Main: true, kb.Menu: true, kb.Meta: true, kb.Nav: true,
	kb.Noscript: true, kb.Object: true, kb.Ol: true, kb.Optgroup: true, kb.Option: true,
	kb.P: true, kb.Param: true, kb.Pre: true, kb.Script: true, kb.Section: true,
	kb.Select: true, kb.Style: true, kb.Table: true, kb.Tbody: true, kb.Td: true,
	kb.Template: true, kb.Textarea: true, kb.Tfoot: true, kb.Th: true, kb.Thead: true,
	kb.Title: true, kb.Tr: true, kb.Ul: true,
}

func isSpecialTag(el *dot.Element) bool {
	if !el.IsHTMLNative() {
		return false
	}
	return specialTags[el.Tag]
}

// --- reset insertion mode appropriately ----------------------------------

// resetInsertionModeAppropriately implements §4.7's algorithm of the
// same name, used in fragment setup, when leaving foreign content, and
// after template/table/select structural tags are fully processed.
func (b *Builder) resetInsertionModeAppropriately() InsertionMode {
	for i := len(b.stack) - 1; i >= 0; i-- {
		node := b.stack[i]
		last := i == 0
		if last && b.fragmentContext != nil {
			node = b.fragmentElement
		}
		if node.IsHTMLNative() {
			switch node.Tag {
			case kb.Select:
				for j := i; j > 0; j-- {
					anc := b.stack[j-1]
					if anc.IsHTMLNative() && anc.Tag == kb.Template {
						return InSelect
					}
					if anc.IsHTMLNative() && anc.Tag == kb.Table {
						return InSelectInTable
					}
				}
				return InSelect
			case kb.Td, kb.Th:
				if !last {
					return InCell
				}
			case kb.Tr:
				return InRow
			case kb.Tbody, kb.Thead, kb.Tfoot:
				return InTableBody
			case kb.Caption:
				return InCaption
			case kb.Colgroup:
				return InColumnGroup
			case kb.Table:
				return InTable
			case kb.Template:
				if len(b.templateModes) > 0 {
					return b.templateModes[len(b.templateModes)-1]
				}
			case kb.Head:
				if !last {
					return InHead
				}
			case kb.Body:
				return InBody
			case kb.Frameset:
				return InFrameset
			case kb.HTML:
				if b.headElement == nil {
					return BeforeHead
				}
				return AfterHead
			}
		}
		if last {
			return InBody
		}
	}
	return InBody
}
