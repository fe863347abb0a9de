package kb

// ContentModel is a closed set of HTML5 content categories (§4.2's
// Tag×ContentModel table).
type ContentModel int

const (
	Nothing ContentModel = iota
	Metadata
	Flow
	Sectioning
	Heading
	Phrasing
	Embedded
	Interactive
	Palpable
	ScriptSupport
)

// Structure records whether a tag is paired (requires an end tag) or
// void/unpaired (forbids one), per §4.2 and the WHATWG void-elements
// list, which §9.2 names as authoritative over any conflicting table.
type Structure int

const (
	Paired Structure = iota
	Void
)

// voidElements is the WHATWG-authoritative void-element set. It is the
// single source of truth resolving the "two parallel families of element
// tables" discrepancy flagged in §9.2 (e.g. LINK is void here,
// unconditionally, regardless of what any other table in this package's
// ancestry might have implied).
var voidElements = map[Tag]bool{
	Area: true, Base: true, Br: true, Col: true, Embed: true, Hr: true,
	Img: true, Input: true, Link: true, Meta: true, Param: true,
	Source: true, Track: true, Wbr: true,
}

// Structure returns whether t is Void (forbids an end tag) or Paired.
func (t Tag) Structure() Structure {
	if voidElements[t] {
		return Void
	}
	return Paired
}

// IsVoid reports whether t is a void element.
func IsVoid(t Tag) bool {
	return voidElements[t] == true
}

// contentModels maps each tag to the content models it belongs to. Not
// every tag in the registry needs an entry; tags with no entry are
// treated as Nothing (e.g. html, head themselves are document structure,
// not flow content).
var contentModels = map[Tag][]ContentModel{
	A: {Flow, Phrasing, Interactive, Palpable},
	Abbr: {Flow, Phrasing, Palpable},
	Address: {Flow, Palpable},
	Area: {Flow, Phrasing},
	Article: {Flow, Sectioning, Palpable},
	Aside: {Flow, Sectioning, Palpable},
	Audio: {Flow, Phrasing, Embedded, Interactive, Palpable},
	B: {Flow, Phrasing, Palpable},
	Base: {Metadata},
	Blockquote: {Flow, Palpable},
	Body: {Flow},
	Br: {Flow, Phrasing},
	Button: {Flow, Phrasing, Interactive, Palpable},
	Canvas: {Flow, Phrasing, Embedded, Palpable},
	Cite: {Flow, Phrasing, Palpable},
	Code: {Flow, Phrasing, Palpable},
	Col: {Nothing},
	Dd: {Nothing},
	Del: {Flow, Phrasing},
	Details: {Flow, Interactive, Palpable},
	Dfn: {Flow, Phrasing, Palpable},
	Div: {Flow, Palpable},
	Dl: {Flow, Palpable},
	Dt: {Nothing},
	Em: {Flow, Phrasing, Palpable},
	Embed: {Flow, Phrasing, Embedded, Interactive, Palpable},
	Fieldset: {Flow, Palpable},
	Figcaption: {Nothing},
	Figure: {Flow, Palpable},
	Footer: {Flow, Palpable},
	Form: {Flow, Palpable},
	H1: {Flow, Heading, Palpable}, H2: {Flow, Heading, Palpable},
	H3: {Flow, Heading, Palpable}, H4: {Flow, Heading, Palpable},
	H5: {Flow, Heading, Palpable}, H6: {Flow, Heading, Palpable},
	Head: {Nothing},
	Header: {Flow, Palpable},
	Hr: {Flow},
	HTML: {Nothing},
	I: {Flow, Phrasing, Palpable},
	Iframe: {Flow, Phrasing, Embedded, Interactive, Palpable},
	Img: {Flow, Phrasing, Embedded, Interactive, Palpable},
	Input: {Flow, Phrasing, Interactive, Palpable},
	Ins: {Flow, Phrasing},
	Kbd: {Flow, Phrasing, Palpable},
	Label: {Flow, Phrasing, Interactive, Palpable},
	Legend: {Nothing},
	Li: {Nothing},
	Link: {Metadata, Flow, Phrasing},
	Main: {Flow, Palpable},
	Map: {Flow, Phrasing, Palpable},
	Mark: {Flow, Phrasing, Palpable},
	Meta: {Metadata, Flow, Phrasing},
	Meter: {Flow, Phrasing, Palpable},
	Nav: {Flow, Sectioning, Palpable},
	Noscript: {Metadata, Flow, Phrasing},
	Object: {Flow, Phrasing, Embedded, Palpable},
	Ol: {Flow, Palpable},
	Optgroup: {Nothing},
	Option: {Nothing},
	Output: {Flow, Phrasing, Palpable},
	P: {Flow, Palpable},
	Param: {Nothing},
	Picture: {Flow, Phrasing, Embedded},
	Pre: {Flow, Palpable},
	Progress: {Flow, Phrasing, Palpable},
	Q: {Flow, Phrasing, Palpable},
	Rp: {Nothing}, Rt: {Nothing},
	Ruby: {Flow, Phrasing, Palpable},
	S: {Flow, Phrasing, Palpable},
	Samp: {Flow, Phrasing, Palpable},
	Script: {Metadata, Flow, Phrasing, ScriptSupport},
	Section: {Flow, Sectioning, Palpable},
	Select: {Flow, Phrasing, Interactive, Palpable},
	Small: {Flow, Phrasing, Palpable},
	Source: {Nothing},
	Span: {Flow, Phrasing, Palpable},
	Strong: {Flow, Phrasing, Palpable},
	Style: {Metadata},
	Sub: {Flow, Phrasing, Palpable},
	Summary: {Nothing},
	Sup: {Flow, Phrasing, Palpable},
	Table: {Flow, Palpable},
	Tbody: {Nothing},
	Td: {Nothing},
	Template: {Metadata, Flow, Phrasing, ScriptSupport},
	Textarea: {Flow, Phrasing, Interactive, Palpable},
	Tfoot: {Nothing},
	Th: {Nothing},
	Thead: {Nothing},
	Time: {Flow, Phrasing, Palpable},
	Title: {Metadata},
	Tr: {Nothing},
	Track: {Nothing},
	U: {Flow, Phrasing, Palpable},
	Ul: {Flow, Palpable},
	Var: {Flow, Phrasing, Palpable},
	Video: {Flow, Phrasing, Embedded, Interactive, Palpable},
	Wbr: {Flow, Phrasing},
}

// HasContentModel reports whether t belongs to model m.
func HasContentModel(t Tag, m ContentModel) bool {
	for _, have := range contentModels[t] {
		if have == m {
			return true
		}
	}
	return false
}

// autoCloseOnOpen is the optional-closing-tag table of §9.2: opening any
// of the value tags while one of the key tags is the current node closes
// the key tag implicitly. It is exposed through AutoCloses; the tree
// constructor's insertion-mode handlers do their own implicit closing
// and do not consult it.
var autoCloseOnOpen = map[Tag]map[Tag]bool{
	P: setOf(
		Address, Article, Aside, Blockquote, Details, Div, Dl, Fieldset,
		Figcaption, Figure, Footer, Form, H1, H2, H3, H4, H5, H6, Header,
		Hr, Main, Nav, Ol, P, Pre, Section, Table, Ul,
	),
	Li:       setOf(Li),
	Dd:       setOf(Dd, Dt),
	Dt:       setOf(Dd, Dt),
	Option:   setOf(Option, Optgroup),
	Optgroup: setOf(Optgroup),
	Rp:       setOf(Rp, Rt),
	Rt:       setOf(Rp, Rt),
	Tr:       setOf(Tr),
	Td:       setOf(Td, Th),
	Th:       setOf(Td, Th),
	Tbody:    setOf(Tbody, Tfoot, Thead),
	Tfoot:    setOf(Tbody, Thead),
	Thead:    setOf(Tbody),
	Colgroup: setOf(Colgroup),
}

func setOf(tags ...Tag) map[Tag]bool {
	m := make(map[Tag]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return m
}

// AutoCloses reports whether opening `opening` while `current` is open
// implicitly closes `current`, per the optional-closing-tag table.
func AutoCloses(current, opening Tag) bool {
	return autoCloseOnOpen[current][opening]
}
