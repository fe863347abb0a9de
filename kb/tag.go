// Package kb is the static knowledge base: immutable, process-wide tables
// describing HTML5/MathML/SVG tags, attributes, content models, void/
// paired classification, and named character references. Every table is
// built once at package init and never mutated afterwards, per §4.2 and
// §9.1's "global lookup tables built at process start" guidance.
package kb

import "strings"

// Tag is a closed enumeration of known HTML5, MathML, and SVG elements,
// plus the Other sentinel for anything unrecognised.
type Tag int

const (
	Other Tag = iota

	A
	Abbr
	Address
	Area
	Article
	Aside
	Audio
	B
	Base
	Bdi
	Bdo
	Big
	Blockquote
	Body
	Br
	Button
	Canvas
	Caption
	Center
	Cite
	Code
	Col
	Colgroup
	Data
	Datalist
	Dd
	Del
	Details
	Dfn
	Dialog
	Dir
	Div
	Dl
	Dt
	Em
	Embed
	Fieldset
	Figcaption
	Figure
	Font
	Footer
	Form
	Frameset
	H1
	H2
	H3
	H4
	H5
	H6
	Head
	Header
	Hr
	HTML
	I
	Iframe
	Img
	Input
	Ins
	Kbd
	Label
	Legend
	Li
	Link
	Main
	Map
	Mark
	Menu
	Meta
	Meter
	Nav
	Nobr
	Noembed
	Noframes
	Noscript
	Object
	Ol
	Optgroup
	Option
	Output
	P
	Param
	Picture
	Plaintext
	Pre
	Progress
	Q
	Rp
	Rt
	Ruby
	S
	Samp
	Script
	Section
	Select
	Small
	Source
	Span
	Strike
	Strong
	Style
	Sub
	Summary
	Sup
	Table
	Tbody
	Td
	Template
	Textarea
	Tfoot
	Th
	Thead
	Time
	Title
	Tr
	Track
	Tt
	U
	Ul
	Var
	Video
	Wbr
	Xmp

	// MathML (https://developer.mozilla.org/docs/Web/MathML/Element).
	Math
	Mi
	Mn
	Mo
	Ms
	Mtext
	AnnotationXML

	// SVG (a representative subset; §4.2's canonical-camelCase adjustment
	// map is exercised by ForeignObject and the Desc/Title overlaps with
	// HTML tags that the SVG namespace shares by name).
	SVG
	Circle
	Desc
	ForeignObject
	Rect

	tagCount
)

var tagStrings = map[Tag]string{
	A: "a", Abbr: "abbr", Address: "address", Area: "area", Article: "article",
	Aside: "aside", Audio: "audio", B: "b", Base: "base", Bdi: "bdi", Bdo: "bdo",
	Big: "big",
	Blockquote: "blockquote", Body: "body", Br: "br", Button: "button",
	Canvas: "canvas", Caption: "caption", Center: "center", Cite: "cite", Code: "code", Col: "col",
	Colgroup: "colgroup", Data: "data", Datalist: "datalist", Dd: "dd", Del: "del",
	Details: "details", Dfn: "dfn", Dialog: "dialog", Dir: "dir", Div: "div", Dl: "dl", Dt: "dt",
	Em: "em", Embed: "embed", Fieldset: "fieldset", Figcaption: "figcaption",
	Figure: "figure", Font: "font", Footer: "footer", Form: "form", Frameset: "frameset", H1: "h1", H2: "h2", H3: "h3",
	H4: "h4", H5: "h5", H6: "h6", Head: "head", Header: "header", Hr: "hr",
	HTML: "html", I: "i", Iframe: "iframe", Img: "img", Input: "input", Ins: "ins",
	Kbd: "kbd", Label: "label", Legend: "legend", Li: "li", Link: "link",
	Main: "main", Map: "map", Mark: "mark", Menu: "menu", Meta: "meta", Meter: "meter",
	Nav: "nav", Nobr: "nobr", Noembed: "noembed", Noframes: "noframes", Noscript: "noscript",
	Object: "object", Ol: "ol", Optgroup: "optgroup", Option: "option",
	Output: "output", P: "p", Param: "param", Picture: "picture",
	Plaintext: "plaintext", Pre: "pre", Progress: "progress", Q: "q", Rp: "rp",
	Rt: "rt", Ruby: "ruby", S: "s", Samp: "samp", Script: "script",
	Section: "section", Select: "select", Small: "small", Source: "source",
	Span: "span", Strike: "strike", Strong: "strong", Style: "style", Sub: "sub", Summary: "summary",
	Sup: "sup", Table: "table", Tbody: "tbody", Td: "td", Template: "template",
	Textarea: "textarea", Tfoot: "tfoot", Th: "th", Thead: "thead", Time: "time",
	Title: "title", Tr: "tr", Track: "track", Tt: "tt", U: "u", Ul: "ul", Var: "var",
	Video: "video", Wbr: "wbr", Xmp: "xmp",

	Math: "math", Mi: "mi", Mn: "mn", Mo: "mo", Ms: "ms", Mtext: "mtext",
	AnnotationXML: "annotation-xml",

	SVG: "svg", Circle: "circle", Desc: "desc", ForeignObject: "foreignObject",
	Rect: "rect",
}

var stringTags map[string]Tag

// svgCanonicalCase maps a lowercase SVG tag name to its canonical
// camelCase spelling, per the "fixed adjustment map" of §4.2. Tags not
// present here are already all-lowercase in their canonical form.
var svgCanonicalCase = map[string]string{
	"foreignobject": "foreignObject",
}

func init() {
	stringTags = make(map[string]Tag, len(tagStrings))
	for tag, s := range tagStrings {
		stringTags[s] = tag
	}
}

// TagFromHTMLString resolves a tag name under HTML matching rules:
// case-insensitive, canonical spelling is lowercase.
func TagFromHTMLString(name string) Tag {
	if t, ok := stringTags[strings.ToLower(name)]; ok {
		return t
	}
	return Other
}

// TagFromSVGString resolves a tag name under SVG matching rules: the
// input is first case-adjusted via the canonical-camelCase map, then
// matched case-sensitively against the known SVG tag set.
func TagFromSVGString(name string) Tag {
	adjusted := AdjustSVGTagName(name)
	if t, ok := stringTags[adjusted]; ok {
		return t
	}
	return Other
}

// TagFromMathMLString resolves a tag name under MathML matching rules:
// case-sensitive, no adjustment map (§4.2).
func TagFromMathMLString(name string) Tag {
	if t, ok := stringTags[name]; ok {
		return t
	}
	return Other
}

// AdjustSVGTagName applies the fixed lowercase→camelCase adjustment map
// used when resolving or serializing SVG tag names. Applying it twice
// yields the same result as applying it once (§8.2 property 7): the
// output of a prior adjustment is already canonical and is not itself a
// key in the adjustment map.
func AdjustSVGTagName(name string) string {
	lower := strings.ToLower(name)
	if adjusted, ok := svgCanonicalCase[lower]; ok {
		return adjusted
	}
	return lower
}

// String returns the canonical spelling of a tag: lowercase for HTML,
// case-sensitive MathML spelling, or camelCase for SVG tags the
// adjustment map defines (§8.1 property 5).
func (t Tag) String() string {
	if s, ok := tagStrings[t]; ok {
		return s
	}
	return "other"
}
