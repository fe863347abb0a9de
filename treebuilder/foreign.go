package treebuilder

import (
	"strings"

	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/kb"
	"github.com/arbor-dot/htmldot/nsmap"
	"github.com/arbor-dot/htmldot/token"
)

// mathMLAttributeAdjustments and svgAttributeAdjustments fix the case of
// a handful of camelCase attributes that foreign content's otherwise
// lowercase-folding tokeniser would mangle (§4.7's "adjust MathML/SVG
// attributes" algorithms).
var mathMLAttributeAdjustments = map[string]string{
	"definitionurl": "definitionURL",
}

var svgAttributeAdjustments = map[string]string{
	"attributename": "attributeName", "attributetype": "attributeType",
	"basefrequency": "baseFrequency", "baseprofile": "baseProfile",
	"calcmode": "calcMode", "clippathunits": "clipPathUnits",
	"diffuseconstant": "diffuseConstant", "edgemode": "edgeMode",
	"filterunits": "filterUnits", "glyphref": "glyphRef",
	"gradienttransform": "gradientTransform", "gradientunits": "gradientUnits",
	"kernelmatrix": "kernelMatrix", "kernelunitlength": "kernelUnitLength",
	"keypoints": "keyPoints", "keysplines": "keySplines", "keytimes": "keyTimes",
	"lengthadjust": "lengthAdjust", "limitingconeangle": "limitingConeAngle",
	"markerheight": "markerHeight", "markerunits": "markerUnits",
	"markerwidth": "markerWidth", "maskcontentunits": "maskContentUnits",
	"maskunits": "maskUnits", "numoctaves": "numOctaves",
	"pathlength": "pathLength", "patterncontentunits": "patternContentUnits",
	"patterntransform": "patternTransform", "patternunits": "patternUnits",
	"pointsatx": "pointsAtX", "pointsaty": "pointsAtY", "pointsatz": "pointsAtZ",
	"preservealpha": "preserveAlpha", "preserveaspectratio": "preserveAspectRatio",
	"primitiveunits": "primitiveUnits", "refx": "refX", "refy": "refY",
	"repeatcount": "repeatCount", "repeatdur": "repeatDur",
	"requiredextensions": "requiredExtensions", "requiredfeatures": "requiredFeatures",
	"specularconstant": "specularConstant", "specularexponent": "specularExponent",
	"spreadmethod": "spreadMethod", "startoffset": "startOffset",
	"stddeviation": "stdDeviation", "stitchtiles": "stitchTiles",
	"surfacescale": "surfaceScale", "systemlanguage": "systemLanguage",
	"tablevalues": "tableValues", "targetx": "targetX", "targety": "targetY",
	"textlength": "textLength", "viewbox": "viewBox", "viewtarget": "viewTarget",
	"xchannelselector": "xChannelSelector", "ychannelselector": "yChannelSelector",
	"zoomandpan": "zoomAndPan",
}

// foreignAttributeNamespace reassigns foreign attributes belonging to
// the xlink:/xml:/xmlns namespaces (§4.7's "adjust foreign attributes").
var foreignAttributeNamespace = map[string]nsmap.ID{
	"xlink:actuate": nsmap.XLink, "xlink:arcrole": nsmap.XLink, "xlink:href": nsmap.XLink,
	"xlink:role": nsmap.XLink, "xlink:show": nsmap.XLink, "xlink:title": nsmap.XLink,
	"xlink:type": nsmap.XLink,
	"xml:lang":   nsmap.XML, "xml:space": nsmap.XML,
	"xmlns": nsmap.XMLNS, "xmlns:xlink": nsmap.XMLNS,
}

// htmlBreakoutTags force foreign content back to HTML insertion rules
// when seen as a start tag (§4.7's list of elements that "cause an exit
// from foreign content").
var htmlBreakoutTags = map[string]bool{
	"b": true, "big": true, "blockquote": true, "body": true, "br": true,
	"center": true, "code": true, "dd": true, "div": true, "dl": true,
	"dt": true, "em": true, "embed": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "head": true, "hr": true, "i": true,
	"img": true, "li": true, "listing": true, "menu": true, "meta": true,
	"nobr": true, "ol": true, "p": true, "pre": true, "ruby": true, "s": true,
	"small": true, "span": true, "strong": true, "strike": true, "sub": true,
	"sup": true, "table": true, "tt": true, "u": true, "ul": true, "var": true,
}

func (b *Builder) shouldUseForeignContent(tok token.Token) bool {
	cur := b.adjustedCurrentNode()
	if cur == nil || cur.IsHTMLNative() {
		return false
	}
	if tok.Kind == token.EOF {
		return false
	}
	if isMathMLTextIntegrationPoint(cur) {
		if tok.Kind == token.Character {
			return false
		}
		if tok.Kind == token.StartTag && tok.TagName != "mglyph" && tok.TagName != "malignmark" {
			return false
		}
	}
	if cur.NamespaceID() == nsmap.MathML && cur.Tag == kb.AnnotationXML && tok.Kind == token.StartTag && tok.TagName == "svg" {
		return false
	}
	if isHTMLIntegrationPoint(cur) {
		if tok.Kind == token.Character || tok.Kind == token.StartTag {
			return false
		}
	}
	return true
}

func isMathMLTextIntegrationPoint(el *dot.Element) bool {
	if el.NamespaceID() != nsmap.MathML {
		return false
	}
	switch el.Tag {
	case kb.Mi, kb.Mo, kb.Mn, kb.Ms, kb.Mtext:
		return true
	}
	return false
}

func isHTMLIntegrationPoint(el *dot.Element) bool {
	switch el.NamespaceID() {
	case nsmap.MathML:
		if el.Tag == kb.AnnotationXML {
			enc := strings.ToLower(el.GetAttribute("encoding"))
			return enc == "text/html" || enc == "application/xhtml+xml"
		}
	case nsmap.SVG:
		switch el.Tag {
		case kb.ForeignObject, kb.Desc, kb.Title:
			return true
		}
	}
	return false
}

// processForeignContent implements §4.7's "parsing tokens in foreign
// content" rules. It returns true when the caller should re-dispatch
// tok through the HTML insertion-mode machinery.
func (b *Builder) processForeignContent(tok token.Token) bool {
	cur := b.currentElement()
	if cur == nil {
		return false
	}
	switch tok.Kind {
	case token.Character:
		if tok.CodePoint == 0 {
			b.report(domerr.UnexpectedNullCharacter, tok)
			b.insertCharacter('�')
			return false
		}
		if !isWhitespaceRune(tok.CodePoint) {
			b.framesetOK = false
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
		lower := strings.ToLower(tok.TagName)
		if htmlBreakoutTags[lower] || (lower == "font" && hasAnyAttr(tok, "color", "face", "size")) {
			b.popUntilHTMLOrIntegrationPoint()
			b.mode = b.resetInsertionModeAppropriately()
			b.forceHTMLMode = true
			return true
		}
		ns := cur.NamespaceID()
		adjustedName := tok.TagName
		if ns == nsmap.SVG {
			adjustedName = kb.AdjustSVGTagName(tok.TagName)
		}
		b.insertForeignElement(adjustedName, ns, tok.Attributes, tok.SelfClosing)
		return false
	case token.EndTag:
		lower := strings.ToLower(tok.TagName)
		if lower == "br" || lower == "p" {
			b.popUntilHTMLOrIntegrationPoint()
			b.mode = b.resetInsertionModeAppropriately()
			b.forceHTMLMode = true
			return true
		}
		for i := len(b.stack) - 1; i >= 0; i-- {
			node := b.stack[i]
			if strings.EqualFold(node.LocalName, tok.TagName) {
				if b.fragmentElement != nil && node == b.fragmentElement {
					return false
				}
				if node.IsHTMLNative() {
					b.forceHTMLMode = true
					return true
				}
				b.stack = b.stack[:i]
				return false
			}
			if node.IsHTMLNative() {
				b.forceHTMLMode = true
				return true
			}
		}
		return false
	default:
		return false
	}
}

func hasAnyAttr(tok token.Token, names ...string) bool {
	for _, a := range tok.Attributes {
		for _, n := range names {
			if strings.EqualFold(a.Name, n) {
				return true
			}
		}
	}
	return false
}

func (b *Builder) popUntilHTMLOrIntegrationPoint() {
	for len(b.stack) > 0 {
		cur := b.currentElement()
		if cur.IsHTMLNative() || isHTMLIntegrationPoint(cur) {
			return
		}
		b.pop()
	}
}

// insertForeignElement resolves tok's attributes against the MathML/SVG
// attribute-name adjustment maps and the xlink/xml/xmlns namespace
// reassignment before inserting the element (§4.7).
func (b *Builder) insertForeignElement(name string, ns nsmap.ID, attrs []token.Attribute, selfClosing bool) *dot.Element {
	var el *dot.Element
	switch ns {
	case nsmap.SVG:
		el = b.doc.CreateElementNS(nsmap.SVG, name)
	case nsmap.MathML:
		el = b.doc.CreateElementNS(nsmap.MathML, name)
	default:
		el = b.doc.CreateElementNS(ns, name)
	}
	for _, a := range attrs {
		lower := strings.ToLower(a.Name)
		adjustedName := a.Name
		switch ns {
		case nsmap.MathML:
			if adj, ok := mathMLAttributeAdjustments[lower]; ok {
				adjustedName = adj
			}
		case nsmap.SVG:
			if adj, ok := svgAttributeAdjustments[lower]; ok {
				adjustedName = adj
			}
		}
		attrNS := nsmap.None
		if nsID, ok := foreignAttributeNamespace[lower]; ok {
			attrNS = nsID
		}
		attr := b.doc.CreateAttributeNS(attrNS, adjustedName)
		attr.SetValue(a.Value)
		attr.Quote = a.Quote
		if !a.HasValue {
			attr.ClearValue()
		}
		if !el.HasAttribute(attr.QualifiedName()) {
			el.Attributes.Set(attr)
		}
	}
	parent, before := b.appropriateInsertionLocation()
	b.insertNodeAt(el, parent, before)
	if !selfClosing {
		b.push(el)
	} else if el.Tag == kb.Script {
		// Self-closing foreign <script> acknowledges the slash and never
		// runs as a paired element; nothing further to hand to the stack.
	}
	return el
}

func isWhitespaceRune(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}
