package dot

import (
	"github.com/arbor-dot/htmldot/nsmap"
	"github.com/google/uuid"
)

// QuirksMode is the WHATWG DOCTYPE-driven rendering mode classification
// (§9.2 supplement: the original's DOCTYPE handling, absent from the
// distilled spec by name but required by the tree-construction
// algorithm it cites).
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

func (m QuirksMode) String() string {
	switch m {
	case NoQuirks:
		return "no-quirks"
	case LimitedQuirks:
		return "limited-quirks"
	case Quirks:
		return "quirks"
	default:
		return "unknown"
	}
}

// Document is the root of a parsed tree. One Document owns exactly one
// namespace map, shared by every Element/Attr it creates (§4.3, §5).
type Document struct {
	base

	// InstanceID uniquely identifies this parse, letting a caller
	// correlate a Document with an external log line (supplemented
	// feature, the uuid row of §2 of the expanded spec).
	InstanceID uuid.UUID

	Namespaces *nsmap.Map
	Doctype    *DocumentType
	QuirksMode QuirksMode
}

// NewDocument creates an empty Document with its own namespace map.
func NewDocument() *Document {
	d := &Document{
		InstanceID: uuid.New(),
		Namespaces: nsmap.New(),
		QuirksMode: NoQuirks,
	}
	d.self = d
	d.owner = d
	return d
}

func (d *Document) Type() NodeType { return DocumentNode }

// DocumentElement returns the document's single element child (the
// `html` root), or nil if none has been inserted yet.
func (d *Document) DocumentElement() *Element {
	for _, c := range d.children {
		if el, ok := c.(*Element); ok {
			return el
		}
	}
	return nil
}

// CreateElement creates an HTML-namespace element with local name
// localName, resolving it against the knowledge base's tag table.
func (d *Document) CreateElement(localName string) *Element {
	return newElement(d.Namespaces, nsmap.HTML, "", localName)
}

// CreateElementNS creates an element in the namespace identified by
// namespaceID (interned via d.Namespaces.Intern), with an optional
// prefix split out of qualifiedName.
func (d *Document) CreateElementNS(namespaceID nsmap.ID, qualifiedName string) *Element {
	prefix, local := splitQualifiedName(qualifiedName)
	return newElement(d.Namespaces, namespaceID, prefix, local)
}

// CreateAttribute creates an unprefixed attribute not yet attached to
// any element.
func (d *Document) CreateAttribute(localName string) *Attr {
	return newAttr(d.Namespaces, nsmap.None, "", localName)
}

// CreateAttributeNS creates an attribute in the given namespace, with an
// optional prefix split out of qualifiedName.
func (d *Document) CreateAttributeNS(namespaceID nsmap.ID, qualifiedName string) *Attr {
	prefix, local := splitQualifiedName(qualifiedName)
	return newAttr(d.Namespaces, namespaceID, prefix, local)
}

// CreateTextNode creates a detached Text node.
func (d *Document) CreateTextNode(data string) *Text { return newText(data) }

// CreateComment creates a detached Comment node.
func (d *Document) CreateComment(data string) *Comment { return newComment(data) }

// CreateCDATASection creates a detached CDATASection node, legal only in
// foreign content (§4.6 group 4).
func (d *Document) CreateCDATASection(data string) *CDATASection { return newCDATASection(data) }

// CreateDocumentFragment creates a detached, ownerless fragment.
func (d *Document) CreateDocumentFragment() *DocumentFragment { return newDocumentFragment() }

// CreateDocumentType creates a detached DocumentType node, used by the
// tree constructor's Initial insertion mode.
func (d *Document) CreateDocumentType(name, publicID, systemID string) *DocumentType {
	return newDocumentType(name, publicID, systemID)
}

// SetQuirksModeFromDoctype implements WHATWG's "quirks mode" algorithm:
// the public/system identifier prefix matching the tree constructor's
// Initial insertion mode performs when it sees a DOCTYPE token.
func (d *Document) SetQuirksModeFromDoctype(name, publicID, systemID string, forceQuirks bool) {
	d.QuirksMode = classifyQuirksMode(name, publicID, systemID, forceQuirks)
}

func classifyQuirksMode(name, publicID, systemID string, forceQuirks bool) QuirksMode {
	if forceQuirks || !equalFoldASCII(name, "html") {
		return Quirks
	}
	lowerPublic := toASCIILower(publicID)

	for _, p := range quirksPublicPrefixes {
		if hasPrefixASCII(lowerPublic, p) {
			return Quirks
		}
	}
	if systemID == "" {
		for _, p := range quirksPublicPrefixesNoSystem {
			if hasPrefixASCII(lowerPublic, p) {
				return Quirks
			}
		}
	}
	for _, p := range limitedQuirksPublicPrefixes {
		if hasPrefixASCII(lowerPublic, p) {
			return LimitedQuirks
		}
	}
	if systemID != "" {
		for _, p := range limitedQuirksPublicPrefixesWithSystem {
			if hasPrefixASCII(lowerPublic, p) {
				return LimitedQuirks
			}
		}
	}
	return NoQuirks
}

var quirksPublicPrefixes = []string{
	"-//w3o//dtd w3 html strict 3.0//en//",
	"-/w3d/dtd html 4.0 transitional/en",
	"+//silmaril//dtd html pro v0r11 19970101//",
	"-//advasoft ltd//dtd html 3.0 aswedit + extensions//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html 2.0 level 1//",
	"-//ietf//dtd html 2.0 level 2//",
	"-//ietf//dtd html 2.0 strict level 1//",
	"-//ietf//dtd html 2.0 strict level 2//",
	"-//ietf//dtd html 2.0 strict//",
	"-//ietf//dtd html 2.0//",
	"-//ietf//dtd html 2.1e//",
	"-//ietf//dtd html 3.0//",
	"-//ietf//dtd html 3.2 final//",
	"-//ietf//dtd html 3.2//",
	"-//ietf//dtd html 3//",
	"-//ietf//dtd html level 0//",
	"-//ietf//dtd html level 1//",
	"-//ietf//dtd html level 2//",
	"-//ietf//dtd html level 3//",
	"-//ietf//dtd html strict level 0//",
	"-//ietf//dtd html strict level 1//",
	"-//ietf//dtd html strict level 2//",
	"-//ietf//dtd html strict level 3//",
	"-//ietf//dtd html strict//",
	"-//ietf//dtd html//",
	"-//metrius//dtd metrius presentational//",
	"-//microsoft//dtd internet explorer 2.0 html strict//",
	"-//microsoft//dtd internet explorer 2.0 html//",
	"-//microsoft//dtd internet explorer 2.0 tables//",
	"-//microsoft//dtd internet explorer 3.0 html strict//",
	"-//microsoft//dtd internet explorer 3.0 html//",
	"-//microsoft//dtd internet explorer 3.0 tables//",
	"-//netscape comm. corp.//dtd html//",
	"-//netscape comm. corp.//dtd strict html//",
	"-//o'reilly and associates//dtd html 2.0//",
	"-//o'reilly and associates//dtd html extended 1.0//",
	"-//o'reilly and associates//dtd html extended relaxed 1.0//",
	"-//sq//dtd html 2.0 hotmetal + extensions//",
	"-//softquad software//dtd hotmetal pro 6.0::19990601::extensions to html 4.0//",
	"-//softquad//dtd hotmetal pro 4.0::19971010::extensions to html 4.0//",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sun microsystems corp.//dtd hotjava html//",
	"-//sun microsystems corp.//dtd hotjava strict html//",
	"-//w3c//dtd html 3 1995-03-24//",
	"-//w3c//dtd html 3.2 draft//",
	"-//w3c//dtd html 3.2 final//",
	"-//w3c//dtd html 3.2//",
	"-//w3c//dtd html 3.2s draft//",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd html experimental 19960712//",
	"-//w3c//dtd html experimental 970421//",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html 3.0//",
	"-//webtechs//dtd mozilla html 2.0//",
	"-//webtechs//dtd mozilla html//",
}

var quirksPublicPrefixesNoSystem = []string{
	"-//w3c//dtd html 4.01 frameset//",
	"-//w3c//dtd html 4.01 transitional//",
}

var limitedQuirksPublicPrefixes = []string{
	"-//w3c//dtd xhtml 1.0 frameset//",
	"-//w3c//dtd xhtml 1.0 transitional//",
}

var limitedQuirksPublicPrefixesWithSystem = []string{
	"-//w3c//dtd html 4.01 frameset//",
	"-//w3c//dtd html 4.01 transitional//",
}

func hasPrefixASCII(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return s[:len(prefix)] == prefix
}

func equalFoldASCII(a, b string) bool {
	return toASCIILower(a) == toASCIILower(b)
}

func splitQualifiedName(qualifiedName string) (prefix, local string) {
	for i := 0; i < len(qualifiedName); i++ {
		if qualifiedName[i] == ':' {
			return qualifiedName[:i], qualifiedName[i+1:]
		}
	}
	return "", qualifiedName
}
