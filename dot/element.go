package dot

import (
	"github.com/arbor-dot/htmldot/kb"
	"github.com/arbor-dot/htmldot/nsmap"
)

// Element is a tagged markup node: a namespace id, a tag enum (kb.Other
// when the local name isn't one the knowledge base recognises), an
// optional prefix, the raw local name as parsed, and its attributes
// (§4.1).
type Element struct {
	base
	namespaces  *nsmap.Map
	namespaceID nsmap.ID
	Tag         kb.Tag
	Prefix      string
	LocalName   string
	Attributes  *NamedNodeMap

	// TemplateContent holds the `template` element's content document
	// fragment (§4.7). Nil for every other element.
	TemplateContent *DocumentFragment
}

func newElement(namespaces *nsmap.Map, namespaceID nsmap.ID, prefix, localName string) *Element {
	e := &Element{
		namespaces:  namespaces,
		namespaceID: namespaceID,
		Prefix:      prefix,
		LocalName:   localName,
	}
	e.self = e
	e.Attributes = newNamedNodeMap(e)
	if namespaceID == nsmap.HTML {
		e.Tag = kb.TagFromHTMLString(localName)
	} else {
		e.Tag = kb.Other
	}
	if e.Tag == kb.Template && namespaceID == nsmap.HTML {
		e.TemplateContent = newDocumentFragment()
	}
	return e
}

func (e *Element) Type() NodeType { return ElementNode }

// NamespaceID returns the interned namespace this element was created
// in.
func (e *Element) NamespaceID() nsmap.ID { return e.namespaceID }

// Namespaces returns the namespace map this element was created
// against.
func (e *Element) Namespaces() *nsmap.Map { return e.namespaces }

// IsHTMLNative reports whether this element lives in the HTML
// namespace, which governs attribute-name case folding (§4.5) and a
// handful of tree-construction special cases (§5, §7).
func (e *Element) IsHTMLNative() bool { return e.namespaceID == nsmap.HTML }

// QualifiedName returns "prefix:local" or just "local".
func (e *Element) QualifiedName() string {
	if e.Prefix == "" {
		return e.LocalName
	}
	return e.Prefix + ":" + e.LocalName
}

// HasAttribute reports whether name is present, applying the same
// HTML-native case folding NamedNodeMap.Get uses.
func (e *Element) HasAttribute(name string) bool {
	return e.Attributes.Get(name) != nil
}

// GetAttribute returns the value of the named attribute, or "" if
// absent. Use Attributes.Get to distinguish absence from an explicit
// empty value.
func (e *Element) GetAttribute(name string) string {
	if a := e.Attributes.Get(name); a != nil {
		return a.Value()
	}
	return ""
}

// SetAttribute creates or replaces an unprefixed attribute in this
// element's own namespace context.
func (e *Element) SetAttribute(name, value string) {
	if existing := e.Attributes.Get(name); existing != nil {
		existing.SetValue(value)
		return
	}
	a := newAttr(e.namespaces, nsmap.None, "", name)
	a.SetValue(value)
	e.Attributes.Set(a)
}

// RemoveAttribute removes the named attribute, if present.
func (e *Element) RemoveAttribute(name string) {
	e.Attributes.RemoveByName(name)
}
