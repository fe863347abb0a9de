package dot

import "github.com/arbor-dot/htmldot/nsmap"

// QuoteStyle records how an attribute's value was delimited when parsed,
// so a byte-faithful serializer can reproduce it (§3.1, §6.6).
type QuoteStyle int

const (
	QuoteNone QuoteStyle = iota
	QuoteSingle
	QuoteDouble
)

// Attr is an attribute node. Unlike the other kinds, an Attr has no
// tree parent — it is owned by its element's NamedNodeMap and
// participates in sibling linkage among that map's entries (§3.2).
type Attr struct {
	owner         *Element
	namespaces    *nsmap.Map
	namespaceID   nsmap.ID
	Prefix        string
	LocalName     string
	hasValue      bool
	value         string
	Quote         QuoteStyle
}

func newAttr(namespaces *nsmap.Map, namespaceID nsmap.ID, prefix, localName string) *Attr {
	return &Attr{namespaces: namespaces, namespaceID: namespaceID, Prefix: prefix, LocalName: localName}
}

func (a *Attr) Type() NodeType         { return AttrNode }
func (a *Attr) OwnerDocument() *Document {
	if a.owner == nil {
		return nil
	}
	return a.owner.OwnerDocument()
}
func (a *Attr) OwnerElement() *Element { return a.owner }
func (a *Attr) Parent() Node           { return nil }
func (a *Attr) Children() []Node       { return nil }

// QualifiedName returns "prefix:local" or just "local" when there is no
// prefix.
func (a *Attr) QualifiedName() string {
	if a.Prefix == "" {
		return a.LocalName
	}
	return a.Prefix + ":" + a.LocalName
}

// NamespaceID returns the interned namespace id this attribute was
// created in (nsmap.None for unprefixed HTML attributes).
func (a *Attr) NamespaceID() nsmap.ID { return a.namespaceID }

// Namespaces returns the namespace map this attribute is interned
// against, for callers validating its qualified name (§4.4).
func (a *Attr) Namespaces() *nsmap.Map { return a.namespaces }

// Value returns the attribute's value. An Attr with the no-value flag
// set has an empty string here; HasValue distinguishes that case from an
// explicit empty value (§3.1).
func (a *Attr) Value() string { return a.value }

// HasValue reports whether this Attr was given an explicit value,
// distinguishing `hidden` (absent) from `class=""` (present, empty).
func (a *Attr) HasValue() bool { return a.hasValue }

// SetValue sets the value and marks it present.
func (a *Attr) SetValue(v string) {
	a.value = v
	a.hasValue = true
}

// ClearValue marks the attribute as present-with-no-value (e.g. the
// boolean `hidden` attribute form).
func (a *Attr) ClearValue() {
	a.value = ""
	a.hasValue = false
}

func (a *Attr) TextContent() string { return a.value }

func (a *Attr) setParent(Node)             {}
func (a *Attr) setOwnerDocument(*Document) {}
func (a *Attr) appendChildRaw(Node)        {}
func (a *Attr) removeChildRaw(Node)        {}
func (a *Attr) insertChildRawBefore(Node, Node) {}
func (a *Attr) replaceChildRaw(Node, Node)      {}

// NextSibling/PrevSibling walk the owning NamedNodeMap's ordered item
// list rather than a parent's child list, since Attr nodes are not
// children of their owner element (§3.2).
func (a *Attr) NextSibling() Node {
	if a.owner == nil {
		return nil
	}
	items := a.owner.Attributes.items
	for i, it := range items {
		if it == a {
			if i+1 < len(items) {
				return items[i+1]
			}
			return nil
		}
	}
	return nil
}

func (a *Attr) PrevSibling() Node {
	if a.owner == nil {
		return nil
	}
	items := a.owner.Attributes.items
	for i, it := range items {
		if it == a {
			if i > 0 {
				return items[i-1]
			}
			return nil
		}
	}
	return nil
}

// NamedNodeMap is a per-element ordered list plus name-keyed index of
// Attr nodes (§4.5).
type NamedNodeMap struct {
	owner *Element
	items []*Attr
	index map[string]*Attr
}

func newNamedNodeMap(owner *Element) *NamedNodeMap {
	return &NamedNodeMap{owner: owner, index: make(map[string]*Attr)}
}

// Length returns the number of attributes.
func (m *NamedNodeMap) Length() int { return len(m.items) }

// Item returns the attribute at position i in insertion order, or nil.
func (m *NamedNodeMap) Item(i int) *Attr {
	if i < 0 || i >= len(m.items) {
		return nil
	}
	return m.items[i]
}

// qualifiedKey lowercases the qualified name for HTML-native owners
// (§4.5: "HTML-native elements lowercase attribute names on lookup;
// foreign elements preserve case").
func (m *NamedNodeMap) qualifiedKey(name string) string {
	if m.owner != nil && m.owner.IsHTMLNative() {
		return toASCIILower(name)
	}
	return name
}

// Get returns the attribute named name, or nil if absent.
func (m *NamedNodeMap) Get(name string) *Attr {
	return m.index[m.qualifiedKey(name)]
}

// Set inserts attr, or replaces the existing entry with the same
// qualified name in place (preserving its position and sibling links).
func (m *NamedNodeMap) Set(attr *Attr) {
	key := m.qualifiedKey(attr.QualifiedName())
	if existing, ok := m.index[key]; ok {
		for i, it := range m.items {
			if it == existing {
				attr.owner = m.owner
				m.items[i] = attr
				m.index[key] = attr
				return
			}
		}
	}
	attr.owner = m.owner
	m.items = append(m.items, attr)
	m.index[key] = attr
}

// RemoveByName removes and returns ownership of the attribute named
// name, or nil if absent.
func (m *NamedNodeMap) RemoveByName(name string) *Attr {
	key := m.qualifiedKey(name)
	attr, ok := m.index[key]
	if !ok {
		return nil
	}
	return m.removeAttr(attr, key)
}

// RemoveByIndex removes and returns ownership of the attribute at
// position i, or nil if out of range.
func (m *NamedNodeMap) RemoveByIndex(i int) *Attr {
	attr := m.Item(i)
	if attr == nil {
		return nil
	}
	return m.removeAttr(attr, m.qualifiedKey(attr.QualifiedName()))
}

// RemoveNode removes and returns ownership of attr if it is a member of
// this map.
func (m *NamedNodeMap) RemoveNode(attr *Attr) *Attr {
	for _, it := range m.items {
		if it == attr {
			return m.removeAttr(attr, m.qualifiedKey(attr.QualifiedName()))
		}
	}
	return nil
}

func (m *NamedNodeMap) removeAttr(attr *Attr, key string) *Attr {
	for i, it := range m.items {
		if it == attr {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	delete(m.index, key)
	attr.owner = nil
	return attr
}

// Items returns the attributes in insertion order. Callers must not
// mutate the returned slice.
func (m *NamedNodeMap) Items() []*Attr {
	return m.items
}

func toASCIILower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
