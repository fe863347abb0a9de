// Package nsmap implements the namespace intern table shared by every
// element and attribute produced by the tree constructor.
//
// A Map converts a namespace URI (plus an optional default prefix) into a
// compact integer ID so that nodes can carry a cheap int instead of
// repeating the URI string. IDs are stable for the lifetime of the Map:
// once issued, an ID never changes the URI it points to.
package nsmap

import "sync"

// ID identifies an interned namespace. The zero value is None (no
// namespace), which is a valid reserved ID; use Invalid to test for
// absence.
type ID int

// Invalid is returned by lookups that find nothing.
const Invalid ID = -1

// Reserved IDs for the standard namespaces, assigned once at package init
// so every Map starts pre-seeded the same way.
const (
	None ID = iota
	HTML
	MathML
	SVG
	XLink
	XML
	XMLNS
)

const (
	htmlURI  = "http://www.w3.org/1999/xhtml"
	mathURI  = "http://www.w3.org/1998/Math/MathML"
	svgURI   = "http://www.w3.org/2000/svg"
	xlinkURI = "http://www.w3.org/1999/xlink"
	xmlURI   = "http://www.w3.org/XML/1998/namespace"
	xmlnsURI = "http://www.w3.org/2000/xmlns/"
)

type entry struct {
	uri    string
	prefix string
}

// Map is a thread-safe namespace intern table. Multiple parsers may share
// one Map while constructing independent documents concurrently; all other
// collaborators in this module are single-threaded (see §5 of the spec).
type Map struct {
	mu      sync.Mutex
	entries []entry
	byURI   map[string]ID
}

// New returns a Map pre-seeded with the reserved namespace IDs.
func New() *Map {
	m := &Map{
		byURI: make(map[string]ID, 8),
	}
	m.entries = []entry{
		None:   {uri: ""},
		HTML:   {uri: htmlURI},
		MathML: {uri: mathURI},
		SVG:    {uri: svgURI},
		XLink:  {uri: xlinkURI},
		XML:    {uri: xmlURI, prefix: "xml"},
		XMLNS:  {uri: xmlnsURI, prefix: "xmlns"},
	}
	for id, e := range m.entries {
		m.byURI[e.uri] = ID(id)
	}
	return m
}

// Intern returns the ID for uri, interning it (with the given default
// prefix) if this is the first time it has been seen. The empty URI always
// maps to None.
func (m *Map) Intern(uri, prefix string) ID {
	if uri == "" {
		return None
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.byURI[uri]; ok {
		return id
	}
	id := ID(len(m.entries))
	m.entries = append(m.entries, entry{uri: uri, prefix: prefix})
	m.byURI[uri] = id
	return id
}

// Lookup returns the ID already interned for uri, or Invalid if it has
// never been seen by this Map.
func (m *Map) Lookup(uri string) ID {
	if uri == "" {
		return None
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.byURI[uri]; ok {
		return id
	}
	return Invalid
}

// URI returns the namespace URI for id, or "" with ok=false if id is
// unknown to this Map.
func (m *Map) URI(id ID) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 0 || int(id) >= len(m.entries) {
		return "", false
	}
	return m.entries[id].uri, true
}

// Prefix returns the default prefix recorded for id, if any.
func (m *Map) Prefix(id ID) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 0 || int(id) >= len(m.entries) {
		return "", false
	}
	return m.entries[id].prefix, true
}

// Size returns the number of namespaces interned, including the reserved
// ones seeded by New.
func (m *Map) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
