package dot

// Text holds a run of character data.
type Text struct {
	base
	data string
}

func newText(data string) *Text {
	t := &Text{data: data}
	t.self = t
	return t
}

func (t *Text) Type() NodeType     { return TextNode }
func (t *Text) Data() string       { return t.data }
func (t *Text) SetData(s string)   { t.data = s }
func (t *Text) TextContent() string { return t.data }

// CDATASection holds a `<![CDATA[ ... ]]>` payload, legal only in
// foreign (non-HTML) content per §4.6 group 4.
type CDATASection struct {
	base
	data string
}

func newCDATASection(data string) *CDATASection {
	c := &CDATASection{data: data}
	c.self = c
	return c
}

func (c *CDATASection) Type() NodeType      { return CDATASectionNode }
func (c *CDATASection) Data() string        { return c.data }
func (c *CDATASection) SetData(s string)    { c.data = s }
func (c *CDATASection) TextContent() string { return c.data }

// Comment holds comment data (no markup interpretation).
type Comment struct {
	base
	data string
}

func newComment(data string) *Comment {
	c := &Comment{data: data}
	c.self = c
	return c
}

func (c *Comment) Type() NodeType   { return CommentNode }
func (c *Comment) Data() string     { return c.data }
func (c *Comment) SetData(s string) { c.data = s }

// DocumentType models a parsed `<!DOCTYPE ...>` declaration.
type DocumentType struct {
	base
	Name     string
	PublicID string
	SystemID string
}

func newDocumentType(name, publicID, systemID string) *DocumentType {
	dt := &DocumentType{Name: name, PublicID: publicID, SystemID: systemID}
	dt.self = dt
	return dt
}

func (dt *DocumentType) Type() NodeType { return DocumentTypeNode }

// DocumentFragment is a lightweight container, most notably used as a
// `template` element's content document (§4.7's "Handling of the
// template element").
type DocumentFragment struct {
	base
}

func newDocumentFragment() *DocumentFragment {
	f := &DocumentFragment{}
	f.self = f
	return f
}

func (f *DocumentFragment) Type() NodeType { return DocumentFragmentNode }
