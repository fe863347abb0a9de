package htmldot

import (
	"fmt"
	"io"
	"strings"

	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/kb"
)

// Serialize writes n and its descendants to w as HTML markup, per the
// canonical (non-pretty) serialization contract (§6.6): an in-order
// traversal emitting, per element, its opening tag with attributes,
// its children, and its closing tag (omitted for void elements).
// Comments emit `<!--…-->`, doctypes emit `<!DOCTYPE …>`, and text data
// is escaped for the five reserved characters.
func Serialize(w io.Writer, n dot.Node) error {
	sw := &serializeWriter{w: w}
	sw.writeNode(n)
	return sw.err
}

type serializeWriter struct {
	w   io.Writer
	err error
}

func (s *serializeWriter) writeString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (s *serializeWriter) writeNode(n dot.Node) {
	if n == nil || s.err != nil {
		return
	}
	switch v := n.(type) {
	case *dot.Document:
		for _, c := range v.Children() {
			s.writeNode(c)
		}
	case *dot.DocumentFragment:
		for _, c := range v.Children() {
			s.writeNode(c)
		}
	case *dot.DocumentType:
		s.writeDoctype(v)
	case *dot.Element:
		s.writeElement(v)
	case *dot.Text:
		s.writeString(escapeText(v.Data()))
	case *dot.CDATASection:
		s.writeString("<![CDATA[")
		s.writeString(v.Data())
		s.writeString("]]>")
	case *dot.Comment:
		s.writeString("<!--")
		s.writeString(v.Data())
		s.writeString("-->")
	}
}

func (s *serializeWriter) writeDoctype(dt *dot.DocumentType) {
	s.writeString("<!DOCTYPE ")
	s.writeString(dt.Name)
	s.writeString(">")
}

func (s *serializeWriter) writeElement(e *dot.Element) {
	name := e.QualifiedName()
	s.writeString("<")
	s.writeString(name)
	for _, a := range e.Attributes.Items() {
		s.writeAttribute(a)
	}
	s.writeString(">")

	if e.IsHTMLNative() && kb.IsVoid(e.Tag) {
		return
	}

	for _, c := range e.Children() {
		s.writeNode(c)
	}

	s.writeString("</")
	s.writeString(name)
	s.writeString(">")
}

func (s *serializeWriter) writeAttribute(a *dot.Attr) {
	s.writeString(" ")
	s.writeString(a.QualifiedName())
	if !a.HasValue() {
		return
	}
	open, close := quoteDelims(a.Quote)
	s.writeString("=")
	s.writeString(open)
	s.writeString(escapeAttributeValue(a.Value()))
	s.writeString(close)
}

func quoteDelims(q dot.QuoteStyle) (string, string) {
	switch q {
	case dot.QuoteSingle:
		return "'", "'"
	case dot.QuoteNone:
		return "\"", "\""
	default:
		return "\"", "\""
	}
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttributeValue(s string) string {
	return textEscaper.Replace(s)
}

// String is a convenience wrapper returning the serialized form of n as
// a string, for callers that don't need streaming output.
func String(n dot.Node) string {
	var b strings.Builder
	if err := Serialize(&b, n); err != nil {
		return fmt.Sprintf("<!-- serialize error: %v -->", err)
	}
	return b.String()
}
