package htmldot

import (
	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/nsmap"
	"github.com/arbor-dot/htmldot/stream"
	"github.com/arbor-dot/htmldot/tokenizer"
	"github.com/arbor-dot/htmldot/treebuilder"
)

// Parser owns a Config and drives Parse/ParseFragment against it. It
// holds no per-parse state itself — every call builds a fresh
// stream/tokenizer/Builder triple, so a single Parser is safe to reuse
// (though not to share across concurrent calls; see §5).
type Parser struct {
	cfg Config
}

// NewParser builds a Parser bound to cfg.
func NewParser(cfg Config) *Parser {
	return &Parser{cfg: cfg}
}

// Parse runs full-document tree construction over input, returning the
// resulting Document together with every recorded parse error. Parsing
// never aborts on a recoverable error — the caller always receives a
// Document plus a list of recorded errors (§7).
func (p *Parser) Parse(input string) (*dot.Document, []domerr.ParseError) {
	reporter := domerr.NewReporter(p.cfg.ComplianceLevel)
	s := stream.New([]rune(input))
	tok := tokenizer.New(s, reporter)
	b := treebuilder.New(tok, reporter, p.cfg.ScriptingEnabled)
	doc := b.Run()
	if p.cfg.IframeSrcdoc {
		// An iframe srcdoc document is never put into quirks mode,
		// regardless of what DOCTYPE (if any) it contains.
		doc.QuirksMode = dot.NoQuirks
	}
	return doc, reporter.Events()
}

// ParseFragment runs the fragment-parsing algorithm (§4.7) against a
// context element named contextTag in the given namespace, returning the
// parsed child nodes in document order together with every recorded
// parse error.
func (p *Parser) ParseFragment(input, contextTag string, ns nsmap.ID) ([]dot.Node, []domerr.ParseError) {
	reporter := domerr.NewReporter(p.cfg.ComplianceLevel)
	s := stream.New([]rune(input))
	tok := tokenizer.New(s, reporter)
	ctx := &treebuilder.FragmentContext{TagName: contextTag, NamespaceID: ns}
	b := treebuilder.NewFragment(tok, reporter, p.cfg.ScriptingEnabled, ctx)
	b.Run()
	return b.FragmentNodes(), reporter.Events()
}

// Parse is a package-level convenience wrapping NewParser(NewConfig(opts...)).Parse.
func Parse(input string, opts ...Option) (*dot.Document, []domerr.ParseError) {
	return NewParser(NewConfig(opts...)).Parse(input)
}

// ParseFragment is the package-level convenience form of
// Parser.ParseFragment.
func ParseFragment(input, contextTag string, ns nsmap.ID, opts ...Option) ([]dot.Node, []domerr.ParseError) {
	return NewParser(NewConfig(opts...)).ParseFragment(input, contextTag, ns)
}
