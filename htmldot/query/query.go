// Package query implements Query: a small expr-lang powered
// selector that evaluates a boolean expression against every element in
// a parsed tree, the way chtml binds expr against a component's scope
// (§2's domain-stack wiring table).
package query

import (
	"fmt"

	"github.com/arbor-dot/htmldot/dot"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Element is the exported view of a *dot.Element an expr-lang
// expression runs against. It exposes read-only accessors rather than
// the dot.Element pointer itself, so expressions can't mutate the tree
// mid-walk.
type Element struct {
	Tag         string
	Namespace   string
	Attrs       map[string]string
	TextContent string
}

// Attr returns the named attribute's value, or "" if absent —
// convenient inside an expression as `Attr("class")`.
func (e Element) Attr(name string) string {
	return e.Attrs[name]
}

// HasAttr reports whether the named attribute is present at all,
// distinguishing an empty value from absence.
func (e Element) HasAttr(name string) bool {
	_, ok := e.Attrs[name]
	return ok
}

func newElementView(el *dot.Element) Element {
	attrs := make(map[string]string, el.Attributes.Length())
	for _, a := range el.Attributes.Items() {
		attrs[a.QualifiedName()] = a.Value()
	}
	ns := "html"
	if !el.IsHTMLNative() {
		if uri, ok := el.Namespaces().URI(el.NamespaceID()); ok {
			ns = uri
		}
	}
	return Element{
		Tag:         el.QualifiedName(),
		Namespace:   ns,
		Attrs:       attrs,
		TextContent: el.TextContent(),
	}
}

// Compile compiles expr once so it can be run against many elements
// without re-parsing, mirroring chtml's compile-then-vm.Run split.
func Compile(expression string) (*vm.Program, error) {
	return expr.Compile(expression, expr.Env(Element{}), expr.AsBool())
}

// Query walks every element reachable from root in document order and
// returns those for which expression evaluates true.
func Query(root dot.Node, expression string) ([]dot.Node, error) {
	prog, err := Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("compile query: %w", err)
	}
	var matches []dot.Node
	walk(root, func(el *dot.Element) {
		res, err := vm.Run(prog, newElementView(el))
		if err != nil {
			return
		}
		if ok, _ := res.(bool); ok {
			matches = append(matches, el)
		}
	})
	return matches, nil
}

func walk(n dot.Node, visit func(*dot.Element)) {
	if n == nil {
		return
	}
	if el, ok := n.(*dot.Element); ok {
		visit(el)
	}
	for _, c := range n.Children() {
		walk(c, visit)
	}
}
