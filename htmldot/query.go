package htmldot

import (
	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/htmldot/query"
)

// Query evaluates expression (an expr-lang boolean expression over the
// query.Element view — Tag, Namespace, Attr("name"), TextContent)
// against every element reachable from root, in document order,
// returning those that match. Kept as a package-level function rather
// than a *dot.Document method so the core dot package doesn't have to
// import expr-lang.
func Query(root dot.Node, expression string) ([]dot.Node, error) {
	return query.Query(root, expression)
}
