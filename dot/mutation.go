package dot

import "github.com/arbor-dot/htmldot/domerr"

// canHaveChildren reports whether n's node kind is allowed to own
// children at all (§3.1: leaf kinds forbid it outright).
func canHaveChildren(n Node) bool {
	switch n.Type() {
	case DocumentNode, DocumentFragmentNode, ElementNode:
		return true
	default:
		return false
	}
}

// canBeChildOf reports whether child's kind may legally appear as a
// direct child of a node of parent's kind: a Document may directly own
// Elements, Comments, and DocumentTypes only, and any other parent may
// contain every kind except Attr and Document. Only kinds are checked:
// how many Elements or DocumentTypes a Document already owns is not.
func canBeChildOf(parentType NodeType, childType NodeType) bool {
	if childType == AttrNode || childType == DocumentNode {
		return false
	}
	if parentType == DocumentNode {
		switch childType {
		case ElementNode, CommentNode, DocumentTypeNode:
			return true
		default:
			return false
		}
	}
	return true
}

// isInclusiveAncestor reports whether candidate is n or one of n's
// ancestors, walking Parent() links.
func isInclusiveAncestor(candidate, n Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur == candidate {
			return true
		}
	}
	return false
}

// AppendChild appends child as the last child of parent, enforcing the
// hierarchy and not-a-cycle invariants the node-mutation API requires
// (§6.3). Re-parenting an already-attached node first detaches it from
// its current parent.
func AppendChild(parent, child Node) error {
	return InsertBefore(parent, child, nil)
}

// InsertBefore inserts newNode as a child of parent immediately before
// ref, or at the end if ref is nil.
func InsertBefore(parent, newNode, ref Node) error {
	if !canHaveChildren(parent) {
		return domerr.New(domerr.NoModificationAllowedError, "node of type "+parent.Type().String()+" cannot have children")
	}
	if !canBeChildOf(parent.Type(), newNode.Type()) {
		return domerr.New(domerr.HierarchyRequestError, "a "+newNode.Type().String()+" cannot be a child of a "+parent.Type().String())
	}
	if isInclusiveAncestor(newNode, parent) {
		return domerr.New(domerr.HierarchyRequestError, "cannot insert a node as a descendant of itself")
	}
	if ref != nil && ref.Parent() != parent {
		return domerr.New(domerr.NotFoundError, "reference node is not a child of parent")
	}

	if old := newNode.Parent(); old != nil {
		old.removeChildRaw(newNode)
	}
	parent.insertChildRawBefore(newNode, ref)
	newNode.setParent(parent)
	if doc := parent.OwnerDocument(); doc != nil {
		stampOwnerDocument(newNode, doc)
	}
	return nil
}

// ReplaceChild replaces old, a current child of parent, with newNode.
func ReplaceChild(parent, newNode, old Node) error {
	if !canHaveChildren(parent) {
		return domerr.New(domerr.NoModificationAllowedError, "node of type "+parent.Type().String()+" cannot have children")
	}
	if old.Parent() != parent {
		return domerr.New(domerr.NotFoundError, "node to replace is not a child of parent")
	}
	if !canBeChildOf(parent.Type(), newNode.Type()) {
		return domerr.New(domerr.HierarchyRequestError, "a "+newNode.Type().String()+" cannot be a child of a "+parent.Type().String())
	}
	if isInclusiveAncestor(newNode, parent) {
		return domerr.New(domerr.HierarchyRequestError, "cannot insert a node as a descendant of itself")
	}

	if oldParent := newNode.Parent(); oldParent != nil {
		oldParent.removeChildRaw(newNode)
	}
	parent.replaceChildRaw(newNode, old)
	old.setParent(nil)
	newNode.setParent(parent)
	if doc := parent.OwnerDocument(); doc != nil {
		stampOwnerDocument(newNode, doc)
	}
	return nil
}

// RemoveChild detaches child from parent. child keeps its own subtree
// and owner-document stamp, becoming the root of a standalone tree.
func RemoveChild(parent, child Node) error {
	if child.Parent() != parent {
		return domerr.New(domerr.NotFoundError, "node is not a child of parent")
	}
	parent.removeChildRaw(child)
	child.setParent(nil)
	return nil
}

// AdoptNode moves node (and its whole subtree) to be owned by doc,
// detaching it from any current parent first. It returns
// WrongDocumentError when node is itself a Document, or when node is an
// inclusive ancestor of doc, which would create a cycle across
// documents.
func AdoptNode(doc *Document, node Node) error {
	if node.Type() == DocumentNode {
		return domerr.New(domerr.WrongDocumentError, "cannot adopt a Document node")
	}
	if isInclusiveAncestor(node, doc) {
		return domerr.New(domerr.WrongDocumentError, "cannot adopt an ancestor of the target document")
	}
	if old := node.Parent(); old != nil {
		old.removeChildRaw(node)
		node.setParent(nil)
	}
	stampOwnerDocument(node, doc)
	return nil
}

func stampOwnerDocument(n Node, doc *Document) {
	n.setOwnerDocument(doc)
	if el, ok := n.(*Element); ok {
		for _, a := range el.Attributes.items {
			a.namespaces = doc.Namespaces
		}
	}
	for _, c := range n.Children() {
		stampOwnerDocument(c, doc)
	}
}
