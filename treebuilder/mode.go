// Package treebuilder implements the tree construction stage (§4.7):
// the insertion-mode state machine that turns the tokeniser's token
// stream into a dot.Document, driving the tokeniser's RCDATA/RAWTEXT/
// ScriptData switching itself per the generic text-element algorithm.
package treebuilder

// InsertionMode is one of the 23 named tree-construction modes (§4.7).
type InsertionMode int

const (
	Initial InsertionMode = iota
	BeforeHTML
	BeforeHead
	InHead
	InHeadNoscript
	AfterHead
	InBody
	Text
	InTable
	InTableText
	InCaption
	InColumnGroup
	InTableBody
	InRow
	InCell
	InSelect
	InSelectInTable
	InTemplate
	AfterBody
	InFrameset
	AfterFrameset
	AfterAfterBody
	AfterAfterFrameset
)

func (m InsertionMode) String() string {
	switch m {
	case Initial:
		return "Initial"
	case BeforeHTML:
		return "BeforeHTML"
	case BeforeHead:
		return "BeforeHead"
	case InHead:
		return "InHead"
	case InHeadNoscript:
		return "InHeadNoscript"
	case AfterHead:
		return "AfterHead"
	case InBody:
		return "InBody"
	case Text:
		return "Text"
	case InTable:
		return "InTable"
	case InTableText:
		return "InTableText"
	case InCaption:
		return "InCaption"
	case InColumnGroup:
		return "InColumnGroup"
	case InTableBody:
		return "InTableBody"
	case InRow:
		return "InRow"
	case InCell:
		return "InCell"
	case InSelect:
		return "InSelect"
	case InSelectInTable:
		return "InSelectInTable"
	case InTemplate:
		return "InTemplate"
	case AfterBody:
		return "AfterBody"
	case InFrameset:
		return "InFrameset"
	case AfterFrameset:
		return "AfterFrameset"
	case AfterAfterBody:
		return "AfterAfterBody"
	case AfterAfterFrameset:
		return "AfterAfterFrameset"
	default:
		return "Unknown"
	}
}
