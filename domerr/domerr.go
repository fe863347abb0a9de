// Package domerr implements the closed error taxonomy shared by the
// tokeniser, tree constructor, and external node-mutation API: parse
// errors (recoverable, position-tagged, never abort a parse) and typed
// DOM-API errors (returned by Document/Node/Element mutation methods).
package domerr

import "fmt"

// Position is the (line, column) of the first character of whatever
// produced an error, as the character stream reports it: the line is
// 1-based, and the column is 0 at the start of a line.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ComplianceLevel controls which parse errors are surfaced to the caller
// and whether recoverable attribute-legality violations become hard
// rejections. It never changes the tree a parse produces (§4.9).
type ComplianceLevel int

const (
	// Off discards every parse-error event.
	Off ComplianceLevel = iota
	// Partial surfaces events about recognised constructs and drops
	// unknown-tag/attribute noise.
	Partial
	// Strict surfaces every event and promotes recoverable
	// attribute-legality violations to hard rejections at Attr-set time.
	Strict
)

func (c ComplianceLevel) String() string {
	switch c {
	case Off:
		return "OFF"
	case Partial:
		return "PARTIAL"
	case Strict:
		return "STRICT"
	default:
		return "UNKNOWN"
	}
}

// Code is a WHATWG parse-error name or one of this package's DOM-API
// error names. Codes are stable strings so they can be compared,
// serialized, and matched in tests without depending on error wrapping.
type Code string

// Tokeniser parse-error codes, carried verbatim from the WHATWG HTML5
// parsing-errors list (grounded on the justgohtml reference pack's
// errors/codes.go, which enumerates the same closed set).
const (
	AbruptClosingOfEmptyComment               Code = "abrupt-closing-of-empty-comment"
	AbruptDoctypePublicIdentifier             Code = "abrupt-doctype-public-identifier"
	AbruptDoctypeSystemIdentifier             Code = "abrupt-doctype-system-identifier"
	AbsenceOfDigitsInNumericCharReference     Code = "absence-of-digits-in-numeric-character-reference"
	CDATAInHTMLContent                        Code = "cdata-in-html-content"
	CharacterReferenceOutsideUnicodeRange     Code = "character-reference-outside-unicode-range"
	ControlCharacterInInputStream             Code = "control-character-in-input-stream"
	ControlCharacterReference                 Code = "control-character-reference"
	DuplicateAttribute                        Code = "duplicate-attribute"
	EndTagWithAttributes                      Code = "end-tag-with-attributes"
	EndTagWithTrailingSolidus                 Code = "end-tag-with-trailing-solidus"
	EOFBeforeTagName                          Code = "eof-before-tag-name"
	EOFInCDATA                                Code = "eof-in-cdata"
	EOFInComment                              Code = "eof-in-comment"
	EOFInDoctype                              Code = "eof-in-doctype"
	EOFInScriptHTMLCommentLikeText            Code = "eof-in-script-html-comment-like-text"
	EOFInTag                                  Code = "eof-in-tag"
	IncorrectlyClosedComment                  Code = "incorrectly-closed-comment"
	IncorrectlyOpenedComment                  Code = "incorrectly-opened-comment"
	InvalidCharacterSequenceAfterDoctypeName  Code = "invalid-character-sequence-after-doctype-name"
	InvalidFirstCharacterOfTagName            Code = "invalid-first-character-of-tag-name"
	MissingAttributeValue                     Code = "missing-attribute-value"
	MissingDoctypeName                        Code = "missing-doctype-name"
	MissingDoctypePublicIdentifier            Code = "missing-doctype-public-identifier"
	MissingDoctypeSystemIdentifier            Code = "missing-doctype-system-identifier"
	MissingEndTagName                         Code = "missing-end-tag-name"
	MissingQuoteBeforeDoctypePublicIdentifier Code = "missing-quote-before-doctype-public-identifier"
	MissingQuoteBeforeDoctypeSystemIdentifier Code = "missing-quote-before-doctype-system-identifier"
	MissingSemicolonAfterCharacterReference   Code = "missing-semicolon-after-character-reference"
	MissingWhitespaceAfterDoctypePublicKeyword Code = "missing-whitespace-after-doctype-public-keyword"
	MissingWhitespaceAfterDoctypeSystemKeyword Code = "missing-whitespace-after-doctype-system-keyword"
	MissingWhitespaceBeforeDoctypeName        Code = "missing-whitespace-before-doctype-name"
	MissingWhitespaceBetweenAttributes        Code = "missing-whitespace-between-attributes"
	UnexpectedCharacterAfterDoctypeSystemIdentifier Code = "unexpected-character-after-doctype-system-identifier"
	NestedComment                             Code = "nested-comment"
	NoncharacterCharacterReference             Code = "noncharacter-character-reference"
	NullCharacterReference                    Code = "null-character-reference"
	SurrogateCharacterReference                Code = "surrogate-character-reference"
	SurrogateInInputStream                     Code = "surrogate-in-input-stream"
	UnexpectedCharacterInAttributeName         Code = "unexpected-character-in-attribute-name"
	UnexpectedEqualsSignBeforeAttributeName    Code = "unexpected-equals-sign-before-attribute-name"
	UnexpectedNullCharacter                    Code = "unexpected-null-character"
	UnexpectedQuestionMarkInsteadOfTagName     Code = "unexpected-question-mark-instead-of-tag-name"
	UnexpectedSolidusInTag                     Code = "unexpected-solidus-in-tag"
	UnknownNamedCharacterReference              Code = "unknown-named-character-reference"

	// Tree-construction errors.
	EndTagDoesNotMatchCurrentOpenElement Code = "end-tag-does-not-match-current-open-element"
	UnexpectedEndTag                     Code = "unexpected-end-tag"
	UnexpectedStartTagImpliesEnd         Code = "unexpected-start-tag-implies-end-tag"
	NonSpaceCharacterInTableText         Code = "non-space-character-in-table-text"
	FosterParentedCharacter              Code = "foster-parented-character"
	MisplacedDoctype                     Code = "misplaced-doctype"
	MisplacedStartTagForHeadElement      Code = "misplaced-start-tag-for-head-element"
)

// DOM-API error codes (§6.4), raised only by the external node-mutation
// API — the tree constructor is written so it never triggers these.
const (
	HierarchyRequestError    Code = "HierarchyRequestError"
	NamespaceError           Code = "NamespaceError"
	InvalidCharacterError    Code = "InvalidCharacterError"
	InUseAttributeError      Code = "InUseAttributeError"
	NotFoundError            Code = "NotFoundError"
	SyntaxError              Code = "SyntaxError"
	ValidationError          Code = "ValidationError"
	WrongDocumentError       Code = "WrongDocumentError"
	NoModificationAllowedError Code = "NoModificationAllowedError"
)

// ParseError is one recorded, recoverable parse-error event.
type ParseError struct {
	Code Code
	Pos  Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s parse error at %s", e.Code, e.Pos)
}

// DOMError is a typed failure returned by the node-mutation API.
type DOMError struct {
	Code    Code
	Message string
}

func (e *DOMError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New constructs a DOMError, mirroring the two-argument
// `DOMException(message, error_type)` constructor in the original
// implementation.
func New(code Code, message string) *DOMError {
	return &DOMError{Code: code, Message: message}
}

// Reporter accumulates parse-error events subject to a ComplianceLevel.
// It is not safe for concurrent use — parsing is single-threaded per §5.
type Reporter struct {
	level  ComplianceLevel
	events []ParseError
	// unrecognisedAtPartial marks the codes considered "unknown-tag/
	// attribute noise": Partial compliance drops them and lets every
	// other code through.
	unrecognisedAtPartial map[Code]bool
}

// NewReporter creates a Reporter at the given compliance level.
func NewReporter(level ComplianceLevel) *Reporter {
	return &Reporter{
		level: level,
		unrecognisedAtPartial: map[Code]bool{
			UnknownNamedCharacterReference: true,
		},
	}
}

// Report records a parse error, subject to the Reporter's compliance
// level. It never returns an error itself — parse errors never abort
// parsing (§7).
func (r *Reporter) Report(code Code, pos Position) {
	switch r.level {
	case Off:
		return
	case Partial:
		if r.unrecognisedAtPartial[code] {
			return
		}
	}
	r.events = append(r.events, ParseError{Code: code, Pos: pos})
}

// Events returns every recorded parse error, in the order reported.
func (r *Reporter) Events() []ParseError {
	return r.events
}

// Level returns the Reporter's compliance level.
func (r *Reporter) Level() ComplianceLevel {
	return r.level
}
