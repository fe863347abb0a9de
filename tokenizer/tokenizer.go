// Package tokenizer implements the character-driven state machine that
// turns a code-point stream into the six token kinds the tree
// constructor consumes (§4.6).
package tokenizer

import (
	"strings"

	"github.com/arbor-dot/htmldot/domerr"
	"github.com/arbor-dot/htmldot/dot"
	"github.com/arbor-dot/htmldot/kb"
	"github.com/arbor-dot/htmldot/nsmap"
	"github.com/arbor-dot/htmldot/stream"
	"github.com/arbor-dot/htmldot/token"
)

// TreeConstructorQuerier is the one-way channel the tokeniser uses to
// ask the tree constructor its one standing question (§4.6
// "Cross-component coupling"): what is the adjusted current node's
// namespace, used for CDATA eligibility. No data flows the other way:
// the tree constructor drives RCDATA/RAWTEXT/ScriptData switching
// itself by calling SetState/SetLastStartTag after consuming a StartTag
// token, per the generic RCDATA/RAWTEXT element algorithm (§4.7).
type TreeConstructorQuerier interface {
	AdjustedCurrentNodeNamespace() (id nsmap.ID, ok bool)
}

// Tokenizer is the character-driven state machine of §4.6.
type Tokenizer struct {
	stream   *stream.Stream
	state    State
	retState State
	query    TreeConstructorQuerier
	reporter *domerr.Reporter

	lastStartTag string

	queue []token.Token

	curTag       *token.Token
	attrName     strings.Builder
	attrValue    strings.Builder
	attrHasValue bool
	attrQuote    dot.QuoteStyle

	commentData strings.Builder
	doctype     *token.Token

	tmp strings.Builder

	charRefCode     int64
	charRefNode     kb.TrieNode
	charRefConsumed strings.Builder
	charRefInAttr   bool

	// tokenStart is the position of the '<' that opened the markup
	// construct currently being built, so the finished tag/comment/
	// doctype token carries its first character's position rather than
	// its last (§3.2).
	tokenStart token.Position

	// restrictToEndTag is set while TagOpenState/EndTagOpenState were
	// entered from RCDATA/RAWTEXT/ScriptData, where only the appropriate
	// end tag token may terminate the element — any other '<' is literal
	// data (§4.6 "RCDATA less-than sign state" and siblings).
	restrictToEndTag bool
	textReturnState  State
}

var charRefTrie = kb.NewCharRefTrie()

// New creates a tokeniser over s, reporting parse errors to r.
func New(s *stream.Stream, r *domerr.Reporter) *Tokenizer {
	return &Tokenizer{stream: s, state: DataState, reporter: r}
}

// SetTreeConstructorQuerier wires the cross-component coupling channel.
func (t *Tokenizer) SetTreeConstructorQuerier(q TreeConstructorQuerier) { t.query = q }

// SetState forces the tokeniser into state, used by the tree
// constructor's generic RAWTEXT/RCDATA element algorithm after it
// consumes a `<script>`/`<style>`/`<title>`/`<textarea>` start tag.
func (t *Tokenizer) SetState(s State) { t.state = s }

// State returns the tokeniser's current state.
func (t *Tokenizer) State() State { return t.state }

// SetLastStartTag records the most recently emitted start tag's name,
// used to recognise the "appropriate end tag token" that alone may
// terminate RAWTEXT/RCDATA/ScriptData.
func (t *Tokenizer) SetLastStartTag(name string) { t.lastStartTag = name }

func (t *Tokenizer) pos() token.Position {
	line, col := t.stream.Position()
	return token.Position{Line: line, Column: col}
}

func (t *Tokenizer) report(code domerr.Code) {
	line, col := t.stream.Position()
	t.reporter.Report(code, domerr.Position{Line: line, Column: col})
}

func (t *Tokenizer) emit(tok token.Token)  { t.queue = append(t.queue, tok) }
func (t *Tokenizer) emitChar(r rune)       { t.emit(token.NewCharacter(t.pos(), r)) }
func (t *Tokenizer) emitCharStr(s string)  {
	for _, r := range s {
		t.emitChar(r)
	}
}

// Next runs the state machine until a token is ready and returns it.
// Once EOF has been emitted, every subsequent call keeps returning EOF.
func (t *Tokenizer) Next() token.Token {
	for len(t.queue) == 0 {
		t.step()
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	return tok
}

func (t *Tokenizer) isAppropriateEndTag() bool {
	return t.lastStartTag != "" && t.curTag != nil && t.curTag.TagName == t.lastStartTag
}

func (t *Tokenizer) step() {
	switch t.state {
	case DataState:
		t.stepData()
	case RCDATAState:
		t.stepRCDATA()
	case RAWTEXTState:
		t.stepRAWTEXT()
	case ScriptDataState:
		t.stepScriptData()
	case PLAINTEXTState:
		t.stepPLAINTEXT()
	case TagOpenState:
		t.stepTagOpen()
	case EndTagOpenState:
		t.stepEndTagOpen()
	case TagNameState:
		t.stepTagName()
	case SelfClosingStartTagState:
		t.stepSelfClosingStartTag()
	case BogusCommentState:
		t.stepBogusComment()
	case BeforeAttributeNameState:
		t.stepBeforeAttributeName()
	case AttributeNameState:
		t.stepAttributeName()
	case AfterAttributeNameState:
		t.stepAfterAttributeName()
	case BeforeAttributeValueState:
		t.stepBeforeAttributeValue()
	case AttributeValueDoubleQuotedState:
		t.stepAttributeValueQuoted('"')
	case AttributeValueSingleQuotedState:
		t.stepAttributeValueQuoted('\'')
	case AttributeValueUnquotedState:
		t.stepAttributeValueUnquoted()
	case AfterAttributeValueQuotedState:
		t.stepAfterAttributeValueQuoted()
	case MarkupDeclarationOpenState:
		t.stepMarkupDeclarationOpen()
	case CommentStartState:
		t.stepCommentStart()
	case CommentStartDashState:
		t.stepCommentStartDash()
	case CommentState:
		t.stepComment()
	case CommentEndDashState:
		t.stepCommentEndDash()
	case CommentEndState:
		t.stepCommentEnd()
	case CommentEndBangState:
		t.stepCommentEndBang()
	case DoctypeState:
		t.stepDoctype()
	case BeforeDoctypeNameState:
		t.stepBeforeDoctypeName()
	case DoctypeNameState:
		t.stepDoctypeName()
	case AfterDoctypeNameState:
		t.stepAfterDoctypeName()
	case AfterDoctypePublicKeywordState:
		t.stepAfterDoctypePublicKeyword()
	case BeforeDoctypePublicIdentifierState:
		t.stepBeforeDoctypePublicIdentifier()
	case DoctypePublicIdentifierDoubleQuotedState:
		t.stepDoctypePublicIdentifierQuoted('"')
	case DoctypePublicIdentifierSingleQuotedState:
		t.stepDoctypePublicIdentifierQuoted('\'')
	case AfterDoctypePublicIdentifierState:
		t.stepAfterDoctypePublicIdentifier()
	case BetweenDoctypePublicAndSystemIdentifiersState:
		t.stepBetweenDoctypePublicAndSystemIdentifiers()
	case AfterDoctypeSystemKeywordState:
		t.stepAfterDoctypeSystemKeyword()
	case BeforeDoctypeSystemIdentifierState:
		t.stepBeforeDoctypeSystemIdentifier()
	case DoctypeSystemIdentifierDoubleQuotedState:
		t.stepDoctypeSystemIdentifierQuoted('"')
	case DoctypeSystemIdentifierSingleQuotedState:
		t.stepDoctypeSystemIdentifierQuoted('\'')
	case AfterDoctypeSystemIdentifierState:
		t.stepAfterDoctypeSystemIdentifier()
	case BogusDoctypeState:
		t.stepBogusDoctype()
	case CDATASectionState:
		t.stepCDATASection()
	case CharacterReferenceState:
		t.stepCharacterReference()
	case NamedCharacterReferenceState:
		t.stepNamedCharacterReference()
	case AmbiguousAmpersandState:
		t.stepAmbiguousAmpersand()
	case NumericCharacterReferenceState:
		t.stepNumericCharacterReference()
	case HexadecimalCharacterReferenceStartState:
		t.stepHexadecimalCharacterReferenceStart()
	case DecimalCharacterReferenceStartState:
		t.stepDecimalCharacterReferenceStart()
	case HexadecimalCharacterReferenceState:
		t.stepHexadecimalCharacterReference()
	case DecimalCharacterReferenceState:
		t.stepDecimalCharacterReference()
	case NumericCharacterReferenceEndState:
		t.stepNumericCharacterReferenceEnd()
	default:
		t.stepData()
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', ' ':
		return true
	default:
		return false
	}
}

func isASCIIDigit(r rune) bool      { return r >= '0' && r <= '9' }
func isASCIIUpperAlpha(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILowerAlpha(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIAlpha(r rune) bool      { return isASCIIUpperAlpha(r) || isASCIILowerAlpha(r) }
func isASCIIAlphanumeric(r rune) bool {
	return isASCIIAlpha(r) || isASCIIDigit(r)
}
func toLowerASCII(r rune) rune {
	if isASCIIUpperAlpha(r) {
		return r + ('a' - 'A')
	}
	return r
}
