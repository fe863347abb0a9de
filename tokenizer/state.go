package tokenizer

// State is a tokeniser state. The full WHATWG tokeniser has ~70 named
// states; this groups them the way §4.6 groups them, one constant per
// state that changes behaviour observably rather than one per WHATWG
// sub-state that differs only in which character class it checks.
type State int

const (
	DataState State = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState

	TagOpenState
	EndTagOpenState
	TagNameState
	SelfClosingStartTagState
	BogusCommentState

	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState

	MarkupDeclarationOpenState

	CommentStartState
	CommentStartDashState
	CommentState
	CommentEndDashState
	CommentEndState
	CommentEndBangState

	DoctypeState
	BeforeDoctypeNameState
	DoctypeNameState
	AfterDoctypeNameState
	AfterDoctypePublicKeywordState
	BeforeDoctypePublicIdentifierState
	DoctypePublicIdentifierDoubleQuotedState
	DoctypePublicIdentifierSingleQuotedState
	AfterDoctypePublicIdentifierState
	BetweenDoctypePublicAndSystemIdentifiersState
	AfterDoctypeSystemKeywordState
	BeforeDoctypeSystemIdentifierState
	DoctypeSystemIdentifierDoubleQuotedState
	DoctypeSystemIdentifierSingleQuotedState
	AfterDoctypeSystemIdentifierState
	BogusDoctypeState

	CDATASectionState

	CharacterReferenceState
	NamedCharacterReferenceState
	AmbiguousAmpersandState
	NumericCharacterReferenceState
	HexadecimalCharacterReferenceStartState
	DecimalCharacterReferenceStartState
	HexadecimalCharacterReferenceState
	DecimalCharacterReferenceState
	NumericCharacterReferenceEndState
)

func (s State) String() string {
	switch s {
	case DataState:
		return "Data"
	case RCDATAState:
		return "RCDATA"
	case RAWTEXTState:
		return "RAWTEXT"
	case ScriptDataState:
		return "ScriptData"
	case PLAINTEXTState:
		return "PLAINTEXT"
	case TagOpenState:
		return "TagOpen"
	case EndTagOpenState:
		return "EndTagOpen"
	case TagNameState:
		return "TagName"
	case SelfClosingStartTagState:
		return "SelfClosingStartTag"
	case BogusCommentState:
		return "BogusComment"
	case BeforeAttributeNameState:
		return "BeforeAttributeName"
	case AttributeNameState:
		return "AttributeName"
	case AfterAttributeNameState:
		return "AfterAttributeName"
	case BeforeAttributeValueState:
		return "BeforeAttributeValue"
	case AttributeValueDoubleQuotedState:
		return "AttributeValueDoubleQuoted"
	case AttributeValueSingleQuotedState:
		return "AttributeValueSingleQuoted"
	case AttributeValueUnquotedState:
		return "AttributeValueUnquoted"
	case AfterAttributeValueQuotedState:
		return "AfterAttributeValueQuoted"
	case MarkupDeclarationOpenState:
		return "MarkupDeclarationOpen"
	case CommentStartState:
		return "CommentStart"
	case CommentState:
		return "Comment"
	case CommentEndDashState:
		return "CommentEndDash"
	case CommentEndState:
		return "CommentEnd"
	case CommentEndBangState:
		return "CommentEndBang"
	case DoctypeState:
		return "Doctype"
	case CDATASectionState:
		return "CDATASection"
	case CharacterReferenceState:
		return "CharacterReference"
	case NamedCharacterReferenceState:
		return "NamedCharacterReference"
	case AmbiguousAmpersandState:
		return "AmbiguousAmpersand"
	case NumericCharacterReferenceState:
		return "NumericCharacterReference"
	case HexadecimalCharacterReferenceStartState:
		return "HexadecimalCharacterReferenceStart"
	case DecimalCharacterReferenceStartState:
		return "DecimalCharacterReferenceStart"
	case HexadecimalCharacterReferenceState:
		return "HexadecimalCharacterReference"
	case DecimalCharacterReferenceState:
		return "DecimalCharacterReference"
	case NumericCharacterReferenceEndState:
		return "NumericCharacterReferenceEnd"
	default:
		return "Other"
	}
}
