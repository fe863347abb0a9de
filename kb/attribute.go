package kb

import "strings"

// Attribute is a closed enumeration of known attribute names, plus three
// prefix sentinels for the open-ended `data-*`, `aria-*`, and `xmlns:*`
// families (§4.2).
type Attribute int

const (
	AttrOther Attribute = iota

	AttrAlt
	AttrAsync
	AttrAutofocus
	AttrCharset
	AttrChecked
	AttrCite
	AttrClass
	AttrColor
	AttrCols
	AttrColspan
	AttrContent
	AttrContenteditable
	AttrControls
	AttrCoords
	AttrData
	AttrDatetime
	AttrDefault
	AttrDefer
	AttrDir
	AttrDisabled
	AttrDownload
	AttrDraggable
	AttrEncoding
	AttrFor
	AttrForm
	AttrHeaders
	AttrHeight
	AttrHidden
	AttrHigh
	AttrHref
	AttrHreflang
	AttrID
	AttrLabel
	AttrLang
	AttrList
	AttrLoop
	AttrLow
	AttrMax
	AttrMaxlength
	AttrMethod
	AttrMin
	AttrMultiple
	AttrName
	AttrNovalidate
	AttrOpen
	AttrOptimum
	AttrPattern
	AttrPlaceholder
	AttrPoster
	AttrPreload
	AttrReadonly
	AttrRel
	AttrRequired
	AttrReversed
	AttrRows
	AttrRowspan
	AttrSandbox
	AttrScope
	AttrSelected
	AttrShape
	AttrSize
	AttrSpan
	AttrSpellcheck
	AttrSrc
	AttrSrcdoc
	AttrSrclang
	AttrStart
	AttrStep
	AttrStyle
	AttrTabindex
	AttrTarget
	AttrTitle
	AttrTranslate
	AttrType
	AttrUsemap
	AttrValue
	AttrWidth
	AttrWrap
	AttrXmlns

	// Sentinel families. The data-* and aria-* sentinels are global
	// attributes (legal on every element); xmlns:* is not in the global
	// set.
	AttrDataPrefix
	AttrAriaPrefix
	AttrXMLNSPrefix
)

var attrStrings = map[Attribute]string{
	AttrAlt: "alt", AttrAsync: "async", AttrAutofocus: "autofocus",
	AttrCharset: "charset", AttrChecked: "checked", AttrCite: "cite",
	AttrClass: "class", AttrColor: "color", AttrCols: "cols",
	AttrColspan: "colspan", AttrContent: "content",
	AttrContenteditable: "contenteditable", AttrControls: "controls",
	AttrCoords: "coords", AttrData: "data", AttrDatetime: "datetime", AttrDefault: "default",
	AttrDefer: "defer", AttrDir: "dir", AttrDisabled: "disabled",
	AttrDownload: "download", AttrDraggable: "draggable",
	AttrEncoding: "encoding", AttrFor: "for", AttrForm: "form",
	AttrHeaders: "headers", AttrHeight: "height", AttrHidden: "hidden",
	AttrHigh: "high", AttrHref: "href", AttrHreflang: "hreflang",
	AttrID: "id", AttrLabel: "label", AttrLang: "lang", AttrList: "list",
	AttrLoop: "loop", AttrLow: "low", AttrMax: "max",
	AttrMaxlength: "maxlength", AttrMethod: "method", AttrMin: "min",
	AttrMultiple: "multiple", AttrName: "name", AttrNovalidate: "novalidate",
	AttrOpen: "open", AttrOptimum: "optimum", AttrPattern: "pattern",
	AttrPlaceholder: "placeholder", AttrPoster: "poster", AttrPreload: "preload",
	AttrReadonly: "readonly", AttrRel: "rel", AttrRequired: "required",
	AttrReversed: "reversed", AttrRows: "rows", AttrRowspan: "rowspan",
	AttrSandbox: "sandbox", AttrScope: "scope", AttrSelected: "selected",
	AttrShape: "shape", AttrSize: "size", AttrSpan: "span", AttrSpellcheck: "spellcheck",
	AttrSrc: "src", AttrSrcdoc: "srcdoc", AttrSrclang: "srclang",
	AttrStart: "start", AttrStep: "step", AttrStyle: "style",
	AttrTabindex: "tabindex", AttrTarget: "target", AttrTitle: "title",
	AttrTranslate: "translate", AttrType: "type", AttrUsemap: "usemap",
	AttrValue: "value", AttrWidth: "width", AttrWrap: "wrap",
	AttrXmlns: "xmlns",
}

var stringAttrs map[string]Attribute

func init() {
	stringAttrs = make(map[string]Attribute, len(attrStrings))
	for a, s := range attrStrings {
		stringAttrs[s] = a
	}
}

// globalAttributes are legal on every element regardless of tag,
// matching the original's explicit global-attribute handling
// (SPEC_FULL §4.3).
var globalAttributes = map[Attribute]bool{
	AttrClass: true, AttrID: true, AttrStyle: true, AttrTitle: true,
	AttrLang: true, AttrDir: true, AttrHidden: true, AttrTabindex: true,
	AttrContenteditable: true, AttrDraggable: true, AttrSpellcheck: true,
	AttrTranslate: true, AttrDataPrefix: true, AttrAriaPrefix: true,
}

// AttributeFromString resolves an attribute name, recognising the
// data-*, aria-*, and xmlns:* prefix families before falling back to
// exact lookup.
func AttributeFromString(name string) Attribute {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "data-"):
		return AttrDataPrefix
	case strings.HasPrefix(lower, "aria-"):
		return AttrAriaPrefix
	case strings.HasPrefix(lower, "xmlns:"):
		return AttrXMLNSPrefix
	}
	if a, ok := stringAttrs[lower]; ok {
		return a
	}
	return AttrOther
}

// String returns the canonical (lowercase) spelling of an attribute.
func (a Attribute) String() string {
	if s, ok := attrStrings[a]; ok {
		return s
	}
	switch a {
	case AttrDataPrefix:
		return "data-*"
	case AttrAriaPrefix:
		return "aria-*"
	case AttrXMLNSPrefix:
		return "xmlns:*"
	default:
		return "other"
	}
}

// IsGlobal reports whether a is legal on every element.
func IsGlobal(a Attribute) bool {
	return globalAttributes[a]
}

// GlobalAttributes returns the set of attributes legal on every element,
// per SPEC_FULL §4.3.
func GlobalAttributes() map[Attribute]bool {
	out := make(map[Attribute]bool, len(globalAttributes))
	for a := range globalAttributes {
		out[a] = true
	}
	return out
}
