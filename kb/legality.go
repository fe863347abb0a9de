package kb

// legalAttributes records, per tag, the non-global attributes additionally
// legal on it (§4.2's Attribute×Tag table). Global attributes are legal
// everywhere and are not repeated here; IsAttributeLegal checks both.
var legalAttributes = map[Tag]map[Attribute]bool{
	A:        attrSet(AttrHref, AttrHreflang, AttrRel, AttrTarget, AttrDownload),
	Area:     attrSet(AttrAlt, AttrCoords, AttrShape, AttrHref, AttrTarget),
	Audio:    attrSet(AttrSrc, AttrControls, AttrLoop, AttrPreload),
	Base:     attrSet(AttrHref, AttrTarget),
	Blockquote: attrSet(AttrCite),
	Button:   attrSet(AttrDisabled, AttrForm, AttrType, AttrValue, AttrAutofocus),
	Canvas:   attrSet(AttrWidth, AttrHeight),
	Col:      attrSet(AttrSpan),
	Colgroup: attrSet(AttrSpan),
	Data:     attrSet(AttrValue),
	Del:      attrSet(AttrCite, AttrDatetime),
	Details:  attrSet(AttrOpen),
	Embed:    attrSet(AttrSrc, AttrType, AttrWidth, AttrHeight),
	Fieldset: attrSet(AttrDisabled, AttrForm),
	Form:     attrSet(AttrMethod, AttrNovalidate, AttrTarget),
	Iframe:   attrSet(AttrSrc, AttrSrcdoc, AttrSandbox, AttrWidth, AttrHeight),
	Img:      attrSet(AttrSrc, AttrAlt, AttrWidth, AttrHeight, AttrUsemap),
	Input: attrSet(
		AttrType, AttrName, AttrValue, AttrDisabled, AttrChecked,
		AttrPlaceholder, AttrRequired, AttrReadonly, AttrMultiple,
		AttrPattern, AttrMax, AttrMin, AttrStep, AttrList, AttrForm,
		AttrAutofocus,
	),
	Ins:      attrSet(AttrCite, AttrDatetime),
	Label:    attrSet(AttrFor),
	Li:       attrSet(AttrValue),
	Link:     attrSet(AttrHref, AttrRel, AttrType, AttrCharset),
	Map:      attrSet(AttrName),
	Meta:     attrSet(AttrCharset, AttrContent, AttrName),
	Meter:    attrSet(AttrValue, AttrMin, AttrMax, AttrLow, AttrHigh, AttrOptimum),
	Object:   attrSet(AttrData, AttrType, AttrWidth, AttrHeight),
	Ol:       attrSet(AttrReversed, AttrStart),
	Optgroup: attrSet(AttrDisabled, AttrLabel),
	Option:   attrSet(AttrDisabled, AttrSelected, AttrValue, AttrLabel),
	Output:   attrSet(AttrFor, AttrForm, AttrName),
	Param:    attrSet(AttrName, AttrValue),
	Progress: attrSet(AttrValue, AttrMax),
	Q:        attrSet(AttrCite),
	Script:   attrSet(AttrSrc, AttrType, AttrAsync, AttrDefer, AttrCharset),
	Select:   attrSet(AttrDisabled, AttrForm, AttrMultiple, AttrName, AttrRequired),
	Source:   attrSet(AttrSrc, AttrType),
	Style:    attrSet(AttrType),
	Table:    attrSet(),
	Td:       attrSet(AttrColspan, AttrRowspan, AttrHeaders),
	Textarea: attrSet(AttrRows, AttrCols, AttrWrap, AttrDisabled, AttrRequired, AttrPlaceholder, AttrForm, AttrAutofocus),
	Th:       attrSet(AttrColspan, AttrRowspan, AttrHeaders, AttrScope),
	Time:     attrSet(AttrDatetime),
	Track:    attrSet(AttrSrc, AttrSrclang, AttrLabel, AttrDefault),
	Video:    attrSet(AttrSrc, AttrControls, AttrLoop, AttrPreload, AttrWidth, AttrHeight, AttrPoster),
}

func attrSet(attrs ...Attribute) map[Attribute]bool {
	m := make(map[Attribute]bool, len(attrs))
	for _, a := range attrs {
		m[a] = true
	}
	return m
}

// IsAttributeLegal reports whether attribute a may be set on tag t,
// either because a is global or because t's entry in legalAttributes
// lists it.
func IsAttributeLegal(t Tag, a Attribute) bool {
	if IsGlobal(a) {
		return true
	}
	return legalAttributes[t][a]
}
