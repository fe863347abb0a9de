package domerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterOffDiscardsEverything(t *testing.T) {
	r := NewReporter(Off)
	r.Report(DuplicateAttribute, Position{Line: 1, Column: 1})
	r.Report(UnknownNamedCharacterReference, Position{Line: 2, Column: 3})
	assert.Empty(t, r.Events())
}

func TestReporterPartialDropsUnrecognisedNoise(t *testing.T) {
	r := NewReporter(Partial)
	r.Report(DuplicateAttribute, Position{Line: 1, Column: 1})
	r.Report(UnknownNamedCharacterReference, Position{Line: 2, Column: 3})

	events := r.Events()
	if assert.Len(t, events, 1) {
		assert.Equal(t, DuplicateAttribute, events[0].Code)
	}
}

func TestReporterStrictSurfacesEverything(t *testing.T) {
	r := NewReporter(Strict)
	r.Report(DuplicateAttribute, Position{Line: 1, Column: 1})
	r.Report(UnknownNamedCharacterReference, Position{Line: 2, Column: 3})
	assert.Len(t, r.Events(), 2)
}

func TestParseErrorMessageIncludesPosition(t *testing.T) {
	pe := ParseError{Code: EOFInComment, Pos: Position{Line: 4, Column: 9}}
	assert.Equal(t, "eof-in-comment parse error at 4:9", pe.Error())
}

func TestDOMErrorMessage(t *testing.T) {
	err := New(NamespaceError, "prefix without namespace")
	assert.Equal(t, "NamespaceError: prefix without namespace", err.Error())

	bare := &DOMError{Code: NotFoundError}
	assert.Equal(t, "NotFoundError", bare.Error())
}

func TestComplianceLevelString(t *testing.T) {
	assert.Equal(t, "OFF", Off.String())
	assert.Equal(t, "PARTIAL", Partial.String())
	assert.Equal(t, "STRICT", Strict.String())
}
