package validator

import (
	"testing"

	"github.com/arbor-dot/htmldot/domerr"
	"github.com/stretchr/testify/assert"
)

func TestIsName(t *testing.T) {
	assert.True(t, IsName("div"))
	assert.True(t, IsName("_private"))
	assert.True(t, IsName("x-1"))
	assert.False(t, IsName(""))
	assert.False(t, IsName("1x"))
	assert.False(t, IsName("a b"))
}

func TestIsQName(t *testing.T) {
	assert.True(t, IsQName("div"))
	assert.True(t, IsQName("xlink:href"))
	assert.False(t, IsQName("a:b:c"))
	assert.False(t, IsQName(":b"))
	assert.False(t, IsQName("a:"))
}

func TestValidateNSRequiresNamespaceForPrefix(t *testing.T) {
	err := ValidateNS("", "xlink:href")
	if assert.Error(t, err) {
		domErr, ok := err.(*domerr.DOMError)
		if assert.True(t, ok) {
			assert.Equal(t, domerr.NamespaceError, domErr.Code)
		}
	}
}

func TestValidateNSAllowsBareName(t *testing.T) {
	assert.NoError(t, ValidateNS("", "div"))
}

func TestValidateNSXMLPrefixRequiresXMLNamespace(t *testing.T) {
	assert.Error(t, ValidateNS("urn:something", "xml:lang"))
	assert.NoError(t, ValidateNS(xmlURI, "xml:lang"))
}

func TestValidateNSRejectsBadQName(t *testing.T) {
	err := ValidateNS("urn:x", "a:b:c")
	if assert.Error(t, err) {
		domErr, ok := err.(*domerr.DOMError)
		if assert.True(t, ok) {
			assert.Equal(t, domerr.InvalidCharacterError, domErr.Code)
		}
	}
}
