package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAttributeDropsDuplicates(t *testing.T) {
	tok := NewStartTag(Position{Line: 1, Column: 1}, "div")
	assert.True(t, tok.AddAttribute(Attribute{Name: "class", Value: "a"}))
	assert.False(t, tok.AddAttribute(Attribute{Name: "class", Value: "b"}))
	assert.Len(t, tok.Attributes, 1)
	assert.Equal(t, "a", tok.Attributes[0].Value)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "DOCTYPE", DOCTYPE.String())
	assert.Equal(t, "EOF", EOF.String())
}

func TestCharacterTokenCarriesCodePoint(t *testing.T) {
	tok := NewCharacter(Position{Line: 2, Column: 5}, 'x')
	assert.Equal(t, Character, tok.Kind)
	assert.Equal(t, 'x', tok.CodePoint)
	assert.Equal(t, Position{Line: 2, Column: 5}, tok.Pos)
}
