package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekDoesNotAdvance(t *testing.T) {
	s := New([]rune("ab"))
	assert.Equal(t, 'a', s.Peek())
	assert.Equal(t, 'a', s.Peek())
	assert.Equal(t, 'a', s.Consume())
	assert.Equal(t, 'b', s.Peek())
}

func TestConsumePastEndReturnsEOF(t *testing.T) {
	s := New([]rune("x"))
	require.Equal(t, 'x', s.Consume())
	assert.Equal(t, EOF, s.Consume())
	assert.Equal(t, EOF, s.Peek())
	assert.True(t, s.AtEOF())
}

func TestCRLFCollapsesToSingleLF(t *testing.T) {
	s := New([]rune("a\r\nb"))
	assert.Equal(t, 'a', s.Consume())
	assert.Equal(t, '\n', s.Consume())
	assert.Equal(t, 'b', s.Consume())
	assert.Equal(t, EOF, s.Consume())
}

func TestBareCRBecomesLF(t *testing.T) {
	s := New([]rune("a\rb"))
	assert.Equal(t, 'a', s.Consume())
	assert.Equal(t, '\n', s.Consume())
	assert.Equal(t, 'b', s.Consume())
}

func TestReconsumeReplaysLastCodePoint(t *testing.T) {
	s := New([]rune("xy"))
	require.Equal(t, 'x', s.Consume())
	s.Reconsume()
	assert.Equal(t, 'x', s.Consume())
	assert.Equal(t, 'y', s.Consume())
}

func TestReconsumeOverCollapsedCRLF(t *testing.T) {
	s := New([]rune("\r\nz"))
	require.Equal(t, '\n', s.Consume())
	s.Reconsume()
	assert.Equal(t, '\n', s.Consume())
	assert.Equal(t, 'z', s.Consume())
}

func TestPositionTracksLineAndColumn(t *testing.T) {
	s := New([]rune("ab\ncd"))
	s.Consume() // a -> (1,1)
	line, col := s.Position()
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	s.Consume() // b -> (1,2)
	s.Consume() // \n -> (2,0)
	line, col = s.Position()
	assert.Equal(t, 2, line)
	assert.Equal(t, 0, col)

	s.Consume() // c -> (2,1)
	line, col = s.Position()
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}

func TestNullCharacterIsYielded(t *testing.T) {
	s := New([]rune("\x00"))
	assert.Equal(t, rune(0), s.Consume())
}

func TestMarkAndResetRewindsMultipleCodePoints(t *testing.T) {
	s := New([]rune("DOCTYPE html"))
	mark := s.Mark()
	for _, want := range "DOCTYPX" {
		got := s.Consume()
		if got != want {
			s.Reset(mark)
			break
		}
	}
	assert.Equal(t, 'D', s.Consume())
	assert.Equal(t, 'O', s.Consume())
}

func TestMarkAndResetRestoresPosition(t *testing.T) {
	s := New([]rune("ab\ncd"))
	s.Consume()
	s.Consume()
	mark := s.Mark()
	s.Consume()
	line, col := s.Position()
	assert.Equal(t, 2, line)
	assert.Equal(t, 0, col)

	s.Reset(mark)
	line, col = s.Position()
	assert.Equal(t, 1, line)
	assert.Equal(t, 2, col)
	assert.Equal(t, '\n', s.Consume())
}
