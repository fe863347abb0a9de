package htmldot

import (
	"fmt"

	"github.com/arbor-dot/htmldot/dot"
	"github.com/pkoukk/tiktoken-go"
)

// TextMetrics wraps a tiktoken encoding so callers can measure a
// Document's text content the way a downstream LLM pipeline would
// budget it, without the core dot/treebuilder packages themselves
// depending on tiktoken-go.
type TextMetrics struct {
	enc *tiktoken.Tiktoken
}

// NewTextMetrics builds a TextMetrics for model (e.g. "gpt-4",
// "gpt-3.5-turbo"), resolving it to the matching tiktoken encoding.
func NewTextMetrics(model string) (*TextMetrics, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("resolve tiktoken encoding for %q: %w", model, err)
	}
	return &TextMetrics{enc: enc}, nil
}

// TokenCount returns the number of model tokens in n's TextContent —
// the concatenation of every descendant Text/CDATA node's data, the
// same string Serialize would render text nodes from, stripped of
// markup.
func (m *TextMetrics) TokenCount(n dot.Node) int {
	return len(m.enc.Encode(n.TextContent(), nil, nil))
}

// DocumentTokenCount is a convenience for the common case of measuring
// an entire parsed Document.
func DocumentTokenCount(doc *dot.Document, model string) (int, error) {
	m, err := NewTextMetrics(model)
	if err != nil {
		return 0, err
	}
	return m.TokenCount(doc), nil
}
