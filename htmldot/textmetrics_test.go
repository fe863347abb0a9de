package htmldot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTextMetrics_UnknownModelErrors(t *testing.T) {
	_, err := NewTextMetrics("not-a-real-model")
	assert.Error(t, err)
}
