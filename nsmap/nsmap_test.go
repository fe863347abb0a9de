package nsmap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservedIDs(t *testing.T) {
	m := New()

	uri, ok := m.URI(HTML)
	require.True(t, ok)
	assert.Equal(t, htmlURI, uri)

	uri, ok = m.URI(SVG)
	require.True(t, ok)
	assert.Equal(t, svgURI, uri)

	uri, ok = m.URI(None)
	require.True(t, ok)
	assert.Equal(t, "", uri)
}

func TestInternIsIdempotent(t *testing.T) {
	m := New()

	id1 := m.Intern("urn:custom:one", "")
	id2 := m.Intern("urn:custom:one", "")
	assert.Equal(t, id1, id2)

	uri, ok := m.URI(id1)
	require.True(t, ok)
	assert.Equal(t, "urn:custom:one", uri)
}

func TestLookupAbsentReturnsInvalid(t *testing.T) {
	m := New()
	assert.Equal(t, Invalid, m.Lookup("urn:never-seen"))
}

func TestEmptyURIIsNone(t *testing.T) {
	m := New()
	assert.Equal(t, None, m.Intern("", "irrelevant"))
	assert.Equal(t, None, m.Lookup(""))
}

func TestConcurrentIntern(t *testing.T) {
	m := New()
	var wg sync.WaitGroup
	ids := make([]ID, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = m.Intern("urn:shared", "")
		}(i)
	}
	wg.Wait()

	first := ids[0]
	for _, id := range ids {
		assert.Equal(t, first, id)
	}
}

func TestIDOnceIssuedNeverChangesURI(t *testing.T) {
	m := New()
	id := m.Intern("urn:stable", "")
	m.Intern("urn:another", "")
	m.Intern("urn:yet-another", "")

	uri, ok := m.URI(id)
	require.True(t, ok)
	assert.Equal(t, "urn:stable", uri)
}
