package dictionary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToken(t *testing.T) {
	d := New()
	assert.Equal(t, 1, d.AddToken("a"))
	assert.Equal(t, 2, d.AddToken("b"))
	assert.Equal(t, 3, d.AddToken("c"))

	// Repeated insertion keeps the original label and the size.
	assert.Equal(t, 1, d.AddToken("a"))
	assert.Equal(t, 2, d.AddToken("b"))
	assert.Equal(t, 3, d.Size())
}

func TestLookups(t *testing.T) {
	d := New()
	d.AddToken("hello")
	d.AddToken("world")

	assert.True(t, d.HasToken("hello"))
	assert.False(t, d.HasToken("nope"))
	assert.Equal(t, 2, d.Label("world"))

	token, err := d.Token(1)
	require.NoError(t, err)
	assert.Equal(t, "hello", token)

	_, err = d.Token(0)
	assert.Error(t, err)
	_, err = d.Token(3)
	assert.Error(t, err)
}

func TestLabelPanicsOnAbsentToken(t *testing.T) {
	d := New()
	d.AddToken("a")
	assert.Panics(t, func() { d.Label("b") })
}

func TestClear(t *testing.T) {
	d := New()
	d.AddToken("a")
	d.AddToken("b")
	d.Clear()

	assert.Equal(t, 0, d.Size())
	assert.False(t, d.HasToken("a"))

	// Label assignment restarts from 1.
	assert.Equal(t, 1, d.AddToken("b"))
}

func TestClone(t *testing.T) {
	d := New()
	d.AddToken("a")
	clone := d.Clone()

	d.AddToken("b")
	assert.Equal(t, 2, d.Size())
	assert.Equal(t, 1, clone.Size())
	assert.False(t, clone.HasToken("b"))
	assert.Equal(t, 1, clone.Label("a"))
}

func TestJSONRoundTrip(t *testing.T) {
	d := New()
	for _, token := range []string{"the", "cat", "sat"} {
		d.AddToken(token)
	}
	data, err := json.Marshal(d)
	require.NoError(t, err)

	restored := New()
	require.NoError(t, json.Unmarshal(data, restored))

	assert.Equal(t, 3, restored.Size())
	assert.Equal(t, d.Label("the"), restored.Label("the"))
	assert.Equal(t, d.Label("cat"), restored.Label("cat"))
	assert.Equal(t, d.Label("sat"), restored.Label("sat"))

	// The restored dictionary continues label assignment where it left off.
	assert.Equal(t, 4, restored.AddToken("mat"))
}

func TestUnmarshalRejectsDuplicates(t *testing.T) {
	restored := New()
	err := json.Unmarshal([]byte(`["a","b","a"]`), restored)
	assert.Error(t, err)
}
