package encoding

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-textenc/textenc/encoding/policies"
	"github.com/go-textenc/textenc/output"
	"github.com/go-textenc/textenc/tokenizers"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	enc := New(policies.NewTfIdf().WithType(policies.Binary).WithSmoothIdf(false))
	enc.CreateMap("a b a b c", tokenizers.NewWhitespaceSplit())

	var buf bytes.Buffer
	require.NoError(t, enc.Save(&buf))

	restored, err := Load(&buf)
	require.NoError(t, err)

	// Policy comes back with its concrete type and configuration.
	policy, ok := restored.EncodingPolicy().(*policies.TfIdf)
	require.True(t, ok)
	assert.Equal(t, policies.Binary, policy.Type)
	assert.False(t, policy.SmoothIdf)

	// The restored encoder continues against the same label space.
	assert.Equal(t, 3, restored.Dictionary().Size())
	assert.Equal(t, enc.Dictionary().Label("c"), restored.Dictionary().Label("c"))

	var want, got output.Dense
	require.NoError(t, enc.Encode(corpus, &want, tokenizers.NewWhitespaceSplit()))
	require.NoError(t, restored.Encode(corpus, &got, tokenizers.NewWhitespaceSplit()))
	assert.Equal(t, want.Matrix().RawRowView(0), got.Matrix().RawRowView(0))
	assert.Equal(t, want.Matrix().RawRowView(1), got.Matrix().RawRowView(1))
}

func TestSaveLoadOnePassPolicy(t *testing.T) {
	enc := New(policies.NewDictionaryEncoding())
	_, err := enc.EncodeRagged(corpus, tokenizers.NewWhitespaceSplit())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.Save(&buf))
	restored, err := Load(&buf)
	require.NoError(t, err)

	// The restored encoder keeps encoding one-pass with the same labels.
	got, err := restored.EncodeRagged(corpus, tokenizers.NewWhitespaceSplit())
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 1}, {2, 3}}, got)
}

func TestUnmarshalRejectsUnknownPolicyKind(t *testing.T) {
	data, err := json.Marshal(&serializedForm{PolicyKind: "NoSuchPolicy"})
	require.NoError(t, err)

	enc := &StringEncoding{}
	err = json.Unmarshal(data, enc)
	assert.ErrorContains(t, err, "NoSuchPolicy")
}

func TestClone(t *testing.T) {
	enc := New(policies.NewBagOfWords())
	enc.CreateMap("a b", tokenizers.NewWhitespaceSplit())

	clone, err := enc.Clone()
	require.NoError(t, err)

	// The two dictionaries evolve independently from here on.
	enc.Dictionary().AddToken("c")
	assert.Equal(t, 3, enc.Dictionary().Size())
	assert.Equal(t, 2, clone.Dictionary().Size())

	// The clone's policy is a distinct instance of the same kind.
	assert.Equal(t, enc.EncodingPolicy().Kind(), clone.EncodingPolicy().Kind())
	assert.NotSame(t, enc.EncodingPolicy(), clone.EncodingPolicy())
}
