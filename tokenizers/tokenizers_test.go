package tokenizers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-textenc/textenc/encoding/api"
)

// drain collects every token the tokenizer extracts from text.
func drain(t api.Tokenizer, text string) []string {
	var tokens []string
	remainder := text
	for {
		token, ok := t.Next(&remainder)
		if !ok {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

func TestSplitByAnyOf(t *testing.T) {
	testCases := []struct {
		name       string
		delimiters string
		text       string
		expected   []string
	}{
		{"simple", " ", "a b a", []string{"a", "b", "a"}},
		{"leading and trailing", " ", "  hello world ", []string{"hello", "world"}},
		{"consecutive delimiters", " ", "a   b", []string{"a", "b"}},
		{"several delimiters", " ,.", "one,two.three four", []string{"one", "two", "three", "four"}},
		{"no delimiter present", " ", "solid", []string{"solid"}},
		{"only delimiters", " ", "    ", nil},
		{"empty input", " ", "", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tok := NewSplitByAnyOf(tc.delimiters)
			assert.Equal(t, tc.expected, drain(tok, tc.text))
		})
	}
}

func TestWhitespaceSplit(t *testing.T) {
	tok := NewWhitespaceSplit()
	assert.Equal(t, []string{"a", "b", "c"}, drain(tok, "a\tb\nc"))
}

func TestSplitByAnyOfCursorAdvances(t *testing.T) {
	tok := NewWhitespaceSplit()
	remainder := "one two"

	token, ok := tok.Next(&remainder)
	assert.True(t, ok)
	assert.Equal(t, "one", token)
	assert.Equal(t, " two", remainder)

	token, ok = tok.Next(&remainder)
	assert.True(t, ok)
	assert.Equal(t, "two", token)
	assert.Equal(t, "", remainder)

	_, ok = tok.Next(&remainder)
	assert.False(t, ok)
}

func TestCharExtract(t *testing.T) {
	tok := NewCharExtract()
	assert.Equal(t, []string{"a", "b", "c"}, drain(tok, "abc"))
	assert.Nil(t, drain(tok, ""))
}

func TestCharExtractMultibyte(t *testing.T) {
	tok := NewCharExtract()
	assert.Equal(t, []string{"h", "é", "日"}, drain(tok, "hé日"))
	assert.Equal(t, []string{"▁", "a"}, drain(tok, "▁a"))
}
