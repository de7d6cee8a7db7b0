// Package tokenizers provides the built-in implementations of the tokenizer
// contract the encoder consumes (see api.Tokenizer).
//
// A tokenizer extracts one token at a time from a remainder string acting as
// the cursor over one input text. The implementations here are deliberately
// simple splitters; subword tokenizers plug in through adapter packages (see
// the sentencepiece sub-package).
package tokenizers

import (
	"strings"
	"unicode/utf8"

	"github.com/go-textenc/textenc/encoding/api"
)

// SplitByAnyOf splits text into maximal runs of characters outside a
// delimiter set. Runs of consecutive delimiters yield no empty tokens.
type SplitByAnyOf struct {
	delimiters string
}

// NewSplitByAnyOf creates a SplitByAnyOf over the given set of delimiter
// characters (interpreted as a set of Unicode code points, like a strings
// cutset).
func NewSplitByAnyOf(delimiters string) *SplitByAnyOf {
	return &SplitByAnyOf{delimiters: delimiters}
}

// NewWhitespaceSplit creates a SplitByAnyOf over ASCII whitespace.
func NewWhitespaceSplit() *SplitByAnyOf {
	return NewSplitByAnyOf(" \t\n\v\f\r")
}

// Next implements api.Tokenizer.
func (t *SplitByAnyOf) Next(remainder *string) (string, bool) {
	text := strings.TrimLeft(*remainder, t.delimiters)
	if text == "" {
		*remainder = ""
		return "", false
	}
	end := strings.IndexAny(text, t.delimiters)
	if end < 0 {
		*remainder = ""
		return text, true
	}
	*remainder = text[end:]
	return text[:end], true
}

// CharExtract yields one token per rune, in input order. It is meant for
// character-level dictionaries.
type CharExtract struct{}

// NewCharExtract creates a CharExtract tokenizer.
func NewCharExtract() *CharExtract {
	return &CharExtract{}
}

// Next implements api.Tokenizer.
func (*CharExtract) Next(remainder *string) (string, bool) {
	if *remainder == "" {
		return "", false
	}
	_, size := utf8.DecodeRuneInString(*remainder)
	token := (*remainder)[:size]
	*remainder = (*remainder)[size:]
	return token, true
}

// Compile time asserts that the built-in tokenizers satisfy the contract.
var (
	_ api.Tokenizer = (*SplitByAnyOf)(nil)
	_ api.Tokenizer = (*CharExtract)(nil)
)
