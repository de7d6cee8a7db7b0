package policies

import (
	"github.com/go-textenc/textenc/dictionary"
	"github.com/go-textenc/textenc/encoding/api"
)

// DictionaryEncoding encodes every string as its raw sequence of labels.
//
// Into ragged output each row is the exact label sequence; this is the
// one-pass policy, so unseen tokens are added to the dictionary on the fly.
// Into fixed-shape output rows are right-padded with 0 to the length of the
// longest sequence in the batch, so the column count is the maximum number of
// tokens per string rather than the dictionary size.
type DictionaryEncoding struct{}

// NewDictionaryEncoding creates a DictionaryEncoding policy.
func NewDictionaryEncoding() *DictionaryEncoding {
	return &DictionaryEncoding{}
}

// Kind implements api.EncodingPolicy.
func (*DictionaryEncoding) Kind() string { return "DictionaryEncoding" }

// InitDictionary implements api.EncodingPolicy.
func (*DictionaryEncoding) InitDictionary(corpus string, tokenizer api.Tokenizer, dict *dictionary.Dictionary) {
	buildDictionary(corpus, tokenizer, dict)
}

// Reset implements api.EncodingPolicy. The policy keeps no batch state.
func (*DictionaryEncoding) Reset() {}

// PreprocessToken implements api.EncodingPolicy.
func (*DictionaryEncoding) PreprocessToken(row, index, label int) {}

// InitMatrix implements api.EncodingPolicy.
func (*DictionaryEncoding) InitMatrix(output api.NumericOutput, rows, maxTokens, dictSize int) {
	output.Reshape(rows, maxTokens)
}

// Encode implements api.EncodingPolicy.
func (*DictionaryEncoding) Encode(output api.NumericOutput, label, row, index int) {
	output.Set(row, index, float64(label))
}

// Append implements api.OnePassEncoder.
func (*DictionaryEncoding) Append(row *[]int, label int) {
	*row = append(*row, label)
}

// Compile time assert that DictionaryEncoding supports the one-pass path.
var _ api.OnePassEncoder = (*DictionaryEncoding)(nil)
