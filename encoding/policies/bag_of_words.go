package policies

import (
	"github.com/go-textenc/textenc/dictionary"
	"github.com/go-textenc/textenc/encoding/api"
)

// BagOfWords encodes every string as a row of raw occurrence counts, one
// column per dictionary label (column = label - 1). Columns for tokens absent
// from a string stay at the sink's fill value.
type BagOfWords struct {
	// counts maps label -> occurrences per row; rebuilt for every batch.
	counts []map[int]int
}

// NewBagOfWords creates a BagOfWords policy.
func NewBagOfWords() *BagOfWords {
	return &BagOfWords{}
}

// Kind implements api.EncodingPolicy.
func (*BagOfWords) Kind() string { return "BagOfWords" }

// InitDictionary implements api.EncodingPolicy.
func (*BagOfWords) InitDictionary(corpus string, tokenizer api.Tokenizer, dict *dictionary.Dictionary) {
	buildDictionary(corpus, tokenizer, dict)
}

// Reset implements api.EncodingPolicy.
func (p *BagOfWords) Reset() {
	p.counts = nil
}

// PreprocessToken implements api.EncodingPolicy, accumulating the counts the
// writing pass will emit.
func (p *BagOfWords) PreprocessToken(row, index, label int) {
	for len(p.counts) <= row {
		p.counts = append(p.counts, make(map[int]int))
	}
	p.counts[row][label]++
}

// InitMatrix implements api.EncodingPolicy.
func (p *BagOfWords) InitMatrix(output api.NumericOutput, rows, maxTokens, dictSize int) {
	output.Reshape(rows, dictSize)
}

// Encode implements api.EncodingPolicy. Re-setting the same cell for repeated
// occurrences writes the same final count every time.
func (p *BagOfWords) Encode(output api.NumericOutput, label, row, index int) {
	output.Set(row, label-1, float64(p.counts[row][label]))
}

var _ api.EncodingPolicy = (*BagOfWords)(nil)
