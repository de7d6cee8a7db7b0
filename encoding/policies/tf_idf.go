package policies

import (
	"math"

	"github.com/go-textenc/textenc/dictionary"
	"github.com/go-textenc/textenc/encoding/api"
)

// TfType selects the term-frequency weighting scheme of a TfIdf policy.
type TfType int

const (
	// RawCount uses the raw number of occurrences of the term in the string.
	RawCount TfType = iota
	// Binary uses 1 if the term occurs in the string and 0 otherwise.
	Binary
	// TermFrequency divides the raw count by the number of tokens in the string.
	TermFrequency
	// SublinearTf uses 1 + ln(raw count).
	SublinearTf
)

// String returns the string representation of the weighting scheme.
func (t TfType) String() string {
	switch t {
	case RawCount:
		return "rawCount"
	case Binary:
		return "binary"
	case TermFrequency:
		return "termFrequency"
	case SublinearTf:
		return "sublinearTf"
	default:
		return "unknown"
	}
}

// TfIdf encodes every string as a row of tf-idf weights, one column per
// dictionary label (column = label - 1).
//
// With smoothing enabled (the default) idf = ln((1+N)/(1+df)) + 1, where N is
// the number of strings in the batch and df the number of strings containing
// the term; without smoothing idf = ln(N/df) + 1. Only Type and SmoothIdf
// survive serialization; the per-batch frequency state is transient.
type TfIdf struct {
	// Type selects the term-frequency weighting scheme.
	Type TfType `json:"tfType"`
	// SmoothIdf selects the smoothed idf formula.
	SmoothIdf bool `json:"smoothIdf"`

	// Per-batch state, rebuilt by the sizing pass.
	counts    []map[int]int // label -> occurrences, per row
	docCounts map[int]int   // label -> number of rows containing it
	rowSizes  []int         // tokens per row
	numRows   int
}

// NewTfIdf creates a TfIdf policy with raw-count weighting and smooth idf.
// Use WithType and WithSmoothIdf to change either.
func NewTfIdf() *TfIdf {
	return &TfIdf{Type: RawCount, SmoothIdf: true}
}

// WithType sets the term-frequency weighting scheme and returns the policy.
func (p *TfIdf) WithType(t TfType) *TfIdf {
	p.Type = t
	return p
}

// WithSmoothIdf toggles idf smoothing and returns the policy.
func (p *TfIdf) WithSmoothIdf(smooth bool) *TfIdf {
	p.SmoothIdf = smooth
	return p
}

// Kind implements api.EncodingPolicy.
func (*TfIdf) Kind() string { return "TfIdf" }

// InitDictionary implements api.EncodingPolicy.
func (*TfIdf) InitDictionary(corpus string, tokenizer api.Tokenizer, dict *dictionary.Dictionary) {
	buildDictionary(corpus, tokenizer, dict)
}

// Reset implements api.EncodingPolicy.
func (p *TfIdf) Reset() {
	p.counts = nil
	p.docCounts = make(map[int]int)
	p.rowSizes = nil
	p.numRows = 0
}

// PreprocessToken implements api.EncodingPolicy, accumulating the term and
// document frequencies the writing pass needs.
func (p *TfIdf) PreprocessToken(row, index, label int) {
	for len(p.counts) <= row {
		p.counts = append(p.counts, make(map[int]int))
		p.rowSizes = append(p.rowSizes, 0)
	}
	if p.counts[row][label] == 0 {
		p.docCounts[label]++
	}
	p.counts[row][label]++
	p.rowSizes[row]++
}

// InitMatrix implements api.EncodingPolicy.
func (p *TfIdf) InitMatrix(output api.NumericOutput, rows, maxTokens, dictSize int) {
	p.numRows = rows
	output.Reshape(rows, dictSize)
}

// Encode implements api.EncodingPolicy.
func (p *TfIdf) Encode(output api.NumericOutput, label, row, index int) {
	count := p.counts[row][label]
	var tf float64
	switch p.Type {
	case Binary:
		tf = 1
	case TermFrequency:
		tf = float64(count) / float64(p.rowSizes[row])
	case SublinearTf:
		tf = 1 + math.Log(float64(count))
	default:
		tf = float64(count)
	}
	df := float64(p.docCounts[label])
	var idf float64
	if p.SmoothIdf {
		idf = math.Log((1+float64(p.numRows))/(1+df)) + 1
	} else {
		idf = math.Log(float64(p.numRows)/df) + 1
	}
	output.Set(row, label-1, tf*idf)
}

var _ api.EncodingPolicy = (*TfIdf)(nil)
