// Package encoding translates sets of strings into numbers using pluggable
// encoding policies and tokenizers.
//
// A StringEncoding pairs one encoding policy (see the policies sub-package
// for the built-in ones) with one dictionary. Typical use builds the
// dictionary from a corpus with CreateMap and then encodes batches of strings
// into a fixed-shape sink (Encode) or into label sequences (EncodeRagged):
//
//	enc := encoding.New(policies.NewBagOfWords())
//	enc.CreateMap("a b a b c", tokenizers.NewWhitespaceSplit())
//	var out output.Dense
//	err := enc.Encode([]string{"a b a", "b c"}, &out, tokenizers.NewWhitespaceSplit())
//
// Policies that support one-pass encoding skip the CreateMap step for ragged
// output and grow the dictionary while encoding.
package encoding

import (
	"github.com/pkg/errors"

	"github.com/go-textenc/textenc/dictionary"
	"github.com/go-textenc/textenc/encoding/api"
)

// StringEncoding translates sets of strings into numbers under a fixed
// encoding policy. It owns the policy instance and the dictionary the policy
// encodes against; the two evolve together across calls and stay reachable
// through the EncodingPolicy and Dictionary accessors.
//
// A StringEncoding is not safe for concurrent use. Callers that need the same
// vocabulary in several goroutines should hand each one a Clone, or
// synchronize externally.
type StringEncoding struct {
	policy api.EncodingPolicy
	dict   *dictionary.Dictionary
}

// New creates a StringEncoding with an empty dictionary for the given policy.
func New(policy api.EncodingPolicy) *StringEncoding {
	return &StringEncoding{
		policy: policy,
		dict:   dictionary.New(),
	}
}

// CreateMap initializes the dictionary from the given corpus, delegating to
// the policy's dictionary-building step. Tokens already present keep their
// labels, so re-running over the same corpus changes nothing; call Clear
// first for a fresh build.
func (e *StringEncoding) CreateMap(corpus string, tokenizer api.Tokenizer) {
	e.policy.InitDictionary(corpus, tokenizer, e.dict)
}

// Clear empties the dictionary. Output produced by earlier encoding calls is
// unaffected.
func (e *StringEncoding) Clear() {
	e.dict.Clear()
}

// Dictionary returns the owned dictionary, for inspection or pre-seeding.
func (e *StringEncoding) Dictionary() *dictionary.Dictionary {
	return e.dict
}

// EncodingPolicy returns the owned policy instance.
func (e *StringEncoding) EncodingPolicy() api.EncodingPolicy {
	return e.policy
}

// Encode encodes input into the fixed-shape output sink, one row per input
// string in input order.
//
// The dictionary must already cover every token the tokenizer extracts
// (CreateMap), because the output shape is fixed from Dictionary.Size()
// before the first write: growing the dictionary mid-encode would invalidate
// column indices already written for earlier rows. A missing token aborts
// with a *api.OutOfVocabularyError before the sink is touched.
func (e *StringEncoding) Encode(input []string, output api.NumericOutput, tokenizer api.Tokenizer) error {
	e.policy.Reset()

	// Sizing pass: find the longest token sequence, let the policy gather
	// its statistics, and verify the vocabulary is complete.
	maxTokens := 0
	for row, line := range input {
		remainder := line
		index := 0
		for {
			token, ok := tokenizer.Next(&remainder)
			if !ok {
				break
			}
			if !e.dict.HasToken(token) {
				return errors.WithStack(&api.OutOfVocabularyError{Token: token, Row: row})
			}
			e.policy.PreprocessToken(row, index, e.dict.Label(token))
			index++
		}
		if index > maxTokens {
			maxTokens = index
		}
	}

	e.policy.InitMatrix(output, len(input), maxTokens, e.dict.Size())

	// Writing pass, over fresh cursors in the same order.
	for row, line := range input {
		remainder := line
		index := 0
		for {
			token, ok := tokenizer.Next(&remainder)
			if !ok {
				break
			}
			e.policy.Encode(output, e.dict.Label(token), row, index)
			index++
		}
	}
	return nil
}

// EncodeRagged encodes input as one label sequence per input string, in input
// order.
//
// With a policy supporting one-pass encoding the dictionary grows on the fly,
// so no CreateMap call is needed first (labels already assigned are reused).
// With any other policy the dictionary is fixed, and a missing token aborts
// with a *api.OutOfVocabularyError.
func (e *StringEncoding) EncodeRagged(input []string, tokenizer api.Tokenizer) ([][]int, error) {
	if onePass, ok := e.policy.(api.OnePassEncoder); ok {
		return e.encodeOnePass(input, tokenizer, onePass), nil
	}

	output := make([][]int, len(input))
	for row, line := range input {
		remainder := line
		for {
			token, ok := tokenizer.Next(&remainder)
			if !ok {
				break
			}
			if !e.dict.HasToken(token) {
				return nil, errors.WithStack(&api.OutOfVocabularyError{Token: token, Row: row})
			}
			output[row] = append(output[row], e.dict.Label(token))
		}
	}
	return output, nil
}

// encodeOnePass is the fused build-and-encode traversal for policies that
// support it: a single pass tokenizes, grows the dictionary and appends
// labels.
func (e *StringEncoding) encodeOnePass(input []string, tokenizer api.Tokenizer, policy api.OnePassEncoder) [][]int {
	output := make([][]int, len(input))
	for row, line := range input {
		remainder := line
		for {
			token, ok := tokenizer.Next(&remainder)
			if !ok {
				break
			}
			policy.Append(&output[row], e.dict.AddToken(token))
		}
	}
	return output
}
