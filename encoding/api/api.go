// Package api defines the contracts between the encoding orchestrator and its
// collaborators: tokenizers, encoding policies and the numeric output sinks.
// It's a separate package to break the cyclic dependency, and allow the users
// to import `encoding` and get the built-in policy implementations.
package api

import (
	"github.com/go-textenc/textenc/dictionary"
)

// Tokenizer extracts tokens from a span of text.
//
// Next consumes the next token from *remainder and advances it past the
// consumed input; it returns ok=false once the input is exhausted. A returned
// token may legitimately be empty for degenerate tokenizers, so callers must
// test ok rather than the token itself.
//
// The remainder string is the cursor: every tokenizer-consuming operation
// owns a fresh one per input string, and the cursor is never rewound.
type Tokenizer interface {
	Next(remainder *string) (token string, ok bool)
}

// NumericOutput is the minimal write contract fixed-shape (dense or sparse)
// encoding output must satisfy.
//
// Reshape is called exactly once per encoding call, before any Set. Set is
// never called twice for the same cell with different values, so sparse sinks
// may treat every never-set cell as their fill value.
type NumericOutput interface {
	// Reshape discards previous contents and sizes the table rows x cols,
	// with every cell at the sink's default fill value (usually 0).
	Reshape(rows, cols int)
	// Set writes value at [row][col].
	Set(row, col int, value float64)
}

// EncodingPolicy turns dictionary labels into numeric output.
//
// For fixed-shape output the orchestrator drives the policy in two passes
// over a batch of strings: a sizing pass (Reset once, then PreprocessToken
// per token occurrence), InitMatrix once, and a writing pass (Encode per
// token occurrence, in the same order). The policy never owns the dictionary;
// it is handed one per operation.
type EncodingPolicy interface {
	// Kind identifies the policy in the registry and in serialized form.
	Kind() string

	// InitDictionary extracts every token of corpus and inserts it into dict.
	InitDictionary(corpus string, tokenizer Tokenizer, dict *dictionary.Dictionary)

	// Reset discards state the policy accumulated for a previous batch.
	Reset()

	// PreprocessToken observes one token occurrence during the sizing pass:
	// the token with the given label is the index-th token of row.
	PreprocessToken(row, index, label int)

	// InitMatrix reshapes output for a batch of rows strings, the longest of
	// which holds maxTokens tokens, against a dictionary of dictSize labels.
	InitMatrix(output NumericOutput, rows, maxTokens, dictSize int)

	// Encode writes the numeric value for one token occurrence, mirroring a
	// PreprocessToken call from the sizing pass.
	Encode(output NumericOutput, label, row, index int)
}

// OnePassEncoder is the capability interface for policies that can grow the
// dictionary and emit labels in a single traversal. The fused path is only
// valid for ragged output, since fixed-shape output needs the final
// dictionary size before the first write. The orchestrator detects the
// capability with a type assertion.
type OnePassEncoder interface {
	EncodingPolicy

	// Append appends the value for one token occurrence to a ragged row.
	Append(row *[]int, label int)
}
