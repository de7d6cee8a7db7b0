// Package dictionary implements the bidirectional token<->label store that
// encoding policies build and encode against.
package dictionary

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// panicf generates an error message and panics with it, in one function.
func panicf(format string, args ...any) {
	err := errors.Errorf(format, args...)
	panic(err)
}

// Dictionary assigns integer labels to distinct tokens in first-seen order.
// Labels start at 1; label 0 is reserved to mean "unseen", and is what
// fixed-shape outputs use for padding.
//
// The forward (token->label) and backward (label->token) mappings are kept
// mutually inverse at all times. A Dictionary is not safe for concurrent use.
type Dictionary struct {
	labels map[string]int
	// tokens[label-1] is the token the label was assigned to. Labels are
	// contiguous, so a slice is the whole backward mapping.
	tokens []string
}

// New creates an empty Dictionary.
func New() *Dictionary {
	return &Dictionary{labels: make(map[string]int)}
}

// AddToken returns the label of token, first assigning the next unused label
// if the token has not been seen before. It never rejects a token.
func (d *Dictionary) AddToken(token string) int {
	if label, ok := d.labels[token]; ok {
		return label
	}
	d.tokens = append(d.tokens, token)
	label := len(d.tokens)
	d.labels[token] = label
	return label
}

// HasToken reports whether token has been assigned a label.
func (d *Dictionary) HasToken(token string) bool {
	_, ok := d.labels[token]
	return ok
}

// Label returns the label assigned to token. Calling it for a token that was
// never added is a programming error and panics: check HasToken first, or use
// AddToken.
func (d *Dictionary) Label(token string) int {
	label, ok := d.labels[token]
	if !ok {
		panicf("token %q has no label in the dictionary", token)
	}
	return label
}

// Token is the inverse of Label. It returns an error for labels outside
// [1, Size()], including the reserved label 0.
func (d *Dictionary) Token(label int) (string, error) {
	if label < 1 || label > len(d.tokens) {
		return "", errors.Errorf("label %d out of the assigned range [1, %d]", label, len(d.tokens))
	}
	return d.tokens[label-1], nil
}

// Size returns the number of distinct tokens currently held.
func (d *Dictionary) Size() int {
	return len(d.tokens)
}

// Clear empties both mappings and resets label assignment, so the next
// AddToken gets label 1 again. Previously produced encodings are unaffected.
func (d *Dictionary) Clear() {
	d.labels = make(map[string]int)
	d.tokens = nil
}

// Clone returns a deep copy that evolves independently of the receiver.
func (d *Dictionary) Clone() *Dictionary {
	clone := &Dictionary{
		labels: make(map[string]int, len(d.labels)),
		tokens: append([]string(nil), d.tokens...),
	}
	for token, label := range d.labels {
		clone.labels[token] = label
	}
	return clone
}

// MarshalJSON serializes the dictionary as the token list in label order;
// the labels themselves are implied by the positions.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	if d.tokens == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.tokens)
}

// UnmarshalJSON rebuilds both mappings from a serialized token list.
func (d *Dictionary) UnmarshalJSON(data []byte) error {
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return errors.Wrapf(err, "failed to parse serialized dictionary")
	}
	labels := make(map[string]int, len(tokens))
	for i, token := range tokens {
		if _, ok := labels[token]; ok {
			return errors.Errorf("serialized dictionary holds token %q more than once", token)
		}
		labels[token] = i + 1
	}
	d.labels = labels
	d.tokens = tokens
	return nil
}
