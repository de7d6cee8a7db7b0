// Package policies implements the built-in encoding policies: dictionary
// (label sequence) encoding, bag of words, and tf-idf.
//
// All of them reuse labels already present in the dictionary and, when
// encoding into a fixed-shape output, rely on the orchestrator to reject
// tokens that are missing from it; none maps missing tokens to an unknown
// bucket.
package policies

import (
	"github.com/go-textenc/textenc/dictionary"
	"github.com/go-textenc/textenc/encoding/api"
)

// buildDictionary inserts every token the tokenizer extracts from corpus into
// dict. Tokens already present keep their labels.
func buildDictionary(corpus string, tokenizer api.Tokenizer, dict *dictionary.Dictionary) {
	remainder := corpus
	for {
		token, ok := tokenizer.Next(&remainder)
		if !ok {
			return
		}
		dict.AddToken(token)
	}
}
