package api

import "fmt"

// OutOfVocabularyError reports a token with no dictionary label encountered
// while encoding against a fixed dictionary. The built-in policies all reject
// such tokens instead of mapping them to an unknown bucket; callers that want
// an unknown bucket can pre-seed one through the Dictionary accessor and
// substitute the token before encoding.
type OutOfVocabularyError struct {
	// Token is the offending token.
	Token string
	// Row is the position of the input string the token came from.
	Row int
}

func (e *OutOfVocabularyError) Error() string {
	return fmt.Sprintf("token %q of input string %d has no label in the dictionary: build the dictionary over a corpus containing it first", e.Token, e.Row)
}
