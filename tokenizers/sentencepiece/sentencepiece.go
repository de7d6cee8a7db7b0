// Package sentencepiece adapts the SentencePiece tokenizer by Google to the
// api.Tokenizer contract, so subword vocabularies can feed the encoder.
package sentencepiece

import (
	esentencepiece "github.com/eliben/go-sentencepiece"
	"github.com/pkg/errors"

	"github.com/go-textenc/textenc/encoding/api"
)

// Tokenizer implements api.Tokenizer on top of a SentencePiece processor.
//
// SentencePiece segments a whole text at once, so the first Next call on a
// cursor encodes the entire remainder, consumes it, and buffers the resulting
// pieces; later calls drain the buffer. The piece text (including its "▁"
// word-boundary markers) is the token, which keeps dictionary labels
// independent from the processor's own piece ids.
type Tokenizer struct {
	proc    *esentencepiece.Processor
	pending []string
}

// New creates a Tokenizer from the given SentencePiece model file, which must
// be a serialized SentencePiece Model proto.
func New(modelPath string) (*Tokenizer, error) {
	proc, err := esentencepiece.NewProcessorFromPath(modelPath)
	if err != nil {
		return nil, errors.Wrapf(err, "can't create sentencepiece tokenizer")
	}
	return &Tokenizer{proc: proc}, nil
}

// NewFromProcessor wraps an already constructed SentencePiece processor.
func NewFromProcessor(proc *esentencepiece.Processor) *Tokenizer {
	return &Tokenizer{proc: proc}
}

// Next implements api.Tokenizer.
func (t *Tokenizer) Next(remainder *string) (string, bool) {
	if len(t.pending) == 0 {
		if *remainder == "" {
			return "", false
		}
		pieces := t.proc.Encode(*remainder)
		*remainder = ""
		t.pending = make([]string, 0, len(pieces))
		for _, piece := range pieces {
			t.pending = append(t.pending, piece.Text)
		}
		if len(t.pending) == 0 {
			return "", false
		}
	}
	token := t.pending[0]
	t.pending = t.pending[1:]
	return token, true
}

// Compile time assert that Tokenizer implements the api.Tokenizer contract.
var _ api.Tokenizer = (*Tokenizer)(nil)
