package core

import (
	"github.com/stevegt/gemchat/client"
	. "github.com/stevegt/goadapt"
	"github.com/tiktoken-go/tokenizer"
)

// XXX get rid of this global
var Tokenizer tokenizer.Codec

// InitTokenizer initializes the tokenizer.  Gemini does not publish its
// tokenizer, so cl100k_base is used as an estimate.
func InitTokenizer() (err error) {
	defer Return(&err)
	if Tokenizer != nil {
		return
	}
	Tokenizer, err = tokenizer.Get(tokenizer.Cl100kBase)
	Ck(err)
	return
}

// TokenCount returns the approximate number of tokens in text.
func TokenCount(text string) (count int, err error) {
	defer Return(&err)
	err = InitTokenizer()
	Ck(err)
	_, tokens, err := Tokenizer.Encode(text)
	Ck(err)
	count = len(tokens)
	return
}

// TranscriptTokenCount returns the approximate number of tokens sent
// when turns are replayed as a request.
func TranscriptTokenCount(turns []client.Turn) (count int, err error) {
	defer Return(&err)
	for _, turn := range turns {
		tc, err := TokenCount(turn.Text)
		Ck(err)
		count += tc
	}
	return
}
