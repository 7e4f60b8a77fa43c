package core

import (
	"github.com/stevegt/gemchat/client"
)

// Transcript is the ordered history of a conversation.  It only grows;
// insertion order is conversation order and is replayed verbatim on
// every request.  It lives for one run and is never saved.
type Transcript struct {
	turns []client.Turn
}

// NewTranscript returns an empty Transcript.
func NewTranscript() *Transcript {
	return &Transcript{turns: make([]client.Turn, 0)}
}

// Append adds turns to the end of the transcript.
func (tr *Transcript) Append(turns ...client.Turn) {
	tr.turns = append(tr.turns, turns...)
}

// Turns returns a copy of the turns in order.
func (tr *Transcript) Turns() []client.Turn {
	turns := make([]client.Turn, len(tr.turns))
	copy(turns, tr.turns)
	return turns
}

// Len returns the number of turns.
func (tr *Transcript) Len() int {
	return len(tr.turns)
}
