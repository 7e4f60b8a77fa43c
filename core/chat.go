package core

import (
	"context"
	"errors"
	"io"

	"github.com/stevegt/gemchat/client"
	. "github.com/stevegt/goadapt"
)

// Chat runs an interactive conversation: read a line, send the whole
// transcript plus that line, print the reply, repeat.  One request is
// in flight at a time.
type Chat struct {
	Client     client.ChatClient
	In         *Reader
	Out        io.Writer
	Errout     io.Writer
	Sentinel   string
	Transcript *Transcript
}

// NewChat returns a Chat with an empty transcript and the default
// sentinel.
func NewChat(c client.ChatClient, in io.Reader, out, errout io.Writer) *Chat {
	return &Chat{
		Client:     c,
		In:         NewReader(in),
		Out:        out,
		Errout:     errout,
		Sentinel:   DefaultSentinel,
		Transcript: NewTranscript(),
	}
}

// Run loops until the sentinel is entered, input ends, or a fatal error
// occurs.  Malformed responses are reported on Errout and the loop
// continues; any other error is returned.
func (c *Chat) Run(ctx context.Context) (err error) {
	for {
		var done bool
		done, err = c.Step(ctx)
		if err != nil || done {
			return
		}
	}
}

// Step runs a single exchange.  It returns done when the conversation
// is over.
func (c *Chat) Step(ctx context.Context) (done bool, err error) {
	Fpf(c.Out, "\n\tTo end the conversation, type %q\n", c.Sentinel)
	Fpf(c.Out, "User: \n")

	line, err := c.In.ReadLine()
	if errors.Is(err, io.EOF) {
		Debug("end of input")
		return true, nil
	}
	if err != nil {
		return
	}
	if IsSentinel(line, c.Sentinel) {
		Debug("sentinel %q seen", line)
		return true, nil
	}

	// the prompt is only committed once the exchange succeeds, so the
	// transcript always alternates user/model
	prompt := client.Turn{Role: client.RoleUser, Text: line}
	turns := append(c.Transcript.Turns(), prompt)

	tc, terr := TranscriptTokenCount(turns)
	if terr == nil {
		Debug("sending %d turns, about %d tokens", len(turns), tc)
	} else {
		Debug("token count: %v", terr)
	}

	reply, err := c.Client.CompleteChat(ctx, turns)
	if err != nil {
		var mre *client.MalformedResponseError
		if errors.As(err, &mre) {
			Fpf(c.Errout, "error: %v\n", err)
			return false, nil
		}
		return
	}

	c.Transcript.Append(prompt, client.Turn{Role: client.RoleModel, Text: reply})
	Fpf(c.Out, "%s\n", reply)
	return
}
