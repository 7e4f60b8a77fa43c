package gemini

import (
	"encoding/json"

	"github.com/stevegt/gemchat/client"
)

// Request defines the payload sent to generateContent.
type Request struct {
	Contents []Content `json:"contents"`
}

// Content holds one turn of the conversation.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// Part holds the text of a turn.
type Part struct {
	Text string `json:"text"`
}

// NewRequest renders the conversation into a Request, one Content per
// turn, in order.  The whole history is included every time; the API
// keeps no state between calls.
func NewRequest(turns []client.Turn) Request {
	req := Request{Contents: make([]Content, 0, len(turns))}
	for _, turn := range turns {
		req.Contents = append(req.Contents, Content{
			Role:  turn.Role,
			Parts: []Part{{Text: turn.Text}},
		})
	}
	return req
}

// Marshal encodes the request body.
func (r Request) Marshal() ([]byte, error) {
	buf, err := json.Marshal(r)
	if err != nil {
		return nil, &client.SerializationError{Err: err}
	}
	return buf, nil
}
