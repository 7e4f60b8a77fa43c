package gemini

import (
	"encoding/json"
	"testing"

	"github.com/stevegt/gemchat/client"
	. "github.com/stevegt/goadapt"
)

func TestNewRequestPreservesOrder(t *testing.T) {
	turns := []client.Turn{
		{Role: client.RoleUser, Text: "one"},
		{Role: client.RoleModel, Text: "two"},
		{Role: client.RoleUser, Text: "three"},
	}
	req := NewRequest(turns)
	Tassert(t, len(req.Contents) == len(turns), "expected %d contents, got %d", len(turns), len(req.Contents))
	for i, turn := range turns {
		c := req.Contents[i]
		Tassert(t, c.Role == turn.Role, "content %d: role %q, want %q", i, c.Role, turn.Role)
		Tassert(t, len(c.Parts) == 1, "content %d: %d parts", i, len(c.Parts))
		Tassert(t, c.Parts[0].Text == turn.Text, "content %d: text %q, want %q", i, c.Parts[0].Text, turn.Text)
	}
}

func TestRequestMarshal(t *testing.T) {
	buf, err := NewRequest([]client.Turn{
		{Role: client.RoleUser, Text: "hi"},
		{Role: client.RoleModel, Text: "hello"},
	}).Marshal()
	Tassert(t, err == nil, "marshal: %v", err)
	want := `{"contents":[{"role":"user","parts":[{"text":"hi"}]},{"role":"model","parts":[{"text":"hello"}]}]}`
	Tassert(t, string(buf) == want, "got %s\nwant %s", buf, want)

	// an empty conversation is an empty array, not null
	buf, err = NewRequest(nil).Marshal()
	Tassert(t, err == nil, "marshal: %v", err)
	Tassert(t, string(buf) == `{"contents":[]}`, "got %s", buf)
}

// Encoding a conversation and feeding the encoded contents back as
// candidates recovers the same text.
func TestRequestResponseRoundTrip(t *testing.T) {
	turns := []client.Turn{
		{Role: client.RoleUser, Text: "hi"},
		{Role: client.RoleModel, Text: "hello"},
	}
	buf, err := NewRequest(turns).Marshal()
	Tassert(t, err == nil, "marshal: %v", err)

	var decoded struct {
		Contents []json.RawMessage `json:"contents"`
	}
	err = json.Unmarshal(buf, &decoded)
	Tassert(t, err == nil, "unmarshal: %v", err)

	for i, content := range decoded.Contents {
		resp := []byte(`{"candidates":[{"content":` + string(content) + `}]}`)
		text, err := ExtractText(resp)
		Tassert(t, err == nil, "extract %d: %v", i, err)
		Tassert(t, text == turns[i].Text, "extract %d: got %q, want %q", i, text, turns[i].Text)
	}
}
