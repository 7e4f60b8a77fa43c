package core

import (
	"testing"

	"github.com/stevegt/gemchat/client"
	. "github.com/stevegt/goadapt"
)

func TestTokenCount(t *testing.T) {
	count, err := TokenCount("token count test")
	Tassert(t, err == nil, "TokenCount: %v", err)
	Tassert(t, count == 3, "expected 3 tokens, got %d", count)

	turns := []client.Turn{
		{Role: client.RoleUser, Text: "token count test"},
		{Role: client.RoleModel, Text: "token count test"},
	}
	count, err = TranscriptTokenCount(turns)
	Tassert(t, err == nil, "TranscriptTokenCount: %v", err)
	Tassert(t, count == 6, "expected 6 tokens, got %d", count)
}
