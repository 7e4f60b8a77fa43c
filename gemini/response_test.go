package gemini

import (
	"errors"
	"strings"
	"testing"

	"github.com/stevegt/gemchat/client"
	. "github.com/stevegt/goadapt"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "object with two parts",
			body: `{"candidates":[{"content":{"parts":[{"text":"a"},{"text":"b"}]}}]}`,
			want: "ab",
		},
		{
			name: "array of objects",
			body: `[{"candidates":[{"content":{"parts":[{"text":"x"}]}}]},{"candidates":[{"content":{"parts":[{"text":"y"}]}}]}]`,
			want: "xy",
		},
		{
			name: "only the first candidate is used",
			body: `{"candidates":[{"content":{"parts":[{"text":"first"}]}},{"content":{"parts":[{"text":"second"}]}}]}`,
			want: "first",
		},
		{
			name: "missing and non-string text count as empty",
			body: `{"candidates":[{"content":{"parts":[{"text":"a"},{"inlineData":{}},{"text":42},{"text":null},"junk",{"text":"b"}]}}]}`,
			want: "ab",
		},
		{
			name: "empty parts",
			body: `{"candidates":[{"content":{"parts":[]}}]}`,
			want: "",
		},
		{
			name: "array element without candidates is skipped",
			body: `[{"usageMetadata":{}},{"candidates":[{"content":{"parts":[{"text":"z"}]}}]}]`,
			want: "z",
		},
		{
			name: "surrounding whitespace",
			body: "\n  {\"candidates\":[{\"content\":{\"role\":\"model\",\"parts\":[{\"text\":\"ok\"}]}}]}\n",
			want: "ok",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractText([]byte(tc.body))
			Tassert(t, err == nil, "unexpected error: %v", err)
			Tassert(t, got == tc.want, "got %q, want %q", got, tc.want)
		})
	}
}

func TestExtractTextMalformed(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		reason  string
		code    int
		message string
	}{
		{
			name:    "quota error object",
			body:    `{"error":{"code":429,"message":"quota"}}`,
			reason:  "missing candidates",
			code:    429,
			message: "quota",
		},
		{
			name:    "error object with status only",
			body:    `{"error":{"code":403,"status":"PERMISSION_DENIED"}}`,
			reason:  "missing candidates",
			code:    403,
			message: "PERMISSION_DENIED",
		},
		{name: "null candidates", body: `{"candidates":null}`, reason: "missing candidates"},
		{name: "empty candidates", body: `{"candidates":[]}`, reason: "no candidates"},
		{name: "candidates not an array", body: `{"candidates":{}}`, reason: "candidates is not an array"},
		{name: "missing content", body: `{"candidates":[{"index":0}]}`, reason: "has no content"},
		{name: "blocked candidate", body: `{"candidates":[{"finishReason":"SAFETY"}]}`, reason: "finish reason SAFETY"},
		{name: "missing parts", body: `{"candidates":[{"content":{"role":"model"}}]}`, reason: "has no parts"},
		{name: "parts not an array", body: `{"candidates":[{"content":{"parts":"text"}}]}`, reason: "parts is not an array"},
		{name: "empty body", body: "", reason: "empty response body"},
		{name: "null body", body: "null", reason: "neither a JSON object nor an array"},
		{name: "html page", body: "<html>bad gateway</html>", reason: "neither a JSON object nor an array"},
		{name: "truncated object", body: `{"candidates":[`, reason: "not a JSON object"},
		{name: "empty array", body: `[]`, reason: "empty response array"},
		{
			name:    "array of errors",
			body:    `[{"error":{"code":500,"message":"internal"}}]`,
			reason:  "missing candidates",
			code:    500,
			message: "internal",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractText([]byte(tc.body))
			Tassert(t, err != nil, "expected an error, got %q", got)
			var mre *client.MalformedResponseError
			Tassert(t, errors.As(err, &mre), "expected MalformedResponseError, got %T: %v", err, err)
			Tassert(t, strings.Contains(mre.Reason, tc.reason), "reason %q does not contain %q", mre.Reason, tc.reason)
			Tassert(t, mre.Code == tc.code, "code %d, want %d", mre.Code, tc.code)
			Tassert(t, mre.Message == tc.message, "message %q, want %q", mre.Message, tc.message)
		})
	}
}

func TestMalformedResponseErrorMessage(t *testing.T) {
	_, err := ExtractText([]byte(`{"error":{"code":429,"message":"quota"}}`))
	Tassert(t, err != nil, "expected an error")
	var mre *client.MalformedResponseError
	Tassert(t, errors.As(err, &mre), "expected MalformedResponseError, got %T", err)
	mre.StatusCode = 429
	want := "malformed response: missing candidates (HTTP 429): provider error 429: quota"
	Tassert(t, err.Error() == want, "got %q, want %q", err.Error(), want)
}
