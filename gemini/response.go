package gemini

import (
	"bytes"
	"encoding/json"

	"github.com/stevegt/gemchat/client"
)

// The response structs keep every level as json.RawMessage so that an
// absent field can be told apart from an empty one.

type candidateResponse struct {
	Candidates json.RawMessage `json:"candidates"`
	Error      json.RawMessage `json:"error"`
}

type candidate struct {
	Content      json.RawMessage `json:"content"`
	FinishReason json.RawMessage `json:"finishReason"`
}

type candidateContent struct {
	Parts json.RawMessage `json:"parts"`
}

type part struct {
	Text json.RawMessage `json:"text"`
}

type providerError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ExtractText returns the generated text in a generateContent response
// body.  The body may be a single response object or an array of them;
// the text of every part of the first candidate of each object is
// concatenated in order.
func ExtractText(body []byte) (text string, err error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return "", &client.MalformedResponseError{Reason: "empty response body"}
	}

	switch body[0] {
	case '{':
		return extractCandidate(body)
	case '[':
		var responses []json.RawMessage
		err = json.Unmarshal(body, &responses)
		if err != nil {
			return "", &client.MalformedResponseError{Reason: "response is not valid JSON", Err: err}
		}
		// skip elements without candidates, but fail if none had any
		found := false
		var firstErr error
		for _, raw := range responses {
			txt, err := extractCandidate(raw)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			found = true
			text += txt
		}
		if !found {
			if firstErr != nil {
				return "", firstErr
			}
			return "", &client.MalformedResponseError{Reason: "empty response array"}
		}
		return text, nil
	default:
		return "", &client.MalformedResponseError{Reason: "response is neither a JSON object nor an array"}
	}
}

// extractCandidate walks candidates[0].content.parts of one response
// object, checking each level for presence.
func extractCandidate(raw json.RawMessage) (text string, err error) {
	var resp candidateResponse
	err = json.Unmarshal(raw, &resp)
	if err != nil {
		return "", &client.MalformedResponseError{Reason: "response is not a JSON object", Err: err}
	}
	if absent(resp.Candidates) {
		return "", withProviderError(&client.MalformedResponseError{Reason: "missing candidates"}, resp.Error)
	}

	var candidates []json.RawMessage
	err = json.Unmarshal(resp.Candidates, &candidates)
	if err != nil {
		return "", &client.MalformedResponseError{Reason: "candidates is not an array", Err: err}
	}
	if len(candidates) == 0 {
		return "", withProviderError(&client.MalformedResponseError{Reason: "no candidates"}, resp.Error)
	}

	var cand candidate
	err = json.Unmarshal(candidates[0], &cand)
	if err != nil {
		return "", &client.MalformedResponseError{Reason: "candidates[0] is not an object", Err: err}
	}
	if absent(cand.Content) {
		reason := "candidates[0] has no content"
		var finish string
		if json.Unmarshal(cand.FinishReason, &finish) == nil && finish != "" {
			reason += " (finish reason " + finish + ")"
		}
		return "", &client.MalformedResponseError{Reason: reason}
	}

	var content candidateContent
	err = json.Unmarshal(cand.Content, &content)
	if err != nil {
		return "", &client.MalformedResponseError{Reason: "candidates[0].content is not an object", Err: err}
	}
	if absent(content.Parts) {
		return "", &client.MalformedResponseError{Reason: "candidates[0].content has no parts"}
	}

	var parts []json.RawMessage
	err = json.Unmarshal(content.Parts, &parts)
	if err != nil {
		return "", &client.MalformedResponseError{Reason: "candidates[0].content.parts is not an array", Err: err}
	}
	for _, p := range parts {
		text += partText(p)
	}
	return text, nil
}

// partText returns the text field of a part, or "" if it is missing or
// not a string.
func partText(raw json.RawMessage) string {
	var p part
	if json.Unmarshal(raw, &p) != nil {
		return ""
	}
	var s string
	if json.Unmarshal(p.Text, &s) != nil {
		return ""
	}
	return s
}

// withProviderError copies code and message from the provider's error
// object, if the response carried one.
func withProviderError(e *client.MalformedResponseError, raw json.RawMessage) *client.MalformedResponseError {
	if absent(raw) {
		return e
	}
	var perr providerError
	if json.Unmarshal(raw, &perr) != nil {
		return e
	}
	e.Code = perr.Code
	e.Message = perr.Message
	if e.Message == "" {
		e.Message = perr.Status
	}
	return e
}

func absent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
