// Package gemini is a ChatClient for Google's Gemini generateContent
// API.
package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stevegt/gemchat/client"
	. "github.com/stevegt/goadapt"
)

const (
	// DefaultEndpoint is the API base URL, including the API version.
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel    = "gemini-pro"
	DefaultTimeout  = 60 * time.Second
)

// Client encapsulates the API client for Gemini.
// This client implements the ChatClient interface (as defined in the
// client package).
type Client struct {
	APIKey     string
	Endpoint   string
	Model      string
	HTTPClient *http.Client
}

// NewClient creates a new Gemini chat client for the given key and
// model.  An empty model selects DefaultModel.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		APIKey:     apiKey,
		Endpoint:   DefaultEndpoint,
		Model:      model,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// URL returns the generateContent URL, including the API key.
func (c *Client) URL() string {
	return c.url(c.APIKey)
}

// redactedURL is URL with the key replaced, for logs and errors.
func (c *Client) redactedURL() string {
	return c.url("REDACTED")
}

func (c *Client) url(key string) string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.Endpoint, "/"), c.Model, url.QueryEscape(key))
}

// CompleteChat sends the conversation to generateContent and returns the
// generated text.  Exactly one request is made; there is no retry.
// This method conforms to the ChatClient interface.
func (c *Client) CompleteChat(ctx context.Context, turns []client.Turn) (text string, err error) {
	payload, err := NewRequest(turns).Marshal()
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(payload))
	if err != nil {
		return "", c.networkError("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	Debug("POST %s (%d turns, %d bytes)", c.redactedURL(), len(turns), len(payload))

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", c.networkError("POST", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", c.networkError("read response", err)
	}
	Debug("response status %d, %d bytes", resp.StatusCode, len(body))

	// error replies are JSON too, so the body is always parsed and the
	// status only decorates the error
	text, err = ExtractText(body)
	if err != nil {
		var mre *client.MalformedResponseError
		if errors.As(err, &mre) && (resp.StatusCode < 200 || resp.StatusCode > 299) {
			mre.StatusCode = resp.StatusCode
		}
		return "", err
	}
	return text, nil
}

// networkError wraps err, scrubbing the API key out of any URL it
// carries.
func (c *Client) networkError(op string, err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = c.redactedURL()
	}
	return &client.NetworkError{Op: op, Endpoint: c.redactedURL(), Err: err}
}

// Assert that Client implements client.ChatClient.
var _ client.ChatClient = (*Client)(nil)
