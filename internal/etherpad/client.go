// Package etherpad implements a thin client for the HTTP API of an
// Etherpad-compatible collaborative editing service. Every call sends the
// API key and named arguments as a query string and decodes the
// {code, message, data} envelope; a non zero code is returned as *APIError.
// The client performs no retries.
package etherpad

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// apiVersion is the Etherpad HTTP API version the client speaks.
	apiVersion = "1.2.13"

	defaultTimeout = 30 * time.Second
)

// Config holds the settings needed to reach the editing service.
type Config struct {
	// APIURL is the base URL of the HTTP API.
	APIURL string
	// PublicURL is the browser facing base URL used for iframe URLs.
	PublicURL string
	// APIKey authenticates every API call.
	APIKey string
	// Timeout bounds a single API call.
	Timeout time.Duration
}

// Client issues calls against the editing service API.
type Client struct {
	apiURL    string
	publicURL string
	apiKey    string
	http      *http.Client
}

// New creates a new editing service client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = cfg.APIURL
	}

	return &Client{
		apiURL:    strings.TrimRight(cfg.APIURL, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
		apiKey:    cfg.APIKey,
		http:      &http.Client{Timeout: timeout},
	}
}

// envelope is the response wrapper every API function returns.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// call performs one API function call and decodes data into out when given.
func (c *Client) call(ctx context.Context, function string, args url.Values, out interface{}) error {
	if c == nil || c.http == nil {
		return ErrClientNotInitialized
	}

	if args == nil {
		args = url.Values{}
	}

	args.Set("apikey", c.apiKey)

	endpoint := fmt.Sprintf("%s/api/%s/%s?%s", c.apiURL, apiVersion, function, args.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &APIError{Function: function, Code: -1, Message: err.Error()}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Function: function, Code: -1, Message: err.Error()}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return &APIError{Function: function, Code: -1, Message: "unexpected status " + resp.Status}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{Function: function, Code: -1, Message: "invalid response envelope: " + err.Error()}
	}

	if env.Code != 0 {
		return &APIError{Function: function, Code: env.Code, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Function: function, Code: -1, Message: "invalid response data: " + err.Error()}
		}
	}

	return nil
}

// CreateGroupIfNotExistsFor maps the given mapper token to a group,
// creating the group on first use. The mapping is idempotent.
func (c *Client) CreateGroupIfNotExistsFor(ctx context.Context, groupMapper string) (string, error) {
	var data struct {
		GroupID string `json:"groupID"`
	}

	args := url.Values{}
	args.Set("groupMapper", groupMapper)

	if err := c.call(ctx, "createGroupIfNotExistsFor", args, &data); err != nil {
		return "", err
	}

	return data.GroupID, nil
}

// CreateGroupPad creates a new pad inside the given group.
func (c *Client) CreateGroupPad(ctx context.Context, groupID, padName string) (string, error) {
	var data struct {
		PadID string `json:"padID"`
	}

	args := url.Values{}
	args.Set("groupID", groupID)
	args.Set("padName", padName)

	if err := c.call(ctx, "createGroupPad", args, &data); err != nil {
		return "", err
	}

	return data.PadID, nil
}

// GetHTML fetches the rendered HTML content of a pad.
func (c *Client) GetHTML(ctx context.Context, padID string) (string, error) {
	var data struct {
		HTML string `json:"html"`
	}

	args := url.Values{}
	args.Set("padID", padID)

	if err := c.call(ctx, "getHTML", args, &data); err != nil {
		return "", err
	}

	return data.HTML, nil
}

// SetHTML replaces the full content of a pad with the given HTML.
func (c *Client) SetHTML(ctx context.Context, padID, html string) error {
	args := url.Values{}
	args.Set("padID", padID)
	args.Set("html", html)

	return c.call(ctx, "setHTML", args, nil)
}

// CreateAuthorIfNotExistsFor maps the given author mapper to an author,
// creating the author on first use. The mapping is idempotent.
func (c *Client) CreateAuthorIfNotExistsFor(ctx context.Context, authorName, authorMapper string) (string, error) {
	var data struct {
		AuthorID string `json:"authorID"`
	}

	args := url.Values{}
	args.Set("name", authorName)
	args.Set("authorMapper", authorMapper)

	if err := c.call(ctx, "createAuthorIfNotExistsFor", args, &data); err != nil {
		return "", err
	}

	return data.AuthorID, nil
}

// CreateSession opens an editing session for the author in the given group,
// valid until the given unix timestamp.
func (c *Client) CreateSession(ctx context.Context, groupID, authorID string, validUntil int64) (string, error) {
	var data struct {
		SessionID string `json:"sessionID"`
	}

	args := url.Values{}
	args.Set("groupID", groupID)
	args.Set("authorID", authorID)
	args.Set("validUntil", strconv.FormatInt(validUntil, 10))

	if err := c.call(ctx, "createSession", args, &data); err != nil {
		return "", err
	}

	return data.SessionID, nil
}

// ListAllPads enumerates every pad known to the editing service.
func (c *Client) ListAllPads(ctx context.Context) ([]string, error) {
	var data struct {
		PadIDs []string `json:"padIDs"`
	}

	if err := c.call(ctx, "listAllPads", nil, &data); err != nil {
		return nil, err
	}

	return data.PadIDs, nil
}

// DeletePad removes a pad and all of its content from the editing service.
func (c *Client) DeletePad(ctx context.Context, padID string) error {
	args := url.Values{}
	args.Set("padID", padID)

	return c.call(ctx, "deletePad", args, nil)
}

// PadURL builds the embeddable browser URL for a pad.
func (c *Client) PadURL(padID string) string {
	return c.publicURL + "/p/" + url.PathEscape(padID)
}
