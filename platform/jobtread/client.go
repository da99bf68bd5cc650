// Package jobtread provides a client for the JobTread GraphQL API.
// Each call performs exactly one round trip with the caller's grant key
// attached as a bearer credential. There are no retries, no caching and
// no batching; failures are mapped onto the apperr taxonomy so callers
// can distinguish credential problems from upstream ones.
package jobtread

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sidebar_backend/platform/apperr"
)

// Client is an HTTP client for the JobTread GraphQL API.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// Config configures the JobTread API client.
type Config struct {
	APIURL  string
	Timeout time.Duration
}

// NewClient creates a new JobTread API client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Request is a GraphQL request body.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Query executes a GraphQL query under the given grant key and decodes
// the response's data payload into out. A nil out discards the payload.
func (c *Client) Query(ctx context.Context, grantKey string, req Request, out any) error {
	body, err := c.roundTrip(ctx, grantKey, req)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apperr.MalformedResponse("failed to decode JobTread response", err)
	}

	if len(env.Errors) > 0 {
		messages := make([]string, 0, len(env.Errors))
		for _, gqlErr := range env.Errors {
			messages = append(messages, gqlErr.Message)
		}
		return apperr.UpstreamRejected("GraphQL error: "+strings.Join(messages, ", "), http.StatusOK)
	}

	if env.Data == nil {
		return apperr.MalformedResponse("no data returned from JobTread API", nil)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperr.MalformedResponse("unexpected JobTread response shape", err)
	}
	return nil
}

// Forward executes an arbitrary GraphQL request body and returns the raw
// response body unchanged. GraphQL error payloads are passed through to the
// caller; only transport and HTTP-level failures are mapped.
func (c *Client) Forward(ctx context.Context, grantKey string, body json.RawMessage) (json.RawMessage, error) {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, apperr.BadRequest("request body must be a GraphQL query")
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, apperr.Validation("query is required")
	}
	return c.roundTrip(ctx, grantKey, req)
}

func (c *Client) roundTrip(ctx context.Context, grantKey string, req Request) (json.RawMessage, error) {
	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to marshal JobTread request", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create JobTread request", err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+grantKey)

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return nil, apperr.UpstreamUnavailable("failed to communicate with JobTread API", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apperr.Unauthorized("JobTread rejected the credential").WithStatus(resp.StatusCode)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, apperr.UpstreamRejected(fmt.Sprintf("JobTread API returned %d", resp.StatusCode), resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.MalformedResponse("failed to read JobTread response", err)
	}
	return body, nil
}
