// Package providers contains thin HTTP clients for the upstream content
// providers. Responses are pass-through payloads: the backend forwards query
// parameters and returns upstream JSON verbatim, classifying errors by HTTP
// status only.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Error describes a failed upstream call. Status carries the upstream HTTP
// status when one was received, and zero for transport-level failures.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Code, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// doGet performs a GET against baseURL+path with the given query parameters
// and returns the raw response body.
func doGet(ctx context.Context, client *http.Client, provider, baseURL, path string, params url.Values) (json.RawMessage, error) {
	u := strings.TrimRight(baseURL, "/") + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &Error{Code: provider + "_ERROR", Message: err.Error()}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{Code: provider + "_ERROR", Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Code: provider + "_ERROR", Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstreamError(provider, resp.StatusCode, body)
	}

	return json.RawMessage(body), nil
}

// upstreamError classifies a non-2xx upstream response, pulling the message
// out of the body when the provider sent one.
func upstreamError(provider string, status int, body []byte) *Error {
	message := fmt.Sprintf("%s API error", provider)
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		message = payload.Message
	}
	return &Error{
		Code:    fmt.Sprintf("%s_%d", provider, status),
		Message: message,
		Status:  status,
	}
}
