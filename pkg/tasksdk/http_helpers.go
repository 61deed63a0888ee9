package tasksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doRequest sends a request. An empty token sends no Authorization header.
func (c *Client) doRequest(
	ctx context.Context,
	method, path, token string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// doJSON marshals in (when non-nil), sends it and decodes the envelope data
// into a T when the response status matches expectedStatus.
func doJSON[T any](
	ctx context.Context,
	c *Client,
	method, path, token string,
	in any,
	expectedStatus int,
) (T, error) {
	var (
		zero    T
		body    io.Reader
		headers map[string]string
	)

	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return zero, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
		headers = map[string]string{"Content-Type": "application/json"}
	}

	resp, err := c.doRequest(ctx, method, path, token, body, headers)
	if err != nil {
		return zero, err
	}

	return decodeEnvelope[T](resp, expectedStatus)
}

// decodeEnvelope reads the response body and returns the envelope data, or an
// *APIError when the status is not the expected one.
func decodeEnvelope[T any](resp *http.Response, expectedStatus int) (T, error) {
	defer resp.Body.Close()

	var zero T

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return zero, parseErrorResponse(resp, bodyBytes)
	}

	var env Response[T]
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}

	return env.Data, nil
}
