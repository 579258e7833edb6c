package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wiralabs/client-console/internal/models"
)

// baseClient holds what every repository client needs to talk to the remote
// backend. Requests are single round trips; nothing here retries.
type baseClient struct {
	baseURL string
	session Session
	client  *http.Client
}

func newBaseClient(baseURL string, session Session, timeout time.Duration) baseClient {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return baseClient{
		baseURL: baseURL,
		session: session,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (b *baseClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	b.session.apply(req)
	return req, nil
}

func (b *baseClient) doJSON(ctx context.Context, method, path string, payload interface{}) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := b.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, &models.TransportError{Op: method + " " + path, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &models.TransportError{Op: method + " " + path, Err: err}
	}
	return resp, nil
}

// backendErrorBody is the structured error shape the backend uses.
type backendErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errorFromResponse maps a non-2xx response onto the error taxonomy. The
// caller owns resp.Body.
func errorFromResponse(resp *http.Response, op, resource, id string) error {
	body, _ := io.ReadAll(resp.Body)

	var structured backendErrorBody
	msg := ""
	if err := json.Unmarshal(body, &structured); err == nil {
		if structured.Error != "" {
			msg = structured.Error
		} else if structured.Message != "" {
			msg = structured.Message
		}
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return &models.NotFoundError{Resource: resource, ID: id}
	case http.StatusConflict:
		return &models.ConflictError{Message: msg}
	}

	if msg != "" {
		return &models.BackendError{StatusCode: resp.StatusCode, Message: msg}
	}

	return &models.TransportError{
		Op:  op,
		Err: fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(body)),
	}
}

func is2xx(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
