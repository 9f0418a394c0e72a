package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"chonapi/internal/model"
)

// GatewayClient forwards submissions to a remote archive over HTTP.
// Calls are not retried; a failed save surfaces to the handler and the
// respondent's answers stay intact for another attempt.
type GatewayClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGatewayClient creates a client against the given base URL
func NewGatewayClient(baseURL string) *GatewayClient {
	return &GatewayClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *GatewayClient) doRequest(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}
	if resp.StatusCode >= 400 {
		log.Printf("[gateway] %s %s returned %d: %s", method, path, resp.StatusCode, string(respBody))
		return fmt.Errorf("gateway error %d", resp.StatusCode)
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse gateway response: %w", err)
		}
	}
	return nil
}

func (c *GatewayClient) HasSubmission(ctx context.Context, respondentID string) (bool, error) {
	var result struct {
		Exists bool `json:"exists"`
	}
	path := "/submissions/exists?respondentId=" + respondentID
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return false, err
	}
	return result.Exists, nil
}

func (c *GatewayClient) SaveAnswers(ctx context.Context, submission *model.Submission) error {
	payload, err := json.Marshal(submission)
	if err != nil {
		return err
	}
	return c.doRequest(ctx, http.MethodPost, "/submissions", bytes.NewReader(payload), nil)
}

func (c *GatewayClient) CreateAccount(ctx context.Context, account *model.Account) error {
	// The hash is json:"-" on the model; the archive still needs it to
	// serve logins, so it rides in an explicit field here.
	payload, err := json.Marshal(struct {
		model.Account
		PasswordHash string `json:"passwordHash"`
	}{Account: *account, PasswordHash: account.PasswordHash})
	if err != nil {
		return err
	}
	return c.doRequest(ctx, http.MethodPost, "/accounts", bytes.NewReader(payload), nil)
}

func (c *GatewayClient) GetSubmission(ctx context.Context, respondentID string) (*model.Submission, error) {
	var submission model.Submission
	path := "/submissions?respondentId=" + respondentID
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}
