// Package apify wraps the two platform calls the pipeline depends on:
// starting an actor run and draining its default dataset.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"apify-workers/internal/common/config"
)

// Run is the handle returned by a started actor run.
type Run struct {
	ID               string `json:"id"`
	ActorID          string `json:"actId"`
	Status           string `json:"status"`
	DefaultDatasetID string `json:"defaultDatasetId"`
}

// Client is the platform contract consumed by the adapters. The token is
// passed per call so an externally supplied bearer can override the
// process-wide one.
type Client interface {
	RunActor(ctx context.Context, token, actorID string, input map[string]interface{}) (*Run, error)
	DatasetItems(ctx context.Context, token, datasetID string) ([]map[string]interface{}, error)
}

// HTTPClient talks to the Apify REST API.
type HTTPClient struct {
	baseURL       string
	waitForFinish int
	httpClient    *http.Client
}

func NewClient(cfg config.ApifyConfig) *HTTPClient {
	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &HTTPClient{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		waitForFinish: cfg.WaitForFinish,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// RunActor starts a run and waits for it to finish. A rejected start
// (bad token, unknown actor) yields a nil run with a nil error so callers
// can distinguish it from a transport failure.
func (c *HTTPClient) RunActor(ctx context.Context, token, actorID string, input map[string]interface{}) (*Run, error) {
	// Path form of a qualified actor id uses "~" instead of "/".
	url := fmt.Sprintf("%s/v2/acts/%s/runs?waitForFinish=%d",
		c.baseURL, strings.ReplaceAll(actorID, "/", "~"), c.waitForFinish)

	jsonData, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		// Platform rejected the start; not a transport error.
		return nil, nil
	default:
		return nil, fmt.Errorf("failed to start run (status %d): %s", resp.StatusCode, string(body))
	}

	var runResp struct {
		Data Run `json:"data"`
	}
	if err := json.Unmarshal(body, &runResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run response: %w", err)
	}

	if runResp.Data.ID == "" {
		return nil, nil
	}

	return &runResp.Data, nil
}

// DatasetItems drains the full dataset into memory. The actor itself
// enforces the requested item cap, so no pagination happens here.
func (c *HTTPClient) DatasetItems(ctx context.Context, token, datasetID string) ([]map[string]interface{}, error) {
	url := fmt.Sprintf("%s/v2/datasets/%s/items?format=json&clean=true", c.baseURL, datasetID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch dataset items (status %d): %s", resp.StatusCode, string(body))
	}

	var items []map[string]interface{}
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset items: %w", err)
	}

	return items, nil
}
