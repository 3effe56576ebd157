package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/rmarchan/tablero/pkg/domain/tracking"
)

// MirrorClient fetches work items from the read-only mirror endpoint. The
// mirror is a plain HTTPS GET that returns the flat item list as JSON,
// either bare or wrapped in an items envelope.
type MirrorClient struct {
	cfg        MirrorConfig
	httpClient *http.Client
	retryCfg   retry.Config
}

func NewMirrorClient(cfg MirrorConfig) *MirrorClient {
	return &MirrorClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		retryCfg: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  500 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

func (c *MirrorClient) Name() string { return "mirror" }

// FetchWorkItems GETs the mirror endpoint, retrying transient failures.
func (c *MirrorClient) FetchWorkItems(ctx context.Context) ([]tracking.WorkItem, error) {
	retryer := retry.New[[]tracking.WorkItem](c.retryCfg)

	return retryer.Do(ctx, func(ctx context.Context) ([]tracking.WorkItem, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build mirror request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.cfg.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("mirror request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, fmt.Errorf("mirror returned %d: %s", resp.StatusCode, string(body))
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read mirror response: %w", err)
		}

		return decodeItems(data)
	})
}

// decodeItems accepts both response shapes the mirror has used: a bare
// array of items and an object with an items field.
func decodeItems(data []byte) ([]tracking.WorkItem, error) {
	var items []tracking.WorkItem
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var envelope struct {
		Items []tracking.WorkItem `json:"items"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode mirror response: %w", err)
	}
	return envelope.Items, nil
}
