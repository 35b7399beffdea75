package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bump-planner/core/constants"
)

// HTTPTaskSource pulls tasks from the main backend's task endpoint.
type HTTPTaskSource struct {
	url    string
	client *http.Client
}

func NewHTTPTaskSource(url string) *HTTPTaskSource {
	return &HTTPTaskSource{
		url: url,
		client: &http.Client{
			Timeout: constants.SyncHTTPTimeoutSeconds * time.Second,
		},
	}
}

type taskListResponse struct {
	Data []TaskRecord `json:"data"`
}

// ListTasks fetches the full task list. The endpoint wraps the list in a
// data envelope.
func (s *HTTPTaskSource) ListTasks(ctx context.Context) ([]TaskRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build task request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("task endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var payload taskListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode task response: %w", err)
	}
	return payload.Data, nil
}
