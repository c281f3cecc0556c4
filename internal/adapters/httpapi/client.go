package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fieldnotes/internal/api"
	"fieldnotes/internal/domain"
	"fieldnotes/internal/logging"
	"fieldnotes/internal/ports"
)

// Client talks to a fieldnotes API server
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ ports.DashboardAPI = (*Client)(nil)
	_ ports.SessionAPI   = (*Client)(nil)
)

// NewClient creates a client for the server at baseURL (e.g. http://127.0.0.1:7420)
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-2xx response decoded from the error envelope
type APIError struct {
	Code    string
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// GetSession fetches a session with its insights
func (c *Client) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	var dto api.SessionDTO
	if err := c.do(ctx, http.MethodGet, "/api/sessions/"+url.PathEscape(id), nil, &dto); err != nil {
		return nil, c.mapSessionError(id, err)
	}
	session, err := dto.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// UpdateSessionContent sends the provided fields and returns the stored record
func (c *Client) UpdateSessionContent(ctx context.Context, id string, content domain.SessionContent) (*domain.Session, error) {
	body := api.SessionContentBody{Notes: content.Notes, Transcript: content.Transcript}
	var dto api.SessionDTO
	if err := c.do(ctx, http.MethodPut, "/api/sessions/"+url.PathEscape(id), body, &dto); err != nil {
		return nil, c.mapSessionError(id, err)
	}
	session, err := dto.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// CreateInsight posts an insight for its session
func (c *Client) CreateInsight(ctx context.Context, insight domain.Insight) (*domain.Insight, error) {
	path := "/api/sessions/" + url.PathEscape(insight.SessionID) + "/insights"
	var dto api.InsightDTO
	if err := c.do(ctx, http.MethodPost, path, api.InsightToCreateBody(insight), &dto); err != nil {
		return nil, c.mapSessionError(insight.SessionID, err)
	}
	created, err := dto.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("decode insight: %w", err)
	}
	return &created, nil
}

// ListSessions returns the sessions of a project
func (c *Client) ListSessions(ctx context.Context, projectID string) ([]domain.Session, error) {
	var dtos []api.SessionDTO
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(projectID)+"/sessions", nil, &dtos); err != nil {
		return nil, c.mapProjectError(projectID, err)
	}

	sessions := make([]domain.Session, 0, len(dtos))
	for _, dto := range dtos {
		session, err := dto.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// GetDashboard fetches the aggregates for a project
func (c *Client) GetDashboard(ctx context.Context, projectID string) (*domain.Dashboard, error) {
	var dto api.DashboardDTO
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(projectID)+"/dashboard", nil, &dto); err != nil {
		return nil, c.mapProjectError(projectID, err)
	}
	dashboard := dto.ToDomain()
	return &dashboard, nil
}

func (c *Client) mapSessionError(id string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	return err
}

func (c *Client) mapProjectError(id string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return fmt.Errorf("project %s: %w", id, domain.ErrProjectNotFound)
	}
	return err
}

// do sends body as JSON and decodes a 2xx response into out
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logging.Logger.Error("API request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	logging.Logger.Debug("API request", "method", method, "path", path, "status", resp.StatusCode, "dur", time.Since(start).String())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Code: api.ErrInternal, Message: resp.Status}
		var env api.ErrorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error.Code != "" {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
