package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"todoctl/internal/domain"
	apperrors "todoctl/internal/errors"
)

// maxErrorBodyBytes bounds how much of a failed response body is kept in an HTTPError.
const maxErrorBodyBytes = 512

// Client handles all task API operations against a single collection endpoint.
type Client struct {
	endpoint    *url.URL
	httpAdapter domain.HTTPAdapter
	logger      *slog.Logger
}

// NewClient creates a new task client for the given collection endpoint,
// e.g. "https://todo.example.com/tasks".
func NewClient(endpoint string, httpAdapter domain.HTTPAdapter, logger *slog.Logger) (*Client, error) {
	parsed, err := parseAbsoluteURL(endpoint)
	if err != nil {
		return nil, apperrors.NewConfigurationError("endpoint", endpoint, err.Error(), err)
	}

	return &Client{
		endpoint:    parsed,
		httpAdapter: httpAdapter,
		logger:      logger,
	}, nil
}

// Endpoint returns the collection URL the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// ListTasks retrieves the tasks embedded in the collection resource.
func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	endpoint := c.endpoint.String()
	c.logger.DebugContext(ctx, "Fetching tasks", "endpoint", endpoint)

	resp, err := c.httpAdapter.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer resp.Body.Close()

	body, err := readResponse(resp, http.MethodGet, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := []domain.Task{}
	if len(body) > 0 {
		var collection collectionResponse
		if decodeErr := json.Unmarshal(body, &collection); decodeErr != nil {
			return nil, fmt.Errorf("failed to decode tasks response: %w", decodeErr)
		}
		if collection.Embedded.Tasks != nil {
			tasks = collection.Embedded.Tasks
		}
	}

	c.logger.InfoContext(ctx, "Successfully fetched tasks", "count", len(tasks))
	return tasks, nil
}

// CreateTask creates a task and returns the decoded resource.
// The text is sent as-is; the server is responsible for validating it.
func (c *Client) CreateTask(ctx context.Context, text string) (domain.Task, error) {
	endpoint := c.endpoint.String()
	c.logger.DebugContext(ctx, "Creating task", "endpoint", endpoint)

	resp, err := c.httpAdapter.Post(ctx, endpoint, createTaskRequest{Text: text})
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	defer resp.Body.Close()

	body, err := readResponse(resp, http.MethodPost, endpoint)
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	task := domain.Task{Text: text}
	if len(body) > 0 {
		if decodeErr := json.Unmarshal(body, &task); decodeErr != nil {
			return domain.Task{}, fmt.Errorf("failed to decode created task: %w", decodeErr)
		}
	}

	// Servers that skip the response body still announce the new resource.
	if task.SelfHref() == "" {
		task.Links.Self.Href = resp.Header.Get("Location")
	}
	if task.SelfHref() == "" {
		c.logger.WarnContext(ctx, "Created task has no self link", "endpoint", endpoint)
	}

	c.logger.InfoContext(ctx, "Successfully created task", "href", task.SelfHref())
	return task, nil
}

// DeleteTask removes the task identified by its self link. Relative links are
// resolved against the endpoint, so "/tasks/42" always targets path /tasks/42.
func (c *Client) DeleteTask(ctx context.Context, task domain.Task) error {
	target, err := c.resolveSelf(task)
	if err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "Deleting task", "href", target)

	resp, err := c.httpAdapter.Delete(ctx, target)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	defer resp.Body.Close()

	if _, err := readResponse(resp, http.MethodDelete, target); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	c.logger.InfoContext(ctx, "Successfully deleted task", "href", target)
	return nil
}

// resolveSelf turns the task's self href into an absolute URL.
func (c *Client) resolveSelf(task domain.Task) (string, error) {
	href := strings.TrimSpace(task.SelfHref())
	if href == "" {
		return "", apperrors.NewValidationError("href", "", "required", "task has no self link")
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", apperrors.NewValidationError("href", href, "url", fmt.Sprintf("invalid self link: %v", err))
	}

	resolved := c.endpoint.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", apperrors.NewValidationError("href", href, "scheme", "self link must use http or https")
	}

	return resolved.String(), nil
}

// readResponse drains the body and converts non-2xx statuses into an HTTPError.
func readResponse(resp *http.Response, method, target string) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewNetworkError(method, target, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apperrors.NewHTTPError(resp.StatusCode, method, target, truncate(string(bytes.TrimSpace(body))))
	}

	return bytes.TrimSpace(body), nil
}

func truncate(s string) string {
	if len(s) <= maxErrorBodyBytes {
		return s
	}
	return s[:maxErrorBodyBytes] + "..."
}

func parseAbsoluteURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("endpoint is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("endpoint must use http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("endpoint %q has no host", raw)
	}

	return parsed, nil
}

// collectionResponse represents the HAL collection returned by the tasks endpoint.
type collectionResponse struct {
	Embedded struct {
		Tasks []domain.Task `json:"tasks"`
	} `json:"_embedded"`
}

// createTaskRequest is the body sent when creating a task.
type createTaskRequest struct {
	Text string `json:"text"`
}
