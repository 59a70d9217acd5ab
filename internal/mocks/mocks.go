// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/stretchr/testify/mock"

	"todoctl/internal/domain"
)

// MockHTTPAdapter is a mock implementation of domain.HTTPAdapter.
type MockHTTPAdapter struct {
	mock.Mock
}

// NewMockHTTPAdapter creates a MockHTTPAdapter whose expectations are asserted on cleanup.
func NewMockHTTPAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHTTPAdapter {
	m := &MockHTTPAdapter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHTTPAdapter) Get(ctx context.Context, url string) (*http.Response, error) {
	args := m.Called(ctx, url)
	return responseArg(args, 0), args.Error(1)
}

func (m *MockHTTPAdapter) Post(ctx context.Context, url string, payload any) (*http.Response, error) {
	args := m.Called(ctx, url, payload)
	return responseArg(args, 0), args.Error(1)
}

func (m *MockHTTPAdapter) Delete(ctx context.Context, url string) (*http.Response, error) {
	args := m.Called(ctx, url)
	return responseArg(args, 0), args.Error(1)
}

func responseArg(args mock.Arguments, index int) *http.Response {
	if resp, ok := args.Get(index).(*http.Response); ok {
		return resp
	}
	return nil
}

// JSONResponse builds an *http.Response with the given status and body.
func JSONResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/hal+json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// MockTaskClient is a mock implementation of domain.TaskClient.
type MockTaskClient struct {
	mock.Mock
}

// NewMockTaskClient creates a MockTaskClient whose expectations are asserted on cleanup.
func NewMockTaskClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTaskClient {
	m := &MockTaskClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTaskClient) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskClient) CreateTask(ctx context.Context, text string) (domain.Task, error) {
	args := m.Called(ctx, text)
	task, _ := args.Get(0).(domain.Task)
	return task, args.Error(1)
}

func (m *MockTaskClient) DeleteTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// MockConfirmer is a mock implementation of domain.Confirmer.
type MockConfirmer struct {
	mock.Mock
}

// NewMockConfirmer creates a MockConfirmer whose expectations are asserted on cleanup.
func NewMockConfirmer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockConfirmer {
	m := &MockConfirmer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

func (m *MockConfirmer) IsInteractive() bool {
	args := m.Called()
	return args.Bool(0)
}
