// Package testutil provides test utilities and constructors with pre-injected dependencies.
package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"todoctl/internal/logging"
)

// TasksPath is the collection path served by TaskServer.
const TasksPath = "/tasks"

// Logger returns a test logger for use in tests.
func Logger() *slog.Logger {
	return logging.NewTestLogger()
}

// RecordedRequest is a request observed by TaskServer.
type RecordedRequest struct {
	Method string
	Path   string
	Body   string
}

// TaskServer is an in-memory HAL tasks API in the shape served by Spring Data REST.
type TaskServer struct {
	*httptest.Server

	mu       sync.Mutex
	tasks    []storedTask
	nextID   int
	requests []RecordedRequest
	status   int
}

type storedTask struct {
	id   int
	text string
}

// NewTaskServer starts a TaskServer seeded with the given task texts.
// The server is closed when the test finishes.
func NewTaskServer(t *testing.T, texts ...string) *TaskServer {
	t.Helper()

	ts := &TaskServer{nextID: 1}
	for _, text := range texts {
		ts.add(text)
	}

	ts.Server = httptest.NewServer(http.HandlerFunc(ts.handle))
	t.Cleanup(ts.Close)
	return ts
}

// Endpoint returns the absolute collection URL.
func (ts *TaskServer) Endpoint() string {
	return ts.URL + TasksPath
}

// FailWith makes every subsequent request answer with the given status. Zero restores normal behaviour.
func (ts *TaskServer) FailWith(status int) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.status = status
}

// Requests returns a copy of the requests seen so far.
func (ts *TaskServer) Requests() []RecordedRequest {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]RecordedRequest(nil), ts.requests...)
}

// Texts returns the texts of the stored tasks in order.
func (ts *TaskServer) Texts() []string {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	texts := make([]string, 0, len(ts.tasks))
	for _, task := range ts.tasks {
		texts = append(texts, task.text)
	}
	return texts
}

func (ts *TaskServer) add(text string) storedTask {
	task := storedTask{id: ts.nextID, text: text}
	ts.nextID++
	ts.tasks = append(ts.tasks, task)
	return task
}

func (ts *TaskServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.requests = append(ts.requests, RecordedRequest{Method: r.Method, Path: r.URL.Path, Body: string(body)})

	if ts.status != 0 {
		http.Error(w, fmt.Sprintf(`{"error":"%s"}`, http.StatusText(ts.status)), ts.status)
		return
	}

	switch {
	case r.URL.Path == TasksPath && r.Method == http.MethodGet:
		ts.writeCollection(w)
	case r.URL.Path == TasksPath && r.Method == http.MethodPost:
		var req struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(body, &req); err != nil || strings.TrimSpace(req.Text) == "" {
			http.Error(w, `{"error":"text must not be empty"}`, http.StatusBadRequest)
			return
		}
		task := ts.add(req.Text)
		w.Header().Set("Location", ts.href(task))
		writeJSON(w, http.StatusCreated, ts.representation(task))
	case strings.HasPrefix(r.URL.Path, TasksPath+"/") && r.Method == http.MethodDelete:
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, TasksPath+"/"))
		if err != nil || !ts.remove(id) {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (ts *TaskServer) remove(id int) bool {
	for i, task := range ts.tasks {
		if task.id == id {
			ts.tasks = append(ts.tasks[:i], ts.tasks[i+1:]...)
			return true
		}
	}
	return false
}

func (ts *TaskServer) href(task storedTask) string {
	return fmt.Sprintf("%s%s/%d", ts.URL, TasksPath, task.id)
}

func (ts *TaskServer) representation(task storedTask) map[string]any {
	return map[string]any{
		"text": task.text,
		"_links": map[string]any{
			"self": map[string]string{"href": ts.href(task)},
			"task": map[string]string{"href": ts.href(task)},
		},
	}
}

func (ts *TaskServer) writeCollection(w http.ResponseWriter) {
	embedded := make([]map[string]any, 0, len(ts.tasks))
	for _, task := range ts.tasks {
		embedded = append(embedded, ts.representation(task))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"_embedded": map[string]any{"tasks": embedded},
		"_links": map[string]any{
			"self": map[string]string{"href": ts.URL + TasksPath},
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/hal+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
