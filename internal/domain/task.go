package domain

import "context"

// TaskClient handles all task API operations.
type TaskClient interface {
	// ListTasks returns the tasks embedded in the collection resource, in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task with the given text and returns the server's representation.
	CreateTask(ctx context.Context, text string) (Task, error)

	// DeleteTask removes the task addressed by its self link.
	// The task must have been obtained from ListTasks or CreateTask.
	DeleteTask(ctx context.Context, task Task) error
}

// Task represents a to-do item as returned by the API.
type Task struct {
	Text  string `json:"text"   yaml:"text"`
	Links Links  `json:"_links" yaml:"links"`
}

// Links holds the HAL links of a task resource.
type Links struct {
	Self Link `json:"self" yaml:"self"`
}

// Link is a single HAL link.
type Link struct {
	Href string `json:"href" yaml:"href"`
}

// SelfHref returns the URL identifying this task resource.
func (t Task) SelfHref() string {
	return t.Links.Self.Href
}
