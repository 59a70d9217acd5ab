package commands

import (
	"context"
	"fmt"
	"log/slog"

	"todoctl/internal/domain"
)

// ListCommand handles listing tasks.
type ListCommand struct {
	taskClient domain.TaskClient
	logger     *slog.Logger
}

// NewListCommand creates a new list command.
func NewListCommand(taskClient domain.TaskClient, logger *slog.Logger) *ListCommand {
	return &ListCommand{
		taskClient: taskClient,
		logger:     logger,
	}
}

// ListRequest contains the parameters for the list command.
type ListRequest struct{}

// ListResult contains the result of the list command.
type ListResult struct {
	Tasks []domain.Task
	Count int
}

// Execute runs the list command.
func (c *ListCommand) Execute(ctx context.Context, _ ListRequest) (*ListResult, error) {
	c.logger.DebugContext(ctx, "Listing tasks")

	tasks, err := c.taskClient.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &ListResult{
		Tasks: tasks,
		Count: len(tasks),
	}, nil
}
