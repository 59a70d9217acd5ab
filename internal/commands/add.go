package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"todoctl/internal/domain"
	apperrors "todoctl/internal/errors"
)

// AddCommand handles creating new tasks.
type AddCommand struct {
	taskClient domain.TaskClient
	logger     *slog.Logger
}

// NewAddCommand creates a new add command.
func NewAddCommand(taskClient domain.TaskClient, logger *slog.Logger) *AddCommand {
	return &AddCommand{
		taskClient: taskClient,
		logger:     logger,
	}
}

// AddRequest contains the parameters for the add command.
type AddRequest struct {
	Text string
}

// AddResult contains the created task.
type AddResult struct {
	Task domain.Task
}

// Execute runs the add command.
func (c *AddCommand) Execute(ctx context.Context, req AddRequest) (*AddResult, error) {
	// The API rejects empty text with a 400; catch it before the round trip.
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.NewValidationError("text", req.Text, "not_empty", "task text must not be empty")
	}

	c.logger.InfoContext(ctx, "Adding new task", "text", req.Text)

	task, err := c.taskClient.CreateTask(ctx, req.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}

	return &AddResult{Task: task}, nil
}
