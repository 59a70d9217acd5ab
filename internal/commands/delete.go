package commands

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"todoctl/internal/domain"
	apperrors "todoctl/internal/errors"
)

// DeleteCommand handles deleting tasks selected from the current listing.
type DeleteCommand struct {
	taskClient domain.TaskClient
	confirmer  domain.Confirmer
	logger     *slog.Logger
}

// NewDeleteCommand creates a new delete command.
func NewDeleteCommand(taskClient domain.TaskClient, confirmer domain.Confirmer, logger *slog.Logger) *DeleteCommand {
	return &DeleteCommand{
		taskClient: taskClient,
		confirmer:  confirmer,
		logger:     logger,
	}
}

// DeleteRequest contains the parameters for the delete command.
// Exactly one of Positions or Text selects the tasks.
type DeleteRequest struct {
	Positions []int  // 1-based positions as shown by list
	Text      string // delete every task whose text matches exactly
	Yes       bool   // skip confirmation
}

// DeleteResult contains the outcome of the delete command.
type DeleteResult struct {
	Selected []domain.Task
	Deleted  []domain.Task
	Aborted  bool
}

// Execute runs the delete command.
func (c *DeleteCommand) Execute(ctx context.Context, req DeleteRequest) (*DeleteResult, error) {
	switch {
	case len(req.Positions) == 0 && req.Text == "":
		return nil, apperrors.NewValidationError("", "", "required", "either positions or text must be specified")
	case len(req.Positions) > 0 && req.Text != "":
		return nil, apperrors.NewValidationError("", "", "exclusive", "only one of positions or text can be specified")
	}

	// Tasks are addressed through the self links of a fresh listing.
	tasks, err := c.taskClient.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	selected, err := selectTasks(tasks, req)
	if err != nil {
		return nil, err
	}

	result := &DeleteResult{Selected: selected}

	if !req.Yes {
		if !c.confirmer.IsInteractive() {
			return nil, apperrors.NewValidationError("yes", "false", "confirmation",
				"refusing to delete without confirmation in a non-interactive session; pass --yes")
		}

		ok, confirmErr := c.confirmer.Confirm(ctx, fmt.Sprintf("Delete %d task(s)?", len(selected)))
		if confirmErr != nil {
			return nil, fmt.Errorf("failed to confirm deletion: %w", confirmErr)
		}
		if !ok {
			c.logger.InfoContext(ctx, "Deletion aborted by user", "count", len(selected))
			result.Aborted = true
			return result, nil
		}
	}

	var errs []error
	for _, task := range selected {
		if deleteErr := c.taskClient.DeleteTask(ctx, task); deleteErr != nil {
			c.logger.ErrorContext(ctx, "Failed to delete task", "href", task.SelfHref(), "error", deleteErr)
			errs = append(errs, fmt.Errorf("task %q: %w", task.Text, deleteErr))
			continue
		}
		result.Deleted = append(result.Deleted, task)
	}

	if err := apperrors.Join(errs...); err != nil {
		return result, fmt.Errorf("failed to delete %d of %d tasks: %w", len(errs), len(selected), err)
	}

	c.logger.InfoContext(ctx, "Successfully deleted tasks", "count", len(result.Deleted))
	return result, nil
}

// selectTasks picks the tasks addressed by req, keeping listing order.
func selectTasks(tasks []domain.Task, req DeleteRequest) ([]domain.Task, error) {
	if req.Text != "" {
		var matches []domain.Task
		for _, task := range tasks {
			if task.Text == req.Text {
				matches = append(matches, task)
			}
		}
		if len(matches) == 0 {
			return nil, apperrors.NewValidationError("text", req.Text, "exists", fmt.Sprintf("no task with text %q", req.Text))
		}
		return matches, nil
	}

	positions := slices.Clone(req.Positions)
	slices.Sort(positions)
	positions = slices.Compact(positions)

	selected := make([]domain.Task, 0, len(positions))
	for _, pos := range positions {
		if pos < 1 || pos > len(tasks) {
			return nil, apperrors.NewValidationError("position", strconv.Itoa(pos), "range",
				fmt.Sprintf("position %d is out of range (1-%d)", pos, len(tasks)))
		}
		selected = append(selected, tasks[pos-1])
	}
	return selected, nil
}
