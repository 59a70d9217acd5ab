package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"todoctl/internal/domain"
	"todoctl/internal/mocks"
	"todoctl/internal/testutil"
)

func task(text, href string) domain.Task {
	return domain.Task{Text: text, Links: domain.Links{Self: domain.Link{Href: href}}}
}

func TestListCommand_Execute_NoTasks(t *testing.T) {
	// Arrange
	client := mocks.NewMockTaskClient(t)
	client.On("ListTasks", mock.Anything).Return([]domain.Task{}, nil)

	cmd := NewListCommand(client, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), ListRequest{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Tasks)
}

func TestListCommand_Execute_WithTasks(t *testing.T) {
	// Arrange
	client := mocks.NewMockTaskClient(t)
	expected := []domain.Task{
		task("buy milk", "http://api/tasks/1"),
		task("call mom", "http://api/tasks/2"),
	}
	client.On("ListTasks", mock.Anything).Return(expected, nil)

	cmd := NewListCommand(client, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), ListRequest{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, expected, result.Tasks)
}

func TestListCommand_Execute_ClientError(t *testing.T) {
	// Arrange
	client := mocks.NewMockTaskClient(t)
	expectedErr := errors.New("connection refused")
	client.On("ListTasks", mock.Anything).Return(nil, expectedErr)

	cmd := NewListCommand(client, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), ListRequest{})

	// Assert
	require.ErrorIs(t, err, expectedErr)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to list tasks")
}
