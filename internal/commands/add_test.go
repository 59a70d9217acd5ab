package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "todoctl/internal/errors"
	"todoctl/internal/mocks"
	"todoctl/internal/testutil"
)

func TestAddCommand_Execute_Success(t *testing.T) {
	// Arrange
	client := mocks.NewMockTaskClient(t)
	created := task("buy milk", "http://api/tasks/7")
	client.On("CreateTask", mock.Anything, "buy milk").Return(created, nil).Once()

	cmd := NewAddCommand(client, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), AddRequest{Text: "buy milk"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, created, result.Task)
}

func TestAddCommand_Execute_BlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		client := mocks.NewMockTaskClient(t)
		cmd := NewAddCommand(client, testutil.Logger())

		result, err := cmd.Execute(context.Background(), AddRequest{Text: text})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, apperrors.IsValidation(err))
		client.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
	}
}

func TestAddCommand_Execute_ServerError(t *testing.T) {
	// Arrange
	client := mocks.NewMockTaskClient(t)
	serverErr := apperrors.NewHTTPError(500, "POST", "http://api/tasks", "boom")
	client.On("CreateTask", mock.Anything, "buy milk").Return(nil, serverErr).Once()

	cmd := NewAddCommand(client, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), AddRequest{Text: "buy milk"})

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsHTTPStatus(err, 500))
}
