package app

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoctl/internal/config"
	apperrors "todoctl/internal/errors"
	"todoctl/internal/testutil"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		BaseURL:   baseURL,
		TasksPath: "tasks",
		Timeout:   5 * time.Second,
		RateBurst: 1,
		LogLevel:  slog.LevelInfo,
		LogFormat: "text",
	}
}

func TestNewApp_WiresTaskClient(t *testing.T) {
	ts := testutil.NewTaskServer(t, "buy milk")
	var stderr bytes.Buffer

	application, err := NewApp(context.Background(), testConfig(ts.URL),
		WithOutput(&stderr), WithInput(strings.NewReader("")), WithUserAgent("todoctl/test"))
	require.NoError(t, err)

	tasks, err := application.TaskClient.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "buy milk", tasks[0].Text)

	assert.False(t, application.Confirmer.IsInteractive())
	assert.Equal(t, "todoctl/test", application.Options.UserAgent)
	assert.Contains(t, stderr.String(), "Successfully fetched tasks")
}

func TestNewApp_VerboseEnablesDebug(t *testing.T) {
	var stderr bytes.Buffer

	application, err := NewApp(context.Background(), testConfig("http://localhost:8080"),
		WithOutput(&stderr), WithVerbose(true))
	require.NoError(t, err)

	assert.True(t, application.Logger.Enabled(context.Background(), slog.LevelDebug))
	assert.Contains(t, stderr.String(), "endpoint=http://localhost:8080/tasks")
}

func TestNewApp_InvalidEndpoint(t *testing.T) {
	application, err := NewApp(context.Background(), testConfig("localhost"), WithOutput(&bytes.Buffer{}))

	require.Error(t, err)
	assert.Nil(t, application)
	assert.True(t, apperrors.IsConfiguration(err))
}
