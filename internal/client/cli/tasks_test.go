package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
	"github.com/dmitrijs2005/taskkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	api := newFakeAPI()
	api.put("first", "")
	api.put("second", models.StatusCompleted)
	app, out := newTestApp(t, api, "")

	require.NoError(t, app.List(context.Background()))
	assert.Equal(t, "t2 [completed] second\nt1 [pending] first\n", out.String())
}

func TestList_Empty(t *testing.T) {
	app, out := newTestApp(t, newFakeAPI(), "")

	require.NoError(t, app.List(context.Background()))
	assert.Equal(t, "No tasks\n", out.String())
}

func TestAdd(t *testing.T) {
	api := newFakeAPI()
	app, out := newTestApp(t, api, "Write docs\nline one\nline two\n\n\n2030-05-01\n")

	require.NoError(t, app.Add(context.Background()))

	assert.Equal(t, "Write docs", api.lastInput.Title)
	require.NotNil(t, api.lastInput.Description)
	assert.Equal(t, "line one\nline two", *api.lastInput.Description)
	assert.Empty(t, api.lastInput.Status)
	assert.Equal(t, "2030-05-01", api.lastInput.DueDate)
	assert.Contains(t, out.String(), "Task t1 created")
}

func TestAdd_ValidationError(t *testing.T) {
	silenceLog(t)
	api := newFakeAPI()
	api.taskErr = &client.APIError{Status: 400, Messages: []string{"Title is required"}}
	app, out := newTestApp(t, api, "\n\n\n\n")

	require.Error(t, app.Add(context.Background()))
	assert.Nil(t, api.lastInput.Description)
	assert.Contains(t, out.String(), "Error: Title is required")
}

func TestShow_PromptsForID(t *testing.T) {
	api := newFakeAPI()
	task := api.put("Write docs", models.StatusInProgress)
	task.Description = "details"
	app, out := newTestApp(t, api, "t1\n")

	require.NoError(t, app.Show(context.Background(), ""))
	assert.Contains(t, out.String(), "Title: Write docs")
	assert.Contains(t, out.String(), "Status: in-progress")
	assert.Contains(t, out.String(), "details")
}

func TestShow_NotFound(t *testing.T) {
	silenceLog(t)
	app, out := newTestApp(t, newFakeAPI(), "")

	err := app.Show(context.Background(), "missing")
	assert.ErrorIs(t, err, client.ErrNotFound)
	assert.Contains(t, out.String(), "Error: Task not found")
}

func TestSetStatus_KeepsOtherFields(t *testing.T) {
	api := newFakeAPI()
	task := api.put("Write docs", "")
	task.Description = "keep me"
	app, out := newTestApp(t, api, "completed\n")

	require.NoError(t, app.SetStatus(context.Background(), "t1"))

	assert.Equal(t, "Write docs", api.lastInput.Title)
	require.NotNil(t, api.lastInput.Description)
	assert.Equal(t, "keep me", *api.lastInput.Description)
	assert.Equal(t, "completed", api.lastInput.Status)
	assert.Contains(t, out.String(), "Task t1 is now completed")
}

func TestDelete(t *testing.T) {
	api := newFakeAPI()
	api.put("Write docs", "")
	app, out := newTestApp(t, api, "")

	require.NoError(t, app.Delete(context.Background(), "t1"))
	assert.Empty(t, api.tasks)
	assert.Contains(t, out.String(), "Task removed")
}
