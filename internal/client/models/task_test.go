package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskString(t *testing.T) {
	due := time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "id1 [pending] Write docs", Task{ID: "id1", Status: StatusPending, Title: "Write docs"}.String())
	assert.Equal(t, "id2 [completed] Ship due 2030-05-01", Task{ID: "id2", Status: StatusCompleted, Title: "Ship", DueDate: &due}.String())
}

func TestTaskInput_OmitsEmptyOptionalFields(t *testing.T) {
	b, err := json.Marshal(TaskInput{Title: "t"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t"}`, string(b))

	desc := ""
	b, err = json.Marshal(TaskInput{Title: "t", Description: &desc, Status: StatusInProgress, DueDate: "2030-01-02"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","description":"","status":"in-progress","dueDate":"2030-01-02"}`, string(b))
}
