package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/client/models"
)

var statuses = []string{models.StatusPending, models.StatusInProgress, models.StatusCompleted}

func (a *App) List(ctx context.Context) error {
	ts, err := a.api.ListTasks(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(ts) == 0 {
		fmt.Fprintln(a.out, "No tasks")
		return nil
	}
	for _, t := range ts {
		fmt.Fprintln(a.out, t)
	}
	return nil
}

// Add prompts for a new task. Status defaults to pending on the server
// when left empty.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Status ("+strings.Join(statuses, ", ")+"; empty for pending)", a.out)
	if err != nil {
		return err
	}
	due, err := getSimpleText(a.reader, "Due date YYYY-MM-DD (empty for none)", a.out)
	if err != nil {
		return err
	}

	t, err := a.api.CreateTask(ctx, models.TaskInput{
		Title:       title,
		Description: optional(description),
		Status:      status,
		DueDate:     due,
	})
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "Task %s created\n", t.ID)
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	id, err := a.taskID(id, "Enter task id to show")
	if err != nil {
		return err
	}
	t, err := a.api.GetTask(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "ID: %s\nTitle: %s\nStatus: %s\n", t.ID, t.Title, t.Status)
	if t.Description != "" {
		fmt.Fprintf(a.out, "Description:\n%s\n", t.Description)
	}
	if t.DueDate != nil {
		fmt.Fprintf(a.out, "Due: %s\n", t.DueDate.Format(time.DateOnly))
	}
	fmt.Fprintf(a.out, "Created: %s\nUpdated: %s\n",
		t.CreatedAt.Local().Format("2006-01-02 15:04"), t.UpdatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}

// SetStatus changes the status of a task and keeps the rest of it as is.
func (a *App) SetStatus(ctx context.Context, id string) error {
	id, err := a.taskID(id, "Enter task id")
	if err != nil {
		return err
	}
	t, err := a.api.GetTask(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}

	status, err := getSimpleText(a.reader, "New status ("+strings.Join(statuses, ", ")+")", a.out)
	if err != nil {
		return err
	}

	in := models.TaskInput{Title: t.Title, Description: &t.Description, Status: status}
	if t.DueDate != nil {
		in.DueDate = t.DueDate.Format(time.DateOnly)
	}

	t, err = a.api.UpdateTask(ctx, id, in)
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "Task %s is now %s\n", t.ID, t.Status)
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	id, err := a.taskID(id, "Enter task id to delete")
	if err != nil {
		return err
	}
	if err := a.api.DeleteTask(ctx, id); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Task removed")
	return nil
}

// taskID returns id or prompts for one when it is empty.
func (a *App) taskID(id, prompt string) (string, error) {
	if id != "" {
		return id, nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}
