package rest

import (
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/server/validation"
	"github.com/labstack/echo/v4"
)

func (s *Server) createTask(c echo.Context) error {
	var req validation.TaskRequest
	if err := bindRequest(c, &req); err != nil {
		return s.fail(c, opCreateTask, err)
	}

	task, err := s.tasks.Create(c.Request().Context(), userID(c), req.Patch())
	if err != nil {
		return s.fail(c, opCreateTask, err)
	}
	return c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (s *Server) listTasks(c echo.Context) error {
	list, err := s.tasks.List(c.Request().Context(), userID(c))
	if err != nil {
		return s.fail(c, opListTasks, err)
	}
	return c.JSON(http.StatusOK, newTaskList(list))
}

func (s *Server) getTask(c echo.Context) error {
	task, err := s.tasks.Get(c.Request().Context(), userID(c), c.Param("id"))
	if err != nil {
		return s.fail(c, opGetTask, err)
	}
	return c.JSON(http.StatusOK, newTaskResponse(task))
}

func (s *Server) updateTask(c echo.Context) error {
	var req validation.TaskRequest
	if err := bindRequest(c, &req); err != nil {
		return s.fail(c, opUpdateTask, err)
	}

	task, err := s.tasks.Update(c.Request().Context(), userID(c), c.Param("id"), req.Patch())
	if err != nil {
		return s.fail(c, opUpdateTask, err)
	}
	return c.JSON(http.StatusOK, newTaskResponse(task))
}

func (s *Server) deleteTask(c echo.Context) error {
	if err := s.tasks.Delete(c.Request().Context(), userID(c), c.Param("id")); err != nil {
		return s.fail(c, opDeleteTask, err)
	}
	return c.JSON(http.StatusOK, msgBody("Task removed successfully"))
}
