package api

import (
	"context"
	"net/http"

	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/httputil"
)

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "create task")
	if !ok {
		return
	}
	var req service.CreateTaskRequest
	if !decodeBody(w, r, logger, "create task", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	task, err := s.tasksService.CreateTask(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "create task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created")
}

// GetTasks lists the caller's tasks, optionally filtered by the status and
// priority query parameters.
func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get tasks")
	if !ok {
		return
	}
	query := r.URL.Query()
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	tasks, err := s.tasksService.GetUserTasks(ctx, uid, &service.ListTasksRequest{
		Status:   query.Get("status"),
		Priority: query.Get("priority"),
	})
	if err != nil {
		writeServiceError(w, logger, "get tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, tasks)
	logger.Info("tasks provided")
}

func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get task")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "get task")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	task, err := s.tasksService.GetTask(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "update task")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "update task")
	if !ok {
		return
	}
	var req service.UpdateTaskRequest
	if !decodeBody(w, r, logger, "update task", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	task, err := s.tasksService.UpdateTask(ctx, id, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "update task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task updated")
}

func (s *Server) CompleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "complete task")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "complete task")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	task, err := s.tasksService.CompleteTask(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "complete task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task completed")
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "task deletion")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "task deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.tasksService.DeleteTask(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "task deletion", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Task deleted successfully")
	logger.Info("task deleted")
}
