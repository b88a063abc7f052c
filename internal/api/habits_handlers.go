package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/limbo/studyos/pkg/httputil"
)

const (
	defaultHabitsLimit = 10
	maxHabitsLimit     = 50
	maxHabitsPage      = 10000
)

type GetHabitsResponse struct {
	UserID string          `json:"uid"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
	Habits []*entity.Habit `json:"habits"`
}

type HabitHistoryResponse struct {
	HabitID string            `json:"habit_id"`
	Days    int               `json:"days"`
	History []entity.HabitLog `json:"history"`
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "create habit")
	if !ok {
		return
	}
	var req service.CreateHabitRequest
	if !decodeBody(w, r, logger, "create habit", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habit, err := s.habitsService.CreateHabit(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "create habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created")
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get habits")
	if !ok {
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > maxHabitsLimit {
		limit = defaultHabitsLimit
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	page = min(page, maxHabitsPage)
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habits, err := s.habitsService.GetUserHabits(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		writeServiceError(w, logger, "get habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Habits: habits,
	})
	logger.Info("habits provided")
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get habit")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "get habit")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habit, err := s.habitsService.GetHabit(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "update habit")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "update habit")
	if !ok {
		return
	}
	var req service.UpdateHabitRequest
	if !decodeBody(w, r, logger, "update habit", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habit, err := s.habitsService.UpdateHabit(ctx, id, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "update habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit updated")
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "habit deletion")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "habit deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.habitsService.DeleteHabit(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "habit deletion", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Habit deleted successfully")
	logger.Info("habit deleted")
}

// LogHabit records progress. An empty body logs one completion for today.
func (s *Server) LogHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "log habit")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "log habit")
	if !ok {
		return
	}
	var req service.LogHabitRequest
	if r.ContentLength != 0 && !decodeBody(w, r, logger, "log habit", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	habit, err := s.habitsService.LogHabit(ctx, id, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "log habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit logged")
}

func (s *Server) GetHabitHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "habit history")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "habit history")
	if !ok {
		return
	}
	days, err := queryInt(r, "days")
	if err != nil {
		writeServiceError(w, logger, "habit history", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	history, err := s.habitsService.GetHabitHistory(ctx, id, uid, days)
	if err != nil {
		writeServiceError(w, logger, "habit history", err)
		return
	}
	if days == 0 {
		days = service.DefaultHistoryDays
	}
	httputil.WriteJSONResponse(w, http.StatusOK, HabitHistoryResponse{
		HabitID: id.String(),
		Days:    days,
		History: history,
	})
}

func (s *Server) GetHabitStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "habit stats")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "habit stats")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	stats, err := s.habitsService.GetHabitStats(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "habit stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}
