package api

import (
	"context"
	"net/http"

	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/limbo/studyos/pkg/httputil"
)

type BadgesResponse struct {
	All    []entity.BadgeStatus `json:"all"`
	Earned []entity.BadgeStatus `json:"earned"`
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "create goal")
	if !ok {
		return
	}
	var req service.CreateGoalRequest
	if !decodeBody(w, r, logger, "create goal", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	goal, err := s.goalsService.CreateGoal(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "create goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created")
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get goals")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	goals, err := s.goalsService.GetUserGoals(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goals)
}

func (s *Server) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get goal")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "get goal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	goal, err := s.goalsService.GetGoal(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
}

// UpdateGoal sets progress and optionally retitles or retargets the goal.
func (s *Server) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "update goal")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "update goal")
	if !ok {
		return
	}
	var req service.UpdateGoalRequest
	if !decodeBody(w, r, logger, "update goal", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	goal, err := s.goalsService.UpdateGoal(ctx, id, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "update goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal updated")
}

func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "goal deletion")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "goal deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.goalsService.DeleteGoal(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "goal deletion", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Goal deleted successfully")
	logger.Info("goal deleted")
}

func (s *Server) GetGamificationStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get gamification stats")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	stats, err := s.gamificationService.GetStats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get gamification stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetBadges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get badges")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	badges, err := s.gamificationService.GetBadges(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get badges", err)
		return
	}
	resp := BadgesResponse{All: badges, Earned: make([]entity.BadgeStatus, 0)}
	for _, b := range badges {
		if b.Earned {
			resp.Earned = append(resp.Earned, b)
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}
