package api

import (
	"context"
	"net/http"

	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/httputil"
)

type AdaptPlanResponse struct {
	PlanID      string   `json:"plan_id"`
	Adaptations []string `json:"adaptations"`
	Message     string   `json:"message"`
}

func (s *Server) CreateStudyPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "create study plan")
	if !ok {
		return
	}
	var req service.CreateStudyPlanRequest
	if !decodeBody(w, r, logger, "create study plan", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	plan, err := s.plansService.CreatePlan(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "create study plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, plan)
	logger.Info("study plan created")
}

func (s *Server) GetStudyPlans(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get study plans")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	plans, err := s.plansService.GetUserPlans(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get study plans", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plans)
}

func (s *Server) GetStudyPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get study plan")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "get study plan")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	plan, err := s.plansService.GetPlan(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get study plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}

func (s *Server) DeleteStudyPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "study plan deletion")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "study plan deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.plansService.DeletePlan(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "study plan deletion", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Study plan deleted successfully")
	logger.Info("study plan deleted")
}

func (s *Server) CompleteStudyItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "complete study item")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "complete study item")
	if !ok {
		return
	}
	var req service.CompleteItemRequest
	if !decodeBody(w, r, logger, "complete study item", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	plan, err := s.plansService.CompleteItem(ctx, id, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "complete study item", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
	logger.Info("study item completed")
}

func (s *Server) AdaptStudyPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "adapt study plan")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "adapt study plan")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	adaptations, err := s.plansService.AdaptPlan(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "adapt study plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AdaptPlanResponse{
		PlanID:      id.String(),
		Adaptations: adaptations,
		Message:     "Study plan adaptations suggested",
	})
}

func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "start session")
	if !ok {
		return
	}
	var req service.StartSessionRequest
	if !decodeBody(w, r, logger, "start session", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	session, err := s.sessionsService.StartSession(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "start session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, session)
	logger.Info("study session started")
}

func (s *Server) EndSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "end session")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "end session")
	if !ok {
		return
	}
	var req service.EndSessionRequest
	if r.ContentLength != 0 && !decodeBody(w, r, logger, "end session", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	session, err := s.sessionsService.EndSession(ctx, id, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "end session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, session)
	logger.Info("study session ended")
}

func (s *Server) GetSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get sessions")
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeServiceError(w, logger, "get sessions", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	sessions, err := s.sessionsService.GetUserSessions(ctx, uid, limit)
	if err != nil {
		writeServiceError(w, logger, "get sessions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, sessions)
}

func (s *Server) GetActiveSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get active session")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	session, err := s.sessionsService.GetActiveSession(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get active session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, session)
}

func (s *Server) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get analytics")
	if !ok {
		return
	}
	days, err := queryInt(r, "days")
	if err != nil {
		writeServiceError(w, logger, "get analytics", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	analytics, err := s.analyticsService.GetAnalytics(ctx, uid, days)
	if err != nil {
		writeServiceError(w, logger, "get analytics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, analytics)
}
