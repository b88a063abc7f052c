package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/limbo/studyos/pkg/httputil"
)

// QuizSummary is the list view of a quiz, without its questions.
type QuizSummary struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Subject          string    `json:"subject"`
	Topic            string    `json:"topic"`
	Difficulty       string    `json:"difficulty"`
	QuestionsCount   int       `json:"questions_count"`
	TimeLimitMinutes int       `json:"time_limit_minutes"`
	CreatedAt        time.Time `json:"created_at"`
}

func summarize(quizzes []*entity.Quiz) []QuizSummary {
	out := make([]QuizSummary, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, QuizSummary{
			ID:               q.ID.String(),
			Title:            q.Title,
			Subject:          q.Subject,
			Topic:            q.Topic,
			Difficulty:       q.Difficulty,
			QuestionsCount:   len(q.Questions),
			TimeLimitMinutes: q.TimeLimitMinutes,
			CreatedAt:        q.CreatedAt,
		})
	}
	return out
}

func (s *Server) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "create quiz")
	if !ok {
		return
	}
	var req service.CreateQuizRequest
	if !decodeBody(w, r, logger, "create quiz", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	quiz, err := s.quizzesService.CreateQuiz(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "create quiz", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, quiz)
	logger.Info("quiz created")
}

func (s *Server) GetQuizzes(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get quizzes")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	quizzes, err := s.quizzesService.GetUserQuizzes(ctx, uid, r.URL.Query().Get("subject"))
	if err != nil {
		writeServiceError(w, logger, "get quizzes", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summarize(quizzes))
	logger.Info("quizzes provided")
}

func (s *Server) GetQuiz(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get quiz")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "get quiz")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	quiz, err := s.quizzesService.GetQuiz(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get quiz", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, quiz)
}

func (s *Server) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "quiz deletion")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "quiz deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.quizzesService.DeleteQuiz(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "quiz deletion", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Quiz deleted successfully")
	logger.Info("quiz deleted")
}

func (s *Server) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "submit quiz")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "submit quiz")
	if !ok {
		return
	}
	var req service.SubmitQuizRequest
	if !decodeBody(w, r, logger, "submit quiz", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	result, err := s.quizzesService.SubmitQuiz(ctx, id, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "submit quiz", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("quiz submitted")
}

func (s *Server) GetQuizResults(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "quiz results")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "quiz results")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	results, err := s.quizzesService.GetQuizResults(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "quiz results", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, results)
}
