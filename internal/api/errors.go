package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/httputil"
)

var errInvalidQuery = errors.New("invalid query parameter")

// statusOf maps service errors onto HTTP statuses. Anything unknown is a 500.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, httputil.ErrEmptyBody),
		errors.Is(err, errInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, errorvalues.ErrWrongCredentials),
		errors.Is(err, errorvalues.ErrInvalidToken),
		errors.Is(err, errorvalues.ErrInvalidTokenType):
		return http.StatusUnauthorized
	case errorvalues.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, errorvalues.ErrEmailExists),
		errors.Is(err, errorvalues.ErrActiveSessionExists):
		return http.StatusConflict
	case errors.Is(err, errorvalues.ErrGenerationTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err for op and writes the mapped response. Internal
// errors are not echoed back to the client.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, code, "internal error during "+op, nil)
		return
	}
	logger.Error(op+" error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, code, publicMessage(err, op), err)
}

func publicMessage(err error, op string) string {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		return "invalid request"
	case errors.Is(err, httputil.ErrEmptyBody):
		return "empty request body"
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		return "invalid email or password"
	case errors.Is(err, errorvalues.ErrInvalidTokenType):
		return "invalid token type"
	case errors.Is(err, errorvalues.ErrInvalidToken):
		return "invalid token"
	case errors.Is(err, errorvalues.ErrEmailExists):
		return "email already registered"
	case errors.Is(err, errorvalues.ErrActiveSessionExists):
		return "a study session is already active"
	case errors.Is(err, errorvalues.ErrGenerationTimeout):
		return "content generation timed out"
	case errorvalues.IsNotFound(err):
		return notFoundMessage(err)
	}
	return op + " failed"
}

func notFoundMessage(err error) string {
	for _, sentinel := range []error{
		errorvalues.ErrUserNotFound,
		errorvalues.ErrOwnerNotFound,
		errorvalues.ErrTaskNotFound,
		errorvalues.ErrHabitNotFound,
		errorvalues.ErrQuizNotFound,
		errorvalues.ErrNoteNotFound,
		errorvalues.ErrPlanNotFound,
		errorvalues.ErrScheduleItemNotFound,
		errorvalues.ErrSessionNotFound,
		errorvalues.ErrGoalNotFound,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "not found"
}

// decodeBody reads the JSON body into dst, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, dst any) bool {
	err := httputil.DecodeJSON(r, dst)
	if err == nil {
		return true
	}
	logger.Error(op + " error: invalid request body")
	if errors.Is(err, httputil.ErrEmptyBody) {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "empty request body", nil)
		return false
	}
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
	return false
}

// authorized returns the caller's id, writing a 401 when it is missing.
func authorized(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.Nil, false
	}
	return uid, true
}

// pathID parses the {id} URL parameter, writing a 400 when it is not a uuid.
func pathID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Join(errInvalidQuery, errors.New(key+" must be an integer"))
	}
	return v, nil
}
