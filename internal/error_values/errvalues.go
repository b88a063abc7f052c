package errorvalues

import "errors"

var (
	ErrEmailExists      = errors.New("email already registered")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrOwnerNotFound    = errors.New("owner of entity doesn't exist")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrValidation       = errors.New("validation error")
)

// Entity lookups. Ownership mismatches are reported with the same values
// so callers can't tell other users' ids apart from missing ones.
var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrHabitNotFound        = errors.New("habit not found")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrNoteNotFound         = errors.New("note not found")
	ErrPlanNotFound         = errors.New("study plan not found")
	ErrScheduleItemNotFound = errors.New("schedule item not found")
	ErrSessionNotFound      = errors.New("study session not found")
	ErrGoalNotFound         = errors.New("goal not found")
)

var (
	ErrActiveSessionExists = errors.New("user already has an active session")
	ErrLogDateNotAllowed   = errors.New("can't log habit for a future date")
	ErrGenerationTimeout   = errors.New("content generation timed out")
)

// IsNotFound reports whether err is one of the entity lookup failures.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrUserNotFound,
		ErrOwnerNotFound,
		ErrTaskNotFound,
		ErrHabitNotFound,
		ErrQuizNotFound,
		ErrNoteNotFound,
		ErrPlanNotFound,
		ErrScheduleItemNotFound,
		ErrSessionNotFound,
		ErrGoalNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
