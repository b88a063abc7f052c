package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/studyos/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/limbo/studyos/internal/service UserServiceI,TasksServiceI,HabitsServiceI,QuizzesServiceI,NotesServiceI,StudyPlansServiceI,SessionsServiceI,AnalyticsServiceI,GoalsServiceI,GamificationServiceI,Rewarder,ContentGenerator

type PaginationOpts struct {
	Limit  int
	Offset int
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,notblank,max=100"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new user. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID.
	// Unknown emails are registered when auto registration is on
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type CreateTaskRequest struct {
	Title            string       `json:"title" validate:"required,notblank,max=200"`
	Description      *string      `json:"description" validate:"omitnil,max=2000"`
	Priority         string       `json:"priority" validate:"omitempty,oneof=high medium low"`
	Category         *string      `json:"category" validate:"omitnil,max=100"`
	DueDate          *entity.Date `json:"due_date"`
	EstimatedMinutes *int         `json:"estimated_minutes" validate:"omitnil,min=1,max=10000"`
}

// UpdateTaskRequest changes only the fields that are set.
type UpdateTaskRequest struct {
	Title            *string      `json:"title" validate:"omitnil,notblank,max=200"`
	Description      *string      `json:"description" validate:"omitnil,max=2000"`
	Priority         *string      `json:"priority" validate:"omitnil,oneof=high medium low"`
	Category         *string      `json:"category" validate:"omitnil,max=100"`
	Status           *string      `json:"status" validate:"omitnil,oneof=pending completed"`
	DueDate          *entity.Date `json:"due_date"`
	EstimatedMinutes *int         `json:"estimated_minutes" validate:"omitnil,min=1,max=10000"`
}

type ListTasksRequest struct {
	Status   string `validate:"omitempty,oneof=pending completed"`
	Priority string `validate:"omitempty,oneof=high medium low"`
}

type TasksServiceI interface {
	CreateTask(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error)
	GetUserTasks(ctx context.Context, uid uuid.UUID, req *ListTasksRequest) ([]*entity.Task, error)
	GetTask(ctx context.Context, taskID, uid uuid.UUID) (*entity.Task, error)
	UpdateTask(ctx context.Context, taskID, uid uuid.UUID, req *UpdateTaskRequest) (*entity.Task, error)
	// Marks task completed. Completing twice keeps the first completion time
	CompleteTask(ctx context.Context, taskID, uid uuid.UUID) (*entity.Task, error)
	DeleteTask(ctx context.Context, taskID, uid uuid.UUID) error
}

type CreateHabitRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
	Frequency   string `json:"frequency" validate:"omitempty,oneof=daily weekly"`
	TargetCount int    `json:"target_count" validate:"omitempty,min=1,max=1000"`
	Icon        string `json:"icon" validate:"max=50"`
}

type UpdateHabitRequest struct {
	Name        *string `json:"name" validate:"omitnil,notblank,max=100"`
	Description *string `json:"description" validate:"omitnil,max=500"`
	Frequency   *string `json:"frequency" validate:"omitnil,oneof=daily weekly"`
	TargetCount *int    `json:"target_count" validate:"omitnil,min=1,max=1000"`
	Icon        *string `json:"icon" validate:"omitnil,max=50"`
}

type LogHabitRequest struct {
	// Defaults to 1
	Count int `json:"count" validate:"omitempty,min=1,max=1000"`
	// Defaults to today
	Date *entity.Date `json:"date"`
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, uid uuid.UUID) (*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, uid uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error)
	// Deletes habit together with its logs
	DeleteHabit(ctx context.Context, habitID, uid uuid.UUID) error
	// Adds completions for a day and advances the streak when the day's target is reached
	LogHabit(ctx context.Context, habitID, uid uuid.UUID, req *LogHabitRequest) (*entity.Habit, error)
	// Logs of the last days, today included, ascending
	GetHabitHistory(ctx context.Context, habitID, uid uuid.UUID, days int) ([]entity.HabitLog, error)
	GetHabitStats(ctx context.Context, habitID, uid uuid.UUID) (*entity.HabitStats, error)
}

type CreateQuizRequest struct {
	Title        string `json:"title" validate:"required,notblank,max=200"`
	Subject      string `json:"subject" validate:"required,notblank,max=100"`
	Topic        string `json:"topic" validate:"max=200"`
	Difficulty   string `json:"difficulty" validate:"omitempty,oneof=easy medium hard mixed"`
	NumQuestions int    `json:"num_questions" validate:"omitempty,min=1,max=50"`
}

type SubmitQuizRequest struct {
	// Chosen option label keyed by question id
	Answers          map[string]string `json:"answers"`
	TimeTakenSeconds int               `json:"time_taken_seconds" validate:"min=0"`
}

type QuizzesServiceI interface {
	CreateQuiz(ctx context.Context, uid uuid.UUID, req *CreateQuizRequest) (*entity.Quiz, error)
	// Empty subject lists every quiz
	GetUserQuizzes(ctx context.Context, uid uuid.UUID, subject string) ([]*entity.Quiz, error)
	GetQuiz(ctx context.Context, quizID, uid uuid.UUID) (*entity.Quiz, error)
	DeleteQuiz(ctx context.Context, quizID, uid uuid.UUID) error
	SubmitQuiz(ctx context.Context, quizID, uid uuid.UUID, req *SubmitQuizRequest) (*entity.QuizResult, error)
	GetQuizResults(ctx context.Context, quizID, uid uuid.UUID) ([]*entity.QuizResult, error)
}

type TextNotesRequest struct {
	Title   string `json:"title" validate:"max=200"`
	Content string `json:"content" validate:"required,notblank,max=100000"`
}

type VideoNotesRequest struct {
	Title string `json:"title" validate:"max=200"`
	URL   string `json:"url" validate:"required,url,max=2048"`
}

type DocumentNotesRequest struct {
	Title    string `json:"title" validate:"max=200"`
	FileName string `json:"file_name" validate:"required,pdf_name,max=255"`
}

type GenerateMCQsRequest struct {
	// Defaults to 5
	Count      int    `json:"count" validate:"omitempty,min=1,max=20"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard mixed"`
}

type NotesServiceI interface {
	NotesFromText(ctx context.Context, uid uuid.UUID, req *TextNotesRequest) (*entity.Note, error)
	NotesFromVideo(ctx context.Context, uid uuid.UUID, req *VideoNotesRequest) (*entity.Note, error)
	NotesFromDocument(ctx context.Context, uid uuid.UUID, req *DocumentNotesRequest) (*entity.Note, error)
	GetUserNotes(ctx context.Context, uid uuid.UUID) ([]*entity.Note, error)
	GetNote(ctx context.Context, noteID, uid uuid.UUID) (*entity.Note, error)
	DeleteNote(ctx context.Context, noteID, uid uuid.UUID) error
	// Appends freshly generated questions to the note and returns only the new ones
	GenerateMoreMCQs(ctx context.Context, noteID, uid uuid.UUID, req *GenerateMCQsRequest) ([]entity.MCQ, error)
}

type SubjectRequest struct {
	Name           string   `json:"name" validate:"required,notblank,max=100"`
	Topics         []string `json:"topics" validate:"max=50,dive,notblank,max=200"`
	Priority       string   `json:"priority" validate:"omitempty,oneof=high medium low"`
	HoursAllocated float64  `json:"hours_allocated" validate:"min=0"`
}

type CreateStudyPlanRequest struct {
	Title     string           `json:"title" validate:"required,notblank,max=200"`
	Subjects  []SubjectRequest `json:"subjects" validate:"required,min=1,max=20,dive"`
	StartDate entity.Date      `json:"start_date"`
	EndDate   entity.Date      `json:"end_date"`
	// Defaults to 4
	HoursPerDay float64 `json:"study_hours_per_day" validate:"omitempty,gt=0,lte=24"`
}

type CompleteItemRequest struct {
	Date  entity.Date `json:"date"`
	Index int         `json:"index" validate:"min=0"`
}

type StudyPlansServiceI interface {
	CreatePlan(ctx context.Context, uid uuid.UUID, req *CreateStudyPlanRequest) (*entity.StudyPlan, error)
	GetUserPlans(ctx context.Context, uid uuid.UUID) ([]*entity.StudyPlan, error)
	GetPlan(ctx context.Context, planID, uid uuid.UUID) (*entity.StudyPlan, error)
	DeletePlan(ctx context.Context, planID, uid uuid.UUID) error
	// Marks one schedule item done. Repeating it changes nothing
	CompleteItem(ctx context.Context, planID, uid uuid.UUID, req *CompleteItemRequest) (*entity.StudyPlan, error)
	// Suggestions only, the plan is left as is
	AdaptPlan(ctx context.Context, planID, uid uuid.UUID) ([]string, error)
}

type StartSessionRequest struct {
	Subject string `json:"subject" validate:"required,notblank,max=100"`
}

type EndSessionRequest struct {
	// Derived from the duration when not given
	FocusScore *int   `json:"focus_score" validate:"omitnil,min=0,max=100"`
	Notes      string `json:"notes" validate:"max=2000"`
}

type SessionsServiceI interface {
	StartSession(ctx context.Context, uid uuid.UUID, req *StartSessionRequest) (*entity.StudySession, error)
	EndSession(ctx context.Context, sessionID, uid uuid.UUID, req *EndSessionRequest) (*entity.StudySession, error)
	// Latest first
	GetUserSessions(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.StudySession, error)
	GetActiveSession(ctx context.Context, uid uuid.UUID) (*entity.StudySession, error)
}

type AnalyticsServiceI interface {
	// Summary of the last days, today included
	GetAnalytics(ctx context.Context, uid uuid.UUID, days int) (*entity.Analytics, error)
}

type CreateGoalRequest struct {
	Title  string  `json:"title" validate:"required,notblank,max=200"`
	Target float64 `json:"target" validate:"required,min=1,max=100000"`
	Unit   string  `json:"unit" validate:"omitempty,max=50"`
	Period string  `json:"period" validate:"omitempty,oneof=daily weekly monthly"`
}

// UpdateGoalRequest changes only the fields that are set. Status follows
// from current and target.
type UpdateGoalRequest struct {
	Title   *string  `json:"title" validate:"omitnil,notblank,max=200"`
	Target  *float64 `json:"target" validate:"omitnil,min=1,max=100000"`
	Current *float64 `json:"current" validate:"omitnil,min=0,max=1000000"`
}

type GoalsServiceI interface {
	CreateGoal(ctx context.Context, uid uuid.UUID, req *CreateGoalRequest) (*entity.Goal, error)
	// Newest first
	GetUserGoals(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error)
	GetGoal(ctx context.Context, goalID, uid uuid.UUID) (*entity.Goal, error)
	UpdateGoal(ctx context.Context, goalID, uid uuid.UUID, req *UpdateGoalRequest) (*entity.Goal, error)
	DeleteGoal(ctx context.Context, goalID, uid uuid.UUID) error
}

// Rewarder grants experience and coins for finished work.
type Rewarder interface {
	// Applies reward once per source and ref; repeats return the current
	// standing with nothing earned
	Award(ctx context.Context, uid uuid.UUID, reward entity.Reward) (*entity.RewardResult, error)
}

type GamificationServiceI interface {
	Rewarder
	GetStats(ctx context.Context, uid uuid.UUID) (*entity.GamificationStats, error)
	// Whole catalog with the user's earned flags
	GetBadges(ctx context.Context, uid uuid.UUID) ([]entity.BadgeStatus, error)
}

type QuizSpec struct {
	Subject    string
	Topic      string
	Difficulty string
	Count      int
}

type NoteSource struct {
	Type    string
	Title   string
	Content string
	// URL or file name for video and document sources
	Ref string
}

type GeneratedNotes struct {
	Title     string
	Content   string
	KeyPoints []string
	Summary   string
	MCQs      []entity.MCQ
}

// ContentGenerator produces everything labelled as generated content.
// Implementations may be slow; callers bound them with a timeout.
type ContentGenerator interface {
	QuizQuestions(ctx context.Context, spec QuizSpec) ([]entity.QuizQuestion, error)
	Notes(ctx context.Context, src NoteSource) (*GeneratedNotes, error)
	// New questions about note. IDs are assigned by the caller
	MCQs(ctx context.Context, note *entity.Note, count int, difficulty string) ([]entity.MCQ, error)
	PlanAdaptations(ctx context.Context, plan *entity.StudyPlan) ([]string, error)
}
