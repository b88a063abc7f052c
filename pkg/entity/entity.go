package entity

import (
	"time"

	"github.com/google/uuid"
)

const RoleStudent = "student"

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"

	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

type Task struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	Title            string     `json:"title"`
	Description      *string    `json:"description"`
	Priority         string     `json:"priority"`
	Category         *string    `json:"category"`
	Status           string     `json:"status"`
	DueDate          *Date      `json:"due_date"`
	EstimatedMinutes *int       `json:"estimated_minutes"`
	CompletedAt      *time.Time `json:"completed_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TaskFilter narrows a task listing. Empty fields match everything.
type TaskFilter struct {
	Status   string
	Priority string
}

const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

type Habit struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Frequency    string    `json:"frequency"`
	TargetCount  int       `json:"target_count"`
	CurrentCount int       `json:"current_count"`
	Streak       int       `json:"streak"`
	Icon         string    `json:"icon"`
	// Day CurrentCount was last written for
	CountDate Date `json:"-"`
	// Last day the target was reached
	LastCompletedOn Date      `json:"last_completed_on"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PeriodDays is the length of one streak period.
func (h *Habit) PeriodDays() int {
	if h.Frequency == FrequencyWeekly {
		return 7
	}
	return 1
}

type HabitLog struct {
	HabitID uuid.UUID `json:"habit_id"`
	Date    Date      `json:"date"`
	Count   int       `json:"count"`
}

type HabitStats struct {
	ID          uuid.UUID `json:"habit_id"`
	TotalLogs   int       `json:"total_logs"`
	Streak      int       `json:"streak"`
	LastLogDate *Date     `json:"last_log_date,omitempty"`
}

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyMixed  = "mixed"
)

// OptionLabels are the labels every multiple choice question carries, in order.
var OptionLabels = []string{"a", "b", "c", "d"}

type QuizQuestion struct {
	ID            string            `json:"id"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
	Difficulty    string            `json:"difficulty"`
	Topic         string            `json:"topic"`
}

type Quiz struct {
	ID               uuid.UUID      `json:"id"`
	UserID           uuid.UUID      `json:"user_id"`
	Title            string         `json:"title"`
	Subject          string         `json:"subject"`
	Topic            string         `json:"topic"`
	Questions        []QuizQuestion `json:"questions"`
	Difficulty       string         `json:"difficulty"`
	TimeLimitMinutes int            `json:"time_limit_minutes"`
	CreatedAt        time.Time      `json:"created_at"`
}

type QuizResult struct {
	ID               uuid.UUID         `json:"id"`
	QuizID           uuid.UUID         `json:"quiz_id"`
	UserID           uuid.UUID         `json:"user_id"`
	Subject          string            `json:"subject"`
	Score            int               `json:"score"`
	TotalQuestions   int               `json:"total_questions"`
	Percentage       float64           `json:"percentage"`
	TimeTakenSeconds int               `json:"time_taken_seconds"`
	Answers          map[string]string `json:"answers"`
	CorrectAnswers   map[string]string `json:"correct_answers"`
	// Topic of every graded question, keyed by question id
	Topics      map[string]string `json:"topics"`
	CompletedAt time.Time         `json:"completed_at"`
}

const (
	SourceText     = "text"
	SourceVideo    = "video"
	SourceDocument = "document"
)

type MCQ struct {
	ID            string            `json:"id"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
	Difficulty    string            `json:"difficulty"`
}

type Note struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	SourceType string    `json:"source_type"`
	SourceRef  *string   `json:"source_ref"`
	KeyPoints  []string  `json:"key_points"`
	Summary    string    `json:"summary"`
	MCQs       []MCQ     `json:"mcqs"`
	CreatedAt  time.Time `json:"created_at"`
}

type Subject struct {
	Name           string   `json:"name"`
	Topics         []string `json:"topics"`
	Priority       string   `json:"priority"`
	HoursAllocated float64  `json:"hours_allocated"`
}

type ScheduleItem struct {
	Subject         string `json:"subject"`
	Topic           string `json:"topic"`
	DurationMinutes int    `json:"duration_minutes"`
	Priority        string `json:"priority"`
	Completed       bool   `json:"completed"`
}

type DailySchedule struct {
	Date       Date           `json:"date"`
	Items      []ScheduleItem `json:"subjects"`
	TotalHours float64        `json:"total_hours"`
}

type StudyPlan struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	Title            string          `json:"title"`
	Subjects         []Subject       `json:"subjects"`
	StartDate        Date            `json:"start_date"`
	EndDate          Date            `json:"end_date"`
	StudyHoursPerDay float64         `json:"study_hours_per_day"`
	DailySchedule    []DailySchedule `json:"daily_schedule"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
}

const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

type StudySession struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Subject         string     `json:"subject"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationSeconds int        `json:"duration_seconds"`
	FocusScore      *int       `json:"focus_score"`
	Notes           string     `json:"notes"`
	Status          string     `json:"status"`
}
