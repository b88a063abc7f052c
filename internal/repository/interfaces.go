package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/studyos/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/limbo/studyos/internal/repository UsersRepositoryI,TasksRepositoryI,HabitsRepositoryI,HabitLogsRepositoryI,QuizzesRepositoryI,QuizResultsRepositoryI,NotesRepositoryI,StudyPlansRepositoryI,StudySessionsRepositoryI,GoalsRepositoryI,GamificationRepositoryI

type UsersRepositoryI interface {
	// Creates new user. Fills ID and CreatedAt on success
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's name and password hash
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type TasksRepositoryI interface {
	// Creates new task. Fills ID, CreatedAt and UpdatedAt
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Lists tasks owned by uid matching filter, oldest first
	GetByUserID(ctx context.Context, uid uuid.UUID, filter entity.TaskFilter) ([]*entity.Task, error)
	// Overwrites every mutable field of task with given ID
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit. Fills ID, CreatedAt and UpdatedAt
	Create(ctx context.Context, habit *entity.Habit) error
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Updates habit by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type HabitLogsRepositoryI interface {
	// Adds count to the habit's log for date and returns the day's new total
	AddCount(ctx context.Context, habitID uuid.UUID, date entity.Date, count int) (int, error)
	// Provides logs of habitID for a period, ascending by date
	GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to entity.Date) ([]entity.HabitLog, error)
	// Removes every log of habitID, returns how many were removed
	DeleteByHabitID(ctx context.Context, habitID uuid.UUID) (int, error)
	// Returns date of last log on habitID, nil if there is none
	GetLastLogDate(ctx context.Context, habitID uuid.UUID) (*entity.Date, error)
	// Returns count of logged days for habitID
	CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error)
}

type QuizzesRepositoryI interface {
	// Creates new quiz. Fills ID and CreatedAt
	Create(ctx context.Context, quiz *entity.Quiz) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quiz, error)
	// Lists quizzes owned by uid; empty subject matches all, otherwise case-insensitive
	GetByUserID(ctx context.Context, uid uuid.UUID, subject string) ([]*entity.Quiz, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type QuizResultsRepositoryI interface {
	// Stores graded attempt. Fills ID
	Create(ctx context.Context, result *entity.QuizResult) error
	GetByQuizAndUser(ctx context.Context, quizID, uid uuid.UUID) ([]*entity.QuizResult, error)
	// Results of uid completed in [from, to)
	GetByUserAndPeriod(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.QuizResult, error)
}

type NotesRepositoryI interface {
	// Creates new note. Fills ID and CreatedAt
	Create(ctx context.Context, note *entity.Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Note, error)
	// Replaces note's MCQ list
	UpdateMCQs(ctx context.Context, id uuid.UUID, mcqs []entity.MCQ) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StudyPlansRepositoryI interface {
	// Creates new plan. Fills ID and CreatedAt
	Create(ctx context.Context, plan *entity.StudyPlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StudyPlan, error)
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.StudyPlan, error)
	// Replaces plan's schedule and active flag
	UpdateSchedule(ctx context.Context, plan *entity.StudyPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StudySessionsRepositoryI interface {
	// Creates new session. Fills ID
	Create(ctx context.Context, session *entity.StudySession) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StudySession, error)
	// Returns the user's active session or ErrSessionNotFound
	GetActive(ctx context.Context, uid uuid.UUID) (*entity.StudySession, error)
	// Latest sessions first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.StudySession, error)
	// Sessions of uid started in [from, to)
	GetByUserAndPeriod(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.StudySession, error)
	// Writes end time, duration, focus score, notes and status
	Update(ctx context.Context, session *entity.StudySession) error
}

type GoalsRepositoryI interface {
	// Creates new goal. Fills ID, CreatedAt and UpdatedAt
	Create(ctx context.Context, goal *entity.Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Goal, error)
	// Writes title, target, current and status
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GamificationRepositoryI interface {
	// Returns zero progress for users that never earned anything
	GetProgress(ctx context.Context, uid uuid.UUID) (*entity.Progress, error)
	// Inserts or overwrites the user's progress
	SaveProgress(ctx context.Context, progress *entity.Progress) error
	// Records that source/ref was rewarded. False if it already was
	AddRewardEvent(ctx context.Context, uid uuid.UUID, source string, refID uuid.UUID) (bool, error)
	// Earned badges, oldest first
	GetBadges(ctx context.Context, uid uuid.UUID) ([]entity.EarnedBadge, error)
	// Awards badge code. False if the user already had it
	AddBadge(ctx context.Context, uid uuid.UUID, code string) (bool, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
