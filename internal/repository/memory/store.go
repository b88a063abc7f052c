// Package memory keeps every repository in process memory. It is the default
// storage backend and mirrors the PostgreSQL schema: owners must exist, and
// deleting a user or habit cascades to the rows that reference it.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studyos/internal/repository"
	"github.com/limbo/studyos/pkg/entity"
)

var (
	_ repository.UsersRepositoryI         = (*UsersRepository)(nil)
	_ repository.TasksRepositoryI         = (*TasksRepository)(nil)
	_ repository.HabitsRepositoryI        = (*HabitsRepository)(nil)
	_ repository.HabitLogsRepositoryI     = (*HabitLogsRepository)(nil)
	_ repository.QuizzesRepositoryI       = (*QuizzesRepository)(nil)
	_ repository.QuizResultsRepositoryI   = (*QuizResultsRepository)(nil)
	_ repository.NotesRepositoryI         = (*NotesRepository)(nil)
	_ repository.StudyPlansRepositoryI    = (*StudyPlansRepository)(nil)
	_ repository.StudySessionsRepositoryI = (*StudySessionsRepository)(nil)
	_ repository.GoalsRepositoryI         = (*GoalsRepository)(nil)
	_ repository.GamificationRepositoryI  = (*GamificationRepository)(nil)
)

// table keeps rows in insertion order, which stands in for ORDER BY created_at.
type table[T any] struct {
	rows  map[uuid.UUID]*T
	order []uuid.UUID
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uuid.UUID]*T)}
}

func (t *table[T]) insert(id uuid.UUID, row *T) {
	t.rows[id] = row
	t.order = append(t.order, id)
}

func (t *table[T]) get(id uuid.UUID) (*T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) remove(id uuid.UUID) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// removeWhere deletes every row matching pred.
func (t *table[T]) removeWhere(pred func(*T) bool) int {
	kept := t.order[:0]
	removed := 0
	for _, id := range t.order {
		if pred(t.rows[id]) {
			delete(t.rows, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
	return removed
}

func (t *table[T]) each(f func(*T)) {
	for _, id := range t.order {
		f(t.rows[id])
	}
}

type db struct {
	mu       sync.RWMutex
	now      func() time.Time
	users    *table[entity.User]
	tasks    *table[entity.Task]
	habits   *table[entity.Habit]
	logs     map[uuid.UUID]map[entity.Date]int
	quizzes  *table[entity.Quiz]
	results  *table[entity.QuizResult]
	notes    *table[entity.Note]
	plans    *table[entity.StudyPlan]
	sessions *table[entity.StudySession]
	goals    *table[entity.Goal]
	progress map[uuid.UUID]entity.Progress
	rewards  map[rewardKey]struct{}
	badges   map[uuid.UUID][]entity.EarnedBadge
}

func (d *db) userExists(uid uuid.UUID) bool {
	_, ok := d.users.get(uid)
	return ok
}

// Store bundles the repositories that share one in-memory database.
type Store struct {
	Users       *UsersRepository
	Tasks       *TasksRepository
	Habits      *HabitsRepository
	HabitLogs   *HabitLogsRepository
	Quizzes     *QuizzesRepository
	QuizResults *QuizResultsRepository
	Notes       *NotesRepository
	StudyPlans  *StudyPlansRepository
	Sessions    *StudySessionsRepository
	Goals       *GoalsRepository
	Rewards     *GamificationRepository
}

type Option func(*db)

// WithClock overrides the source of created_at/updated_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *db) {
		d.now = now
	}
}

func New(opts ...Option) *Store {
	d := &db{
		now:      time.Now,
		users:    newTable[entity.User](),
		tasks:    newTable[entity.Task](),
		habits:   newTable[entity.Habit](),
		logs:     make(map[uuid.UUID]map[entity.Date]int),
		quizzes:  newTable[entity.Quiz](),
		results:  newTable[entity.QuizResult](),
		notes:    newTable[entity.Note](),
		plans:    newTable[entity.StudyPlan](),
		sessions: newTable[entity.StudySession](),
		goals:    newTable[entity.Goal](),
		progress: make(map[uuid.UUID]entity.Progress),
		rewards:  make(map[rewardKey]struct{}),
		badges:   make(map[uuid.UUID][]entity.EarnedBadge),
	}
	for _, opt := range opts {
		opt(d)
	}
	return &Store{
		Users:       &UsersRepository{db: d},
		Tasks:       &TasksRepository{db: d},
		Habits:      &HabitsRepository{db: d},
		HabitLogs:   &HabitLogsRepository{db: d},
		Quizzes:     &QuizzesRepository{db: d},
		QuizResults: &QuizResultsRepository{db: d},
		Notes:       &NotesRepository{db: d},
		StudyPlans:  &StudyPlansRepository{db: d},
		Sessions:    &StudySessionsRepository{db: d},
		Goals:       &GoalsRepository{db: d},
		Rewards:     &GamificationRepository{db: d},
	}
}
