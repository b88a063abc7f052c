package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/limbo/studyos/internal/api"
	"github.com/limbo/studyos/internal/generator"
	"github.com/limbo/studyos/internal/repository"
	"github.com/limbo/studyos/internal/repository/memory"
	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/config"
	jwtservice "github.com/limbo/studyos/pkg/jwt_service"
	"github.com/limbo/studyos/pkg/keylock"
)

const connectTimeout = 10 * time.Second

func init() {
	service.InitValidator()
}

// repos is the set of storage implementations the services are built on.
type repos struct {
	users     repository.UsersRepositoryI
	tasks     repository.TasksRepositoryI
	habits    repository.HabitsRepositoryI
	habitLogs repository.HabitLogsRepositoryI
	quizzes   repository.QuizzesRepositoryI
	results   repository.QuizResultsRepositoryI
	notes     repository.NotesRepositoryI
	plans     repository.StudyPlansRepositoryI
	sessions  repository.StudySessionsRepositoryI
	goals     repository.GoalsRepositoryI
	rewards   repository.GamificationRepositoryI
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.GetString("LOG_LEVEL"))); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if strings.EqualFold(cfg.GetString("LOG_FORMAT"), "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func memoryRepos() *repos {
	store := memory.New()
	return &repos{
		users:     store.Users,
		tasks:     store.Tasks,
		habits:    store.Habits,
		habitLogs: store.HabitLogs,
		quizzes:   store.Quizzes,
		results:   store.QuizResults,
		notes:     store.Notes,
		plans:     store.StudyPlans,
		sessions:  store.Sessions,
		goals:     store.Goals,
		rewards:   store.Rewards,
	}
}

func postgresRepos(cfg *config.Config) *repos {
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	if cfg.GetBool("MIGRATE_ON_START") {
		if err := repository.Migrate(&dbCfg, cfg.GetString("MIGRATIONS_DIR")); err != nil {
			log.Fatal(err)
		}
		slog.Info("migrations applied")
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	pool, err := repository.Connect(ctx, &dbCfg)
	if err != nil {
		log.Fatal(err)
	}
	return &repos{
		users:     repository.NewUsersRepoWithConn(pool),
		tasks:     repository.NewTasksRepoWithConn(pool),
		habits:    repository.NewHabitsRepoWithConn(pool),
		habitLogs: repository.NewHabitLogsRepoWithConn(pool),
		quizzes:   repository.NewQuizzesRepoWithConn(pool),
		results:   repository.NewQuizResultsRepoWithConn(pool),
		notes:     repository.NewNotesRepoWithConn(pool),
		plans:     repository.NewStudyPlansRepoWithConn(pool),
		sessions:  repository.NewStudySessionsRepoWithConn(pool),
		goals:     repository.NewGoalsRepoWithConn(pool),
		rewards:   repository.NewGamificationRepoWithConn(pool),
	}
}

func main() {
	cfg := config.New()
	setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var r *repos
	switch storage := cfg.GetString("STORAGE"); storage {
	case "memory":
		r = memoryRepos()
	case "postgres":
		r = postgresRepos(cfg)
	default:
		log.Fatal("unknown STORAGE: " + storage)
	}
	slog.Info("storage ready", slog.String("storage", cfg.GetString("STORAGE")))

	opts := []service.Option{
		service.WithLocks(keylock.New(keylock.DefaultStripes)),
		service.WithGeneratorTimeout(cfg.GetDuration("GENERATOR_TIMEOUT")),
	}
	gen := generator.NewPlaceholder()
	gamification := service.NewGamificationService(service.GamificationRepos{
		Rewards:  r.rewards,
		Tasks:    r.tasks,
		Sessions: r.sessions,
		Habits:   r.habits,
	}, opts...)
	rewarded := append(opts[:len(opts):len(opts)], service.WithRewarder(gamification))
	serv := api.New(&api.ServicesList{
		UserService:         service.NewUserService(r.users, append(opts[:len(opts):len(opts)], service.WithAutoRegister(cfg.GetBool("AUTH_AUTO_REGISTER")))...),
		TasksService:        service.NewTasksService(r.tasks, rewarded...),
		HabitsService:       service.NewHabitsService(r.habits, r.habitLogs, opts...),
		QuizzesService:      service.NewQuizzesService(r.quizzes, r.results, gen, opts...),
		NotesService:        service.NewNotesService(r.notes, gen, opts...),
		PlansService:        service.NewStudyPlansService(r.plans, gen, opts...),
		SessionsService:     service.NewSessionsService(r.sessions, rewarded...),
		GoalsService:        service.NewGoalsService(r.goals, opts...),
		GamificationService: gamification,
		AnalyticsService: service.NewAnalyticsService(service.AnalyticsRepos{
			Tasks:       r.tasks,
			Habits:      r.habits,
			QuizResults: r.results,
			StudyPlans:  r.plans,
			Sessions:    r.sessions,
		}, opts...),
		JwtService: jwtservice.New(
			cfg.GetString("JWT_SECRET"),
			cfg.GetDuration("JWT_ACCESS_TTL"),
			cfg.GetDuration("JWT_REFRESH_TTL"),
		),
		ShutdownTimeout: cfg.GetDuration("SHUTDOWN_TIMEOUT"),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
