package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/cleanup"
	"github.com/limbo/studyos/pkg/httputil"
)

const (
	// Upper bound for a single handler's service calls
	handlerTimeout         = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	tasksService        service.TasksServiceI
	habitsService       service.HabitsServiceI
	quizzesService      service.QuizzesServiceI
	notesService        service.NotesServiceI
	plansService        service.StudyPlansServiceI
	sessionsService     service.SessionsServiceI
	analyticsService    service.AnalyticsServiceI
	goalsService        service.GoalsServiceI
	gamificationService service.GamificationServiceI
	jwtService          JWTServiceI
	shutdownTimeout     time.Duration
}

type ServicesList struct {
	UserService         service.UserServiceI
	TasksService        service.TasksServiceI
	HabitsService       service.HabitsServiceI
	QuizzesService      service.QuizzesServiceI
	NotesService        service.NotesServiceI
	PlansService        service.StudyPlansServiceI
	SessionsService     service.SessionsServiceI
	AnalyticsService    service.AnalyticsServiceI
	GoalsService        service.GoalsServiceI
	GamificationService service.GamificationServiceI
	JwtService          JWTServiceI
	// Defaults to 10s
	ShutdownTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		tasksService:        servicesOptions.TasksService,
		habitsService:       servicesOptions.HabitsService,
		quizzesService:      servicesOptions.QuizzesService,
		notesService:        servicesOptions.NotesService,
		plansService:        servicesOptions.PlansService,
		sessionsService:     servicesOptions.SessionsService,
		analyticsService:    servicesOptions.AnalyticsService,
		goalsService:        servicesOptions.GoalsService,
		gamificationService: servicesOptions.GamificationService,
		jwtService:          servicesOptions.JwtService,
		shutdownTimeout:     servicesOptions.ShutdownTimeout,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
			r.Post("/refresh", s.Refresh)
			r.Group(func(r chi.Router) {
				r.Use(s.AuthMiddleware)
				r.Get("/me", s.Me)
				r.Post("/logout", s.Logout)
				r.Delete("/account", s.DeleteAccount)
			})
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", s.GetTasks)
				r.Post("/", s.CreateTask)
				r.Get("/{id}", s.GetTask)
				r.Put("/{id}", s.UpdateTask)
				r.Patch("/{id}", s.UpdateTask)
				r.Post("/{id}/complete", s.CompleteTask)
				r.Delete("/{id}", s.DeleteTask)
			})
			r.Route("/habits", func(r chi.Router) {
				r.Get("/", s.GetHabits)
				r.Post("/", s.CreateHabit)
				r.Get("/{id}", s.GetHabit)
				r.Patch("/{id}", s.UpdateHabit)
				r.Delete("/{id}", s.DeleteHabit)
				r.Post("/{id}/log", s.LogHabit)
				r.Get("/{id}/history", s.GetHabitHistory)
				r.Get("/{id}/stats", s.GetHabitStats)
			})
			r.Route("/quizzes", func(r chi.Router) {
				r.Get("/", s.GetQuizzes)
				r.Post("/", s.CreateQuiz)
				r.Get("/{id}", s.GetQuiz)
				r.Delete("/{id}", s.DeleteQuiz)
				r.Post("/{id}/submit", s.SubmitQuiz)
				r.Get("/{id}/results", s.GetQuizResults)
			})
			r.Route("/notes", func(r chi.Router) {
				r.Get("/", s.GetNotes)
				r.Post("/from-text", s.NotesFromText)
				r.Post("/from-youtube", s.NotesFromVideo)
				r.Post("/from-pdf", s.NotesFromDocument)
				r.Get("/{id}", s.GetNote)
				r.Delete("/{id}", s.DeleteNote)
				r.Post("/{id}/generate-mcq", s.GenerateMCQs)
			})
			r.Route("/study-plans", func(r chi.Router) {
				r.Get("/", s.GetStudyPlans)
				r.Post("/", s.CreateStudyPlan)
				r.Get("/{id}", s.GetStudyPlan)
				r.Delete("/{id}", s.DeleteStudyPlan)
				r.Post("/{id}/complete-item", s.CompleteStudyItem)
				r.Post("/{id}/adapt", s.AdaptStudyPlan)
			})
			r.Route("/sessions", func(r chi.Router) {
				r.Get("/", s.GetSessions)
				r.Post("/", s.StartSession)
				r.Get("/active", s.GetActiveSession)
				r.Post("/{id}/end", s.EndSession)
			})
			r.Get("/analytics", s.GetAnalytics)
			r.Route("/goals", func(r chi.Router) {
				r.Get("/", s.GetGoals)
				r.Post("/", s.CreateGoal)
				r.Get("/{id}", s.GetGoal)
				r.Patch("/{id}", s.UpdateGoal)
				r.Delete("/{id}", s.DeleteGoal)
			})
			r.Route("/gamification", func(r chi.Router) {
				r.Get("/stats", s.GetGamificationStats)
				r.Get("/badges", s.GetBadges)
			})
		})
	})
}

// Router exposes the configured handler, mostly for tests.
func (s *Server) Router() http.Handler {
	return s.mx
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Run serves until SIGINT/SIGTERM, then drains connections and runs the
// registered cleanup jobs.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})

	errCh := make(chan error, 1)
	go func() {
		log.Println("Server started on " + addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		cleanup.CleanUp()
		return err
	case sig := <-stop:
		log.Println("Received " + sig.String() + ", shutting down")
	}
	cleanup.CleanUp()
	return <-errCh
}
