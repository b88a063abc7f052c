package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/internal/generator"
	"github.com/limbo/studyos/internal/repository/mocks"
	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAnalytics(t *testing.T) {
	t.Parallel()
	clock := newTestClock()
	store := newStore(clock)
	owner := newOwner(t, store, "stats@example.com")
	opts := []service.Option{service.WithClock(clock.Now)}
	tasks := service.NewTasksService(store.Tasks, opts...)
	habits := service.NewHabitsService(store.Habits, store.HabitLogs, opts...)
	quizzes := service.NewQuizzesService(store.Quizzes, store.QuizResults, generator.NewPlaceholder(), opts...)
	plans := service.NewStudyPlansService(store.StudyPlans, generator.NewPlaceholder(), opts...)
	sessions := service.NewSessionsService(store.Sessions, opts...)
	analytics := service.NewAnalyticsService(service.AnalyticsRepos{
		Tasks:       store.Tasks,
		Habits:      store.Habits,
		QuizResults: store.QuizResults,
		StudyPlans:  store.StudyPlans,
		Sessions:    store.Sessions,
	}, opts...)
	ctx := context.Background()

	// activity ten days back falls outside a week
	oldTask, err := tasks.CreateTask(ctx, owner.ID, &service.CreateTaskRequest{Title: "Old"})
	require.NoError(t, err)
	_, err = tasks.CompleteTask(ctx, oldTask.ID, owner.ID)
	require.NoError(t, err)
	oldQuiz, err := quizzes.CreateQuiz(ctx, owner.ID, &service.CreateQuizRequest{Title: "Old", Subject: "Physics", NumQuestions: 1})
	require.NoError(t, err)
	_, err = quizzes.SubmitQuiz(ctx, oldQuiz.ID, owner.ID, &service.SubmitQuizRequest{Answers: map[string]string{"q_1": "a"}})
	require.NoError(t, err)
	lapsed, err := habits.CreateHabit(ctx, owner.ID, &service.CreateHabitRequest{Name: "Flashcards"})
	require.NoError(t, err)
	_, err = habits.LogHabit(ctx, lapsed.ID, owner.ID, &service.LogHabitRequest{})
	require.NoError(t, err)

	clock.Advance(10 * 24 * time.Hour)
	today := clock.Today()

	task, err := tasks.CreateTask(ctx, owner.ID, &service.CreateTaskRequest{Title: "New"})
	require.NoError(t, err)
	_, err = tasks.CompleteTask(ctx, task.ID, owner.ID)
	require.NoError(t, err)
	_, err = tasks.CreateTask(ctx, owner.ID, &service.CreateTaskRequest{Title: "Pending"})
	require.NoError(t, err)

	reading, err := habits.CreateHabit(ctx, owner.ID, &service.CreateHabitRequest{Name: "Reading"})
	require.NoError(t, err)
	_, err = habits.LogHabit(ctx, reading.ID, owner.ID, &service.LogHabitRequest{})
	require.NoError(t, err)

	plan, err := plans.CreatePlan(ctx, owner.ID, &service.CreateStudyPlanRequest{
		Title:     "Finals",
		Subjects:  []service.SubjectRequest{{Name: "Math", Topics: []string{"Limits"}}, {Name: "Physics"}},
		StartDate: today.AddDays(-2),
		EndDate:   today.AddDays(3),
	})
	require.NoError(t, err)
	_, err = plans.CompleteItem(ctx, plan.ID, owner.ID, &service.CompleteItemRequest{Date: today.AddDays(-1), Index: 0})
	require.NoError(t, err)

	session, err := sessions.StartSession(ctx, owner.ID, &service.StartSessionRequest{Subject: "Math"})
	require.NoError(t, err)
	clock.Advance(90 * time.Minute)
	_, err = sessions.EndSession(ctx, session.ID, owner.ID, &service.EndSessionRequest{})
	require.NoError(t, err)
	// still running sessions are not counted
	_, err = sessions.StartSession(ctx, owner.ID, &service.StartSessionRequest{Subject: "Physics"})
	require.NoError(t, err)

	physics, err := quizzes.CreateQuiz(ctx, owner.ID, &service.CreateQuizRequest{Title: "Week", Subject: "Physics", NumQuestions: 4})
	require.NoError(t, err)
	_, err = quizzes.SubmitQuiz(ctx, physics.ID, owner.ID, &service.SubmitQuizRequest{Answers: map[string]string{"q_1": "a", "q_2": "b", "q_3": "a"}})
	require.NoError(t, err)
	math, err := quizzes.CreateQuiz(ctx, owner.ID, &service.CreateQuizRequest{Title: "Week", Subject: "Math", Topic: "Limits", NumQuestions: 2})
	require.NoError(t, err)
	_, err = quizzes.SubmitQuiz(ctx, math.ID, owner.ID, &service.SubmitQuizRequest{Answers: map[string]string{"q_1": "a", "q_2": "b"}})
	require.NoError(t, err)

	res, err := analytics.GetAnalytics(ctx, owner.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, today.AddDays(-6), res.From)
	assert.Equal(t, today, res.To)
	assert.Equal(t, 2.5, res.TotalStudyHours)
	assert.Equal(t, 1, res.TotalTasksCompleted)
	assert.Equal(t, 2, res.TotalQuizzesTaken)
	assert.Equal(t, 75.0, res.AverageQuizScore)
	assert.Equal(t, 1, res.CurrentStreak)
	assert.Equal(t, 0.17, res.WeeklyGoalProgress)

	require.Len(t, res.DailyProgress, 7)
	last := res.DailyProgress[6]
	assert.Equal(t, today, last.Date)
	assert.Equal(t, "Mon", last.Day)
	assert.Equal(t, 1.5, last.StudyHours)
	assert.Equal(t, 1, last.TasksCompleted)
	assert.Equal(t, 2, last.QuizzesTaken)
	assert.Equal(t, 1.0, res.DailyProgress[5].StudyHours)
	assert.Zero(t, res.DailyProgress[0].StudyHours)

	assert.Equal(t, []entity.SubjectPerformance{
		{Subject: "Math", TotalStudyHours: 2.5, QuizzesTaken: 1, AverageQuizScore: 100},
		{Subject: "Physics", QuizzesTaken: 1, AverageQuizScore: 50},
	}, res.SubjectPerformance)
	assert.Equal(t, []entity.TopicScore{{Subject: "Physics", Topic: "Physics", Score: 50, Answered: 4}}, res.WeakAreas)
	assert.Equal(t, []entity.TopicScore{{Subject: "Math", Topic: "Limits", Score: 100, Answered: 2}}, res.StrongAreas)

	wide, err := analytics.GetAnalytics(ctx, owner.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, wide.TotalTasksCompleted)
	assert.Equal(t, 3, wide.TotalQuizzesTaken)

	for _, days := range []int{-1, 366} {
		_, err = analytics.GetAnalytics(ctx, owner.ID, days)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	}
}

func TestGetAnalyticsEmpty(t *testing.T) {
	t.Parallel()
	clock := newTestClock()
	store := newStore(clock)
	owner := newOwner(t, store, "empty@example.com")
	analytics := service.NewAnalyticsService(service.AnalyticsRepos{
		Tasks:       store.Tasks,
		Habits:      store.Habits,
		QuizResults: store.QuizResults,
		StudyPlans:  store.StudyPlans,
		Sessions:    store.Sessions,
	}, service.WithClock(clock.Now))

	res, err := analytics.GetAnalytics(context.Background(), owner.ID, 1)
	require.NoError(t, err)
	assert.Zero(t, res.TotalStudyHours)
	assert.Zero(t, res.AverageQuizScore)
	assert.Zero(t, res.WeeklyGoalProgress)
	assert.Len(t, res.DailyProgress, 1)
	assert.Empty(t, res.SubjectPerformance)
	assert.NotNil(t, res.WeakAreas)
	assert.NotNil(t, res.StrongAreas)
}

func TestGetAnalyticsRepositoryError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockStudySessionsRepositoryI(ctrl)
	analytics := service.NewAnalyticsService(service.AnalyticsRepos{
		Tasks:       mocks.NewMockTasksRepositoryI(ctrl),
		Habits:      mocks.NewMockHabitsRepositoryI(ctrl),
		QuizResults: mocks.NewMockQuizResultsRepositoryI(ctrl),
		StudyPlans:  mocks.NewMockStudyPlansRepositoryI(ctrl),
		Sessions:    sessions,
	})
	sessions.EXPECT().GetByUserAndPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("conn reset"))
	_, err := analytics.GetAnalytics(context.Background(), uuid.New(), 7)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errorvalues.ErrValidation)
}
