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
	servicemocks "github.com/limbo/studyos/internal/service/mocks"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planSubjects(names ...string) []entity.Subject {
	subjects := make([]entity.Subject, 0, len(names))
	for _, name := range names {
		subjects = append(subjects, entity.Subject{Name: name, Topics: []string{name + " basics"}, Priority: entity.PriorityHigh})
	}
	return subjects
}

func TestBuildSchedule(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Subjects []entity.Subject
		Start    entity.Date
		End      entity.Date
		Days     int
		First    string
		Last     string
		Items    int
	}{
		{
			Desc:     "single day",
			Subjects: planSubjects("Math"),
			Start:    entity.NewDate(2024, time.March, 1),
			End:      entity.NewDate(2024, time.March, 1),
			Days:     1,
			First:    "2024-03-01",
			Last:     "2024-03-01",
			Items:    1,
		},
		{
			Desc:     "capped at thirty days",
			Subjects: planSubjects("Math", "Physics"),
			Start:    entity.NewDate(2024, time.March, 1),
			End:      entity.NewDate(2024, time.April, 10),
			Days:     30,
			First:    "2024-03-01",
			Last:     "2024-03-30",
			Items:    2,
		},
		{
			Desc:     "crosses a month",
			Subjects: planSubjects("Math", "Physics", "Chemistry", "Biology"),
			Start:    entity.NewDate(2024, time.January, 20),
			End:      entity.NewDate(2024, time.February, 10),
			Days:     22,
			First:    "2024-01-20",
			Last:     "2024-02-10",
			Items:    3,
		},
		{
			Desc:     "leap day",
			Subjects: planSubjects("Math"),
			Start:    entity.NewDate(2024, time.February, 27),
			End:      entity.NewDate(2024, time.March, 2),
			Days:     5,
			First:    "2024-02-27",
			Last:     "2024-03-02",
			Items:    1,
		},
	}
	for _, tc := range testCases {
		schedule := service.BuildSchedule(tc.Subjects, tc.Start, tc.End)
		require.Len(t, schedule, tc.Days, tc.Desc)
		assert.Equal(t, tc.First, schedule[0].Date.String(), tc.Desc)
		assert.Equal(t, tc.Last, schedule[len(schedule)-1].Date.String(), tc.Desc)
		for i, day := range schedule {
			assert.Equal(t, tc.Start.AddDays(i), day.Date, tc.Desc)
			assert.Len(t, day.Items, tc.Items, tc.Desc)
			assert.Equal(t, float64(tc.Items), day.TotalHours, tc.Desc)
		}
	}

	leap := service.BuildSchedule(planSubjects("Math"), entity.NewDate(2024, time.February, 27), entity.NewDate(2024, time.March, 2))
	assert.Equal(t, "2024-02-29", leap[2].Date.String())

	review := service.BuildSchedule([]entity.Subject{{Name: "History", Priority: entity.PriorityLow}}, entity.NewDate(2024, time.May, 1), entity.NewDate(2024, time.May, 1))
	assert.Equal(t, entity.ScheduleItem{Subject: "History", Topic: "General Review", DurationMinutes: 60, Priority: entity.PriorityLow}, review[0].Items[0])
}

func TestCreatePlanValidation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStudyPlansRepositoryI(ctrl)
	serv := service.NewStudyPlansService(repo, servicemocks.NewMockContentGenerator(ctrl))
	start := entity.NewDate(2024, time.March, 1)
	subjects := []service.SubjectRequest{{Name: "Math", Topics: []string{"Algebra"}}}
	testCases := []struct {
		Desc    string
		Request service.CreateStudyPlanRequest
	}{
		{Desc: "no subjects", Request: service.CreateStudyPlanRequest{Title: "Exams", StartDate: start, EndDate: start}},
		{Desc: "no start", Request: service.CreateStudyPlanRequest{Title: "Exams", Subjects: subjects, EndDate: start}},
		{Desc: "no end", Request: service.CreateStudyPlanRequest{Title: "Exams", Subjects: subjects, StartDate: start}},
		{Desc: "end before start", Request: service.CreateStudyPlanRequest{Title: "Exams", Subjects: subjects, StartDate: start, EndDate: start.AddDays(-1)}},
		{Desc: "blank topic", Request: service.CreateStudyPlanRequest{Title: "Exams", Subjects: []service.SubjectRequest{{Name: "Math", Topics: []string{" "}}}, StartDate: start, EndDate: start}},
		{Desc: "too many hours", Request: service.CreateStudyPlanRequest{Title: "Exams", Subjects: subjects, StartDate: start, EndDate: start, HoursPerDay: 25}},
	}
	for _, tc := range testCases {
		_, err := serv.CreatePlan(context.Background(), uuid.New(), &tc.Request)
		assert.ErrorIs(t, err, errorvalues.ErrValidation, tc.Desc)
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, plan *entity.StudyPlan) error {
		assert.Equal(t, 4.0, plan.StudyHoursPerDay)
		assert.Equal(t, entity.PriorityMedium, plan.Subjects[0].Priority)
		assert.True(t, plan.IsActive)
		return nil
	})
	_, err := serv.CreatePlan(context.Background(), uuid.New(), &service.CreateStudyPlanRequest{Title: "Exams", Subjects: subjects, StartDate: start, EndDate: start})
	require.NoError(t, err)
}

func TestCompleteItem(t *testing.T) {
	t.Parallel()
	clock := newTestClock()
	store := newStore(clock)
	owner := newOwner(t, store, "plans@example.com")
	stranger := newOwner(t, store, "stranger@example.com")
	serv := service.NewStudyPlansService(store.StudyPlans, generator.NewPlaceholder(), service.WithClock(clock.Now))
	ctx := context.Background()
	start := clock.Today()
	plan, err := serv.CreatePlan(ctx, owner.ID, &service.CreateStudyPlanRequest{
		Title:     "Finals",
		Subjects:  []service.SubjectRequest{{Name: "Math", Topics: []string{"Limits"}}, {Name: "Physics"}},
		StartDate: start,
		EndDate:   start.AddDays(6),
	})
	require.NoError(t, err)
	require.Len(t, plan.DailySchedule, 7)

	day := start.AddDays(2)
	updated, err := serv.CompleteItem(ctx, plan.ID, owner.ID, &service.CompleteItemRequest{Date: day, Index: 1})
	require.NoError(t, err)
	assert.True(t, updated.DailySchedule[2].Items[1].Completed)
	assert.False(t, updated.DailySchedule[2].Items[0].Completed)

	again, err := serv.CompleteItem(ctx, plan.ID, owner.ID, &service.CompleteItemRequest{Date: day, Index: 1})
	require.NoError(t, err)
	assert.Equal(t, updated.DailySchedule, again.DailySchedule)

	stored, err := serv.GetPlan(ctx, plan.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, stored.DailySchedule[2].Items[1].Completed)

	testCases := []struct {
		Desc    string
		User    uuid.UUID
		Request service.CompleteItemRequest
		Error   error
	}{
		{Desc: "index out of range", User: owner.ID, Request: service.CompleteItemRequest{Date: day, Index: 2}, Error: errorvalues.ErrScheduleItemNotFound},
		{Desc: "date outside plan", User: owner.ID, Request: service.CompleteItemRequest{Date: start.AddDays(30)}, Error: errorvalues.ErrScheduleItemNotFound},
		{Desc: "negative index", User: owner.ID, Request: service.CompleteItemRequest{Date: day, Index: -1}, Error: errorvalues.ErrValidation},
		{Desc: "missing date", User: owner.ID, Request: service.CompleteItemRequest{}, Error: errorvalues.ErrValidation},
		{Desc: "foreign plan", User: stranger.ID, Request: service.CompleteItemRequest{Date: day}, Error: errorvalues.ErrPlanNotFound},
	}
	for _, tc := range testCases {
		_, err := serv.CompleteItem(ctx, plan.ID, tc.User, &tc.Request)
		assert.ErrorIs(t, err, tc.Error, tc.Desc)
	}

	adaptations, err := serv.AdaptPlan(ctx, plan.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Increased focus on Math - Limits", adaptations[0])
	_, err = serv.AdaptPlan(ctx, plan.ID, stranger.ID)
	assert.ErrorIs(t, err, errorvalues.ErrPlanNotFound)

	plans, err := serv.GetUserPlans(ctx, stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, plans)
	require.NoError(t, serv.DeletePlan(ctx, plan.ID, owner.ID))
	_, err = serv.GetPlan(ctx, plan.ID, owner.ID)
	assert.ErrorIs(t, err, errorvalues.ErrPlanNotFound)
}

func TestAdaptPlanGeneratorError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStudyPlansRepositoryI(ctrl)
	gen := servicemocks.NewMockContentGenerator(ctrl)
	serv := service.NewStudyPlansService(repo, gen)
	uid := uuid.New()
	plan := &entity.StudyPlan{ID: uuid.New(), UserID: uid}

	repo.EXPECT().GetByID(gomock.Any(), plan.ID).Return(plan, nil)
	gen.EXPECT().PlanAdaptations(gomock.Any(), plan).Return(nil, errors.New("model unavailable"))
	_, err := serv.AdaptPlan(context.Background(), plan.ID, uid)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errorvalues.ErrGenerationTimeout)
}
