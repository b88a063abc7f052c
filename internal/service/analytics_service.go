package service

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studyos/internal/repository"
	"github.com/limbo/studyos/pkg/entity"
)

const (
	defaultAnalyticsDays = 7
	maxAnalyticsDays     = 365
	// Habits read per request
	maxHabitsScanned = 1000

	weakTopicBelow   = 60.0
	strongTopicAbove = 80.0
)

type AnalyticsService struct {
	tasks    repository.TasksRepositoryI
	habits   repository.HabitsRepositoryI
	results  repository.QuizResultsRepositoryI
	plans    repository.StudyPlansRepositoryI
	sessions repository.StudySessionsRepositoryI
	opts     options
}

type AnalyticsRepos struct {
	Tasks       repository.TasksRepositoryI
	Habits      repository.HabitsRepositoryI
	QuizResults repository.QuizResultsRepositoryI
	StudyPlans  repository.StudyPlansRepositoryI
	Sessions    repository.StudySessionsRepositoryI
}

func NewAnalyticsService(repos AnalyticsRepos, opts ...Option) *AnalyticsService {
	if repos.Tasks == nil || repos.Habits == nil || repos.QuizResults == nil || repos.StudyPlans == nil || repos.Sessions == nil {
		log.Fatal("on analytics service provided nil repos")
	}
	return &AnalyticsService{
		tasks:    repos.Tasks,
		habits:   repos.Habits,
		results:  repos.QuizResults,
		plans:    repos.StudyPlans,
		sessions: repos.Sessions,
		opts:     buildOptions(opts),
	}
}

// window is the half-open span of whole days an analytics request covers.
type window struct {
	from, to   entity.Date
	start, end time.Time
	loc        *time.Location
}

func (w window) dayOf(t time.Time) entity.Date {
	return entity.DateOf(t.In(w.loc))
}

func (w window) containsTime(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

func (w window) containsDate(d entity.Date) bool {
	return !d.Before(w.from) && !d.After(w.to)
}

func newWindow(now time.Time, days int) window {
	loc := now.Location()
	to := entity.DateOf(now)
	from := to.AddDays(1 - days)
	return window{
		from:  from,
		to:    to,
		start: startOfDay(from, loc),
		end:   startOfDay(to.AddDays(1), loc),
		loc:   loc,
	}
}

func startOfDay(d entity.Date, loc *time.Location) time.Time {
	y, m, day := d.Time().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

type subjectAcc struct {
	hours   float64
	quizzes int
	pctSum  float64
}

type topicAcc struct {
	subject, topic    string
	answered, correct int
}

func (as *AnalyticsService) GetAnalytics(ctx context.Context, uid uuid.UUID, days int) (*entity.Analytics, error) {
	if days == 0 {
		days = defaultAnalyticsDays
	}
	if days < 1 || days > maxAnalyticsDays {
		return nil, validationError("days must be between 1 and 365")
	}
	now := as.opts.now()
	w := newWindow(now, days)

	res := &entity.Analytics{From: w.from, To: w.to}
	daily := make([]entity.DayProgress, days)
	for i := range daily {
		d := w.from.AddDays(i)
		daily[i] = entity.DayProgress{Date: d, Day: d.Time().Weekday().String()[:3]}
	}
	dayIndex := func(d entity.Date) int {
		return d.DaysSince(w.from)
	}
	subjects := make(map[string]*subjectAcc)
	subjectOf := func(name string) *subjectAcc {
		key := strings.TrimSpace(name)
		acc, ok := subjects[key]
		if !ok {
			acc = &subjectAcc{}
			subjects[key] = acc
		}
		return acc
	}

	sessions, err := as.sessions.GetByUserAndPeriod(ctx, uid, w.start, w.end)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	for _, s := range sessions {
		if s.Status != entity.SessionCompleted {
			continue
		}
		hours := float64(s.DurationSeconds) / 3600
		res.TotalStudyHours += hours
		daily[dayIndex(w.dayOf(s.StartTime))].StudyHours += hours
		subjectOf(s.Subject).hours += hours
	}

	plans, err := as.plans.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("study plans repository error: " + err.Error())
	}
	scheduled, done := 0, 0
	for _, p := range plans {
		for _, day := range p.DailySchedule {
			if !w.containsDate(day.Date) {
				continue
			}
			for _, item := range day.Items {
				scheduled++
				if !item.Completed {
					continue
				}
				done++
				hours := float64(item.DurationMinutes) / 60
				res.TotalStudyHours += hours
				daily[dayIndex(day.Date)].StudyHours += hours
				subjectOf(item.Subject).hours += hours
			}
		}
	}
	if scheduled > 0 {
		res.WeeklyGoalProgress = roundTo2(float64(done) / float64(scheduled))
	}

	tasks, err := as.tasks.GetByUserID(ctx, uid, entity.TaskFilter{Status: entity.TaskStatusCompleted})
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	for _, t := range tasks {
		if t.CompletedAt == nil || !w.containsTime(*t.CompletedAt) {
			continue
		}
		res.TotalTasksCompleted++
		daily[dayIndex(w.dayOf(*t.CompletedAt))].TasksCompleted++
	}

	results, err := as.results.GetByUserAndPeriod(ctx, uid, w.start, w.end)
	if err != nil {
		return nil, errors.New("quiz results repository error: " + err.Error())
	}
	topics := make(map[string]*topicAcc)
	pctSum := 0.0
	for _, r := range results {
		res.TotalQuizzesTaken++
		pctSum += r.Percentage
		daily[dayIndex(w.dayOf(r.CompletedAt))].QuizzesTaken++
		acc := subjectOf(r.Subject)
		acc.quizzes++
		acc.pctSum += r.Percentage
		for qid, correct := range r.CorrectAnswers {
			topic := r.Topics[qid]
			if topic == "" {
				topic = r.Subject
			}
			key := r.Subject + "\x00" + topic
			t, ok := topics[key]
			if !ok {
				t = &topicAcc{subject: r.Subject, topic: topic}
				topics[key] = t
			}
			t.answered++
			if strings.EqualFold(strings.TrimSpace(r.Answers[qid]), correct) {
				t.correct++
			}
		}
	}
	if res.TotalQuizzesTaken > 0 {
		res.AverageQuizScore = roundTo2(pctSum / float64(res.TotalQuizzesTaken))
	}

	habits, err := as.habits.GetByUserID(ctx, uid, maxHabitsScanned, 0)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	for _, h := range habits {
		res.CurrentStreak = max(res.CurrentStreak, liveStreak(h, w.to))
	}

	res.TotalStudyHours = roundTo2(res.TotalStudyHours)
	for i := range daily {
		daily[i].StudyHours = roundTo2(daily[i].StudyHours)
	}
	res.DailyProgress = daily
	res.SubjectPerformance = subjectPerformance(subjects)
	res.WeakAreas, res.StrongAreas = topicAreas(topics)
	return res, nil
}

// liveStreak is the stored streak unless the period following the last
// completion has already run out.
func liveStreak(h *entity.Habit, today entity.Date) int {
	if h.LastCompletedOn.IsZero() || today.DaysSince(h.LastCompletedOn) >= 2*h.PeriodDays() {
		return 0
	}
	return h.Streak
}

func subjectPerformance(subjects map[string]*subjectAcc) []entity.SubjectPerformance {
	perf := make([]entity.SubjectPerformance, 0, len(subjects))
	for name, acc := range subjects {
		p := entity.SubjectPerformance{
			Subject:         name,
			TotalStudyHours: roundTo2(acc.hours),
			QuizzesTaken:    acc.quizzes,
		}
		if acc.quizzes > 0 {
			p.AverageQuizScore = roundTo2(acc.pctSum / float64(acc.quizzes))
		}
		perf = append(perf, p)
	}
	slices.SortFunc(perf, func(a, b entity.SubjectPerformance) int {
		return strings.Compare(a.Subject, b.Subject)
	})
	return perf
}

// topicAreas splits topics into weak ones, weakest first, and strong ones,
// strongest first.
func topicAreas(topics map[string]*topicAcc) (weak, strong []entity.TopicScore) {
	weak = make([]entity.TopicScore, 0)
	strong = make([]entity.TopicScore, 0)
	for _, t := range topics {
		score := entity.TopicScore{
			Subject:  t.subject,
			Topic:    t.topic,
			Score:    roundTo2(float64(t.correct) / float64(t.answered) * 100),
			Answered: t.answered,
		}
		switch {
		case score.Score < weakTopicBelow:
			weak = append(weak, score)
		case score.Score >= strongTopicAbove:
			strong = append(strong, score)
		}
	}
	byName := func(a, b entity.TopicScore) int {
		if c := strings.Compare(a.Subject, b.Subject); c != 0 {
			return c
		}
		return strings.Compare(a.Topic, b.Topic)
	}
	slices.SortFunc(weak, func(a, b entity.TopicScore) int {
		if a.Score != b.Score {
			if a.Score < b.Score {
				return -1
			}
			return 1
		}
		return byName(a, b)
	})
	slices.SortFunc(strong, func(a, b entity.TopicScore) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		return byName(a, b)
	})
	return weak, strong
}
