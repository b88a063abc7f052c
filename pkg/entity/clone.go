package entity

import (
	"maps"
	"slices"
)

// Clone helpers give storage backends value semantics: callers may mutate
// what they get back without touching the stored record.

func (u *User) Clone() *User {
	c := *u
	return &c
}

func (t *Task) Clone() *Task {
	c := *t
	c.Description = clonePtr(t.Description)
	c.Category = clonePtr(t.Category)
	c.DueDate = clonePtr(t.DueDate)
	c.EstimatedMinutes = clonePtr(t.EstimatedMinutes)
	c.CompletedAt = clonePtr(t.CompletedAt)
	return &c
}

func (h *Habit) Clone() *Habit {
	c := *h
	return &c
}

func (q *Quiz) Clone() *Quiz {
	c := *q
	c.Questions = slices.Clone(q.Questions)
	for i := range c.Questions {
		c.Questions[i].Options = maps.Clone(c.Questions[i].Options)
	}
	return &c
}

func (r *QuizResult) Clone() *QuizResult {
	c := *r
	c.Answers = maps.Clone(r.Answers)
	c.CorrectAnswers = maps.Clone(r.CorrectAnswers)
	c.Topics = maps.Clone(r.Topics)
	return &c
}

func (n *Note) Clone() *Note {
	c := *n
	c.SourceRef = clonePtr(n.SourceRef)
	c.KeyPoints = slices.Clone(n.KeyPoints)
	c.MCQs = slices.Clone(n.MCQs)
	for i := range c.MCQs {
		c.MCQs[i].Options = maps.Clone(c.MCQs[i].Options)
	}
	return &c
}

func (p *StudyPlan) Clone() *StudyPlan {
	c := *p
	c.Subjects = slices.Clone(p.Subjects)
	for i := range c.Subjects {
		c.Subjects[i].Topics = slices.Clone(c.Subjects[i].Topics)
	}
	c.DailySchedule = slices.Clone(p.DailySchedule)
	for i := range c.DailySchedule {
		c.DailySchedule[i].Items = slices.Clone(c.DailySchedule[i].Items)
	}
	return &c
}

func (s *StudySession) Clone() *StudySession {
	c := *s
	c.EndTime = clonePtr(s.EndTime)
	c.FocusScore = clonePtr(s.FocusScore)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
