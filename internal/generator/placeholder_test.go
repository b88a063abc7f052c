package generator_test

import (
	"context"
	"strings"
	"testing"

	"github.com/limbo/studyos/internal/generator"
	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizQuestions(t *testing.T) {
	gen := generator.NewPlaceholder()
	testCases := []struct {
		Desc         string
		Spec         service.QuizSpec
		Difficulties []string
		Topic        string
	}{
		{
			Desc:         "mixed cycles difficulty",
			Spec:         service.QuizSpec{Subject: "Physics", Difficulty: entity.DifficultyMixed, Count: 4},
			Difficulties: []string{"easy", "medium", "hard", "easy"},
			Topic:        "Physics",
		},
		{
			Desc:         "fixed difficulty and topic",
			Spec:         service.QuizSpec{Subject: "Physics", Topic: "Optics", Difficulty: entity.DifficultyHard, Count: 2},
			Difficulties: []string{"hard", "hard"},
			Topic:        "Optics",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			questions, err := gen.QuizQuestions(context.Background(), tc.Spec)
			require.NoError(t, err)
			require.Len(t, questions, tc.Spec.Count)
			for i, q := range questions {
				assert.Equal(t, tc.Difficulties[i], q.Difficulty)
				assert.Equal(t, tc.Topic, q.Topic)
				assert.Len(t, q.Options, 4)
				assert.Contains(t, q.Options, q.CorrectAnswer)
			}
			assert.Equal(t, "q_1", questions[0].ID)
			assert.Equal(t, "Sample question 1 about Physics?", questions[0].Question)
			assert.Equal(t, "Option A for question 1", questions[0].Options["a"])
			assert.Equal(t, "b", questions[1].CorrectAnswer)
		})
	}
}

func TestNotes(t *testing.T) {
	gen := generator.NewPlaceholder()
	ctx := context.Background()
	t.Run("text", func(t *testing.T) {
		content := strings.Repeat("x", 300)
		notes, err := gen.Notes(ctx, service.NoteSource{Type: entity.SourceText, Content: content})
		require.NoError(t, err)
		assert.Equal(t, "Generated Notes", notes.Title)
		assert.Len(t, notes.KeyPoints, 5)
		assert.True(t, strings.HasSuffix(notes.Summary, strings.Repeat("x", 200)+"..."))
		assert.NotContains(t, notes.Summary, strings.Repeat("x", 201))
		assert.Len(t, notes.MCQs, 1)
	})
	t.Run("document", func(t *testing.T) {
		notes, err := gen.Notes(ctx, service.NoteSource{Type: entity.SourceDocument, Ref: "ch1.pdf"})
		require.NoError(t, err)
		assert.Equal(t, "Notes from ch1.pdf", notes.Title)
		require.Len(t, notes.MCQs, 2)
		assert.Equal(t, "F = ma", notes.MCQs[1].Options["b"])
	})
	t.Run("video keeps given title", func(t *testing.T) {
		notes, err := gen.Notes(ctx, service.NoteSource{Type: entity.SourceVideo, Title: "Lecture 3", Ref: "https://youtu.be/x"})
		require.NoError(t, err)
		assert.Equal(t, "Lecture 3", notes.Title)
		assert.Equal(t, "Approach B", notes.MCQs[0].Options["b"])
	})
	t.Run("unknown source", func(t *testing.T) {
		_, err := gen.Notes(ctx, service.NoteSource{Type: "audio"})
		assert.Error(t, err)
	})
}

func TestCanceledContext(t *testing.T) {
	gen := generator.NewPlaceholder()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gen.QuizQuestions(ctx, service.QuizSpec{Count: 1})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = gen.MCQs(ctx, &entity.Note{}, 1, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanAdaptations(t *testing.T) {
	gen := generator.NewPlaceholder()
	adaptations, err := gen.PlanAdaptations(context.Background(), &entity.StudyPlan{
		Subjects: []entity.Subject{
			{Name: "Mathematics", Topics: []string{"Integration"}},
			{Name: "Physics"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Increased focus on Mathematics - Integration",
		"Added extra revision sessions for Physics",
		"Optimized schedule for better retention",
	}, adaptations)
}
