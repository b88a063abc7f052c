// Package generator holds the content generator used when no model backend
// is configured. Its output is deterministic and only shaped like real
// generated content.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/entity"
)

const summaryExcerpt = 200

var mixedCycle = []string{entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard}

var _ service.ContentGenerator = (*Placeholder)(nil)

type Placeholder struct{}

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (p *Placeholder) QuizQuestions(ctx context.Context, spec service.QuizSpec) ([]entity.QuizQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	topic := spec.Topic
	if topic == "" {
		topic = spec.Subject
	}
	questions := make([]entity.QuizQuestion, 0, spec.Count)
	for i := range spec.Count {
		n := i + 1
		options := make(map[string]string, len(entity.OptionLabels))
		for _, label := range entity.OptionLabels {
			options[label] = fmt.Sprintf("Option %s for question %d", strings.ToUpper(label), n)
		}
		questions = append(questions, entity.QuizQuestion{
			ID:            fmt.Sprintf("q_%d", n),
			Question:      fmt.Sprintf("Sample question %d about %s?", n, spec.Subject),
			Options:       options,
			CorrectAnswer: entity.OptionLabels[i%len(entity.OptionLabels)],
			Explanation:   fmt.Sprintf("Explanation for question %d", n),
			Difficulty:    cycleDifficulty(spec.Difficulty, i),
			Topic:         topic,
		})
	}
	return questions, nil
}

func cycleDifficulty(difficulty string, i int) string {
	if difficulty == "" || difficulty == entity.DifficultyMixed {
		return mixedCycle[i%len(mixedCycle)]
	}
	return difficulty
}

func (p *Placeholder) Notes(ctx context.Context, src service.NoteSource) (*service.GeneratedNotes, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch src.Type {
	case entity.SourceText:
		return textNotes(src), nil
	case entity.SourceVideo:
		return videoNotes(src), nil
	case entity.SourceDocument:
		return documentNotes(src), nil
	}
	return nil, fmt.Errorf("unsupported note source %q", src.Type)
}

func textNotes(src service.NoteSource) *service.GeneratedNotes {
	excerpt := src.Content
	if r := []rune(excerpt); len(r) > summaryExcerpt {
		excerpt = string(r[:summaryExcerpt])
	}
	return &service.GeneratedNotes{
		Title:   titleOr(src.Title, "Generated Notes"),
		Content: src.Content,
		KeyPoints: []string{
			"Main concept explanation from the content",
			"Key terminology and definitions",
			"Important relationships between concepts",
			"Practical applications mentioned",
			"Summary of main arguments",
		},
		Summary: "AI-generated summary of the provided content. The content covers key concepts and their relationships. " + excerpt + "...",
		MCQs: []entity.MCQ{
			placeholderMCQ("What is the main topic discussed in this content?", "Option", "a", "This is the correct answer because...", entity.DifficultyMedium),
		},
	}
}

func videoNotes(src service.NoteSource) *service.GeneratedNotes {
	return &service.GeneratedNotes{
		Title:   titleOr(src.Title, "Notes from YouTube Video"),
		Content: "Extracted transcript content would appear here...",
		KeyPoints: []string{
			"Key concept from video",
			"Important explanation point",
			"Practical demonstration summary",
			"Key takeaway 1",
			"Key takeaway 2",
		},
		Summary: "AI-generated summary of the YouTube video content. The video covers important topics with practical demonstrations.",
		MCQs: []entity.MCQ{
			placeholderMCQ("Based on the video, what is the correct approach?", "Approach", "b", "As explained in the video...", entity.DifficultyMedium),
		},
	}
}

func documentNotes(src service.NoteSource) *service.GeneratedNotes {
	formula := placeholderMCQ("What is the key formula mentioned?", "", "b", "The document emphasizes this formula for...", entity.DifficultyEasy)
	formula.Options = map[string]string{"a": "E = mc²", "b": "F = ma", "c": "V = IR", "d": "PV = nRT"}
	return &service.GeneratedNotes{
		Title:   titleOr(src.Title, "Notes from "+src.Ref),
		Content: "Extracted PDF content would appear here...",
		KeyPoints: []string{
			"Main concept from PDF",
			"Key definition or formula",
			"Important theorem or principle",
			"Application example",
			"Summary of chapter",
		},
		Summary: fmt.Sprintf("AI-generated summary of %s. The document covers fundamental concepts with detailed explanations.", src.Ref),
		MCQs: []entity.MCQ{
			placeholderMCQ("Based on the document, which statement is correct?", "Statement", "a", "According to the document...", entity.DifficultyMedium),
			formula,
		},
	}
}

func (p *Placeholder) MCQs(ctx context.Context, note *entity.Note, count int, difficulty string) ([]entity.MCQ, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mcqs := make([]entity.MCQ, 0, count)
	for i := range count {
		mcqs = append(mcqs, placeholderMCQ(
			fmt.Sprintf("Generated question %d about %s?", len(note.MCQs)+i+1, note.Title),
			"Option",
			entity.OptionLabels[i%len(entity.OptionLabels)],
			"AI-generated explanation for the answer.",
			cycleDifficulty(difficulty, i),
		))
	}
	return mcqs, nil
}

func (p *Placeholder) PlanAdaptations(ctx context.Context, plan *entity.StudyPlan) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	focus, revision := "your subjects", "your subjects"
	if len(plan.Subjects) > 0 {
		first := plan.Subjects[0]
		focus = first.Name
		if len(first.Topics) > 0 {
			focus += " - " + first.Topics[0]
		}
		revision = first.Name
	}
	if len(plan.Subjects) > 1 {
		revision = plan.Subjects[1].Name
	}
	return []string{
		"Increased focus on " + focus,
		"Added extra revision sessions for " + revision,
		"Optimized schedule for better retention",
	}, nil
}

// placeholderMCQ builds a question whose options read "<word> A".."<word> D".
func placeholderMCQ(question, word, correct, explanation, difficulty string) entity.MCQ {
	options := make(map[string]string, len(entity.OptionLabels))
	for _, label := range entity.OptionLabels {
		options[label] = strings.TrimSpace(word + " " + strings.ToUpper(label))
	}
	return entity.MCQ{
		Question:      question,
		Options:       options,
		CorrectAnswer: correct,
		Explanation:   explanation,
		Difficulty:    difficulty,
	}
}

func titleOr(title, fallback string) string {
	if title != "" {
		return title
	}
	return fallback
}
