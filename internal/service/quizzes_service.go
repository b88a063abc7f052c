package service

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/internal/repository"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/limbo/studyos/pkg/keylock"
)

const (
	defaultQuizQuestions = 10
	// Minutes per question
	quizMinutesPerQuestion = 2
)

type QuizzesService struct {
	repo        repository.QuizzesRepositoryI
	resultsRepo repository.QuizResultsRepositoryI
	gen         ContentGenerator
	locks       *keylock.Striped
	opts        options
}

func NewQuizzesService(quizzesRepo repository.QuizzesRepositoryI, resultsRepo repository.QuizResultsRepositoryI, gen ContentGenerator, opts ...Option) *QuizzesService {
	if quizzesRepo == nil || resultsRepo == nil || gen == nil {
		log.Fatal("on quizzes service provided nil dependencies")
	}
	o := buildOptions(opts)
	return &QuizzesService{
		repo:        quizzesRepo,
		resultsRepo: resultsRepo,
		gen:         gen,
		locks:       o.locks,
		opts:        o,
	}
}

func (qs *QuizzesService) CreateQuiz(ctx context.Context, uid uuid.UUID, req *CreateQuizRequest) (*entity.Quiz, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	spec := QuizSpec{
		Subject:    strings.TrimSpace(req.Subject),
		Topic:      strings.TrimSpace(req.Topic),
		Difficulty: req.Difficulty,
		Count:      req.NumQuestions,
	}
	if spec.Difficulty == "" {
		spec.Difficulty = entity.DifficultyMixed
	}
	if spec.Count == 0 {
		spec.Count = defaultQuizQuestions
	}
	genCtx, cancel := qs.opts.generatorContext(ctx)
	questions, err := qs.gen.QuizQuestions(genCtx, spec)
	cancel()
	if err != nil {
		return nil, generationError(err)
	}
	if len(questions) == 0 {
		return nil, errors.New("content generator error: no questions generated")
	}
	quiz := &entity.Quiz{
		UserID:           uid,
		Title:            strings.TrimSpace(req.Title),
		Subject:          spec.Subject,
		Topic:            spec.Topic,
		Questions:        questions,
		Difficulty:       spec.Difficulty,
		TimeLimitMinutes: quizMinutesPerQuestion * len(questions),
	}
	err = qs.repo.Create(ctx, quiz)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("quizzes repository error: " + err.Error())
	}
	return quiz, nil
}

func (qs *QuizzesService) GetUserQuizzes(ctx context.Context, uid uuid.UUID, subject string) ([]*entity.Quiz, error) {
	quizzes, err := qs.repo.GetByUserID(ctx, uid, strings.TrimSpace(subject))
	if err != nil {
		return nil, errors.New("quizzes repository error: " + err.Error())
	}
	return quizzes, nil
}

func (qs *QuizzesService) GetQuiz(ctx context.Context, quizID, uid uuid.UUID) (*entity.Quiz, error) {
	quiz, err := qs.repo.GetByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrQuizNotFound) {
			return nil, err
		}
		return nil, errors.New("quizzes repository error: " + err.Error())
	}
	if quiz.UserID != uid {
		return nil, errorvalues.ErrQuizNotFound
	}
	return quiz, nil
}

func (qs *QuizzesService) DeleteQuiz(ctx context.Context, quizID, uid uuid.UUID) error {
	unlock := qs.locks.Lock(quizID.String())
	defer unlock()

	if _, err := qs.GetQuiz(ctx, quizID, uid); err != nil {
		return err
	}
	err := qs.repo.Delete(ctx, quizID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrQuizNotFound) {
			return err
		}
		return errors.New("quizzes repository error: " + err.Error())
	}
	return nil
}

func (qs *QuizzesService) SubmitQuiz(ctx context.Context, quizID, uid uuid.UUID, req *SubmitQuizRequest) (*entity.QuizResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	unlock := qs.locks.Lock(quizID.String())
	defer unlock()

	quiz, err := qs.GetQuiz(ctx, quizID, uid)
	if err != nil {
		return nil, err
	}
	result := Grade(quiz, req.Answers)
	result.UserID = uid
	result.TimeTakenSeconds = req.TimeTakenSeconds
	result.CompletedAt = qs.opts.now()
	err = qs.resultsRepo.Create(ctx, result)
	if err != nil {
		if errors.Is(err, errorvalues.ErrQuizNotFound) {
			return nil, err
		}
		return nil, errors.New("quiz results repository error: " + err.Error())
	}
	return result, nil
}

// Grade scores answers against quiz. Questions without an answer count as
// wrong and answers to unknown question ids are dropped.
func Grade(quiz *entity.Quiz, answers map[string]string) *entity.QuizResult {
	result := &entity.QuizResult{
		QuizID:         quiz.ID,
		Subject:        quiz.Subject,
		TotalQuestions: len(quiz.Questions),
		Answers:        make(map[string]string),
		CorrectAnswers: make(map[string]string, len(quiz.Questions)),
		Topics:         make(map[string]string, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		result.CorrectAnswers[q.ID] = q.CorrectAnswer
		result.Topics[q.ID] = questionTopic(quiz, q)
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		result.Answers[q.ID] = answer
		if strings.EqualFold(strings.TrimSpace(answer), q.CorrectAnswer) {
			result.Score++
		}
	}
	if result.TotalQuestions > 0 {
		result.Percentage = roundTo2(float64(result.Score) / float64(result.TotalQuestions) * 100)
	}
	return result
}

func questionTopic(quiz *entity.Quiz, q entity.QuizQuestion) string {
	switch {
	case q.Topic != "":
		return q.Topic
	case quiz.Topic != "":
		return quiz.Topic
	}
	return quiz.Subject
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (qs *QuizzesService) GetQuizResults(ctx context.Context, quizID, uid uuid.UUID) ([]*entity.QuizResult, error) {
	if _, err := qs.GetQuiz(ctx, quizID, uid); err != nil {
		return nil, err
	}
	results, err := qs.resultsRepo.GetByQuizAndUser(ctx, quizID, uid)
	if err != nil {
		return nil, errors.New("quiz results repository error: " + err.Error())
	}
	return results, nil
}
