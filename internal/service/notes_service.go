package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/internal/repository"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/limbo/studyos/pkg/keylock"
)

const defaultExtraMCQs = 5

type NotesService struct {
	repo  repository.NotesRepositoryI
	gen   ContentGenerator
	locks *keylock.Striped
	opts  options
}

func NewNotesService(notesRepo repository.NotesRepositoryI, gen ContentGenerator, opts ...Option) *NotesService {
	if notesRepo == nil || gen == nil {
		log.Fatal("on notes service provided nil dependencies")
	}
	o := buildOptions(opts)
	return &NotesService{
		repo:  notesRepo,
		gen:   gen,
		locks: o.locks,
		opts:  o,
	}
}

func (ns *NotesService) NotesFromText(ctx context.Context, uid uuid.UUID, req *TextNotesRequest) (*entity.Note, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return ns.generate(ctx, uid, NoteSource{
		Type:    entity.SourceText,
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
	})
}

func (ns *NotesService) NotesFromVideo(ctx context.Context, uid uuid.UUID, req *VideoNotesRequest) (*entity.Note, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return ns.generate(ctx, uid, NoteSource{
		Type:  entity.SourceVideo,
		Title: strings.TrimSpace(req.Title),
		Ref:   req.URL,
	})
}

func (ns *NotesService) NotesFromDocument(ctx context.Context, uid uuid.UUID, req *DocumentNotesRequest) (*entity.Note, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return ns.generate(ctx, uid, NoteSource{
		Type:  entity.SourceDocument,
		Title: strings.TrimSpace(req.Title),
		Ref:   req.FileName,
	})
}

func (ns *NotesService) generate(ctx context.Context, uid uuid.UUID, src NoteSource) (*entity.Note, error) {
	genCtx, cancel := ns.opts.generatorContext(ctx)
	generated, err := ns.gen.Notes(genCtx, src)
	cancel()
	if err != nil {
		return nil, generationError(err)
	}
	note := &entity.Note{
		UserID:     uid,
		Title:      generated.Title,
		Content:    generated.Content,
		SourceType: src.Type,
		KeyPoints:  generated.KeyPoints,
		Summary:    generated.Summary,
		MCQs:       numberMCQs(generated.MCQs, 0),
	}
	if src.Ref != "" {
		ref := src.Ref
		note.SourceRef = &ref
	}
	err = ns.repo.Create(ctx, note)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("notes repository error: " + err.Error())
	}
	return note, nil
}

// numberMCQs assigns ids continuing after the existing questions.
func numberMCQs(mcqs []entity.MCQ, existing int) []entity.MCQ {
	for i := range mcqs {
		mcqs[i].ID = fmt.Sprintf("mcq_%d", existing+i+1)
	}
	return mcqs
}

func (ns *NotesService) GetUserNotes(ctx context.Context, uid uuid.UUID) ([]*entity.Note, error) {
	notes, err := ns.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("notes repository error: " + err.Error())
	}
	return notes, nil
}

func (ns *NotesService) GetNote(ctx context.Context, noteID, uid uuid.UUID) (*entity.Note, error) {
	note, err := ns.repo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoteNotFound) {
			return nil, err
		}
		return nil, errors.New("notes repository error: " + err.Error())
	}
	if note.UserID != uid {
		return nil, errorvalues.ErrNoteNotFound
	}
	return note, nil
}

func (ns *NotesService) DeleteNote(ctx context.Context, noteID, uid uuid.UUID) error {
	unlock := ns.locks.Lock(noteID.String())
	defer unlock()

	if _, err := ns.GetNote(ctx, noteID, uid); err != nil {
		return err
	}
	err := ns.repo.Delete(ctx, noteID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoteNotFound) {
			return err
		}
		return errors.New("notes repository error: " + err.Error())
	}
	return nil
}

// GenerateMoreMCQs calls the generator without holding the note lock and
// numbers the new questions only once the lock is taken, so concurrent
// appends never reuse an id.
func (ns *NotesService) GenerateMoreMCQs(ctx context.Context, noteID, uid uuid.UUID, req *GenerateMCQsRequest) ([]entity.MCQ, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	count := req.Count
	if count == 0 {
		count = defaultExtraMCQs
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = entity.DifficultyMixed
	}
	note, err := ns.GetNote(ctx, noteID, uid)
	if err != nil {
		return nil, err
	}
	genCtx, cancel := ns.opts.generatorContext(ctx)
	generated, err := ns.gen.MCQs(genCtx, note, count, difficulty)
	cancel()
	if err != nil {
		return nil, generationError(err)
	}

	unlock := ns.locks.Lock(noteID.String())
	defer unlock()

	// re-read, another append may have landed meanwhile
	note, err = ns.GetNote(ctx, noteID, uid)
	if err != nil {
		return nil, err
	}
	generated = numberMCQs(generated, len(note.MCQs))
	err = ns.repo.UpdateMCQs(ctx, noteID, append(note.MCQs, generated...))
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoteNotFound) {
			return nil, err
		}
		return nil, errors.New("notes repository error: " + err.Error())
	}
	return generated, nil
}
