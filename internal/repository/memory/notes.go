package memory

import (
	"context"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

type NotesRepository struct {
	db *db
}

func (nr *NotesRepository) Create(_ context.Context, note *entity.Note) error {
	nr.db.mu.Lock()
	defer nr.db.mu.Unlock()
	if !nr.db.userExists(note.UserID) {
		return errorvalues.ErrOwnerNotFound
	}
	note.ID = uuid.New()
	note.CreatedAt = nr.db.now()
	nr.db.notes.insert(note.ID, note.Clone())
	return nil
}

func (nr *NotesRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Note, error) {
	nr.db.mu.RLock()
	defer nr.db.mu.RUnlock()
	n, ok := nr.db.notes.get(id)
	if !ok {
		return nil, errorvalues.ErrNoteNotFound
	}
	return n.Clone(), nil
}

func (nr *NotesRepository) GetByUserID(_ context.Context, uid uuid.UUID) ([]*entity.Note, error) {
	nr.db.mu.RLock()
	defer nr.db.mu.RUnlock()
	notes := make([]*entity.Note, 0)
	nr.db.notes.each(func(n *entity.Note) {
		if n.UserID == uid {
			notes = append(notes, n.Clone())
		}
	})
	return notes, nil
}

func (nr *NotesRepository) UpdateMCQs(_ context.Context, id uuid.UUID, mcqs []entity.MCQ) error {
	nr.db.mu.Lock()
	defer nr.db.mu.Unlock()
	n, ok := nr.db.notes.get(id)
	if !ok {
		return errorvalues.ErrNoteNotFound
	}
	n.MCQs = (&entity.Note{MCQs: mcqs}).Clone().MCQs
	return nil
}

func (nr *NotesRepository) Delete(_ context.Context, id uuid.UUID) error {
	nr.db.mu.Lock()
	defer nr.db.mu.Unlock()
	if !nr.db.notes.remove(id) {
		return errorvalues.ErrNoteNotFound
	}
	return nil
}
