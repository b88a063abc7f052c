package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studyos/internal/error_values"
	"github.com/limbo/studyos/pkg/entity"
)

type NotesRepository struct {
	conn PgConnection
}

func NewNotesRepoWithConn(conn PgConnection) *NotesRepository {
	return &NotesRepository{
		conn: conn,
	}
}

func (nr *NotesRepository) Create(ctx context.Context, note *entity.Note) error {
	keyPoints, err := marshalJSONB(note.KeyPoints)
	if err != nil {
		return err
	}
	mcqs, err := marshalJSONB(note.MCQs)
	if err != nil {
		return err
	}
	row := nr.conn.QueryRow(ctx, `INSERT INTO notes (user_id, title, content, source_type, source_ref, key_points, summary, mcqs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at;`,
		note.UserID,
		note.Title,
		note.Content,
		note.SourceType,
		note.SourceRef,
		keyPoints,
		note.Summary,
		mcqs,
	)
	if err = row.Scan(&note.ID, &note.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return errorvalues.ErrOwnerNotFound
		}
		return errors.New("creating note db error: " + err.Error())
	}
	return nil
}

func (nr *NotesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	row := nr.conn.QueryRow(ctx, `SELECT id, user_id, title, content, source_type, source_ref, key_points, summary, mcqs, created_at
		FROM notes WHERE id = $1;`, id)
	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNoteNotFound
		}
		return nil, errors.New("getting note by id error: " + err.Error())
	}
	return note, nil
}

func (nr *NotesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Note, error) {
	rows, err := nr.conn.Query(ctx, `SELECT id, user_id, title, content, source_type, source_ref, key_points, summary, mcqs, created_at
		FROM notes WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("getting notes by uid error: " + err.Error())
	}
	defer rows.Close()
	notes := make([]*entity.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, errors.New("unmarshalling note error: " + err.Error())
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return notes, nil
}

func (nr *NotesRepository) UpdateMCQs(ctx context.Context, id uuid.UUID, mcqs []entity.MCQ) error {
	data, err := marshalJSONB(mcqs)
	if err != nil {
		return err
	}
	ct, err := nr.conn.Exec(ctx, `UPDATE notes SET mcqs = $1 WHERE id = $2;`, data, id)
	if err != nil {
		return errors.New("error updating note mcqs: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNoteNotFound
	}
	return nil
}

func (nr *NotesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := nr.conn.Exec(ctx, `DELETE FROM notes WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting note: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNoteNotFound
	}
	return nil
}

func scanNote(row pgx.Row) (*entity.Note, error) {
	var note entity.Note
	var keyPoints, mcqs []byte
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.SourceType,
		&note.SourceRef,
		&keyPoints,
		&note.Summary,
		&mcqs,
		&note.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err = unmarshalJSONB(keyPoints, &note.KeyPoints); err != nil {
		return nil, err
	}
	if err = unmarshalJSONB(mcqs, &note.MCQs); err != nil {
		return nil, err
	}
	return &note, nil
}
