package api

import (
	"context"
	"net/http"

	"github.com/limbo/studyos/internal/service"
	"github.com/limbo/studyos/pkg/entity"
	"github.com/limbo/studyos/pkg/httputil"
)

type GenerateMCQsResponse struct {
	NoteID string       `json:"note_id"`
	MCQs   []entity.MCQ `json:"mcqs"`
}

func (s *Server) NotesFromText(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "notes from text")
	if !ok {
		return
	}
	var req service.TextNotesRequest
	if !decodeBody(w, r, logger, "notes from text", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	note, err := s.notesService.NotesFromText(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "notes from text", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, note)
	logger.Info("notes generated from text")
}

func (s *Server) NotesFromVideo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "notes from video")
	if !ok {
		return
	}
	var req service.VideoNotesRequest
	if !decodeBody(w, r, logger, "notes from video", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	note, err := s.notesService.NotesFromVideo(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "notes from video", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, note)
	logger.Info("notes generated from video")
}

// NotesFromDocument takes a reference to an already stored PDF; uploads are
// not accepted here.
func (s *Server) NotesFromDocument(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "notes from document")
	if !ok {
		return
	}
	var req service.DocumentNotesRequest
	if !decodeBody(w, r, logger, "notes from document", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	note, err := s.notesService.NotesFromDocument(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "notes from document", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, note)
	logger.Info("notes generated from document")
}

func (s *Server) GetNotes(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get notes")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	notes, err := s.notesService.GetUserNotes(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get notes", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, notes)
}

func (s *Server) GetNote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get note")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "get note")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	note, err := s.notesService.GetNote(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get note", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, note)
}

func (s *Server) DeleteNote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "note deletion")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "note deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err := s.notesService.DeleteNote(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "note deletion", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "Note deleted successfully")
	logger.Info("note deleted")
}

// GenerateMCQs reads count and difficulty from either the JSON body or the
// query string.
func (s *Server) GenerateMCQs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "generate mcqs")
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "generate mcqs")
	if !ok {
		return
	}
	var req service.GenerateMCQsRequest
	if r.ContentLength != 0 {
		if !decodeBody(w, r, logger, "generate mcqs", &req) {
			return
		}
	} else {
		count, err := queryInt(r, "count")
		if err != nil {
			writeServiceError(w, logger, "generate mcqs", err)
			return
		}
		req.Count = count
		req.Difficulty = r.URL.Query().Get("difficulty")
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	mcqs, err := s.notesService.GenerateMoreMCQs(ctx, id, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "generate mcqs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GenerateMCQsResponse{NoteID: id.String(), MCQs: mcqs})
	logger.Info("mcqs generated")
}
