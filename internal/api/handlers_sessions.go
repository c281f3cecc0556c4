package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrValidation, "session id is required", http.StatusBadRequest)
		return
	}

	session, err := s.sessions.GetSession(r.Context(), id)
	if err != nil {
		writeDomainError(w, "get session", err)
		return
	}

	WriteJSON(w, SessionToDTO(*session), http.StatusOK)
}

func (s *Server) handleUpdateSessionContent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrValidation, "session id is required", http.StatusBadRequest)
		return
	}

	var body SessionContentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, ErrValidation, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	session, err := s.sessions.UpdateSessionContent(r.Context(), id, body.toContent())
	if err != nil {
		writeDomainError(w, "update session", err)
		return
	}

	WriteJSON(w, SessionToDTO(*session), http.StatusOK)
}

func (s *Server) handleCreateInsight(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrValidation, "session id is required", http.StatusBadRequest)
		return
	}

	var body InsightCreateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, ErrValidation, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	insight, err := body.ToDomain(id)
	if err != nil {
		writeDomainError(w, "create insight", err)
		return
	}

	created, err := s.sessions.CreateInsight(r.Context(), insight)
	if err != nil {
		writeDomainError(w, "create insight", err)
		return
	}

	WriteJSON(w, InsightToDTO(*created), http.StatusCreated)
}

func (s *Server) handleRecording(w http.ResponseWriter, r *http.Request) {
	link, err := s.sessions.RecordingLink(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, "resolve recording", err)
		return
	}

	http.Redirect(w, r, link, http.StatusFound)
}
