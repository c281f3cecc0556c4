package api

import (
	"net/http"
)

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projects.ListProjects(r.Context())
	if err != nil {
		writeDomainError(w, "list projects", err)
		return
	}

	out := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectToDTO(p))
	}
	WriteJSON(w, out, http.StatusOK)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.sessions.ListSessions(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, "list sessions", err)
		return
	}

	out := make([]SessionDTO, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, SessionToDTO(session))
	}
	WriteJSON(w, out, http.StatusOK)
}

func (s *Server) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := s.dashboard.GetDashboard(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, "build dashboard", err)
		return
	}

	WriteJSON(w, DashboardToDTO(*dashboard), http.StatusOK)
}
