package httpapi

import (
	"net/http"
	"strings"
)

type tagRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.tags.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

func (s *Server) handleGetTag(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid tag id")
		return
	}
	tag, err := s.tags.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	name, ok := decodeTagName(w, r)
	if !ok {
		return
	}
	tag, err := s.tags.Create(r.Context(), name)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tag)
}

func (s *Server) handleUpdateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid tag id")
		return
	}
	name, ok := decodeTagName(w, r)
	if !ok {
		return
	}
	tag, err := s.tags.Update(r.Context(), id, name)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tag)
}

func (s *Server) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid tag id")
		return
	}
	if err := s.tags.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeTagName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req tagRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return "", false
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		errorJSON(w, http.StatusBadRequest, "name is required")
		return "", false
	}
	return name, true
}
