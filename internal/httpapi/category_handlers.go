package httpapi

import (
	"net/http"
	"strings"

	"tasktracker/internal/service"
)

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ColorCode   string `json:"colorCode"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid category id")
		return
	}
	category, err := s.categories.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeCategory(w, r)
	if !ok {
		return
	}
	category, err := s.categories.Create(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid category id")
		return
	}
	in, ok := decodeCategory(w, r)
	if !ok {
		return
	}
	category, err := s.categories.Update(r.Context(), id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid category id")
		return
	}
	if err := s.categories.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeCategory(w http.ResponseWriter, r *http.Request) (service.CategoryInput, bool) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return service.CategoryInput{}, false
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		errorJSON(w, http.StatusBadRequest, "name is required")
		return service.CategoryInput{}, false
	}
	return service.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ColorCode:   req.ColorCode,
	}, true
}
