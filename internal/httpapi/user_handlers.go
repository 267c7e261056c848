package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"tasktracker/internal/model"
	"tasktracker/internal/service"
)

type userRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func (req *userRequest) toInput(w http.ResponseWriter, requirePassword bool) (service.UserInput, bool) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" {
		errorJSON(w, http.StatusBadRequest, "username is required")
		return service.UserInput{}, false
	}
	if req.Email == "" {
		errorJSON(w, http.StatusBadRequest, "email is required")
		return service.UserInput{}, false
	}
	if requirePassword && req.Password == "" {
		errorJSON(w, http.StatusBadRequest, "password is required")
		return service.UserInput{}, false
	}

	var role model.Role
	if req.Role != "" {
		parsed, ok := model.ParseRole(req.Role)
		if !ok {
			errorJSON(w, http.StatusBadRequest, "unknown role: "+req.Role)
			return service.UserInput{}, false
		}
		role = parsed
	}

	return service.UserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	}, true
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid user id")
		return
	}
	user, err := s.users.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleGetUserByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	user, err := s.users.GetByUsername(r.Context(), username)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	in, ok := req.toInput(w, true)
	if !ok {
		return
	}
	user, err := s.users.Create(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	in, ok := req.toInput(w, false)
	if !ok {
		return
	}
	user, err := s.users.Update(r.Context(), id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		errorJSON(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := s.users.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
