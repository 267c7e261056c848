package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"tasktracker/internal/service"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
}

// handleRegister creates an account through the same service path as
// POST /users.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.handleCreateUser(w, r)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		errorJSON(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := s.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			errorJSON(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondError(w, err)
		return
	}

	token, err := s.signer.Sign(user.ID, user.Username)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Token:    token,
		Type:     "Bearer",
		UserID:   user.ID,
		Username: user.Username,
	})
}
