package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/fileexplorer/internal/common"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type statusResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request"})
		return
	}
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Username and password required"})
		return
	}

	_, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		// The Conflict response tells the caller the username is taken;
		// this existence signal is part of the API contract.
		if !errors.Is(err, common.ErrConflict) {
			s.logger.Error(r.Context(), "registration failed", "username", req.Username, "error", err)
		}
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", req.Username)
	writeJSON(w, http.StatusOK, messageResponse{Message: "User registered successfully"})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request"})
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(s.users.TokenValidity().Seconds()),
	})

	s.logger.Info(r.Context(), "user logged in", "username", req.Username)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: req.Username})
}

// handleLogout clears the cookie. It is stateless and always succeeds:
// tokens a client extracted from the login payload stay valid until expiry.
func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.TokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

func (s *HTTPServer) handleAuthStatus(w http.ResponseWriter, r *http.Request) {
	token := tokenFromRequest(r)
	if token == "" {
		writeJSON(w, http.StatusOK, statusResponse{Authenticated: false})
		return
	}
	username, err := s.users.VerifyToken(token)
	if err != nil {
		writeJSON(w, http.StatusOK, statusResponse{Authenticated: false})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Authenticated: true, Username: username})
}
