package http

import (
	"encoding/json"
	"net/http"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func decodeJSON(r *http.Request, dst any) bool {
	return json.NewDecoder(r.Body).Decode(dst) == nil
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(r, &req) {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.authService.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		s.logger.Warn(r.Context(), "registration failed", "email", req.Email, "error", err.Error())
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, result)
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(r, &req) {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if !decodeJSON(r, &req) {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		s.logger.Warn(r.Context(), "forgot-password failed", "error", err.Error())
		respondWithError(w, err)
		return
	}

	respondWithMessage(w, http.StatusOK, "Password reset link sent to email")
}

func (s *HTTPServer) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !decodeJSON(r, &req) {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.authService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		respondWithError(w, err)
		return
	}

	respondWithMessage(w, http.StatusOK, "Password reset successful")
}

func (s *HTTPServer) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondWithMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req changePasswordRequest
	if !decodeJSON(r, &req) {
		respondWithMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.authService.ChangePassword(r.Context(), identity.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		respondWithError(w, err)
		return
	}

	respondWithMessage(w, http.StatusOK, "Password changed successfully")
}

func (s *HTTPServer) handleProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondWithMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	view, err := s.authService.GetProfile(r.Context(), identity.UserID)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
