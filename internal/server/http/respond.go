package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/pharmadmin/internal/common"
)

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal Server Error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func respondWithMessage(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, map[string]string{"message": message})
}

// statusEntry maps a sentinel error to the HTTP response for it.
type statusEntry struct {
	status  int
	message string
}

// errorTable is the explicit closed mapping from service errors to status
// codes and user-facing messages. Anything not listed is a 500.
var errorTable = []struct {
	err   error
	entry statusEntry
}{
	{common.ErrValidation, statusEntry{http.StatusBadRequest, "Invalid request"}},
	{common.ErrEmailExists, statusEntry{http.StatusBadRequest, "Email already registered"}},
	{common.ErrInvalidCredentials, statusEntry{http.StatusUnauthorized, "Invalid credentials"}},
	{common.ErrorNotFound, statusEntry{http.StatusNotFound, "User not found"}},
	{common.ErrInvalidResetToken, statusEntry{http.StatusBadRequest, "Invalid or expired reset token"}},
	{common.ErrIncorrectPassword, statusEntry{http.StatusBadRequest, "Current password is incorrect"}},
	{common.ErrNotificationFailure, statusEntry{http.StatusBadRequest, "Could not send reset email"}},
	{common.ErrTokenExpired, statusEntry{http.StatusUnauthorized, "Token expired"}},
	{common.ErrInvalidToken, statusEntry{http.StatusUnauthorized, "Invalid token"}},
}

// respondWithError translates a service error into an HTTP response via the
// error table.
func respondWithError(w http.ResponseWriter, err error) {
	for _, row := range errorTable {
		if errors.Is(err, row.err) {
			respondWithMessage(w, row.entry.status, row.entry.message)
			return
		}
	}
	respondWithMessage(w, http.StatusInternalServerError, "Internal Server Error")
}
