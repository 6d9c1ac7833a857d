package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/breeqa/breeqa-server/pkg/invite"
	"github.com/breeqa/breeqa-server/pkg/members"
	"github.com/breeqa/breeqa-server/pkg/server/store"
)

// envelope is the uniform response shape: exactly one of data and
// error is set, and success tells callers which.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondWithData(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, envelope{Success: true, Data: payload})
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, envelope{Success: false, Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithInviteError maps invitation service errors to HTTP status codes
func respondWithInviteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, invite.ErrUnauthenticated):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, invite.ErrUnauthorized):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, invite.ErrInvalidEmail), errors.Is(err, invite.ErrInvalidRole):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, invite.ErrInvalidOrExpired):
		respondWithError(w, http.StatusGone, err.Error())
	case errors.Is(err, invite.ErrDuplicate), errors.Is(err, invite.ErrAlreadyMember):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, invite.ErrNotPending):
		respondWithError(w, http.StatusNotFound, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}

// respondWithMembersError maps member service errors to HTTP status codes
func respondWithMembersError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, members.ErrUnauthenticated):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, members.ErrUnauthorized):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, members.ErrInvalidRole), errors.Is(err, members.ErrNotActive):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, members.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}

// respondWithStoreError maps store errors to HTTP status codes
func respondWithStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrDuplicate):
		respondWithError(w, http.StatusConflict, "already exists")
	case errors.Is(err, store.ErrAlreadyMember):
		respondWithError(w, http.StatusConflict, "already a member")
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}
