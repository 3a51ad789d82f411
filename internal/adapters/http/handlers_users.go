package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/newsflare/newsflare-api/internal/application"
)

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.service.IssueToken(r.Context(), req.Email)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	if err := h.service.Logout(r.Context(), claims); err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeMessage(w, http.StatusOK, "logged out")
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req application.CreateUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	if !res.Created {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":  "User Already Exists",
			"inserted": nil,
		})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"insertedId": res.User.ID,
	})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	out := make([]map[string]any, 0, len(users))
	for _, u := range users {
		out = append(out, map[string]any{
			"id":       u.ID,
			"email":    u.Email,
			"name":     u.Name,
			"photoURL": u.PhotoURL,
			"role":     u.Role,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deletedCount": 1})
}

func (h *Handler) isAdmin(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	admin, err := h.service.IsAdmin(r.Context(), chi.URLParam(r, "email"), claims)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"admin": admin})
}

func (h *Handler) promoteToAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := h.service.PromoteToAdmin(r.Context(), id); err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"modifiedCount": 1})
}
