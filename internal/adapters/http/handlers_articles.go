package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/newsflare/newsflare-api/internal/application"
)

func (h *Handler) createPublisher(w http.ResponseWriter, r *http.Request) {
	var req application.CreatePublisherRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	publisher, err := h.service.CreatePublisher(r.Context(), req)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"insertedId": publisher.ID})
}

func (h *Handler) listPublishers(w http.ResponseWriter, r *http.Request) {
	publishers, err := h.service.ListPublishers(r.Context())
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, publishers)
}

func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	var req application.CreateArticleRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	article, err := h.service.CreateArticle(r.Context(), req)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"insertedId": article.ID})
}

func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.ListArticles(r.Context())
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (h *Handler) searchArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.SearchArticles(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid article id")
		return
	}
	article, err := h.service.GetArticle(r.Context(), id)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (h *Handler) patchArticle(w http.ResponseWriter, r *http.Request) {
	h.applyArticleUpdate(w, r)
}

func (h *Handler) updateArticle(w http.ResponseWriter, r *http.Request) {
	h.applyArticleUpdate(w, r)
}

// applyArticleUpdate serves both the moderation PATCH (status/premium flags)
// and the author PUT (full field update); nil fields stay untouched.
func (h *Handler) applyArticleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid article id")
		return
	}
	var req application.UpdateArticleRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.service.UpdateArticle(r.Context(), id, req); err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"modifiedCount": 1})
}

func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid article id")
		return
	}
	if err := h.service.DeleteArticle(r.Context(), id); err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deletedCount": 1})
}

func (h *Handler) myArticles(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	articles, err := h.service.MyArticles(r.Context(), chi.URLParam(r, "email"), claims)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var req application.SubscribeRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	sub, err := h.service.Subscribe(r.Context(), req)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"insertedId": sub.ID})
}

func (h *Handler) publisherStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.PublisherStats(r.Context())
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
