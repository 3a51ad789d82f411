package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/newsflare/newsflare-api/internal/application"
)

// Handler is the HTTP adapter entrypoint. Keeping only the application
// dependency here preserves clean adapter boundaries.
type Handler struct {
	service *application.Service
}

func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) greeting(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "Hello from NewsFlare Server..")
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "ok")
}

func (h *Handler) readyz(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "ready")
}

// authMiddleware is the credential guard for protected routes: it requires a
// Bearer token, validates it, and attaches the decoded claims to the request
// context. Any failure is a uniform 401.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := bearerTokenFromHeader(r.Header.Get("Authorization"))
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "unauthorized access")
			return
		}
		claims, err := h.service.ValidateToken(r.Context(), raw)
		if err != nil {
			status, msg := mapDomainError(err)
			writeMessage(w, status, msg)
			return
		}
		next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), claims)))
	})
}

// adminMiddleware must run after authMiddleware. The role comes from a fresh
// store read, never from the token; missing claims fail closed.
func (h *Handler) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r.Context())
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "unauthorized access")
			return
		}
		if err := h.service.RequireAdmin(r.Context(), claims); err != nil {
			status, msg := mapDomainError(err)
			writeMessage(w, status, msg)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON value")
	}
	return nil
}
