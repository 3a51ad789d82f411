package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/newsflare/newsflare-api/internal/application"
)

func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.service.CreateIntent(r.Context(), req.Price)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"clientSecret": res.ClientSecret})
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	var req application.RecordPaymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.service.RecordPayment(r.Context(), claims, req)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"paymentResult": map[string]any{
			"insertedId":   res.Payment.ID,
			"acknowledged": res.Inserted,
		},
		"deleteResult": map[string]any{
			"deletedCount":  res.DeletedCount,
			"expectedCount": res.ExpectedCount,
		},
	})
}

func (h *Handler) paymentHistory(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	payments, err := h.service.PaymentHistory(r.Context(), chi.URLParam(r, "email"), claims)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	var req application.AddToCartRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.service.AddToCart(r.Context(), claims, req)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"insertedId": item.ID})
}

func (h *Handler) cartItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	items, err := h.service.CartItems(r.Context(), chi.URLParam(r, "email"), claims)
	if err != nil {
		status, msg := mapDomainError(err)
		writeMessage(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
