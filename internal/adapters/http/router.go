package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers all HTTP routes and the middleware stack.
// Route protection mirrors the access model: public content reads, token-gated
// self-service routes, and an admin group that re-checks the stored role.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/", handler.greeting)
	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Post("/jwt", handler.issueToken)
	r.Post("/users", handler.createUser)

	r.Post("/publisher", handler.createPublisher)
	r.Get("/publisher", handler.listPublishers)

	r.Post("/article", handler.createArticle)
	r.Get("/article", handler.listArticles)
	r.Get("/allArticle", handler.searchArticles)
	r.Get("/article/{id}", handler.getArticle)
	r.Patch("/article/{id}", handler.patchArticle)
	r.Delete("/article/{id}", handler.deleteArticle)

	r.Post("/subscribe", handler.subscribe)
	r.Post("/create-payment-intent", handler.createPaymentIntent)

	r.Group(func(r chi.Router) {
		r.Use(handler.authMiddleware)

		r.Post("/auth/logout", handler.logout)
		r.Put("/article/update/{id}", handler.updateArticle)
		r.Get("/my-articles/{email}", handler.myArticles)
		r.Post("/cart", handler.addToCart)
		r.Get("/cart/{email}", handler.cartItems)
		r.Post("/payments", handler.recordPayment)
		r.Get("/payments/{email}", handler.paymentHistory)

		r.Group(func(r chi.Router) {
			r.Use(handler.adminMiddleware)

			r.Get("/users", handler.listUsers)
			r.Get("/users/admin/{email}", handler.isAdmin)
			r.Delete("/users/{id}", handler.deleteUser)
			r.Patch("/users/admin/{id}", handler.promoteToAdmin)
			r.Get("/order-stats", handler.publisherStats)
		})
	})

	return r
}
