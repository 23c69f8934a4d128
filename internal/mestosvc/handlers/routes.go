package handlers

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r chi.Router) {
	// unmatched paths and unsupported methods get the same answer
	r.NotFound(h.NotFoundHandler)
	r.MethodNotAllowed(h.NotFoundHandler)

	// public routes
	r.Get("/health", h.HealthHandler)
	r.Post("/signup", h.wrap(h.Signup))
	r.Post("/signin", h.wrap(h.Signin))

	// Secure routes
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verify(h.tokens.JWTAuth(), jwtauth.TokenFromCookie, jwtauth.TokenFromHeader))
		r.Use(h.Authenticator)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.wrap(h.ListUsers))
			r.Patch("/me", h.wrap(h.UpdateProfile))
			r.Patch("/me/avatar", h.wrap(h.UpdateAvatar))
			r.Get("/{userId}", h.wrap(h.GetUser))
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", h.wrap(h.ListCards))
			r.Post("/", h.wrap(h.CreateCard))
			r.Delete("/{cardId}", h.wrap(h.DeleteCard))
			r.Put("/{cardId}/likes", h.wrap(h.LikeCard))
			r.Delete("/{cardId}/likes", h.wrap(h.DislikeCard))
		})
	})
}
