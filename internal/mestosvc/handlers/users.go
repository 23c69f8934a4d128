package handlers

import (
	"net/http"

	"github.com/avvvet/mesto-services/internal/mestosvc/auth"
	"github.com/avvvet/mesto-services/internal/mestosvc/models"
	"github.com/go-chi/chi"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) error {
	var req models.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	user, err := h.users.Signup(r.Context(), req)
	if err != nil {
		return err
	}

	h.CreateResponse(w, http.StatusCreated, models.SignupResponse{ID: user.ID, Email: user.Email})
	return nil
}

// Signin sets the session token as an http-only, same-site cookie.
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) error {
	var req models.SigninRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	token, expiresAt, err := h.users.Login(r.Context(), req)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(h.tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	h.CreateResponse(w, http.StatusOK, messageResponse{Message: "authorized"})
	return nil
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.users.List(r.Context())
	if err != nil {
		return err
	}
	h.CreateResponse(w, http.StatusOK, dataResponse{Data: users})
	return nil
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) error {
	user, err := h.users.GetByID(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		return err
	}
	h.CreateResponse(w, http.StatusOK, dataResponse{Data: user})
	return nil
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerID(r)
	if err != nil {
		return err
	}

	var req models.ProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(r.Context(), caller, req)
	if err != nil {
		return err
	}
	h.CreateResponse(w, http.StatusOK, dataResponse{Data: user})
	return nil
}

func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerID(r)
	if err != nil {
		return err
	}

	var req models.AvatarRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	user, err := h.users.UpdateAvatar(r.Context(), caller, req)
	if err != nil {
		return err
	}
	h.CreateResponse(w, http.StatusOK, dataResponse{Data: user})
	return nil
}
