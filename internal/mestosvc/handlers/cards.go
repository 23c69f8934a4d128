package handlers

import (
	"net/http"

	"github.com/avvvet/mesto-services/internal/mestosvc/models"
	"github.com/go-chi/chi"
)

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) error {
	cards, err := h.cards.List(r.Context())
	if err != nil {
		return err
	}
	h.CreateResponse(w, http.StatusOK, dataResponse{Data: cards})
	return nil
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerID(r)
	if err != nil {
		return err
	}

	var req models.CardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return err
	}

	card, err := h.cards.Create(r.Context(), caller, req)
	if err != nil {
		return err
	}
	h.CreateResponse(w, http.StatusCreated, dataResponse{Data: card})
	return nil
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerID(r)
	if err != nil {
		return err
	}

	if err := h.cards.Delete(r.Context(), caller, chi.URLParam(r, "cardId")); err != nil {
		return err
	}
	h.CreateResponse(w, http.StatusOK, messageResponse{Message: "card deleted"})
	return nil
}

func (h *Handler) LikeCard(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerID(r)
	if err != nil {
		return err
	}

	card, err := h.cards.Like(r.Context(), caller, chi.URLParam(r, "cardId"))
	if err != nil {
		return err
	}
	h.CreateResponse(w, http.StatusOK, dataResponse{Data: card})
	return nil
}

func (h *Handler) DislikeCard(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerID(r)
	if err != nil {
		return err
	}

	card, err := h.cards.Dislike(r.Context(), caller, chi.URLParam(r, "cardId"))
	if err != nil {
		return err
	}
	h.CreateResponse(w, http.StatusOK, dataResponse{Data: card})
	return nil
}
