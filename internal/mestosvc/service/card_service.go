package service

import (
	"context"
	"errors"
	"time"

	"github.com/avvvet/mesto-services/internal/mestosvc/apperr"
	"github.com/avvvet/mesto-services/internal/mestosvc/events"
	"github.com/avvvet/mesto-services/internal/mestosvc/models"
	"github.com/avvvet/mesto-services/internal/mestosvc/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CardService struct {
	cards             store.Cards
	bus               *events.Bus
	emptyListNotFound bool
}

func NewCardService(cards store.Cards, bus *events.Bus, emptyListNotFound bool) *CardService {
	return &CardService{cards: cards, bus: bus, emptyListNotFound: emptyListNotFound}
}

type likeEvent struct {
	CardID primitive.ObjectID `json:"card_id"`
	UserID primitive.ObjectID `json:"user_id"`
}

func (s *CardService) List(ctx context.Context) ([]*models.Card, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(cards) == 0 && s.emptyListNotFound {
		return nil, apperr.NotFound("no cards found")
	}
	return cards, nil
}

// Create stores a new card owned by the caller.
func (s *CardService) Create(ctx context.Context, owner primitive.ObjectID, req models.CardRequest) (*models.Card, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	card, err := s.cards.Create(ctx, &models.Card{
		Name:      req.Name,
		Link:      req.Link,
		Owner:     owner,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	s.bus.Emit(events.CardCreated, card)
	return card, nil
}

// Delete removes the card if caller owns it.
func (s *CardService) Delete(ctx context.Context, caller primitive.ObjectID, rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}

	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return cardError(err)
	}
	if card.Owner != caller {
		return apperr.Forbidden("you can only delete your own cards")
	}

	if err := s.cards.Delete(ctx, id); err != nil {
		return cardError(err)
	}

	s.bus.Emit(events.CardDeleted, card)
	return nil
}

func (s *CardService) Like(ctx context.Context, caller primitive.ObjectID, rawID string) (*models.Card, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	card, err := s.cards.AddLike(ctx, id, caller)
	if err != nil {
		return nil, cardError(err)
	}

	s.bus.Emit(events.CardLiked, likeEvent{CardID: id, UserID: caller})
	return card, nil
}

func (s *CardService) Dislike(ctx context.Context, caller primitive.ObjectID, rawID string) (*models.Card, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	card, err := s.cards.RemoveLike(ctx, id, caller)
	if err != nil {
		return nil, cardError(err)
	}

	s.bus.Emit(events.CardDisliked, likeEvent{CardID: id, UserID: caller})
	return card, nil
}

func cardError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("card not found")
	}
	return apperr.Internal(err)
}
