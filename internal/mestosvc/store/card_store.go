package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avvvet/mesto-services/internal/mestosvc/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CardStore struct {
	coll *mongo.Collection
}

func NewCardStore(db *mongo.Database) *CardStore {
	return &CardStore{coll: db.Collection(CardsCollection)}
}

func (s *CardStore) List(ctx context.Context) ([]*models.Card, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer cur.Close(ctx)

	cards := []*models.Card{}
	if err := cur.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}
	for _, c := range cards {
		normalizeLikes(c)
	}
	return cards, nil
}

func (s *CardStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Card, error) {
	card := &models.Card{}
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(card)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get card by id: %w", err)
	}
	normalizeLikes(card)
	return card, nil
}

func (s *CardStore) Create(ctx context.Context, card *models.Card) (*models.Card, error) {
	doc := *card
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	normalizeLikes(&doc)

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("could not create card: %w", err)
	}
	return &doc, nil
}

func (s *CardStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CardStore) AddLike(ctx context.Context, cardID, userID primitive.ObjectID) (*models.Card, error) {
	return s.updateLikes(ctx, cardID, bson.D{{Key: "$addToSet", Value: bson.M{"likes": userID}}})
}

func (s *CardStore) RemoveLike(ctx context.Context, cardID, userID primitive.ObjectID) (*models.Card, error) {
	return s.updateLikes(ctx, cardID, bson.D{{Key: "$pull", Value: bson.M{"likes": userID}}})
}

func (s *CardStore) updateLikes(ctx context.Context, cardID primitive.ObjectID, update bson.D) (*models.Card, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	card := &models.Card{}
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": cardID}, update, opts).Decode(card)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update card likes: %w", err)
	}
	normalizeLikes(card)
	return card, nil
}

// likes is always a JSON array, never null
func normalizeLikes(c *models.Card) {
	if c.Likes == nil {
		c.Likes = []primitive.ObjectID{}
	}
}
