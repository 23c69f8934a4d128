package store

import (
	"context"
	"errors"

	"github.com/avvvet/mesto-services/internal/mestosvc/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UsersCollection = "users"
	CardsCollection = "cards"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Users is the data access contract for the users collection.
// Reads other than GetByEmail never return the password hash.
type Users interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, upd models.UserUpdate) (*models.User, error)
}

// Cards is the data access contract for the cards collection.
// AddLike and RemoveLike are atomic set operations on the likes array.
type Cards interface {
	List(ctx context.Context) ([]*models.Card, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Card, error)
	Create(ctx context.Context, card *models.Card) (*models.Card, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddLike(ctx context.Context, cardID, userID primitive.ObjectID) (*models.Card, error)
	RemoveLike(ctx context.Context, cardID, userID primitive.ObjectID) (*models.Card, error)
}

var (
	_ Users = (*UserStore)(nil)
	_ Cards = (*CardStore)(nil)
	_ Users = memoryUsers{}
	_ Cards = memoryCards{}
)
