package store

import (
	"context"
	"sort"
	"sync"

	"github.com/avvvet/mesto-services/internal/mestosvc/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps users and cards in process memory. It backs local
// development (STORE_DRIVER=memory) and the HTTP tests.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
	cards map[primitive.ObjectID]models.Card
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[primitive.ObjectID]models.User),
		cards: make(map[primitive.ObjectID]models.Card),
	}
}

func (m *MemoryStore) Users() Users { return memoryUsers{m} }
func (m *MemoryStore) Cards() Cards { return memoryCards{m} }

type memoryUsers struct{ m *MemoryStore }

func (s memoryUsers) List(ctx context.Context) ([]*models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	users := make([]*models.User, 0, len(s.m.users))
	for _, u := range s.m.users {
		u := u
		u.Password = ""
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID.Hex() < users[j].ID.Hex()
	})
	return users, nil
}

func (s memoryUsers) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	u, ok := s.m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.Password = ""
	return &u, nil
}

func (s memoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, u := range s.m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s memoryUsers) Create(ctx context.Context, user *models.User) (*models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for _, u := range s.m.users {
		if u.Email == user.Email {
			return nil, ErrDuplicateKey
		}
	}

	doc := *user
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	s.m.users[doc.ID] = doc

	doc.Password = ""
	return &doc, nil
}

func (s memoryUsers) Update(ctx context.Context, id primitive.ObjectID, upd models.UserUpdate) (*models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	u, ok := s.m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.About != nil {
		u.About = *upd.About
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	s.m.users[id] = u

	u.Password = ""
	return &u, nil
}

type memoryCards struct{ m *MemoryStore }

func (s memoryCards) List(ctx context.Context) ([]*models.Card, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	cards := make([]*models.Card, 0, len(s.m.cards))
	for _, c := range s.m.cards {
		cards = append(cards, copyCard(c))
	}
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})
	return cards, nil
}

func (s memoryCards) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Card, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	c, ok := s.m.cards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyCard(c), nil
}

func (s memoryCards) Create(ctx context.Context, card *models.Card) (*models.Card, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	doc := *copyCard(*card)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	s.m.cards[doc.ID] = doc
	return copyCard(doc), nil
}

func (s memoryCards) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	if _, ok := s.m.cards[id]; !ok {
		return ErrNotFound
	}
	delete(s.m.cards, id)
	return nil
}

func (s memoryCards) AddLike(ctx context.Context, cardID, userID primitive.ObjectID) (*models.Card, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	c, ok := s.m.cards[cardID]
	if !ok {
		return nil, ErrNotFound
	}
	if !c.HasLike(userID) {
		c.Likes = append(copyCard(c).Likes, userID)
		s.m.cards[cardID] = c
	}
	return copyCard(c), nil
}

func (s memoryCards) RemoveLike(ctx context.Context, cardID, userID primitive.ObjectID) (*models.Card, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	c, ok := s.m.cards[cardID]
	if !ok {
		return nil, ErrNotFound
	}
	likes := make([]primitive.ObjectID, 0, len(c.Likes))
	for _, id := range c.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	c.Likes = likes
	s.m.cards[cardID] = c
	return copyCard(c), nil
}

func copyCard(c models.Card) *models.Card {
	likes := make([]primitive.ObjectID, len(c.Likes))
	copy(likes, c.Likes)
	c.Likes = likes
	return &c
}
