package service

import (
	"context"
	"errors"
	"time"

	"github.com/avvvet/mesto-services/internal/mestosvc/apperr"
	"github.com/avvvet/mesto-services/internal/mestosvc/auth"
	"github.com/avvvet/mesto-services/internal/mestosvc/events"
	"github.com/avvvet/mesto-services/internal/mestosvc/models"
	"github.com/avvvet/mesto-services/internal/mestosvc/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errBadCredentials = apperr.Unauthorized("wrong email or password")

// UserService struct represents the user service layer
type UserService struct {
	users             store.Users
	tokens            *auth.TokenAuth
	bus               *events.Bus
	emptyListNotFound bool
}

// NewUserService creates a new UserService instance
func NewUserService(users store.Users, tokens *auth.TokenAuth, bus *events.Bus, emptyListNotFound bool) *UserService {
	return &UserService{
		users:             users,
		tokens:            tokens,
		bus:               bus,
		emptyListNotFound: emptyListNotFound,
	}
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(users) == 0 && s.emptyListNotFound {
		return nil, apperr.NotFound("no users found")
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, rawID string) (*models.User, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

func (s *UserService) get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, userError(err)
	}
	return u, nil
}

// Signup validates the payload, fills profile defaults, hashes the password
// and stores the user. The returned user never carries the hash.
func (s *UserService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := checkPasswordPolicy(req.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &models.User{
		Name:     orDefault(req.Name, models.DefaultUserName),
		About:    orDefault(req.About, models.DefaultUserAbout),
		Avatar:   orDefault(req.Avatar, models.DefaultUserAvatar),
		Email:    req.Email,
		Password: hash,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, apperr.Conflict("a user with this email already exists")
		}
		return nil, apperr.Internal(err)
	}

	s.bus.Emit(events.UserCreated, created)
	return created, nil
}

// Authenticate looks up the user by email and checks the password. Unknown
// email and wrong password produce the same error.
func (s *UserService) Authenticate(ctx context.Context, req models.SigninRequest) (*models.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, apperr.Internal(err)
	}

	ok, err := auth.CheckPassword(u.Password, req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, errBadCredentials
	}

	u.Password = ""
	return u, nil
}

// Login authenticates the caller and issues a signed token for the session cookie.
func (s *UserService) Login(ctx context.Context, req models.SigninRequest) (string, time.Time, error) {
	u, err := s.Authenticate(ctx, req)
	if err != nil {
		return "", time.Time{}, err
	}

	token, expiresAt, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", time.Time{}, apperr.Internal(err)
	}
	return token, expiresAt, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req models.ProfileRequest) (*models.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return s.update(ctx, userID, models.UserUpdate{Name: &req.Name, About: &req.About})
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, req models.AvatarRequest) (*models.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return s.update(ctx, userID, models.UserUpdate{Avatar: &req.Avatar})
}

func (s *UserService) update(ctx context.Context, userID primitive.ObjectID, upd models.UserUpdate) (*models.User, error) {
	u, err := s.users.Update(ctx, userID, upd)
	if err != nil {
		return nil, userError(err)
	}
	return u, nil
}

func userError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("user not found")
	}
	return apperr.Internal(err)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
