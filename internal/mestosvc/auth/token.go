package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// CookieName matches the cookie jwtauth.TokenFromCookie reads.
	CookieName  = "jwt"
	userIDClaim = "user_id"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenAuth issues and verifies HS256 tokens carrying a user id.
type TokenAuth struct {
	ja  *jwtauth.JWTAuth
	ttl time.Duration
}

func NewTokenAuth(secret string, ttl time.Duration) *TokenAuth {
	return &TokenAuth{
		ja:  jwtauth.New("HS256", []byte(secret), nil),
		ttl: ttl,
	}
}

// JWTAuth exposes the underlying verifier for jwtauth middleware.
func (t *TokenAuth) JWTAuth() *jwtauth.JWTAuth {
	return t.ja
}

func (t *TokenAuth) TTL() time.Duration {
	return t.ttl
}

// Issue signs a token for userID that expires after the configured ttl.
func (t *TokenAuth) Issue(userID primitive.ObjectID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(t.ttl)

	claims := map[string]interface{}{
		userIDClaim: userID.Hex(),
	}
	jwtauth.SetIssuedAt(claims, now)
	jwtauth.SetExpiry(claims, expiresAt)

	_, tokenString, err := t.ja.Encode(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates signature and expiry and returns the embedded user id.
func (t *TokenAuth) Verify(tokenString string) (primitive.ObjectID, error) {
	token, err := jwtauth.VerifyToken(t.ja, tokenString)
	if err != nil {
		return primitive.NilObjectID, err
	}
	v, ok := token.Get(userIDClaim)
	if !ok {
		return primitive.NilObjectID, ErrInvalidToken
	}
	return parseUserID(v)
}

// UserIDFromVerified reads the identity left in ctx by jwtauth.Verify.
func UserIDFromVerified(ctx context.Context) (primitive.ObjectID, error) {
	token, _, err := jwtauth.FromContext(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if token == nil {
		return primitive.NilObjectID, jwtauth.ErrNoTokenFound
	}
	v, ok := token.Get(userIDClaim)
	if !ok {
		return primitive.NilObjectID, ErrInvalidToken
	}
	return parseUserID(v)
}

func parseUserID(v interface{}) (primitive.ObjectID, error) {
	s, ok := v.(string)
	if !ok {
		return primitive.NilObjectID, ErrInvalidToken
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidToken
	}
	return id, nil
}
