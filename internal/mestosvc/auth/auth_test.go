package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("longpass1")
	require.NoError(t, err)
	assert.NotEqual(t, "longpass1", hash)

	ok, err := CheckPassword(hash, "longpass1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "wrongpass")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	_, err := CheckPassword("not-a-hash", "whatever")
	assert.Error(t, err)
}

func TestIssueAndVerify(t *testing.T) {
	ta := NewTokenAuth("super-secret", 7*24*time.Hour)
	userID := primitive.NewObjectID()

	tok, exp, err := ta.Issue(userID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, time.Minute)

	got, err := ta.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyExpired(t *testing.T) {
	ta := NewTokenAuth("secret", -time.Minute)

	tok, _, err := ta.Issue(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = ta.Verify(tok)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, _, err := NewTokenAuth("right-secret", time.Hour).Issue(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = NewTokenAuth("wrong-secret", time.Hour).Verify(tok)
	assert.Error(t, err)
}

func TestVerifyMalformed(t *testing.T) {
	_, err := NewTokenAuth("k", time.Hour).Verify("not.a.jwt")
	assert.Error(t, err)
}

func TestUserIDContext(t *testing.T) {
	_, ok := UserID(context.Background())
	assert.False(t, ok)

	id := primitive.NewObjectID()
	got, ok := UserID(WithUserID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
