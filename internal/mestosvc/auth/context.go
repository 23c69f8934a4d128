package auth

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey struct{}

func WithUserID(ctx context.Context, id primitive.ObjectID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// UserID returns the authenticated caller, if the auth gate attached one.
func UserID(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(ctxKey{}).(primitive.ObjectID)
	return id, ok
}
