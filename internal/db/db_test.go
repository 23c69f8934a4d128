package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDatabaseName(t *testing.T) {
	name, err := DatabaseName("mongodb://localhost:27017/mestodb")
	require.NoError(t, err)
	assert.Equal(t, "mestodb", name)

	name, err = DatabaseName("mongodb://user:pass@db:27017/mesto?authSource=admin")
	require.NoError(t, err)
	assert.Equal(t, "mesto", name)

	_, err = DatabaseName("mongodb://localhost:27017")
	assert.Error(t, err)
}

func TestCreateUniqueIndex(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, CreateUniqueIndex(context.Background(), mt.DB, "users", "email"))
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "E11000 duplicate key error",
			Name:    "DuplicateKey",
		}))
		assert.Error(mt, CreateUniqueIndex(context.Background(), mt.DB, "users", "email"))
	})
}

func TestCloseNil(t *testing.T) {
	var m *Mongo
	assert.NoError(t, m.Close(context.Background()))
}
