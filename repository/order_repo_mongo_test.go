package repository

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"fueldelivery/db/mongo"
)

// Runs against a real server when TEST_MONGO_URL is set. Each run gets its
// own database, dropped afterwards.
func newMongoRepo(t *testing.T) *MongoOrderRepo {
	t.Helper()
	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("TEST_MONGO_URL not set")
	}
	database := "fueldelivery_test_" + uuid.NewString()[:8]

	m := mongo.NewMongoDB(url, database)
	require.NoError(t, m.Connect())
	t.Cleanup(func() {
		_ = m.Client.Database(database).Drop(context.Background())
		_ = m.Disconnect()
	})
	return NewMongoOrderRepo(m.Client, database)
}

func TestMongoOrderRepoRowNumbering(t *testing.T) {
	assertRowNumbering(t, newMongoRepo(t))
}
