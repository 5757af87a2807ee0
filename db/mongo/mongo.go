package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fueldelivery/models"
)

// MongoDB holds the client; collections live in Database.
type MongoDB struct {
	Client   *mongo.Client
	Ctx      context.Context
	Cancel   context.CancelFunc
	URL      string
	Database string
}

func NewMongoDB(url, database string) *MongoDB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	return &MongoDB{
		Ctx:      ctx,
		Cancel:   cancel,
		URL:      url,
		Database: database,
	}
}

func (m *MongoDB) Connect() error {
	if m.URL == "" {
		return errors.Wrap(models.ErrConfigMissing, "MONGO_URL is empty")
	}
	client, err := mongo.Connect(m.Ctx, options.Client().ApplyURI(m.URL).SetAppName("fueldelivery"))
	if err != nil {
		return models.StoreError("connect mongo", err)
	}
	if err := client.Ping(m.Ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return models.StoreError("ping mongo", err)
	}
	m.Client = client
	return nil
}

func (m *MongoDB) Disconnect() error {
	defer m.Cancel()
	if m.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}
