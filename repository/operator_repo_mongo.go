package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fueldelivery/models"
)

type MongoOperatorRepo struct {
	DB       *mongo.Client
	Database string
}

func NewMongoOperatorRepo(db *mongo.Client, database string) *MongoOperatorRepo {
	return &MongoOperatorRepo{DB: db, Database: database}
}

func (r *MongoOperatorRepo) collection() *mongo.Collection {
	return r.DB.Database(r.Database).Collection("operators")
}

func (r *MongoOperatorRepo) CreateOperator(ctx context.Context, username, password string) error {
	cred, err := hashOperatorPassword(username, password)
	if err != nil {
		return err
	}
	_, err = r.collection().InsertOne(ctx, cred)
	if mongo.IsDuplicateKeyError(err) {
		return models.ValidationError("username already exists")
	}
	return err
}

func (r *MongoOperatorRepo) GetOperator(ctx context.Context, username string) (*models.OperatorCredential, error) {
	cred := &models.OperatorCredential{}
	err := r.collection().FindOne(ctx, bson.M{"_id": username}).Decode(cred)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, models.StoreError("get operator", err)
	}
	return cred, nil
}
