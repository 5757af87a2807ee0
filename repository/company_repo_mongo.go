package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fueldelivery/models"
)

type companyDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Address   string    `bson:"address"`
	Phone     string    `bson:"phone"`
	Email     string    `bson:"email"`
	Website   string    `bson:"website"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type MongoCompanyRepo struct {
	DB       *mongo.Client
	Database string
}

func NewMongoCompanyRepo(db *mongo.Client, database string) *MongoCompanyRepo {
	return &MongoCompanyRepo{DB: db, Database: database}
}

func (r *MongoCompanyRepo) collection() *mongo.Collection {
	return r.DB.Database(r.Database).Collection("company_profile")
}

func (r *MongoCompanyRepo) Save(ctx context.Context, p models.CompanyProfile) error {
	doc := companyDoc{
		ID:        "default",
		Name:      p.Name,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
		Website:   p.Website,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return models.StoreError("save company", err)
	}
	return nil
}

func (r *MongoCompanyRepo) Get(ctx context.Context) (models.CompanyProfile, error) {
	var doc companyDoc
	err := r.collection().FindOne(ctx, bson.M{"_id": "default"}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.DefaultCompanyProfile(), nil
	}
	if err != nil {
		return models.CompanyProfile{}, models.StoreError("get company", err)
	}
	return models.CompanyProfile{
		Name:    doc.Name,
		Address: doc.Address,
		Phone:   doc.Phone,
		Email:   doc.Email,
		Website: doc.Website,
	}, nil
}
