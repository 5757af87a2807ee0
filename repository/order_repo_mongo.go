package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fueldelivery/models"
)

type MongoOrderRepo struct {
	DB       *mongo.Client
	Database string
}

func NewMongoOrderRepo(db *mongo.Client, database string) *MongoOrderRepo {
	return &MongoOrderRepo{DB: db, Database: database}
}

func (r *MongoOrderRepo) collection() *mongo.Collection {
	return r.DB.Database(r.Database).Collection("delivery_orders")
}

func (r *MongoOrderRepo) List(ctx context.Context) ([]models.DeliveryOrder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "no", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, models.StoreError("list orders", err)
	}
	defer cursor.Close(ctx)

	var recs []orderRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, models.StoreError("decode orders", err)
	}
	orders := make([]models.DeliveryOrder, len(recs))
	for i, rec := range recs {
		orders[i] = rec.order()
	}
	return orders, nil
}

func (r *MongoOrderRepo) Get(ctx context.Context, doNumber string) (*models.DeliveryOrder, error) {
	var rec orderRecord
	err := r.collection().FindOne(ctx, bson.M{"_id": doNumber}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, models.StoreError("get order", err)
	}
	o := rec.order()
	return &o, nil
}

func (r *MongoOrderRepo) nextNo(ctx context.Context) (int64, error) {
	var last orderRecord
	opts := options.FindOne().SetSort(bson.D{{Key: "no", Value: -1}}).SetProjection(bson.M{"no": 1})
	err := r.collection().FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.No + 1, nil
}

func (r *MongoOrderRepo) Upsert(ctx context.Context, order models.DeliveryOrder) (models.UpsertResult, error) {
	existing, err := r.Get(ctx, order.DONumber)
	if err != nil {
		return models.UpsertResult{}, err
	}
	if existing != nil && existing.No > 0 {
		order.No = existing.No
	} else {
		if order.No, err = r.nextNo(ctx); err != nil {
			return models.UpsertResult{}, models.StoreError("next row number", err)
		}
	}

	rec := newOrderRecord(order)
	_, err = r.collection().ReplaceOne(ctx, bson.M{"_id": rec.DONumber}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return models.UpsertResult{}, models.StoreError("save order", err)
	}

	created := existing == nil
	log.Info().Str("do_number", order.DONumber).Int64("no", order.No).Bool("created", created).Msg("order saved")
	return models.UpsertResult{Order: order, Created: created}, nil
}

func (r *MongoOrderRepo) Delete(ctx context.Context, doNumber string) (bool, error) {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": doNumber})
	if err != nil {
		return false, models.StoreError("delete order", err)
	}
	return res.DeletedCount > 0, nil
}
