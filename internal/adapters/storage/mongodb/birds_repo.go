package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bird-service/internal/domain/birds"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// BirdsRepo guarda cada bird como un documento cuyo _id es Bird.ID().
type BirdsRepo struct {
	coll *mongo.Collection
}

func NewBirdsRepo(coll *mongo.Collection) *BirdsRepo {
	return &BirdsRepo{coll: coll}
}

var _ birds.Repository = (*BirdsRepo)(nil)

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

func (r *BirdsRepo) Save(ctx context.Context, b birds.Bird) error {
	rec := b.Record()
	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("mongo: bird id required")
	}

	_, err := r.coll.ReplaceOne(ctx, byID(rec.ID), rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo: save bird: %w", err)
	}
	return nil
}

func (r *BirdsRepo) GetByID(ctx context.Context, id string) (birds.Bird, error) {
	if id == "" {
		return birds.Bird{}, birds.ErrNotFound
	}

	var rec birds.Record
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return birds.Bird{}, birds.ErrNotFound
		}
		return birds.Bird{}, fmt.Errorf("mongo: get bird: %w", err)
	}

	return birds.FromRecord(rec), nil
}

func (r *BirdsRepo) List(ctx context.Context) ([]birds.Bird, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo: list birds: %w", err)
	}

	var recs []birds.Record
	if err := cur.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("mongo: decode birds: %w", err)
	}

	out := make([]birds.Bird, 0, len(recs))
	for _, rec := range recs {
		out = append(out, birds.FromRecord(rec))
	}
	return out, nil
}

func (r *BirdsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("mongo: delete bird: %w", err)
	}
	if res.DeletedCount == 0 {
		return birds.ErrNotFound
	}
	return nil
}
