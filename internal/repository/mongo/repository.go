package mongorepository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"whaleportfolio/internal/db"
	"whaleportfolio/internal/repository"
)

type Store struct {
	portfolios   *mongo.Collection
	transactions *mongo.Collection
}

var _ repository.Repository = (*Store)(nil)

func New(d *db.DB, portfolioColl, transactionColl string) *Store {
	return &Store{
		portfolios:   d.Collection(portfolioColl),
		transactions: d.Collection(transactionColl),
	}
}

// oid parses a caller-supplied id. Hex that cannot be an ObjectID denotes a
// document that cannot exist, so callers treat !ok as not-found.
func oid(id string) (primitive.ObjectID, bool) {
	parsed, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return parsed, true
}

// setDoc builds the single $set document for a patch: every present field
// plus the unconditional UpdatedAt refresh.
func setDoc(fields []repository.PatchField, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	for _, f := range fields {
		if f.Present {
			set[f.Key] = f.Value
		}
	}
	return set
}
