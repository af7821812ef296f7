package mongorepository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"whaleportfolio/internal/db"
	"whaleportfolio/internal/models"
	"whaleportfolio/internal/repository"
)

func (s *Store) GetPortfolioByID(ctx context.Context, id string) (*models.Portfolio, error) {
	objID, ok := oid(id)
	if !ok {
		return nil, nil
	}
	filter := bson.M{"_id": objID, "is_active": true}

	var p models.Portfolio
	err := s.portfolios.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListPortfoliosByUserID(ctx context.Context, userID string) ([]models.Portfolio, error) {
	filter := bson.M{"user_id": userID, "is_active": true}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.portfolios.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	items := []models.Portfolio{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreatePortfolio(ctx context.Context, p *models.Portfolio) error {
	_, err := s.portfolios.InsertOne(ctx, p)
	return err
}

func (s *Store) UpdatePortfolio(ctx context.Context, id string, patch repository.PortfolioPatch) (*models.Portfolio, error) {
	objID, ok := oid(id)
	if !ok {
		return nil, nil
	}
	filter := bson.M{"_id": objID, "is_active": true}
	update := bson.M{"$set": setDoc(patch.Fields(), db.NowUTC())}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Portfolio
	err := s.portfolios.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePortfolio flips the active flag and refreshes UpdatedAt. The filter
// requires an active document so a repeat delete reports false; the
// tombstone itself is already invisible to every read path.
func (s *Store) DeletePortfolio(ctx context.Context, id string) (bool, error) {
	objID, ok := oid(id)
	if !ok {
		return false, nil
	}
	filter := bson.M{"_id": objID, "is_active": true}
	update := bson.M{"$set": bson.M{"is_active": false, "updated_at": db.NowUTC()}}

	res, err := s.portfolios.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
