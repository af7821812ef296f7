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

func (s *Store) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	objID, ok := oid(id)
	if !ok {
		return nil, nil
	}

	var t models.Transaction
	err := s.transactions.FindOne(ctx, bson.M{"_id": objID}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListTransactionsByPortfolioID(ctx context.Context, portfolioID string) ([]models.Transaction, error) {
	return s.listTransactions(ctx, bson.M{"portfolio_id": portfolioID})
}

func (s *Store) ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.listTransactions(ctx, bson.M{"user_id": userID})
}

func (s *Store) listTransactions(ctx context.Context, filter bson.M) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cur, err := s.transactions.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	items := []models.Transaction{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	_, err := s.transactions.InsertOne(ctx, t)
	return err
}

func (s *Store) UpdateTransaction(ctx context.Context, id string, patch repository.TransactionPatch) (*models.Transaction, error) {
	objID, ok := oid(id)
	if !ok {
		return nil, nil
	}
	update := bson.M{"$set": setDoc(patch.Fields(), db.NowUTC())}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var t models.Transaction
	err := s.transactions.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTransaction removes the document physically; there is no
// soft-delete flag on transactions.
func (s *Store) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	objID, ok := oid(id)
	if !ok {
		return false, nil
	}

	res, err := s.transactions.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
