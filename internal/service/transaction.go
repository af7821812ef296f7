package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"whaleportfolio/internal/models"
	"whaleportfolio/internal/repository"
)

// TransactionService mirrors PortfolioService but additionally normalizes
// the traded symbol to upper case and defaults the trade date to now.
type TransactionService struct {
	Repo repository.TransactionRepository
}

func (s *TransactionService) Create(ctx context.Context, req CreateTransactionRequest) (*TransactionView, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("unknown transaction type %q", req.Type)
	}

	now := time.Now().UTC()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	t := &models.Transaction{
		ID:          primitive.NewObjectID(),
		PortfolioID: req.PortfolioID,
		UserID:      req.UserID,
		Symbol:      strings.ToUpper(req.Symbol),
		Quantity:    req.Quantity,
		PricePaid:   req.PricePaid,
		Date:        date,
		Type:        req.Type,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}
	v := transactionView(t)
	return &v, nil
}

func (s *TransactionService) Get(ctx context.Context, id string) (*TransactionView, error) {
	t, err := s.Repo.GetTransactionByID(ctx, id)
	if err != nil || t == nil {
		return nil, err
	}
	v := transactionView(t)
	return &v, nil
}

func (s *TransactionService) ListByPortfolio(ctx context.Context, portfolioID string) ([]TransactionView, error) {
	items, err := s.Repo.ListTransactionsByPortfolioID(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	return transactionViews(items), nil
}

func (s *TransactionService) ListByUser(ctx context.Context, userID string) ([]TransactionView, error) {
	items, err := s.Repo.ListTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return transactionViews(items), nil
}

func (s *TransactionService) Update(ctx context.Context, id string, req UpdateTransactionRequest) (*TransactionView, error) {
	patch := repository.TransactionPatch{
		Quantity:  req.Quantity,
		PricePaid: req.PricePaid,
		Notes:     req.Notes,
	}
	if req.Symbol != nil && *req.Symbol != "" {
		upper := strings.ToUpper(*req.Symbol)
		patch.Symbol = &upper
	}
	if req.Date != nil {
		date := req.Date.UTC()
		patch.Date = &date
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, fmt.Errorf("unknown transaction type %q", *req.Type)
		}
		patch.Type = req.Type
	}

	t, err := s.Repo.UpdateTransaction(ctx, id, patch)
	if err != nil || t == nil {
		return nil, err
	}
	v := transactionView(t)
	return &v, nil
}

func (s *TransactionService) Delete(ctx context.Context, id string) (bool, error) {
	return s.Repo.DeleteTransaction(ctx, id)
}

func transactionViews(items []models.Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(items))
	for i := range items {
		views = append(views, transactionView(&items[i]))
	}
	return views
}
