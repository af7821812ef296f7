package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"whaleportfolio/internal/models"
	"whaleportfolio/internal/repository"
)

// PortfolioService orchestrates repository calls and maps entities to view
// objects. Absence propagates as a nil view; no extra existence checks.
type PortfolioService struct {
	Repo repository.PortfolioRepository
}

func (s *PortfolioService) Create(ctx context.Context, req CreatePortfolioRequest) (*PortfolioView, error) {
	now := time.Now().UTC()
	p := &models.Portfolio{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		UserID:      req.UserID,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.CreatePortfolio(ctx, p); err != nil {
		return nil, err
	}
	v := portfolioView(p)
	return &v, nil
}

func (s *PortfolioService) Get(ctx context.Context, id string) (*PortfolioView, error) {
	p, err := s.Repo.GetPortfolioByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	v := portfolioView(p)
	return &v, nil
}

func (s *PortfolioService) ListByUser(ctx context.Context, userID string) ([]PortfolioView, error) {
	items, err := s.Repo.ListPortfoliosByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]PortfolioView, 0, len(items))
	for i := range items {
		views = append(views, portfolioView(&items[i]))
	}
	return views, nil
}

func (s *PortfolioService) Update(ctx context.Context, id string, req UpdatePortfolioRequest) (*PortfolioView, error) {
	patch := repository.PortfolioPatch{Description: req.Description}
	if req.Name != nil && *req.Name != "" {
		patch.Name = req.Name
	}
	p, err := s.Repo.UpdatePortfolio(ctx, id, patch)
	if err != nil || p == nil {
		return nil, err
	}
	v := portfolioView(p)
	return &v, nil
}

func (s *PortfolioService) Delete(ctx context.Context, id string) (bool, error) {
	return s.Repo.DeletePortfolio(ctx, id)
}
