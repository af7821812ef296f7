package repository

import (
	"context"

	"whaleportfolio/internal/models"
)

// Missing documents are reported as (nil, nil); an error always means the
// operation itself failed.

type PortfolioRepository interface {
	GetPortfolioByID(ctx context.Context, id string) (*models.Portfolio, error)
	ListPortfoliosByUserID(ctx context.Context, userID string) ([]models.Portfolio, error)
	CreatePortfolio(ctx context.Context, p *models.Portfolio) error
	UpdatePortfolio(ctx context.Context, id string, patch PortfolioPatch) (*models.Portfolio, error)
	DeletePortfolio(ctx context.Context, id string) (bool, error)
}

type TransactionRepository interface {
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactionsByPortfolioID(ctx context.Context, portfolioID string) ([]models.Transaction, error)
	ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) (bool, error)
}

type Repository interface {
	PortfolioRepository
	TransactionRepository
}
