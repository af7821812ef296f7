package service

import (
	"time"

	"github.com/shopspring/decimal"

	"whaleportfolio/internal/models"
)

type CreatePortfolioRequest struct {
	Name        string `json:"name" binding:"required"`
	UserID      string `json:"userId" binding:"required"`
	Description string `json:"description"`
}

// UpdatePortfolioRequest fields are applied only when present: a nil or
// empty Name is ignored, a non-nil Description is applied even when empty.
type UpdatePortfolioRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type PortfolioView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateTransactionRequest struct {
	PortfolioID string                 `json:"portfolioId" binding:"required"`
	UserID      string                 `json:"userId" binding:"required"`
	Symbol      string                 `json:"symbol" binding:"required"`
	Quantity    decimal.Decimal        `json:"quantity" binding:"required"`
	PricePaid   decimal.Decimal        `json:"pricePaid" binding:"required"`
	Date        *time.Time             `json:"date"`
	Type        models.TransactionType `json:"transactionType" binding:"required"`
	Notes       string                 `json:"notes"`
}

type UpdateTransactionRequest struct {
	Symbol    *string                 `json:"symbol"`
	Quantity  *decimal.Decimal        `json:"quantity"`
	PricePaid *decimal.Decimal        `json:"pricePaid"`
	Date      *time.Time              `json:"date"`
	Type      *models.TransactionType `json:"transactionType"`
	Notes     *string                 `json:"notes"`
}

type TransactionView struct {
	ID          string                 `json:"id"`
	PortfolioID string                 `json:"portfolioId"`
	UserID      string                 `json:"userId"`
	Symbol      string                 `json:"symbol"`
	Quantity    decimal.Decimal        `json:"quantity"`
	PricePaid   decimal.Decimal        `json:"pricePaid"`
	Date        time.Time              `json:"date"`
	Type        models.TransactionType `json:"transactionType"`
	Notes       string                 `json:"notes"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

func portfolioView(p *models.Portfolio) PortfolioView {
	return PortfolioView{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		UserID:      p.UserID,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func transactionView(t *models.Transaction) TransactionView {
	return TransactionView{
		ID:          t.ID.Hex(),
		PortfolioID: t.PortfolioID,
		UserID:      t.UserID,
		Symbol:      t.Symbol,
		Quantity:    t.Quantity,
		PricePaid:   t.PricePaid,
		Date:        t.Date,
		Type:        t.Type,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
