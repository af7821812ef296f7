package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"whaleportfolio/internal/models"
	"whaleportfolio/internal/repository/memory"
)

func newTransactionService() *TransactionService {
	return &TransactionService{Repo: memory.New()}
}

func createRequest() CreateTransactionRequest {
	return CreateTransactionRequest{
		PortfolioID: "p1",
		UserID:      "u1",
		Symbol:      "aapl",
		Quantity:    decimal.NewFromInt(10),
		PricePaid:   decimal.NewFromInt(300),
		Type:        models.Buy,
	}
}

func TestCreateTransactionNormalizesSymbol(t *testing.T) {
	svc := newTransactionService()

	view, err := svc.Create(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if view.Symbol != "AAPL" {
		t.Fatalf("symbol = %q, want AAPL", view.Symbol)
	}
}

func TestCreateTransactionDefaultsDateToNow(t *testing.T) {
	svc := newTransactionService()

	before := time.Now().UTC()
	view, err := svc.Create(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	after := time.Now().UTC()

	if view.Date.Before(before) || view.Date.After(after) {
		t.Fatalf("defaulted date %v outside [%v, %v]", view.Date, before, after)
	}
	if !view.CreatedAt.Equal(view.UpdatedAt) {
		t.Fatalf("CreatedAt %v != UpdatedAt %v at creation", view.CreatedAt, view.UpdatedAt)
	}
}

func TestCreateTransactionKeepsSuppliedDate(t *testing.T) {
	svc := newTransactionService()

	date := time.Date(2023, 7, 14, 9, 30, 0, 0, time.UTC)
	req := createRequest()
	req.Date = &date

	view, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !view.Date.Equal(date) {
		t.Fatalf("date = %v, want %v", view.Date, date)
	}
}

func TestCreateTransactionRejectsUnknownType(t *testing.T) {
	svc := newTransactionService()

	req := createRequest()
	req.Type = "Hold"
	if _, err := svc.Create(context.Background(), req); err == nil {
		t.Fatalf("create accepted an unknown transaction type")
	}
}

func TestUpdateTransactionAppliesOnlyPresentFields(t *testing.T) {
	ctx := context.Background()
	svc := newTransactionService()

	created, err := svc.Create(ctx, createRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	qty := decimal.NewFromInt(15)
	view, err := svc.Update(ctx, created.ID, UpdateTransactionRequest{Quantity: &qty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if view == nil {
		t.Fatalf("update returned not-found for an existing transaction")
	}
	if !view.Quantity.Equal(qty) {
		t.Fatalf("quantity = %s, want 15", view.Quantity)
	}
	if view.Symbol != "AAPL" {
		t.Fatalf("symbol changed on a quantity-only update: %q", view.Symbol)
	}
	if !view.PricePaid.Equal(created.PricePaid) {
		t.Fatalf("price changed on a quantity-only update: %s", view.PricePaid)
	}
}

func TestUpdateTransactionSymbolSemantics(t *testing.T) {
	ctx := context.Background()
	svc := newTransactionService()

	created, err := svc.Create(ctx, createRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Empty symbol is ignored.
	empty := ""
	view, err := svc.Update(ctx, created.ID, UpdateTransactionRequest{Symbol: &empty})
	if err != nil || view == nil {
		t.Fatalf("update = (%v, %v)", view, err)
	}
	if view.Symbol != "AAPL" {
		t.Fatalf("empty symbol overwrote the stored symbol: %q", view.Symbol)
	}

	// A supplied symbol is stored upper-cased.
	lower := "msft"
	view, err = svc.Update(ctx, created.ID, UpdateTransactionRequest{Symbol: &lower})
	if err != nil || view == nil {
		t.Fatalf("update = (%v, %v)", view, err)
	}
	if view.Symbol != "MSFT" {
		t.Fatalf("symbol = %q, want MSFT", view.Symbol)
	}
}

func TestUpdateTransactionRejectsUnknownType(t *testing.T) {
	ctx := context.Background()
	svc := newTransactionService()

	created, err := svc.Create(ctx, createRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := models.TransactionType("Hold")
	if _, err := svc.Update(ctx, created.ID, UpdateTransactionRequest{Type: &bad}); err == nil {
		t.Fatalf("update accepted an unknown transaction type")
	}
}

func TestTransactionAbsencePropagatesAsNil(t *testing.T) {
	ctx := context.Background()
	svc := newTransactionService()

	if view, err := svc.Get(ctx, "missing"); err != nil || view != nil {
		t.Fatalf("get = (%v, %v), want (nil, nil)", view, err)
	}
	qty := decimal.NewFromInt(1)
	if view, err := svc.Update(ctx, "missing", UpdateTransactionRequest{Quantity: &qty}); err != nil || view != nil {
		t.Fatalf("update = (%v, %v), want (nil, nil)", view, err)
	}
	if deleted, err := svc.Delete(ctx, "missing"); err != nil || deleted {
		t.Fatalf("delete = (%v, %v), want (false, nil)", deleted, err)
	}
}
