// Package memory is an in-memory repository.Repository with the same
// observable semantics as the Mongo store. It backs the service and handler
// tests and is handy for running the server without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"whaleportfolio/internal/models"
	"whaleportfolio/internal/repository"
)

type Store struct {
	mu           sync.RWMutex
	portfolios   map[string]models.Portfolio
	transactions map[string]models.Transaction
}

var _ repository.Repository = (*Store)(nil)

func New() *Store {
	return &Store{
		portfolios:   make(map[string]models.Portfolio),
		transactions: make(map[string]models.Transaction),
	}
}

func (s *Store) GetPortfolioByID(ctx context.Context, id string) (*models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.portfolios[id]
	if !ok || !p.IsActive {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) ListPortfoliosByUserID(ctx context.Context, userID string) ([]models.Portfolio, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []models.Portfolio{}
	for _, p := range s.portfolios {
		if p.UserID == userID && p.IsActive {
			items = append(items, p)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) CreatePortfolio(ctx context.Context, p *models.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolios[p.ID.Hex()] = *p
	return nil
}

func (s *Store) UpdatePortfolio(ctx context.Context, id string, patch repository.PortfolioPatch) (*models.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.portfolios[id]
	if !ok || !p.IsActive {
		return nil, nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	p.UpdatedAt = time.Now().UTC()
	s.portfolios[id] = p
	return &p, nil
}

func (s *Store) DeletePortfolio(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.portfolios[id]
	if !ok || !p.IsActive {
		return false, nil
	}
	p.IsActive = false
	p.UpdatedAt = time.Now().UTC()
	s.portfolios[id] = p
	return true, nil
}

func (s *Store) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *Store) ListTransactionsByPortfolioID(ctx context.Context, portfolioID string) ([]models.Transaction, error) {
	return s.listTransactions(func(t models.Transaction) bool {
		return t.PortfolioID == portfolioID
	})
}

func (s *Store) ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.listTransactions(func(t models.Transaction) bool {
		return t.UserID == userID
	})
}

func (s *Store) listTransactions(match func(models.Transaction) bool) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []models.Transaction{}
	for _, t := range s.transactions {
		if match(t) {
			items = append(items, t)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, nil
}

func (s *Store) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[t.ID.Hex()] = *t
	return nil
}

func (s *Store) UpdateTransaction(ctx context.Context, id string, patch repository.TransactionPatch) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	if !ok {
		return nil, nil
	}
	if patch.Symbol != nil {
		t.Symbol = *patch.Symbol
	}
	if patch.Quantity != nil {
		t.Quantity = *patch.Quantity
	}
	if patch.PricePaid != nil {
		t.PricePaid = *patch.PricePaid
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.Notes != nil {
		t.Notes = *patch.Notes
	}
	t.UpdatedAt = time.Now().UTC()
	s.transactions[id] = t
	return &t, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return false, nil
	}
	delete(s.transactions, id)
	return true, nil
}
