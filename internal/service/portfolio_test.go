package service

import (
	"context"
	"testing"

	"whaleportfolio/internal/repository/memory"
)

func TestCreatePortfolioInvariants(t *testing.T) {
	ctx := context.Background()
	svc := &PortfolioService{Repo: memory.New()}

	view, err := svc.Create(ctx, CreatePortfolioRequest{Name: "Retirement", UserID: "u1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if view.ID == "" {
		t.Fatalf("create did not assign an id")
	}
	if !view.IsActive {
		t.Fatalf("created portfolio is not active")
	}
	if !view.CreatedAt.Equal(view.UpdatedAt) {
		t.Fatalf("CreatedAt %v != UpdatedAt %v at creation", view.CreatedAt, view.UpdatedAt)
	}
	if view.CreatedAt.Location() != view.CreatedAt.UTC().Location() {
		t.Fatalf("timestamps are not UTC")
	}
}

func TestUpdatePortfolioPatchSemantics(t *testing.T) {
	ctx := context.Background()
	svc := &PortfolioService{Repo: memory.New()}

	created, err := svc.Create(ctx, CreatePortfolioRequest{Name: "Retirement", UserID: "u1", Description: "long term"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Empty name is ignored; non-nil empty description clears the field.
	empty := ""
	view, err := svc.Update(ctx, created.ID, UpdatePortfolioRequest{Name: &empty, Description: &empty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if view == nil {
		t.Fatalf("update returned not-found for an existing portfolio")
	}
	if view.Name != "Retirement" {
		t.Fatalf("empty name overwrote the stored name: %q", view.Name)
	}
	if view.Description != "" {
		t.Fatalf("empty description was not applied: %q", view.Description)
	}

	name := "Growth"
	view, err = svc.Update(ctx, created.ID, UpdatePortfolioRequest{Name: &name})
	if err != nil || view == nil {
		t.Fatalf("update = (%v, %v)", view, err)
	}
	if view.Name != "Growth" {
		t.Fatalf("name = %q, want Growth", view.Name)
	}
}

func TestPortfolioAbsencePropagatesAsNil(t *testing.T) {
	ctx := context.Background()
	svc := &PortfolioService{Repo: memory.New()}

	view, err := svc.Get(ctx, "does-not-exist")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view != nil {
		t.Fatalf("get on a missing id returned %v, want nil", view)
	}

	name := "x"
	view, err = svc.Update(ctx, "does-not-exist", UpdatePortfolioRequest{Name: &name})
	if err != nil || view != nil {
		t.Fatalf("update on a missing id = (%v, %v), want (nil, nil)", view, err)
	}
}

func TestDeletePortfolioLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := &PortfolioService{Repo: memory.New()}

	created, err := svc.Create(ctx, CreatePortfolioRequest{Name: "Retirement", UserID: "u1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(ctx, created.ID)
	if err != nil || !deleted {
		t.Fatalf("delete = (%v, %v), want (true, nil)", deleted, err)
	}

	if view, _ := svc.Get(ctx, created.ID); view != nil {
		t.Fatalf("soft-deleted portfolio is still readable")
	}
	views, err := svc.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("soft-deleted portfolio still listed: %v", views)
	}

	deleted, err = svc.Delete(ctx, created.ID)
	if err != nil || deleted {
		t.Fatalf("second delete = (%v, %v), want (false, nil)", deleted, err)
	}
}
