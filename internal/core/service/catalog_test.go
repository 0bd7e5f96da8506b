package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/markethub/storefront-core/internal/core/domain"
	"github.com/markethub/storefront-core/internal/core/ports"
	"github.com/markethub/storefront-core/internal/core/store"
)

type stubCatalogAPI struct {
	list     []domain.Product
	product  *domain.Product
	err      error
	getCalls int
}

func (s *stubCatalogAPI) List(_ context.Context, _ ports.ListProductsInput) ([]domain.Product, error) {
	return s.list, s.err
}

func (s *stubCatalogAPI) Get(_ context.Context, _ string) (*domain.Product, error) {
	s.getCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

func (s *stubCatalogAPI) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	p.ID = "created"
	return &p, nil
}

func (s *stubCatalogAPI) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &p, nil
}

func (s *stubCatalogAPI) Delete(_ context.Context, _ string) error {
	return s.err
}

func TestCatalogService_RefreshReplacesStore(t *testing.T) {
	api := &stubCatalogAPI{list: []domain.Product{
		{ID: "p1", Name: "Mug"},
		{ID: "p2", Name: "Kettle"},
	}}
	products := store.NewProductStore(zerolog.Nop())
	products.Replace([]domain.Product{{ID: "stale", Name: "Old"}})
	svc := NewCatalogService(api, products, zerolog.Nop())

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := products.Products(); len(got) != 2 {
		t.Fatalf("expected wholesale replacement, got %+v", got)
	}
	if _, ok := products.Find("stale"); ok {
		t.Fatalf("stale product survived Refresh")
	}
}

func TestCatalogService_ProductPrefersStore(t *testing.T) {
	api := &stubCatalogAPI{}
	products := store.NewProductStore(zerolog.Nop())
	products.Replace([]domain.Product{{ID: "p1", Name: "Mug"}})
	svc := NewCatalogService(api, products, zerolog.Nop())

	p, err := svc.Product(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if p.Name != "Mug" || api.getCalls != 0 {
		t.Fatalf("expected store hit without network call, got %+v calls=%d", p, api.getCalls)
	}
}

func TestCatalogService_ProductFallsBackToAPI(t *testing.T) {
	api := &stubCatalogAPI{product: &domain.Product{ID: "p9", Name: "Lamp"}}
	svc := NewCatalogService(api, store.NewProductStore(zerolog.Nop()), zerolog.Nop())

	p, err := svc.Product(context.Background(), "p9")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if p.Name != "Lamp" || api.getCalls != 1 {
		t.Fatalf("expected API fallback, got %+v calls=%d", p, api.getCalls)
	}
}

func TestCatalogService_ProductNotFound(t *testing.T) {
	api := &stubCatalogAPI{err: domain.ErrProductNotFound}
	svc := NewCatalogService(api, store.NewProductStore(zerolog.Nop()), zerolog.Nop())

	if _, err := svc.Product(context.Background(), "nope"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogService_SearchFiltersLocally(t *testing.T) {
	products := store.NewProductStore(zerolog.Nop())
	products.Replace([]domain.Product{
		{ID: "p1", Name: "Espresso Grinder", Category: "kitchen"},
		{ID: "p2", Name: "Espresso Cup", Category: "kitchen"},
		{ID: "p3", Name: "Desk Lamp", Category: "office"},
	})
	svc := NewCatalogService(&stubCatalogAPI{}, products, zerolog.Nop())

	got := svc.Search("espresso", "kitchen")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got := svc.Search("", "office"); len(got) != 1 || got[0].ID != "p3" {
		t.Fatalf("unexpected category filter result: %+v", got)
	}
}

func TestCatalogService_CreateMirrorsIntoStore(t *testing.T) {
	products := store.NewProductStore(zerolog.Nop())
	svc := NewCatalogService(&stubCatalogAPI{}, products, zerolog.Nop())

	created, err := svc.CreateProduct(context.Background(), domain.Product{Name: "New"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if _, ok := products.Find(created.ID); !ok {
		t.Fatalf("created product not mirrored into store")
	}
}

func TestCatalogService_DeleteRemovesFromStore(t *testing.T) {
	products := store.NewProductStore(zerolog.Nop())
	products.Replace([]domain.Product{{ID: "p1"}})
	svc := NewCatalogService(&stubCatalogAPI{}, products, zerolog.Nop())

	if err := svc.DeleteProduct(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if _, ok := products.Find("p1"); ok {
		t.Fatalf("product not removed from store")
	}
}

func TestCatalogService_RemoteFailureLeavesStoreAlone(t *testing.T) {
	boom := errors.New("boom")
	products := store.NewProductStore(zerolog.Nop())
	products.Replace([]domain.Product{{ID: "p1"}})
	svc := NewCatalogService(&stubCatalogAPI{err: boom}, products, zerolog.Nop())

	if err := svc.DeleteProduct(context.Background(), "p1"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if _, ok := products.Find("p1"); !ok {
		t.Fatalf("store must be untouched when the remote write fails")
	}
}
