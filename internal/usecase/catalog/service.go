package catalog

import (
	"context"
	"errors"
	"fmt"

	domcatalog "example.com/storefront/internal/domain/catalog"
	domuser "example.com/storefront/internal/domain/user"
)

// ExternalCatalog is the public read-only product source the storefront
// falls back to when the owned collection cannot serve a request.
type ExternalCatalog interface {
	Products(ctx context.Context) ([]domcatalog.Product, error)
	Categories(ctx context.Context) ([]string, error)
	ProductsByCategory(ctx context.Context, category string) ([]domcatalog.Product, error)
}

type Service struct {
	owned    domcatalog.Repository
	external ExternalCatalog
}

func NewService(owned domcatalog.Repository, external ExternalCatalog) *Service {
	return &Service{owned: owned, external: external}
}

// useOwnedProducts is the single source-selection policy: the owned
// collection serves only when an identity is present and the collection has
// documents. Every other combination falls back to the external catalog.
func useOwnedProducts(signedIn, ownedEmpty bool) bool {
	return signedIn && !ownedEmpty
}

// FetchProducts returns the product list for the given identity (nil when
// signed out). Identity absence forces the external fallback regardless of
// what the owned collection holds.
func (s *Service) FetchProducts(ctx context.Context, identity *domuser.Identity) ([]domcatalog.Product, error) {
	signedIn := identity != nil

	var owned []domcatalog.Product
	if signedIn {
		var err error
		owned, err = s.owned.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	if useOwnedProducts(signedIn, len(owned) == 0) {
		return owned, nil
	}
	return s.external.Products(ctx)
}

func (s *Service) FetchCategories(ctx context.Context) ([]string, error) {
	return s.external.Categories(ctx)
}

func (s *Service) FetchProductsByCategory(ctx context.Context, category string) ([]domcatalog.Product, error) {
	return s.external.ProductsByCategory(ctx, category)
}

// SeedProducts copies the full external catalog into the owned collection at
// most once. The seed slot is claimed atomically before any insert, so two
// concurrent seeders cannot both populate; the loser reports seeded=false.
func (s *Service) SeedProducts(ctx context.Context) (bool, error) {
	if err := s.owned.ClaimSeedMarker(ctx); err != nil {
		if errors.Is(err, domcatalog.ErrAlreadySeeded) {
			return false, nil
		}
		return false, err
	}

	products, err := s.external.Products(ctx)
	if err != nil {
		return false, fmt.Errorf("fetching catalog for seeding: %w", err)
	}

	for _, p := range products {
		if _, err := s.owned.Insert(ctx, p); err != nil {
			return false, fmt.Errorf("seeding product %d: %w", p.ID, err)
		}
	}
	return true, nil
}

func (s *Service) AddProduct(ctx context.Context, p domcatalog.Product) (string, error) {
	if p.Title == "" || p.Price < 0 {
		return "", domcatalog.ErrInvalidProduct
	}
	return s.owned.Insert(ctx, p)
}

func (s *Service) GetProduct(ctx context.Context, docID string) (*domcatalog.Product, error) {
	return s.owned.GetByDocID(ctx, docID)
}

func (s *Service) UpdateProduct(ctx context.Context, docID string, p domcatalog.Product) error {
	if p.Title == "" || p.Price < 0 {
		return domcatalog.ErrInvalidProduct
	}
	return s.owned.Update(ctx, docID, p)
}

func (s *Service) DeleteProduct(ctx context.Context, docID string) error {
	return s.owned.Delete(ctx, docID)
}
