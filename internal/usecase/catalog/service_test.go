package catalog

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	domcatalog "example.com/storefront/internal/domain/catalog"
	domuser "example.com/storefront/internal/domain/user"
)

type mockOwnedRepository struct {
	products []domcatalog.Product
	seeded   bool
	listErr  error
	claimErr error
	nextDoc  int
}

func (m *mockOwnedRepository) List(ctx context.Context) ([]domcatalog.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domcatalog.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *mockOwnedRepository) GetByDocID(ctx context.Context, docID string) (*domcatalog.Product, error) {
	for _, p := range m.products {
		if p.DocID == docID {
			cloned := p
			return &cloned, nil
		}
	}
	return nil, domcatalog.ErrProductNotFound
}

func (m *mockOwnedRepository) Insert(ctx context.Context, p domcatalog.Product) (string, error) {
	m.nextDoc++
	p.DocID = "doc-" + strconv.Itoa(m.nextDoc)
	m.products = append(m.products, p)
	return p.DocID, nil
}

func (m *mockOwnedRepository) Update(ctx context.Context, docID string, p domcatalog.Product) error {
	for i := range m.products {
		if m.products[i].DocID == docID {
			p.DocID = docID
			m.products[i] = p
			return nil
		}
	}
	return domcatalog.ErrProductNotFound
}

func (m *mockOwnedRepository) Delete(ctx context.Context, docID string) error {
	for i := range m.products {
		if m.products[i].DocID == docID {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return domcatalog.ErrProductNotFound
}

func (m *mockOwnedRepository) ClaimSeedMarker(ctx context.Context) error {
	if m.claimErr != nil {
		return m.claimErr
	}
	if m.seeded {
		return domcatalog.ErrAlreadySeeded
	}
	m.seeded = true
	return nil
}

type mockExternalCatalog struct {
	products    []domcatalog.Product
	categories  []string
	productsErr error
}

func (m *mockExternalCatalog) Products(ctx context.Context) ([]domcatalog.Product, error) {
	if m.productsErr != nil {
		return nil, m.productsErr
	}
	return m.products, nil
}

func (m *mockExternalCatalog) Categories(ctx context.Context) ([]string, error) {
	return m.categories, nil
}

func (m *mockExternalCatalog) ProductsByCategory(ctx context.Context, category string) ([]domcatalog.Product, error) {
	var out []domcatalog.Product
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

var identity = &domuser.Identity{UID: "uid-1", Email: "a@b.com"}

func ownedProduct() domcatalog.Product {
	return domcatalog.Product{DocID: "doc-1", ID: 1, Title: "Owned Shorts", Price: 20}
}

func externalProduct() domcatalog.Product {
	return domcatalog.Product{DocID: "1", ID: 1, Title: "External Shorts", Price: 20}
}

func TestFetchProducts_SourceSelection(t *testing.T) {
	tests := []struct {
		name      string
		identity  *domuser.Identity
		owned     []domcatalog.Product
		wantTitle string
	}{
		{
			name:      "signed in, owned collection populated",
			identity:  identity,
			owned:     []domcatalog.Product{ownedProduct()},
			wantTitle: "Owned Shorts",
		},
		{
			name:      "signed in, owned collection empty",
			identity:  identity,
			owned:     nil,
			wantTitle: "External Shorts",
		},
		{
			name:      "signed out, owned collection populated",
			identity:  nil,
			owned:     []domcatalog.Product{ownedProduct()},
			wantTitle: "External Shorts",
		},
		{
			name:      "signed out, owned collection empty",
			identity:  nil,
			owned:     nil,
			wantTitle: "External Shorts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owned := &mockOwnedRepository{products: tt.owned}
			external := &mockExternalCatalog{products: []domcatalog.Product{externalProduct()}}
			svc := NewService(owned, external)

			products, err := svc.FetchProducts(context.Background(), tt.identity)

			require.NoError(t, err)
			require.Len(t, products, 1)
			require.Equal(t, tt.wantTitle, products[0].Title)
		})
	}
}

func TestFetchProducts_OwnedQueryError(t *testing.T) {
	owned := &mockOwnedRepository{listErr: errors.New("store unavailable")}
	svc := NewService(owned, &mockExternalCatalog{})

	_, err := svc.FetchProducts(context.Background(), identity)
	require.Error(t, err)
}

func TestSeedProducts_SeedsOnce(t *testing.T) {
	owned := &mockOwnedRepository{}
	external := &mockExternalCatalog{products: []domcatalog.Product{externalProduct()}}
	svc := NewService(owned, external)

	seeded, err := svc.SeedProducts(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)
	require.Len(t, owned.products, 1)

	// The second seeder loses the marker claim and inserts nothing.
	seeded, err = svc.SeedProducts(context.Background())
	require.NoError(t, err)
	require.False(t, seeded)
	require.Len(t, owned.products, 1)
}

func TestSeedProducts_ClaimError(t *testing.T) {
	owned := &mockOwnedRepository{claimErr: errors.New("store unavailable")}
	svc := NewService(owned, &mockExternalCatalog{})

	seeded, err := svc.SeedProducts(context.Background())
	require.Error(t, err)
	require.False(t, seeded)
}

func TestSeedProducts_CatalogFetchError(t *testing.T) {
	owned := &mockOwnedRepository{}
	external := &mockExternalCatalog{productsErr: errors.New("status 503")}
	svc := NewService(owned, external)

	seeded, err := svc.SeedProducts(context.Background())
	require.Error(t, err)
	require.False(t, seeded)
	require.Empty(t, owned.products)
}

func TestFetchCategories(t *testing.T) {
	external := &mockExternalCatalog{categories: []string{"electronics", "jewelery"}}
	svc := NewService(&mockOwnedRepository{}, external)

	categories, err := svc.FetchCategories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"electronics", "jewelery"}, categories)
}

func TestFetchProductsByCategory(t *testing.T) {
	p := externalProduct()
	p.Category = "clothing"
	external := &mockExternalCatalog{products: []domcatalog.Product{p}}
	svc := NewService(&mockOwnedRepository{}, external)

	products, err := svc.FetchProductsByCategory(context.Background(), "clothing")
	require.NoError(t, err)
	require.Len(t, products, 1)

	products, err = svc.FetchProductsByCategory(context.Background(), "electronics")
	require.NoError(t, err)
	require.Empty(t, products)
}

func TestAddProduct_Validation(t *testing.T) {
	svc := NewService(&mockOwnedRepository{}, &mockExternalCatalog{})

	_, err := svc.AddProduct(context.Background(), domcatalog.Product{Price: 10})
	require.ErrorIs(t, err, domcatalog.ErrInvalidProduct)

	_, err = svc.AddProduct(context.Background(), domcatalog.Product{Title: "Shorts", Price: -1})
	require.ErrorIs(t, err, domcatalog.ErrInvalidProduct)

	docID, err := svc.AddProduct(context.Background(), domcatalog.Product{Title: "Shorts", Price: 10})
	require.NoError(t, err)
	require.NotEmpty(t, docID)
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	owned := &mockOwnedRepository{}
	svc := NewService(owned, &mockExternalCatalog{})

	docID, err := svc.AddProduct(context.Background(), domcatalog.Product{Title: "Shorts", Price: 10})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProduct(context.Background(), docID, domcatalog.Product{Title: "Long Shorts", Price: 12}))

	p, err := svc.GetProduct(context.Background(), docID)
	require.NoError(t, err)
	require.Equal(t, "Long Shorts", p.Title)

	require.NoError(t, svc.DeleteProduct(context.Background(), docID))
	_, err = svc.GetProduct(context.Background(), docID)
	require.ErrorIs(t, err, domcatalog.ErrProductNotFound)
}
