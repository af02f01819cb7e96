package catalog

import "context"

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByDocID(ctx context.Context, docID string) (*Product, error)
	Insert(ctx context.Context, p Product) (string, error)
	Update(ctx context.Context, docID string, p Product) error
	Delete(ctx context.Context, docID string) error
	// ClaimSeedMarker atomically claims the one-time seed slot. A second
	// claim returns ErrAlreadySeeded.
	ClaimSeedMarker(ctx context.Context) error
}
