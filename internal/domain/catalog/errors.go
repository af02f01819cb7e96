package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("product requires a title and a non-negative price")
	ErrAlreadySeeded   = errors.New("product catalog already seeded")
)
