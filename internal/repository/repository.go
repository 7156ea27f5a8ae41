package repository

import (
	"context"

	"product-catalog/internal/model"
)

// ProductRepository defines the interface for product data access operations.
// Failures wrap model.ErrStorageUnavailable or model.ErrConstraintViolation.
type ProductRepository interface {
	// List retrieves all products ordered by ID.
	List(ctx context.Context) ([]model.Product, error)

	// Create inserts a validated product and returns the stored record,
	// including its generated ID.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)

	// DeleteByID removes the product with the given ID and returns the
	// number of affected rows. A missing row is not an error.
	DeleteByID(ctx context.Context, id int64) (int64, error)

	// Count returns the number of stored products.
	Count(ctx context.Context) (int64, error)
}
