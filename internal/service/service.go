package service

import (
	"context"

	"product-catalog/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves every product in the catalogue.
	List(ctx context.Context) ([]model.Product, error)

	// Create validates the input and stores it as a new product.
	// Returns *model.ValidationError when any field rule is violated.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// Delete removes a product by ID.
	// Returns model.ErrProductNotFound when no product has that ID.
	Delete(ctx context.Context, id int64) error
}
