package service

import (
	"context"
	"fmt"

	"product-catalog/internal/model"
	"product-catalog/internal/repository"
	"product-catalog/internal/validation"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	validator   *validation.Validator
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, validator *validation.Validator, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		validator:   validator,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves every product in the catalogue.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// Create validates the input and stores it as a new product.
func (s *productService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	if violations := s.validator.Validate(input); len(violations) > 0 {
		s.logger.Debug().
			Int("violations", len(violations)).
			Msg("product rejected by validation")
		return nil, &model.ValidationError{Violations: violations}
	}

	product, err := input.ToProduct()
	if err != nil {
		return nil, err
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", created.ID).
		Str("name", created.Name).
		Msg("product created")

	return created, nil
}

// Delete removes a product by ID.
func (s *productService) Delete(ctx context.Context, id int64) error {
	affected, err := s.productRepo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if affected == 0 {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")

	return nil
}
