package repository

import (
	"context"
	"errors"
	"fmt"

	"product-catalog/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves all products ordered by ID.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, description, price
		FROM products
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w: %w", classify(err), err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w: %w", classify(err), err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w: %w", classify(err), err)
	}

	return products, nil
}

// Create inserts a validated product and returns the stored record.
// The returned price is the value stored in the NUMERIC(10,2) column.
func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	query := `
		INSERT INTO products (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, price
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, product.Name, product.Description, product.Price).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price)
	if err != nil {
		r.logger.Error().Err(err).
			Str("name", product.Name).
			Str("price", product.Price.String()).
			Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w: %w", classify(err), err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("product created")

	return &p, nil
}

// DeleteByID removes the product with the given ID.
func (r *productRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return 0, fmt.Errorf("failed to delete product: %w: %w", classify(err), err)
	}

	affected := tag.RowsAffected()
	if affected == 0 {
		r.logger.Debug().Int64("product_id", id).Msg("product not found for deletion")
	}

	return affected, nil
}

// Count returns the number of stored products.
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w: %w", classify(err), err)
	}
	return count, nil
}

// classify maps a driver error onto the persistence error taxonomy.
// SQLSTATE class 22 is a data exception (e.g. numeric overflow) and class 23
// an integrity violation; both mean the store rejected the row.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case "22", "23":
			return model.ErrConstraintViolation
		}
	}
	return model.ErrStorageUnavailable
}
