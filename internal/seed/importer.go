package seed

import (
	"context"
	"errors"
	"fmt"

	"product-catalog/internal/model"
	"product-catalog/internal/repository"
	"product-catalog/internal/service"

	"github.com/rs/zerolog"
)

// Result summarises one seeding run.
type Result struct {
	Skipped  bool // store already held products
	Loaded   int
	Created  int
	Rejected int
}

// Importer fills an empty catalogue from a seed file.
type Importer struct {
	loader  Loader
	repo    repository.ProductRepository
	service service.ProductService
	logger  zerolog.Logger
}

// NewImporter creates a new seed importer. Records go through the service so
// seeded rows obey the same rules as API-created ones.
func NewImporter(loader Loader, repo repository.ProductRepository, svc service.ProductService, logger zerolog.Logger) *Importer {
	return &Importer{
		loader:  loader,
		repo:    repo,
		service: svc,
		logger:  logger.With().Str("component", "seed-importer").Logger(),
	}
}

// Run imports filePath when the products table is empty. Records that fail
// validation or that the store rejects are logged and skipped; storage
// outages abort the run.
func (i *Importer) Run(ctx context.Context, filePath string) (Result, error) {
	var result Result

	count, err := i.repo.Count(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		i.logger.Info().Int64("existing", count).Msg("catalogue not empty, skipping seed")
		result.Skipped = true
		return result, nil
	}

	records, err := i.loader.Load(ctx, filePath)
	if err != nil {
		return result, fmt.Errorf("failed to load seed file: %w", err)
	}
	result.Loaded = len(records)

	for idx, record := range records {
		_, err := i.service.Create(ctx, record)
		if err == nil {
			result.Created++
			continue
		}

		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			i.logger.Warn().
				Int("record", idx).
				Str("name", record.Name).
				Str("reason", validationErr.Error()).
				Msg("skipping invalid seed record")
			result.Rejected++
			continue
		}

		if errors.Is(err, model.ErrConstraintViolation) {
			i.logger.Warn().
				Err(err).
				Int("record", idx).
				Str("name", record.Name).
				Msg("skipping seed record rejected by the store")
			result.Rejected++
			continue
		}

		return result, fmt.Errorf("failed to import seed record %d: %w", idx, err)
	}

	i.logger.Info().
		Str("file", filePath).
		Int("created", result.Created).
		Int("rejected", result.Rejected).
		Msg("catalogue seeded")

	return result, nil
}
