// Package seed loads an initial product catalogue into an empty store.
package seed

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"product-catalog/internal/model"
)

// Loader defines the interface for loading catalogue seed files.
type Loader interface {
	// Load reads a JSON array of products, gzipped when the name ends in ".gz".
	Load(ctx context.Context, filePath string) ([]model.ProductInput, error)
}

// decodeCatalog reads a JSON array of product inputs from r.
func decodeCatalog(r io.Reader, name string) ([]model.ProductInput, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var records []model.ProductInput
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue %s: %w", name, err)
	}

	return records, nil
}
