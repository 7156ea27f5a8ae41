package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

type sampleProduct struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
}

// generateSampleCatalog writes a seed catalogue in plain and gzipped form.
// The last entry is deliberately invalid and is skipped by the importer.
//
// Usage: SEED_FILE=data/catalog.json.gz go run ./cmd/api serve
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := []sampleProduct{
		{Name: "Ballpoint Pen", Description: "Blue ink, medium tip", Price: "2.50"},
		{Name: "A5 Notebook", Description: "80 ruled pages", Price: "4.99"},
		{Name: "Desk Lamp", Description: "LED, adjustable arm", Price: "34.90"},
		{Name: "Coffee Mug", Description: "Ceramic, 350 ml", Price: "8"},
		{Name: "USB-C Cable", Description: "1 m, braided", Price: "9.95"},
		{Name: "Sticky Notes", Description: "Pack of 12 pads", Price: "1.999"},
	}

	for _, filename := range []string{"catalog.json", "catalog.json.gz"} {
		filePath := filepath.Join(dataDir, filename)

		if err := writeCatalog(filePath, products); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d products\n", filePath, len(products))
	}

	fmt.Println("\nSample catalogue created successfully!")
	fmt.Println("  - 5 valid products")
	fmt.Println("  - 1 invalid product (\"Sticky Notes\": more than 2 decimal places)")
}

func writeCatalog(filePath string, products []sampleProduct) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	var w io.Writer = file
	if strings.HasSuffix(filePath, ".gz") {
		gzipWriter := gzip.NewWriter(file)
		defer gzipWriter.Close()
		w = gzipWriter
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		return fmt.Errorf("failed to write catalogue: %w", err)
	}

	return nil
}
