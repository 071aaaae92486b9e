package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"streamquery/internal/fixture"
)

// fixturegen writes the built-in dataset as a JSON Lines fixture, by default
// data/fixtures/default.jsonl.gz. Point FIXTURE_PATH at the file to run the
// exercises against it.
func main() {
	path := filepath.Join("data", "fixtures", "default.jsonl.gz")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	dataset := fixture.Default()
	if err := fixture.WriteFile(path, dataset); err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}

	fmt.Printf("Created %s with %d customers, %d products and %d orders\n",
		path, len(dataset.Customers), len(dataset.Products), len(dataset.Orders))
}
