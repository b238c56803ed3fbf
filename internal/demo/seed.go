package demo

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/entities"
)

//go:embed seed.yaml
var embeddedSeed []byte

// SeedFile is the YAML layout of a seed catalogue.
type SeedFile struct {
	Books []SeedBook `yaml:"books"`
}

type SeedBook struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Year   int    `yaml:"year"`
}

// ParseSeed decodes a YAML seed catalogue.
func ParseSeed(data []byte) ([]entities.CreateBookRequest, error) {
	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	requests := make([]entities.CreateBookRequest, 0, len(file.Books))
	for _, b := range file.Books {
		requests = append(requests, entities.CreateBookRequest{Title: b.Title, Author: b.Author, Year: b.Year})
	}
	return requests, nil
}

// LoadSeed reads the seed catalogue at path, or the embedded one when path
// is empty.
func LoadSeed(path string) ([]entities.CreateBookRequest, error) {
	if path == "" {
		return ParseSeed(embeddedSeed)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return ParseSeed(data)
}

// SeedResult summarizes a seeding run.
type SeedResult struct {
	Created int
	Failed  int
	Errors  []string
}

// Seed creates every request in the store. Invalid entries are skipped and
// reported rather than aborting the run.
func Seed(store *bookstore.Store, requests []entities.CreateBookRequest) SeedResult {
	var result SeedResult
	for _, req := range requests {
		outcome := store.SafeCreate(req)
		if !outcome.IsOK() {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%q: %v", req.Title, outcome.Err()))
			continue
		}
		result.Created++
	}
	return result
}

// Reset replaces the store's contents with the seed in one step, so readers
// never observe an empty or partly seeded store.
func Reset(store *bookstore.Store, requests []entities.CreateBookRequest) SeedResult {
	var result SeedResult
	for i, outcome := range store.ReplaceAll(requests) {
		if !outcome.IsOK() {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%q: %v", requests[i].Title, outcome.Err()))
			continue
		}
		result.Created++
	}
	log.Printf("[demo] store reset: %d books seeded, %d skipped", result.Created, result.Failed)
	for _, msg := range result.Errors {
		log.Printf("[demo] skipped seed entry %s", msg)
	}
	return result
}
