package demo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/entities"
)

func TestLoadSeed_Embedded(t *testing.T) {
	requests, err := LoadSeed("")
	require.NoError(t, err)

	require.Len(t, requests, 7)
	assert.Equal(t, entities.CreateBookRequest{Title: "Pride and Prejudice", Author: "Jane Austen", Year: 1813}, requests[0])
}

func TestLoadSeed_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := "books:\n  - title: Dune\n    author: Frank Herbert\n    year: 1965\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	requests, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, []entities.CreateBookRequest{{Title: "Dune", Author: "Frank Herbert", Year: 1965}}, requests)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseSeed_InvalidYAML(t *testing.T) {
	_, err := ParseSeed([]byte("books: [unterminated"))
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	store := bookstore.New()
	requests := []entities.CreateBookRequest{
		{Title: "Dune", Author: "Frank Herbert", Year: 1965},
		{Title: "", Author: "Nobody", Year: 2000},
		{Title: "Emma", Author: "Jane Austen", Year: 1815},
	}

	result := Seed(store, requests)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "title")
	assert.Equal(t, 2, store.Count())
}

func TestReset(t *testing.T) {
	store := bookstore.New()
	_, err := store.Create(entities.CreateBookRequest{Title: "Leftover", Author: "Visitor", Year: 2020})
	require.NoError(t, err)

	requests, err := LoadSeed("")
	require.NoError(t, err)

	result := Reset(store, requests)

	assert.Equal(t, len(requests), result.Created)
	assert.Equal(t, len(requests), store.Count())
	assert.Empty(t, store.FindByTitle("Leftover"))
}

func TestReset_ConcurrentReadersSeeFullSeed(t *testing.T) {
	store := bookstore.New()
	requests, err := LoadSeed("")
	require.NoError(t, err)
	Reset(store, requests)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			Reset(store, requests)
		}
	}()

	for {
		select {
		case <-done:
			assert.Equal(t, len(requests), store.Count())
			return
		default:
			require.Len(t, store.FindAll(), len(requests))
		}
	}
}

func TestReset_ReportsInvalidEntries(t *testing.T) {
	store := bookstore.New()

	result := Reset(store, []entities.CreateBookRequest{
		{Title: "Dune", Author: "Frank Herbert", Year: 1965},
		{Title: "Future", Author: "Someone", Year: -3},
	})

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Future")
	assert.Equal(t, 1, store.Count())
}
