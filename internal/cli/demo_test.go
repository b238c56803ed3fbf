package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/bookstore"
)

func TestRunDemo(t *testing.T) {
	store := bookstore.New()
	var out bytes.Buffer

	require.NoError(t, RunDemo(store, &out))

	output := out.String()
	assert.Contains(t, output, `created "The Hobbit" by J.R.R. Tolkien (1937)`)
	assert.Contains(t, output, "Store holds 5 books")
	assert.Contains(t, output, "validation error: validation failed: invalid title")
	assert.Contains(t, output, "Store still holds 5 books")
	assert.Contains(t, output, `updated "Dune (40th Anniversary Edition)"`)
	assert.Contains(t, output, "update of missing-id found nothing")
	assert.Contains(t, output, `safeUpdate failed: book with id "missing-id" not found`)
	assert.Contains(t, output, "Page 3 of 3 (next=false, previous=true)")
	assert.Contains(t, output, "delete again: false")
	assert.Contains(t, output, "safeDelete failed")
	assert.Contains(t, output, "After clear, empty=true")
	assert.True(t, store.IsEmpty())
}

func TestDemoCommand(t *testing.T) {
	for _, backend := range []string{"memory", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			var out bytes.Buffer
			cmd := &DemoCommand{out: &out}
			require.NoError(t, cmd.ParseFlags([]string{"-backend", backend}))

			require.NoError(t, cmd.Run())

			assert.Contains(t, out.String(), "Running demo on the "+backend+" backend")
			assert.Contains(t, out.String(), "After clear, empty=true")
		})
	}
}
