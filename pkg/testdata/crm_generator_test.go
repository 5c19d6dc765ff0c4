package testdata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/interactions"
)

func TestGenerate_Reproducible(t *testing.T) {
	cfg := GeneratorConfig{
		OwnerID:         "owner-1",
		Customers:       5,
		MaxInteractions: 3,
		Today:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Seed:            42,
	}

	a, b := Generate(cfg), Generate(cfg)
	require.Len(t, a.Customers, 5)
	for i := range a.Customers {
		assert.Equal(t, a.Customers[i].Name, b.Customers[i].Name)
		assert.Equal(t, "owner-1", a.Customers[i].OwnerID)
	}
	assert.Equal(t, len(a.Interactions), len(b.Interactions))

	for _, it := range a.Interactions {
		_, err := time.Parse("2006-01-02", it.Date)
		assert.NoError(t, err)
		assert.NotEmpty(t, it.Intelligence.CurrentStage)
		for _, step := range it.Intelligence.NextSteps {
			assert.NotEmpty(t, step.ID)
		}
	}
}

func TestInsert(t *testing.T) {
	db := database.NewTestClient(t)
	ds := Generate(GeneratorConfig{OwnerID: "owner-1", Customers: 8, MaxInteractions: 2, UnlinkedChance: 0.2, Seed: 7})
	require.NoError(t, Insert(context.Background(), db, ds))

	custs, err := customers.LoadAll(context.Background(), db, "owner-1", false)
	require.NoError(t, err)
	assert.Len(t, custs, 8)

	its, err := interactions.LoadAll(context.Background(), db, "owner-1")
	require.NoError(t, err)
	assert.Len(t, its, len(ds.Interactions))
}
