package schedules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/models"
)

func ref(s string) *string { return &s }

func TestFindLinked(t *testing.T) {
	cust := ref("c1")
	list := []models.Schedule{
		{ID: "legacy", Title: "发送报价", CustomerID: ref("c1")},
		{ID: "by-id", Title: "renamed by user", CustomerID: ref("c1"), PlanID: "step-1"},
		{ID: "other-customer", Title: "安排演示", CustomerID: ref("c2")},
		{ID: "unlinked", Title: "安排演示"},
		{ID: "has-plan", Title: "回访", CustomerID: ref("c1"), PlanID: "step-9"},
	}

	tests := []struct {
		name     string
		customer *string
		step     models.NextStep
		want     int
	}{
		{"id match wins over legacy title", cust, models.NextStep{ID: "step-1", Action: "发送报价"}, 1},
		{"legacy match without id", cust, models.NextStep{Action: "发送报价"}, 0},
		{"legacy match when id unknown", cust, models.NextStep{ID: "step-2", Action: "发送报价"}, 0},
		{"legacy requires same customer", cust, models.NextStep{Action: "安排演示"}, -1},
		{"legacy with no customer on either side", nil, models.NextStep{Action: "安排演示"}, 3},
		{"legacy ignores schedules that have a plan id", cust, models.NextStep{Action: "回访"}, -1},
		{"no match", cust, models.NextStep{ID: "x", Action: "nothing"}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindLinked(list, tt.customer, tt.step))
		})
	}
}

func TestPromote(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestClient(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	step := models.NextStep{ID: "step-1", Action: "发送报价", DueDate: "2024-03-18"}

	first, created, err := Promote(ctx, db, "owner-1", ref("c1"), step, now)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "2024-03-18", first.Date)
	assert.Equal(t, "step-1", first.PlanID)
	assert.Equal(t, models.ScheduleStatusPending, first.Status)

	second, created, err := Promote(ctx, db, "owner-1", ref("c1"), step, now.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.UpdatedAt.Equal(second.UpdatedAt))

	all, err := LoadAll(ctx, db, "owner-1")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	t.Run("bad due date falls back to today", func(t *testing.T) {
		s, created, err := Promote(ctx, db, "owner-1", nil, models.NextStep{ID: "step-2", Action: "call", DueDate: "next week"}, now)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "2024-03-15", s.Date)
		assert.Nil(t, s.CustomerID)
	})

	t.Run("legacy match is backfilled", func(t *testing.T) {
		legacy := &models.Schedule{ID: "legacy-1", OwnerID: "owner-1", Title: "安排演示", Date: "2024-03-20",
			CustomerID: ref("c1"), Status: models.ScheduleStatusPending, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, Insert(ctx, db, legacy))

		s, created, err := Promote(ctx, db, "owner-1", ref("c1"), models.NextStep{ID: "step-3", Action: "安排演示"}, now)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "legacy-1", s.ID)
		assert.Equal(t, "step-3", s.PlanID)

		stored, err := Load(ctx, db, "owner-1", "legacy-1")
		require.NoError(t, err)
		assert.Equal(t, "step-3", stored.PlanID)
	})
}

func TestMigrateCustomer(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestClient(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	steps := []models.NextStep{
		{ID: "step-1", Action: "发送报价"},
		{ID: "step-2", Action: "安排演示"},
		{ID: "step-3", Action: "not promoted"},
	}

	_, _, err := Promote(ctx, db, "owner-1", nil, steps[0], now)
	require.NoError(t, err)

	legacy := &models.Schedule{ID: "legacy", OwnerID: "owner-1", Title: "安排演示", Date: "2024-03-20",
		Status: models.ScheduleStatusPending, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, Insert(ctx, db, legacy))

	unrelated := &models.Schedule{ID: "unrelated", OwnerID: "owner-1", Title: "other", Date: "2024-03-20",
		Status: models.ScheduleStatusPending, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, Insert(ctx, db, unrelated))

	n, err := MigrateCustomer(ctx, db, "owner-1", steps, nil, ref("c9"), now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := LoadAll(ctx, db, "owner-1")
	require.NoError(t, err)
	for _, s := range all {
		switch s.ID {
		case "unrelated":
			assert.Nil(t, s.CustomerID)
		case "legacy":
			require.NotNil(t, s.CustomerID)
			assert.Equal(t, "c9", *s.CustomerID)
			assert.Equal(t, "step-2", s.PlanID)
		default:
			require.NotNil(t, s.CustomerID)
			assert.Equal(t, "c9", *s.CustomerID)
		}
	}

	t.Run("same customer is a no-op", func(t *testing.T) {
		n, err := MigrateCustomer(ctx, db, "owner-1", steps, ref("c9"), ref("c9"), now)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("unlinking", func(t *testing.T) {
		n, err := MigrateCustomer(ctx, db, "owner-1", steps, ref("c9"), nil, now)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}
