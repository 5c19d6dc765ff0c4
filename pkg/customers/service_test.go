package customers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/phone"
)

func setupService(t *testing.T) (*Service, *database.Client) {
	t.Helper()
	db := database.NewTestClient(t)
	return NewService(db, phone.NewNormalizer("CN"), logger.Discard()), db
}

func strPtr(s string) *string { return &s }

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	c, err := svc.Create(ctx, "owner-1", models.CreateCustomerRequest{
		Name:    "  王伟 ",
		Company: "星河科技",
		Phone:   "138 0013 8000",
		Tags:    []string{"vip", " vip ", "", "制造业"},
	})
	require.NoError(t, err)
	assert.Equal(t, "王伟", c.Name)
	assert.Equal(t, "+8613800138000", c.Phone)
	assert.Equal(t, []string{"vip", "制造业"}, c.Tags)

	got, err := svc.Get(ctx, "owner-1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "星河科技", got.Company)

	t.Run("other owner is forbidden", func(t *testing.T) {
		_, err := svc.Get(ctx, "owner-2", c.ID)
		assert.True(t, domain.IsForbidden(err))
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := svc.Get(ctx, "owner-1", "nope")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("partial phone kept as typed", func(t *testing.T) {
		c, err := svc.Create(ctx, "owner-1", models.CreateCustomerRequest{Name: "Li", Phone: "ext 204"})
		require.NoError(t, err)
		assert.Equal(t, "ext 204", c.Phone)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	for _, req := range []models.CreateCustomerRequest{
		{Name: "Alice", Company: "ＡＣＭＥ Corp"},
		{Name: "Bob", Company: "Globex"},
		{Name: "陈静", Company: "星河科技"},
	} {
		_, err := svc.Create(ctx, "owner-1", req)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, "owner-2", models.CreateCustomerRequest{Name: "Mallory"})
	require.NoError(t, err)

	all, err := svc.List(ctx, "owner-1", models.CustomerFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCompany, err := svc.List(ctx, "owner-1", models.CustomerFilter{Query: "acme"})
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	assert.Equal(t, "Alice", byCompany[0].Name)

	byName, err := svc.List(ctx, "owner-1", models.CustomerFilter{Query: "星河"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "陈静", byName[0].Name)

	none, err := svc.List(ctx, "owner-1", models.CustomerFilter{Deleted: true})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	c, err := svc.Create(ctx, "owner-1", models.CreateCustomerRequest{Name: "Alice", Company: "Acme"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "owner-1", c.ID, models.UpdateCustomerRequest{
		Company: strPtr(" Globex "),
		Phone:   strPtr("+1 650-253-0000"),
		Tags:    &[]string{"hot"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "Globex", updated.Company)
	assert.Equal(t, "+16502530000", updated.Phone)
	assert.Equal(t, []string{"hot"}, updated.Tags)

	_, err = svc.Update(ctx, "owner-1", c.ID, models.UpdateCustomerRequest{Name: strPtr("  ")})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Update(ctx, "owner-2", c.ID, models.UpdateCustomerRequest{Name: strPtr("X")})
	assert.True(t, domain.IsForbidden(err))
}

func TestTrashLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	c, err := svc.Create(ctx, "owner-1", models.CreateCustomerRequest{Name: "Alice"})
	require.NoError(t, err)

	t.Run("permanent delete requires trash", func(t *testing.T) {
		err := svc.DeletePermanently(ctx, "owner-1", c.ID)
		assert.True(t, domain.IsConflict(err))
	})

	trashed, err := svc.Delete(ctx, "owner-1", c.ID)
	require.NoError(t, err)
	assert.True(t, trashed.InTrash())

	active, err := svc.List(ctx, "owner-1", models.CustomerFilter{})
	require.NoError(t, err)
	assert.Empty(t, active)

	trash, err := svc.List(ctx, "owner-1", models.CustomerFilter{Deleted: true})
	require.NoError(t, err)
	require.Len(t, trash, 1)

	_, err = svc.GetActive(ctx, "owner-1", c.ID)
	assert.True(t, domain.IsNotFound(err))

	_, err = svc.Update(ctx, "owner-1", c.ID, models.UpdateCustomerRequest{Name: strPtr("B")})
	assert.True(t, domain.IsNotFound(err))

	again, err := svc.Delete(ctx, "owner-1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, trashed.DeletedAt.Unix(), again.DeletedAt.Unix())

	restored, err := svc.Restore(ctx, "owner-1", c.ID)
	require.NoError(t, err)
	assert.False(t, restored.InTrash())

	_, err = svc.Restore(ctx, "owner-1", c.ID)
	assert.True(t, domain.IsConflict(err))
}

func insertDoc(t *testing.T, db *database.Client, table, id, ownerID string, customerID *string, doc any) {
	t.Helper()
	data, err := database.MarshalDoc(doc)
	require.NoError(t, err)
	now := time.Now().UTC()
	switch table {
	case "interactions":
		_, err = db.Exec(context.Background(),
			`INSERT INTO interactions (id, owner_id, customer_id, date, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, ownerID, database.NullString(customerID), "2024-03-15", data, now, now)
	case "schedules":
		_, err = db.Exec(context.Background(),
			`INSERT INTO schedules (id, owner_id, customer_id, plan_id, date, status, data, created_at, updated_at) VALUES (?, ?, ?, '', ?, ?, ?, ?, ?)`,
			id, ownerID, database.NullString(customerID), "2024-03-15", models.ScheduleStatusPending, data, now, now)
	case "course_plans":
		_, err = db.Exec(context.Background(),
			`INSERT INTO course_plans (id, owner_id, customer_id, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			id, ownerID, *customerID, data, now, now)
	}
	require.NoError(t, err)
}

func countRows(t *testing.T, db *database.Client, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

func TestDeletePermanently_UnlinksReferences(t *testing.T) {
	ctx := context.Background()
	svc, db := setupService(t)

	c, err := svc.Create(ctx, "owner-1", models.CreateCustomerRequest{Name: "Alice"})
	require.NoError(t, err)

	insertDoc(t, db, "interactions", "i1", "owner-1", &c.ID, models.Interaction{ID: "i1", OwnerID: "owner-1", CustomerID: &c.ID})
	insertDoc(t, db, "schedules", "s1", "owner-1", &c.ID, models.Schedule{ID: "s1", OwnerID: "owner-1", CustomerID: &c.ID})
	insertDoc(t, db, "course_plans", "p1", "owner-1", &c.ID, models.CoursePlan{ID: "p1", OwnerID: "owner-1", CustomerID: c.ID})

	_, err = svc.Delete(ctx, "owner-1", c.ID)
	require.NoError(t, err)
	require.NoError(t, svc.DeletePermanently(ctx, "owner-1", c.ID))

	_, err = svc.Get(ctx, "owner-1", c.ID)
	assert.True(t, domain.IsNotFound(err))

	assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM interactions WHERE customer_id IS NULL`))
	assert.Equal(t, 1, countRows(t, db, `SELECT COUNT(*) FROM schedules WHERE customer_id IS NULL`))
	assert.Equal(t, 0, countRows(t, db, `SELECT COUNT(*) FROM course_plans`))

	var data string
	require.NoError(t, db.QueryRow(ctx, `SELECT data FROM interactions WHERE id = ?`, "i1").Scan(&data))
	var it models.Interaction
	require.NoError(t, database.UnmarshalDoc(data, &it))
	assert.Nil(t, it.CustomerID)
}

func TestPurgeTrash(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	old, err := svc.Create(ctx, "owner-1", models.CreateCustomerRequest{Name: "Old"})
	require.NoError(t, err)
	_, err = svc.Delete(ctx, "owner-1", old.ID)
	require.NoError(t, err)

	other, err := svc.Create(ctx, "owner-2", models.CreateCustomerRequest{Name: "Other owner old"})
	require.NoError(t, err)
	_, err = svc.Delete(ctx, "owner-2", other.ID)
	require.NoError(t, err)

	clock = clock.AddDate(0, 0, 25)
	recent, err := svc.Create(ctx, "owner-1", models.CreateCustomerRequest{Name: "Recent"})
	require.NoError(t, err)
	_, err = svc.Delete(ctx, "owner-1", recent.ID)
	require.NoError(t, err)

	active, err := svc.Create(ctx, "owner-1", models.CreateCustomerRequest{Name: "Active"})
	require.NoError(t, err)

	cutoff := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	n, err := svc.PurgeTrash(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = svc.Get(ctx, "owner-1", recent.ID)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, "owner-1", active.ID)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, "owner-1", old.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestFindByName(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	for _, name := range []string{"王总", "王总监", "李明", "Zhang Wei"} {
		_, err := svc.Create(ctx, "owner-1", models.CreateCustomerRequest{Name: name})
		require.NoError(t, err)
	}

	tests := []struct {
		query string
		want  string
	}{
		{"王总", "王总"},
		{"李明", "李明"},
		{"zhang wei", "Zhang Wei"},
		{"明", "李明"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, err := svc.FindByName(ctx, "owner-1", tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name)
		})
	}

	t.Run("ambiguous", func(t *testing.T) {
		_, err := svc.FindByName(ctx, "owner-1", "王")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("other owner", func(t *testing.T) {
		_, err := svc.FindByName(ctx, "owner-2", "李明")
		assert.True(t, domain.IsNotFound(err))
	})
}
