package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jordanlanch/repcoach/pkg/export"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/models"
)

func TestDashboardHandler(t *testing.T) {
	env := newTestEnv(t)
	h := NewDashboardHandler(env.dashboard)
	env.customer("owner-1", "Alice")
	env.customer("owner-1", "Bob")
	env.customer("owner-2", "Carol")

	rec := env.call(h.Summary, http.MethodGet, "/api/v1/dashboard", "", "owner-1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	summary := decode[models.DashboardSummary](t, rec)
	assert.Equal(t, 2, summary.TotalCustomers)
	require.Len(t, summary.Funnel, 6)
	assert.Equal(t, models.StageCount{Stage: "PROSPECTING", Count: 2}, summary.Funnel[0])

	rec = env.call(h.Funnel, http.MethodGet, "/api/v1/dashboard/funnel?stage=PROSPECTING", "", "owner-1")
	require.Equal(t, http.StatusOK, rec.Code)
	funnel := decode[models.FunnelResponse](t, rec)
	assert.Equal(t, "PROSPECTING", funnel.Stage)
	assert.Len(t, funnel.Customers, 2)

	rec = env.call(h.Funnel, http.MethodGet, "/api/v1/dashboard/funnel?stage=WON", "", "owner-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportHandler(t *testing.T) {
	env := newTestEnv(t)
	storage, err := export.NewLocalStorage(t.TempDir(), "http://localhost:8080/api/v1/exports")
	require.NoError(t, err)
	h := NewExportHandler(export.NewService(env.db, storage, env.metrics, logger.Discard()))
	env.customer("owner-1", "Alice")

	rec := env.call(h.Create, http.MethodPost, "/api/v1/exports", "", "owner-1")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.ExportResponse](t, rec)
	assert.Equal(t, 1, created.Customers)
	assert.Contains(t, created.URL, created.File)

	t.Run("download", func(t *testing.T) {
		rec := env.call(h.Download, http.MethodGet, "/", "", "owner-1", "file", created.File)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, xlsxMIME, rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), created.File)

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows(export.SheetCustomers)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Alice", rows[1][1])
	})

	t.Run("another owner's file", func(t *testing.T) {
		rec := env.call(h.Download, http.MethodGet, "/", "", "owner-2", "file", created.File)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		rec := env.call(h.Download, http.MethodGet, "/", "", "owner-1", "file", "owner-1-20000101-000000.xlsx")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
