package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jordanlanch/repcoach/pkg/analytics"
	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/interactions"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/metrics"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/schedules"
)

// Sheet names of the export workbook
const (
	SheetCustomers    = "Customers"
	SheetInteractions = "Interactions"
	SheetSchedules    = "Schedules"
)

var (
	customerHeaders    = []string{"ID", "Name", "Company", "Role", "Industry", "Phone", "Email", "Wechat", "Tags", "Stage", "Created At"}
	interactionHeaders = []string{"ID", "Date", "Customer", "Contact", "Company", "Stage", "Probability", "Sentiment", "Pain Points", "Next Steps"}
	scheduleHeaders    = []string{"ID", "Date", "Time", "Title", "Customer", "Status", "Notes"}
)

// Service builds export workbooks and hands them to a Storage
type Service struct {
	db      *database.Client
	storage Storage
	metrics *metrics.Metrics
	log     logger.Logger
	now     func() time.Time
}

// NewService creates a new export service
func NewService(db *database.Client, storage Storage, m *metrics.Metrics, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{db: db, storage: storage, metrics: m, log: log, now: time.Now}
}

// Create exports every active customer of ownerID with their interactions
// and schedules.
func (s *Service) Create(ctx context.Context, ownerID string) (*models.ExportResponse, error) {
	custs, err := customers.LoadAll(ctx, s.db, ownerID, false)
	if err != nil {
		return nil, err
	}
	ints, err := interactions.LoadAll(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	scheds, err := schedules.LoadAll(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}

	f, err := buildWorkbook(custs, ints, scheds)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to write workbook: %w", err))
	}

	name := fmt.Sprintf("%s-%s.xlsx", ownerID, s.now().UTC().Format("20060102-150405"))
	if err := s.storage.Put(ctx, name, buf.Bytes()); err != nil {
		return nil, domain.NewInternalError(err)
	}
	url, err := s.storage.URL(ctx, name)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}

	s.metrics.RecordExportCreated()
	s.log.Info("export created", "owner_id", ownerID, "file", name, "customers", len(custs))

	return &models.ExportResponse{
		File:      name,
		URL:       url,
		Customers: len(custs),
		Rows:      len(custs) + len(ints) + len(scheds),
	}, nil
}

// Open returns a stored export of ownerID. Files of other owners are
// forbidden.
func (s *Service) Open(ctx context.Context, ownerID, file string) (io.ReadCloser, error) {
	if file == "" || filepath.Base(file) != file || !strings.HasSuffix(file, ".xlsx") {
		return nil, domain.NewValidationError("invalid export file name")
	}
	if !strings.HasPrefix(file, ownerID+"-") {
		return nil, domain.NewForbiddenError("export belongs to another user")
	}

	rc, err := s.storage.Open(ctx, file)
	if errors.Is(err, ErrNotFound) {
		return nil, domain.NewNotFoundError("export")
	}
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	return rc, nil
}

func buildWorkbook(custs []models.Customer, ints []models.Interaction, scheds []models.Schedule) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetCustomers); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetInteractions, SheetSchedules} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet: %w", err)
		}
	}

	funnel := analytics.AggregateFunnel(custs, ints)
	names := make(map[string]string, len(custs))
	var rows [][]any
	for _, c := range custs {
		names[c.ID] = c.Name
		rows = append(rows, []any{
			c.ID, c.Name, c.Company, c.Role, c.Industry, c.Phone, c.Email, c.Wechat,
			strings.Join(c.Tags, ", "), string(funnel.StageOf(c.ID)), c.CreatedAt.Format(time.RFC3339),
		})
	}
	if err := writeSheet(f, SheetCustomers, customerHeaders, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	rows = rows[:0]
	for _, it := range ints {
		steps := make([]string, 0, len(it.Intelligence.NextSteps))
		for _, st := range it.Intelligence.NextSteps {
			steps = append(steps, st.Action)
		}
		rows = append(rows, []any{
			it.ID, it.Date, lookup(names, it.CustomerID), it.CustomerProfile.Name, it.CustomerProfile.Company,
			it.Intelligence.CurrentStage, it.Intelligence.Probability, it.Metrics.Sentiment,
			strings.Join(it.Intelligence.PainPoints, "; "), strings.Join(steps, "; "),
		})
	}
	if err := writeSheet(f, SheetInteractions, interactionHeaders, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	rows = rows[:0]
	for _, sc := range scheds {
		rows = append(rows, []any{
			sc.ID, sc.Date, sc.Time, sc.Title, lookup(names, sc.CustomerID), sc.Status, sc.Notes,
		})
	}
	if err := writeSheet(f, SheetSchedules, scheduleHeaders, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any, style int) error {
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}

// lookup returns the customer name for id, or an empty cell when unlinked.
func lookup(names map[string]string, id *string) string {
	if id == nil {
		return ""
	}
	return names[*id]
}
