package dashboard

import (
	"context"
	"time"

	"github.com/jordanlanch/repcoach/pkg/analytics"
	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/interactions"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/salesstage"
	"github.com/jordanlanch/repcoach/pkg/schedules"
)

// RecentInteractions is how many interactions the summary shows
const RecentInteractions = 5

// Service builds the pipeline views: summary, funnel and staged listings.
type Service struct {
	db  *database.Client
	loc *time.Location
	now func() time.Time
}

// NewService creates a dashboard service; loc decides what "today" is.
func NewService(db *database.Client, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{db: db, loc: loc, now: time.Now}
}

// Summary returns the home-screen overview for ownerID.
func (s *Service) Summary(ctx context.Context, ownerID string) (*models.DashboardSummary, error) {
	active, all, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	funnel := analytics.AggregateFunnel(active, all)

	scheds, err := schedules.LoadAll(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	today := s.now().In(s.loc).Format("2006-01-02")

	summary := &models.DashboardSummary{
		Funnel:             funnel.Stages(),
		TotalCustomers:     len(active),
		TotalInteractions:  len(all),
		TodaySchedules:     []models.Schedule{},
		RecentInteractions: []models.Interaction{},
	}
	for _, sched := range scheds {
		if sched.Status == models.ScheduleStatusPending {
			summary.PendingSchedules++
		}
		if sched.Date == today {
			summary.TodaySchedules = append(summary.TodaySchedules, sched)
		}
	}
	// LoadAll already orders newest first
	for i := 0; i < len(all) && i < RecentInteractions; i++ {
		summary.RecentInteractions = append(summary.RecentInteractions, all[i])
	}
	return summary, nil
}

// Funnel returns stage counts and, when stage is set, the customers in it.
func (s *Service) Funnel(ctx context.Context, ownerID, stage string) (*models.FunnelResponse, error) {
	active, all, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	funnel := analytics.AggregateFunnel(active, all)

	resp := &models.FunnelResponse{Funnel: funnel.Stages(), Customers: []models.CustomerWithStage{}}
	if stage == "" {
		return resp, nil
	}

	st, ok := salesstage.Parse(stage)
	if !ok {
		return nil, domain.NewValidationError("unknown stage " + stage)
	}
	resp.Stage = string(st)
	resp.Customers = analytics.WithStages(analytics.FilterByStage(active, funnel, st), funnel)
	return resp, nil
}

// CustomersWithStages annotates list with each customer's resolved stage,
// keeping only one stage when stage is set.
func (s *Service) CustomersWithStages(ctx context.Context, ownerID string, list []models.Customer, stage string) ([]models.CustomerWithStage, error) {
	all, err := interactions.LoadAll(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	funnel := analytics.AggregateFunnel(list, all)

	if stage == "" {
		return analytics.WithStages(list, funnel), nil
	}
	st, ok := salesstage.Parse(stage)
	if !ok {
		return nil, domain.NewValidationError("unknown stage " + stage)
	}
	return analytics.WithStages(analytics.FilterByStage(list, funnel, st), funnel), nil
}

func (s *Service) load(ctx context.Context, ownerID string) ([]models.Customer, []models.Interaction, error) {
	active, err := customers.LoadAll(ctx, s.db, ownerID, false)
	if err != nil {
		return nil, nil, err
	}
	all, err := interactions.LoadAll(ctx, s.db, ownerID)
	if err != nil {
		return nil, nil, err
	}
	return active, all, nil
}
