package reports

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/jordanlanch/repcoach/pkg/analytics"
	"github.com/jordanlanch/repcoach/pkg/cache"
	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/intelligence"
	"github.com/jordanlanch/repcoach/pkg/interactions"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/metrics"
	"github.com/jordanlanch/repcoach/pkg/models"
)

// DefaultCacheTTL is how long a generated report is reused
const DefaultCacheTTL = 10 * time.Minute

// Service synthesizes period reports over a user's interactions.
type Service struct {
	db      *database.Client
	coach   *intelligence.Coach
	cache   *cache.Client
	metrics *metrics.Metrics
	log     logger.Logger
	ttl     time.Duration
	loc     *time.Location
	now     func() time.Time
}

// Options configure the report service
type Options struct {
	// Cache may be nil, in which case every request reaches the AI
	Cache    *cache.Client
	CacheTTL time.Duration
	// Location anchors day boundaries; defaults to UTC
	Location *time.Location
	Metrics  *metrics.Metrics
	Logger   logger.Logger
}

// NewService creates a new report service.
func NewService(db *database.Client, coach *intelligence.Coach, opts Options) *Service {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}
	return &Service{
		db:      db,
		coach:   coach,
		cache:   opts.Cache,
		metrics: opts.Metrics,
		log:     opts.Logger,
		ttl:     opts.CacheTTL,
		loc:     opts.Location,
		now:     time.Now,
	}
}

// Generate resolves the requested range, filters the owner's interactions
// into it and asks the AI for a report in lang. An empty range skips the
// AI. Results are cached per owner, range, language and interaction set.
func (s *Service) Generate(ctx context.Context, ownerID, lang string, req models.ReportRequest) (*models.ReportResponse, error) {
	var custom *analytics.CustomRange
	if req.Range == string(analytics.RangeCustom) {
		custom = &analytics.CustomRange{Start: req.StartDate, End: req.EndDate}
	}
	rng, err := analytics.ResolveDateRange(analytics.RangeKind(req.Range), custom, s.now().In(s.loc))
	if err != nil {
		return nil, rangeError(err)
	}

	all, err := interactions.LoadAll(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	if req.CustomerID != "" {
		if _, err := customers.Load(ctx, s.db, ownerID, req.CustomerID); err != nil {
			return nil, err
		}
		linked := all[:0:0]
		for _, it := range all {
			if it.LinkedTo(req.CustomerID) {
				linked = append(linked, it)
			}
		}
		all = linked
	}
	inRange := analytics.FilterInRange(all, rng)

	resp := &models.ReportResponse{
		Range:            req.Range,
		StartDate:        rng.Start,
		EndDate:          rng.End,
		InteractionCount: len(inRange),
		Language:         lang,
	}
	if len(inRange) == 0 {
		s.metrics.RecordReport("empty")
		return resp, nil
	}

	key := cacheKey(ownerID, rng, lang, req.CustomerID, inRange)
	if s.cache != nil {
		var cached string
		err := s.cache.GetJSON(ctx, key, &cached)
		switch {
		case err == nil:
			s.metrics.RecordCacheHit("report")
			s.metrics.RecordReport("cache")
			resp.Report = cached
			resp.Cached = true
			return resp, nil
		case errors.Is(err, cache.ErrCacheMiss):
			s.metrics.RecordCacheMiss("report")
		default:
			s.log.Warn("report cache read failed", "error", err)
		}
	}

	names, err := s.customerNames(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	report, err := s.coach.WriteReport(ctx, rng.Start, rng.End, inRange, names, lang)
	if err != nil {
		return nil, err
	}
	resp.Report = report
	s.metrics.RecordReport("ai")

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, report, s.ttl); err != nil {
			s.log.Warn("report cache write failed", "error", err)
		}
	}
	return resp, nil
}

func (s *Service) customerNames(ctx context.Context, ownerID string) (map[string]string, error) {
	names := map[string]string{}
	for _, trashed := range []bool{false, true} {
		list, err := customers.LoadAll(ctx, s.db, ownerID, trashed)
		if err != nil {
			return nil, err
		}
		for _, c := range list {
			names[c.ID] = c.Name
		}
	}
	return names, nil
}

// cacheKey fingerprints the interaction set by id and last update, so an
// edited interaction produces a new report.
func cacheKey(ownerID string, rng analytics.DateRange, lang, customerID string, list []models.Interaction) string {
	parts := make([]string, len(list))
	for i, it := range list {
		parts[i] = it.ID + "@" + strconv.FormatInt(it.UpdatedAt.UnixNano(), 10)
	}
	sort.Strings(parts)

	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("report:%s:%d:%d:%s:%s:%s",
		ownerID, rng.Start.Unix(), rng.End.Unix(), lang, customerID, hex.EncodeToString(h.Sum(nil))[:16])
}

func rangeError(err error) error {
	switch {
	case errors.Is(err, analytics.ErrMissingBound):
		return domain.NewValidationError("custom range requires start_date and end_date")
	case errors.Is(err, analytics.ErrInvalidBound):
		return domain.NewValidationError("start_date and end_date must be dates like 2006-01-02")
	case errors.Is(err, analytics.ErrInvertedRange):
		return domain.NewValidationError("start_date must not be after end_date")
	case errors.Is(err, analytics.ErrUnknownRange):
		return domain.NewValidationError("unknown range")
	}
	return domain.NewInternalError(err)
}
