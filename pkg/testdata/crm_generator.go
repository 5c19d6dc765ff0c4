// Package testdata generates realistic CRM fixtures for local development
// and tests.
package testdata

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/interactions"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/schedules"
)

// GeneratorConfig configures fixture generation
type GeneratorConfig struct {
	OwnerID   string
	Customers int
	// MaxInteractions per customer; each gets between 0 and this many
	MaxInteractions int
	// UnlinkedChance is the probability an interaction has no customer (0.0-1.0)
	UnlinkedChance float64
	// Today anchors interaction and schedule dates
	Today time.Time
	// Seed makes the output reproducible; zero picks a random seed
	Seed int64
}

// Dataset is one owner's generated records
type Dataset struct {
	Customers    []models.Customer
	Interactions []models.Interaction
	Schedules    []models.Schedule
}

// stagePhrases are stage descriptions the way the analysis model writes
// them, so the seeded funnel exercises the keyword normalizer.
var stagePhrases = [][]string{
	{"初步接触", "刚认识，还在了解", "展会上交换了名片"},
	{"需求确认中", "客户在梳理需求", "确认需求和预算"},
	{"已发送报价单", "等待客户反馈方案", "方案演示完成"},
	{"进入商务谈判", "谈判价格条款", "合同条款议价"},
	{"已成交", "签约完成", "赢单"},
	{"客户已流失", "项目丢单", "输单，选择了竞品"},
	{"CLOSED_WON", "NEGOTIATION", "看情况"},
}

var industries = []string{"制造业", "零售", "医疗", "教育", "物流", "金融", "SaaS"}

var followUps = []string{"发送报价", "安排产品演示", "电话回访", "确认合同细节", "邀请参观工厂", "发送案例资料"}

// Generate builds a dataset for cfg.OwnerID
func Generate(cfg GeneratorConfig) *Dataset {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	f := gofakeit.New(seed)
	today := cfg.Today
	if today.IsZero() {
		today = time.Now()
	}

	ds := &Dataset{}
	for i := 0; i < cfg.Customers; i++ {
		c := GenerateCustomer(f, cfg.OwnerID, today)
		ds.Customers = append(ds.Customers, c)

		for n := f.Number(0, cfg.MaxInteractions); n > 0; n-- {
			it := GenerateInteraction(f, cfg.OwnerID, &c, today)
			if f.Float64Range(0, 1) < cfg.UnlinkedChance {
				it.CustomerID = nil
			}
			ds.Interactions = append(ds.Interactions, it)

			if len(it.Intelligence.NextSteps) > 0 && f.Bool() {
				step := it.Intelligence.NextSteps[0]
				ds.Schedules = append(ds.Schedules, models.Schedule{
					ID:         uuid.NewString(),
					OwnerID:    cfg.OwnerID,
					Title:      step.Action,
					Date:       step.DueDate,
					Time:       fmt.Sprintf("%02d:%s", f.Number(8, 18), f.RandomString([]string{"00", "30"})),
					CustomerID: it.CustomerID,
					PlanID:     step.ID,
					Status:     f.RandomString([]string{models.ScheduleStatusPending, models.ScheduleStatusPending, models.ScheduleStatusCompleted}),
					CreatedAt:  today,
					UpdatedAt:  today,
				})
			}
		}
	}
	return ds
}

// GenerateCustomer creates one customer with optional contact details
func GenerateCustomer(f *gofakeit.Faker, ownerID string, now time.Time) models.Customer {
	company := f.Company()
	c := models.Customer{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      f.Name(),
		Company:   company,
		Role:      f.JobTitle(),
		Industry:  f.RandomString(industries),
		Tags:      []string{},
		CreatedAt: now.Add(-time.Duration(f.Number(1, 90*24)) * time.Hour),
	}
	c.UpdatedAt = c.CreatedAt

	if f.Float64Range(0, 1) < 0.7 {
		c.Email = strings.ToLower(strings.ReplaceAll(f.FirstName(), " ", "")) + "@" + domainOf(company)
	}
	if f.Float64Range(0, 1) < 0.8 {
		c.Phone = fmt.Sprintf("+861%d%09d", f.Number(3, 9), f.Number(0, 999999999))
	}
	if f.Bool() {
		c.Tags = append(c.Tags, f.RandomString([]string{"vip", "展会", "转介绍", "老客户"}))
	}
	return c
}

// GenerateInteraction creates an already-analyzed interaction for customer
func GenerateInteraction(f *gofakeit.Faker, ownerID string, customer *models.Customer, today time.Time) models.Interaction {
	date := today.AddDate(0, 0, -f.Number(0, 60))
	stage := f.RandomString(stagePhrases[f.Number(0, len(stagePhrases)-1)])

	var steps []models.NextStep
	for n := f.Number(0, 3); n > 0; n-- {
		steps = append(steps, models.NextStep{
			ID:       uuid.NewString(),
			Action:   f.RandomString(followUps),
			Priority: f.RandomString([]string{"high", "medium", "low"}),
			DueDate:  date.AddDate(0, 0, f.Number(1, 14)).Format("2006-01-02"),
		})
	}

	it := models.Interaction{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		Date:     date.Format("2006-01-02"),
		RawInput: f.Sentence(30),
		CustomerProfile: models.CustomerProfile{
			Name:     customer.Name,
			Company:  customer.Company,
			Role:     customer.Role,
			Industry: customer.Industry,
		},
		Intelligence: models.Intelligence{
			PainPoints:   []string{f.BuzzWord()},
			KeyInterests: []string{f.BuzzWord(), f.BuzzWord()},
			CurrentStage: stage,
			Probability:  float64(f.Number(0, 100)),
			NextSteps:    steps,
		},
		Metrics: models.ConversationMetrics{
			TalkRatio:       f.Float64Range(0.2, 0.8),
			QuestionRate:    f.Float64Range(0, 3),
			Sentiment:       f.RandomString([]string{"positive", "neutral", "negative"}),
			ConfidenceScore: f.Float64Range(0.5, 1),
		},
		Suggestions: []string{f.Sentence(8)},
		CreatedAt:   date,
		UpdatedAt:   date,
	}
	if it.Intelligence.NextSteps == nil {
		it.Intelligence.NextSteps = []models.NextStep{}
	}
	it.CustomerID = &customer.ID
	return it
}

// Insert stores the dataset in one transaction
func Insert(ctx context.Context, db *database.Client, ds *Dataset) error {
	return db.WithTx(ctx, func(q database.Querier) error {
		for i := range ds.Customers {
			if err := customers.Insert(ctx, q, &ds.Customers[i]); err != nil {
				return fmt.Errorf("failed to insert customer %d: %w", i, err)
			}
		}
		for i := range ds.Interactions {
			if err := interactions.Insert(ctx, q, &ds.Interactions[i]); err != nil {
				return fmt.Errorf("failed to insert interaction %d: %w", i, err)
			}
		}
		for i := range ds.Schedules {
			if err := schedules.Insert(ctx, q, &ds.Schedules[i]); err != nil {
				return fmt.Errorf("failed to insert schedule %d: %w", i, err)
			}
		}
		return nil
	})
}

func domainOf(company string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(company) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() == 20 {
			break
		}
	}
	if b.Len() == 0 {
		return "example.com"
	}
	return b.String() + ".com"
}
