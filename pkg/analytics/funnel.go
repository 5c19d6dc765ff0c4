package analytics

import (
	"sort"
	"time"

	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/salesstage"
)

// Funnel is the distribution of customers across pipeline stages
type Funnel struct {
	PerCustomerStage map[string]salesstage.SalesStage
	PerStageCount    map[salesstage.SalesStage]int
}

// AggregateFunnel resolves every customer's current stage and counts
// customers per stage.
//
// A customer's stage is the normalized stage of their most recent
// interaction. Interactions are ordered by date, newest first, with a
// stable sort: equal dates keep their input order, and dates that cannot be
// parsed rank as the oldest possible value. Customers without interactions
// are Prospecting. All six stages are always present in PerStageCount.
func AggregateFunnel(customers []models.Customer, interactions []models.Interaction) Funnel {
	latest := latestStageByCustomer(interactions)

	f := Funnel{
		PerCustomerStage: make(map[string]salesstage.SalesStage, len(customers)),
		PerStageCount:    make(map[salesstage.SalesStage]int, len(salesstage.All())),
	}
	for _, stage := range salesstage.All() {
		f.PerStageCount[stage] = 0
	}

	for _, c := range customers {
		stage, ok := latest[c.ID]
		if !ok {
			stage = salesstage.Default
		}
		f.PerCustomerStage[c.ID] = stage
		f.PerStageCount[stage]++
	}

	return f
}

// latestStageByCustomer walks interactions newest first and keeps the first
// stage seen for each customer.
func latestStageByCustomer(interactions []models.Interaction) map[string]salesstage.SalesStage {
	order := SortByDateDesc(interactions)

	latest := make(map[string]salesstage.SalesStage)
	for _, idx := range order {
		in := interactions[idx]
		if in.CustomerID == nil {
			continue
		}
		if _, seen := latest[*in.CustomerID]; seen {
			continue
		}
		latest[*in.CustomerID] = salesstage.NormalizeString(in.Intelligence.CurrentStage)
	}
	return latest
}

// SortByDateDesc returns the indexes of interactions ordered newest first
// without reordering the input. Zone-less dates are read as UTC.
func SortByDateDesc(interactions []models.Interaction) []int {
	type key struct {
		t  time.Time
		ok bool
	}

	keys := make([]key, len(interactions))
	order := make([]int, len(interactions))
	for i := range interactions {
		t, ok := ParseDate(interactions[i].Date, time.UTC)
		keys[i] = key{t: t, ok: ok}
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := keys[order[a]], keys[order[b]]
		if !ka.ok {
			return false
		}
		if !kb.ok {
			return true
		}
		return ka.t.After(kb.t)
	})
	return order
}

// StageOf returns the resolved stage of a customer, Prospecting if unknown.
func (f Funnel) StageOf(customerID string) salesstage.SalesStage {
	if stage, ok := f.PerCustomerStage[customerID]; ok {
		return stage
	}
	return salesstage.Default
}

// Stages returns the per-stage counts in pipeline order.
func (f Funnel) Stages() []models.StageCount {
	out := make([]models.StageCount, 0, len(salesstage.All()))
	for _, stage := range salesstage.All() {
		out = append(out, models.StageCount{Stage: string(stage), Count: f.PerStageCount[stage]})
	}
	return out
}

// FilterByStage keeps the customers whose resolved stage is stage.
func FilterByStage(customers []models.Customer, f Funnel, stage salesstage.SalesStage) []models.Customer {
	out := make([]models.Customer, 0)
	for _, c := range customers {
		if f.StageOf(c.ID) == stage {
			out = append(out, c)
		}
	}
	return out
}

// WithStages annotates customers with their resolved stage.
func WithStages(customers []models.Customer, f Funnel) []models.CustomerWithStage {
	out := make([]models.CustomerWithStage, 0, len(customers))
	for _, c := range customers {
		out = append(out, models.CustomerWithStage{Customer: c, Stage: string(f.StageOf(c.ID))})
	}
	return out
}
