package models

// StageCount is the number of customers in one stage
type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// DashboardSummary is the home-screen overview
type DashboardSummary struct {
	Funnel             []StageCount  `json:"funnel"`
	TotalCustomers     int           `json:"total_customers"`
	TotalInteractions  int           `json:"total_interactions"`
	PendingSchedules   int           `json:"pending_schedules"`
	TodaySchedules     []Schedule    `json:"today_schedules"`
	RecentInteractions []Interaction `json:"recent_interactions"`
}

// FunnelResponse is the funnel chart plus the customers of the selected stage
type FunnelResponse struct {
	Funnel    []StageCount        `json:"funnel"`
	Stage     string              `json:"stage,omitempty"`
	Customers []CustomerWithStage `json:"customers"`
}

// ExportResponse describes a stored export workbook
type ExportResponse struct {
	File      string `json:"file"`
	URL       string `json:"url"`
	Customers int    `json:"customers"`
	Rows      int    `json:"rows"`
}
