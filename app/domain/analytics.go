package domain

// UserAnalytics summarizes the identity mirror for the users dashboard
type UserAnalytics struct {
	TotalUsers  int            `json:"total_users"`
	ActiveUsers int            `json:"active_users"`
	NewUsers    int            `json:"new_users"`
	UsersByRole map[string]int `json:"users_by_role"`
	UserGrowth  GrowthSeries   `json:"user_growth"`
	LastLogin   LoginBuckets   `json:"last_login_distribution"`
}

// GrowthSeries is a monthly time series, oldest month first
type GrowthSeries struct {
	Months []string `json:"months"`
	Counts []int    `json:"counts"`
}

// LoginBuckets groups identities by how recently they logged in
type LoginBuckets struct {
	Last24h int `json:"24h"`
	Last7d  int `json:"7d"`
	Last30d int `json:"30d"`
	Older   int `json:"older"`
}

// ContentAnalytics summarizes content approval records
type ContentAnalytics struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	Created  GrowthSeries   `json:"created"`
}

// ProductAnalytics summarizes product subscriptions
type ProductAnalytics struct {
	TotalProducts int            `json:"total_products"`
	ByType        map[string]int `json:"by_type"`
	ByStatus      map[string]int `json:"by_status"`
}
