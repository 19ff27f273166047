package dto

// AdminStatsResponse totals for the admin dashboard.
type AdminStatsResponse struct {
	Companies        int `json:"companies"`
	Users            int `json:"users"`
	ActiveRequests   int `json:"activeRequests"`
	PendingCompanies int `json:"pendingCompanies"`
}
