package models

// DashboardStats is the shaped first row of sp_get_dashboard_stats.
// The zero value is what the dashboard reports when the procedure fails.
type DashboardStats struct {
	TodayCheckins       int64   `json:"today_checkins"`
	TodayCheckouts      int64   `json:"today_checkouts"`
	TotalRooms          int64   `json:"total_rooms"`
	OccupiedRooms       int64   `json:"occupied_rooms"`
	OccupancyPercentage float64 `json:"occupancy_percentage"`
	TodayRevenue        float64 `json:"today_revenue"`
}
