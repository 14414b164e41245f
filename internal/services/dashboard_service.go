package services

import (
	"context"

	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/domain"
	"hrgsms-backend/internal/domain/models"
)

type DashboardService struct {
	Deps
}

// Stats reads the first row of sp_get_dashboard_stats. Percentage and revenue
// arrive as DECIMAL text and are coerced to float; a NULL revenue (no payments
// today) reads as zero.
//
// A NULL in any single column reads as zero and the remaining fields keep their
// values. Only a missing or unparsable column fails the call, which the handler
// then answers with an all-zero body.
func (s DashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	row, err := s.callFirst(ctx, intdb.ProcDashboardStats, "no dashboard stats")
	if err != nil {
		return models.DashboardStats{}, err
	}

	var out models.DashboardStats
	ints := []struct {
		col string
		dst *int64
	}{
		{"today_checkins", &out.TodayCheckins},
		{"today_checkouts", &out.TodayCheckouts},
		{"total_rooms", &out.TotalRooms},
		{"occupied_rooms", &out.OccupiedRooms},
	}
	for _, f := range ints {
		if *f.dst, err = numericOrZero(row, f.col, row.Int64); err != nil {
			return models.DashboardStats{}, domain.StoreError{Procedure: intdb.ProcDashboardStats, Err: err}
		}
	}
	if out.OccupancyPercentage, err = numericOrZero(row, "occupancy_percentage", row.Float64); err != nil {
		return models.DashboardStats{}, domain.StoreError{Procedure: intdb.ProcDashboardStats, Err: err}
	}
	if out.TodayRevenue, err = numericOrZero(row, "today_revenue", row.Float64); err != nil {
		return models.DashboardStats{}, domain.StoreError{Procedure: intdb.ProcDashboardStats, Err: err}
	}
	return out, nil
}

// numericOrZero maps a present NULL to zero; a missing column is still an error.
func numericOrZero[T int64 | float64](row intdb.Row, col string, read func(string) (T, error)) (T, error) {
	if v, ok := row.Get(col); ok && v == nil {
		return 0, nil
	}
	return read(col)
}
