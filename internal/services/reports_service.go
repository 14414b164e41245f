package services

import (
	"context"
	"fmt"

	intdb "hrgsms-backend/internal/db"
	"hrgsms-backend/internal/domain/models"
	"hrgsms-backend/internal/utils"
)

// Report kinds, as they appear in the /reports/{kind} path.
const (
	ReportRevenue       = "revenue"
	ReportRoomOccupancy = "roomOccupancy"
	ReportGuestBilling  = "guestBilling"
	ReportServiceUsage  = "serviceUsage"
)

type ReportService struct {
	Deps
}

// Revenue aggregates payments of one branch between start and end.
func (s ReportService) Revenue(ctx context.Context, f models.ReportFilter) ([]intdb.Row, error) {
	utils.LogEvent(s.RequestID, "report", "revenue", filterSummary(f))
	return s.call(ctx, intdb.ProcRevenueReport, deref(f.BranchID), f.StartDate, f.EndDate)
}

// RoomOccupancy covers every branch; the branch filter is not passed on.
func (s ReportService) RoomOccupancy(ctx context.Context, f models.ReportFilter) ([]intdb.Row, error) {
	utils.LogEvent(s.RequestID, "report", "room_occupancy", filterSummary(f))
	return s.call(ctx, intdb.ProcRoomOccupancyReport, f.StartDate, f.EndDate)
}

// GuestBilling takes no parameters; the filter is accepted and ignored.
func (s ReportService) GuestBilling(ctx context.Context, _ models.ReportFilter) ([]intdb.Row, error) {
	utils.LogEvent(s.RequestID, "report", "guest_billing", "unfiltered")
	return s.call(ctx, intdb.ProcGuestBillingSummary)
}

// ServiceUsage takes no parameters; the filter is accepted and ignored.
func (s ReportService) ServiceUsage(ctx context.Context, _ models.ReportFilter) ([]intdb.Row, error) {
	utils.LogEvent(s.RequestID, "report", "service_usage", "unfiltered")
	return s.call(ctx, intdb.ProcServiceUsagePerRoom)
}

// Run dispatches by report kind.
func (s ReportService) Run(ctx context.Context, kind string, f models.ReportFilter) ([]intdb.Row, error) {
	switch kind {
	case ReportRevenue:
		return s.Revenue(ctx, f)
	case ReportRoomOccupancy:
		return s.RoomOccupancy(ctx, f)
	case ReportGuestBilling:
		return s.GuestBilling(ctx, f)
	case ReportServiceUsage:
		return s.ServiceUsage(ctx, f)
	default:
		return nil, fmt.Errorf("unknown report %q", kind)
	}
}

func filterSummary(f models.ReportFilter) string {
	return fmt.Sprintf("branch_id=%d start=%s end=%s", deref(f.BranchID), f.StartDate, f.EndDate)
}
