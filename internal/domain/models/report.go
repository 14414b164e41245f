package models

// ReportFilter carries the query parameters shared by every /reports endpoint.
// Dates are YYYY-MM-DD. Some procedures ignore part or all of the filter.
// branch_id=0 is present, not missing.
type ReportFilter struct {
	BranchID  *int64 `form:"branch_id" binding:"required"`
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
	Format    string `form:"format" binding:"omitempty,oneof=json pdf"`
}

// AvailabilityQuery is the GET /rooms/available query.
type AvailabilityQuery struct {
	BranchID *int64 `form:"branch_id" binding:"required"`
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}
