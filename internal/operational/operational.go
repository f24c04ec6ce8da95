package operational

import "github.com/shopspring/decimal"

// Stats is the per-location operational dashboard block.
type Stats struct {
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	TotalExpenses        decimal.Decimal `json:"total_expenses"`
	GrossOperatingProfit decimal.Decimal `json:"gross_operating_profit"`
	AverageOccupancy     decimal.Decimal `json:"average_occupancy"`
	TotalEmployees       int             `json:"total_employees"`
	ActiveProjects       int             `json:"active_projects"`
	AttendanceRate       decimal.Decimal `json:"attendance_rate"`
	GOPScore             decimal.Decimal `json:"gop_score"`
	DailyTasks           int             `json:"daily_tasks"`
}

// RevenuePoint is one day in the weekly revenue series.
type RevenuePoint struct {
	Day     string          `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
}

// RevPARPoint is one day of revenue per available room.
type RevPARPoint struct {
	Day    string          `json:"day"`
	RevPAR decimal.Decimal `json:"revpar"`
}

// Occupancy is the current occupancy snapshot.
type Occupancy struct {
	Current decimal.Decimal `json:"current"`
	Target  decimal.Decimal `json:"target"`
	Trend   string          `json:"trend"`
}

// DepartmentExpense is one department's share of operating spend.
type DepartmentExpense struct {
	Department string          `json:"department"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int64           `json:"percentage"`
}

// MixSlice is one revenue category in the mix.
type MixSlice struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage int64           `json:"percentage"`
	Color      string          `json:"color"`
}

// RevenueMix is the category breakdown of a location's revenue. Percentages
// always sum to exactly 100 when total is positive.
type RevenueMix struct {
	Total     decimal.Decimal `json:"total"`
	Breakdown []MixSlice      `json:"breakdown"`
}

// Performance is one row of the resort performance table.
type Performance struct {
	Resort    string          `json:"resort"`
	Manager   string          `json:"manager"`
	Revenue   decimal.Decimal `json:"revenue"`
	Occupancy decimal.Decimal `json:"occupancy"`
	RevPAR    decimal.Decimal `json:"revpar"`
	Status    string          `json:"status"`
}
