package operational

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Service serves the read-only operational analytics. Percentages in the
// mix and department breakdowns are always derived from the amounts, never
// stored, so they cannot drift out of sum.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

func (s *Service) Stats(location string) Stats {
	return datasetFor(location).stats
}

func (s *Service) WeeklyRevenue(location string) []RevenuePoint {
	return datasetFor(location).weeklyRevenue
}

func (s *Service) WeeklyRevPAR(location string) []RevPARPoint {
	return datasetFor(location).weeklyRevPAR
}

func (s *Service) Occupancy(location string) Occupancy {
	return datasetFor(location).occupancy
}

// DepartmentExpenses returns the department spend breakdown with normalized
// percentage shares.
func (s *Service) DepartmentExpenses(location string) []DepartmentExpense {
	src := datasetFor(location).deptExpenses

	out := make([]DepartmentExpense, len(src))
	copy(out, src)

	amounts := make([]decimal.Decimal, len(out))
	for i := range out {
		amounts[i] = out[i].Amount
	}
	for i, pct := range NormalizePercentages(amounts) {
		out[i].Percentage = pct
	}
	return out
}

// Mix returns the revenue mix for a location with percentages summing to
// exactly 100.
func (s *Service) Mix(location string) RevenueMix {
	src := datasetFor(location).mixCategories

	breakdown := make([]MixSlice, len(src))
	copy(breakdown, src)

	total := decimal.Zero
	amounts := make([]decimal.Decimal, len(breakdown))
	for i := range breakdown {
		amounts[i] = breakdown[i].Amount
		total = total.Add(breakdown[i].Amount)
	}
	for i, pct := range NormalizePercentages(amounts) {
		breakdown[i].Percentage = pct
	}

	return RevenueMix{Total: total, Breakdown: breakdown}
}

func (s *Service) Performance(location string) []Performance {
	return datasetFor(location).performance
}
