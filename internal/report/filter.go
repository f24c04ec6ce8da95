package report

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ScopeAll widens a listing to every owner's reports. Honored only for
// elevated principals; everyone else stays owner-scoped regardless.
const ScopeAll = "all"

// ListFilter narrows and pages a report listing. All criteria are optional
// and combine with AND. OwnerID is set by the service, never by the client:
// non-elevated callers only ever see their own reports.
type ListFilter struct {
	OwnerID   *int64
	Scope     string
	HotelName string
	Status    *Status
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	PageSize  int
}

// Normalize clamps paging to sane bounds. Pages are 1-indexed.
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
}

// Offset is the row offset for the normalized page.
func (f *ListFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// StatsFilter narrows the aggregate summary. Same scoping rule as ListFilter:
// OwnerID comes from the service.
type StatsFilter struct {
	OwnerID   *int64
	Scope     string
	HotelName string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// Pagination describes one page of a larger result set.
type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
}

// Page is one page of reports plus its pagination envelope. A page past the
// end of the result set is an empty page with the true total, not an error.
type Page struct {
	Reports    []ExpenseReport `json:"reports"`
	Pagination Pagination      `json:"pagination"`
}

// NewPage assembles the pagination envelope from the raw page query results.
func NewPage(reports []ExpenseReport, total int64, page, pageSize int) Page {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}
	if reports == nil {
		reports = []ExpenseReport{}
	}
	return Page{
		Reports: reports,
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: pageSize,
		},
	}
}

// Stats is the aggregate financial summary over a set of reports.
type Stats struct {
	TotalReports    int64           `json:"total_reports"`
	DraftCount      int64           `json:"draft_count"`
	SubmittedCount  int64           `json:"submitted_count"`
	ApprovedCount   int64           `json:"approved_count"`
	RejectedCount   int64           `json:"rejected_count"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	AvgProfitMargin decimal.Decimal `json:"avg_profit_margin"`
}
