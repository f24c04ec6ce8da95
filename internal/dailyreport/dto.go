package dailyreport

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/hotelops/hotel-operations/internal/core/validation"
)

type CreateDailyReportDTO struct {
	ResortName     string          `json:"resort_name"`
	ReportDate     time.Time       `json:"report_date"`
	RoomsOccupied  int64           `json:"rooms_occupied"`
	TotalRooms     int64           `json:"total_rooms"`
	TotalGuests    int64           `json:"total_guests"`
	OccupancyMTD   decimal.Decimal `json:"occupancy_mtd"`
	OccupancyYTD   decimal.Decimal `json:"occupancy_ytd"`
	RoomRevenue    decimal.Decimal `json:"room_revenue"`
	FoodBeverage   FoodBeverage    `json:"food_beverage"`
	RevenueSources []RevenueSource `json:"revenue_sources"`
	SpaRevenue     decimal.Decimal `json:"spa_revenue"`
	OtherRevenue   decimal.Decimal `json:"other_revenue"`
	Notes          string          `json:"notes"`
}

func (d *CreateDailyReportDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("resort_name", d.ResortName).Required().MaxLength(255)
	v.Field("report_date", d.ReportDate).Required().NotFuture()
	v.Field("room_revenue", d.RoomRevenue).NonNegativeDecimal()
	v.Field("spa_revenue", d.SpaRevenue).NonNegativeDecimal()
	v.Field("other_revenue", d.OtherRevenue).NonNegativeDecimal()
	v.Field("food_beverage.breakfast.revenue", d.FoodBeverage.Breakfast.Revenue).NonNegativeDecimal()
	v.Field("food_beverage.lunch.revenue", d.FoodBeverage.Lunch.Revenue).NonNegativeDecimal()
	v.Field("food_beverage.dinner.revenue", d.FoodBeverage.Dinner.Revenue).NonNegativeDecimal()
	v.Field("food_beverage.bar.revenue", d.FoodBeverage.Bar.Revenue).NonNegativeDecimal()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d *CreateDailyReportDTO) ToReport(ownerID int64) *DailyReport {
	r := &DailyReport{
		OwnerID:        ownerID,
		ResortName:     d.ResortName,
		ReportDate:     d.ReportDate,
		Status:         StatusDraft,
		RoomsOccupied:  d.RoomsOccupied,
		TotalRooms:     d.TotalRooms,
		TotalGuests:    d.TotalGuests,
		OccupancyMTD:   d.OccupancyMTD,
		OccupancyYTD:   d.OccupancyYTD,
		RoomRevenue:    d.RoomRevenue,
		FoodBeverage:   datatypes.NewJSONType(d.FoodBeverage),
		RevenueSources: d.RevenueSources,
		SpaRevenue:     d.SpaRevenue,
		OtherRevenue:   d.OtherRevenue,
		Notes:          d.Notes,
	}
	r.Touch(ownerID)
	return r
}

type UpdateDailyReportDTO struct {
	ResortName     *string          `json:"resort_name"`
	ReportDate     *time.Time       `json:"report_date"`
	RoomsOccupied  *int64           `json:"rooms_occupied"`
	TotalRooms     *int64           `json:"total_rooms"`
	TotalGuests    *int64           `json:"total_guests"`
	OccupancyMTD   *decimal.Decimal `json:"occupancy_mtd"`
	OccupancyYTD   *decimal.Decimal `json:"occupancy_ytd"`
	RoomRevenue    *decimal.Decimal `json:"room_revenue"`
	FoodBeverage   *FoodBeverage    `json:"food_beverage"`
	RevenueSources *[]RevenueSource `json:"revenue_sources"`
	SpaRevenue     *decimal.Decimal `json:"spa_revenue"`
	OtherRevenue   *decimal.Decimal `json:"other_revenue"`
	Notes          *string          `json:"notes"`
}

func (d *UpdateDailyReportDTO) Validate() error {
	v := validation.NewValidator()
	if d.ResortName != nil {
		v.Field("resort_name", *d.ResortName).Required().MaxLength(255)
	}
	if d.ReportDate != nil {
		v.Field("report_date", *d.ReportDate).Required().NotFuture()
	}
	if d.RoomRevenue != nil {
		v.Field("room_revenue", *d.RoomRevenue).NonNegativeDecimal()
	}
	if d.SpaRevenue != nil {
		v.Field("spa_revenue", *d.SpaRevenue).NonNegativeDecimal()
	}
	if d.OtherRevenue != nil {
		v.Field("other_revenue", *d.OtherRevenue).NonNegativeDecimal()
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (d *UpdateDailyReportDTO) Apply(r *DailyReport) {
	if d.ResortName != nil {
		r.ResortName = *d.ResortName
	}
	if d.ReportDate != nil {
		r.ReportDate = *d.ReportDate
	}
	if d.RoomsOccupied != nil {
		r.RoomsOccupied = *d.RoomsOccupied
	}
	if d.TotalRooms != nil {
		r.TotalRooms = *d.TotalRooms
	}
	if d.TotalGuests != nil {
		r.TotalGuests = *d.TotalGuests
	}
	if d.OccupancyMTD != nil {
		r.OccupancyMTD = *d.OccupancyMTD
	}
	if d.OccupancyYTD != nil {
		r.OccupancyYTD = *d.OccupancyYTD
	}
	if d.RoomRevenue != nil {
		r.RoomRevenue = *d.RoomRevenue
	}
	if d.FoodBeverage != nil {
		r.FoodBeverage = datatypes.NewJSONType(*d.FoodBeverage)
	}
	if d.RevenueSources != nil {
		r.RevenueSources = *d.RevenueSources
	}
	if d.SpaRevenue != nil {
		r.SpaRevenue = *d.SpaRevenue
	}
	if d.OtherRevenue != nil {
		r.OtherRevenue = *d.OtherRevenue
	}
	if d.Notes != nil {
		r.Notes = *d.Notes
	}
}

type DecideDailyReportDTO struct {
	Status        Status `json:"status"`
	ApprovalNotes string `json:"approval_notes"`
}

func (d *DecideDailyReportDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("status", string(d.Status)).Required().
		OneOf(string(StatusApproved), string(StatusRejected))
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// ListFilter narrows a daily report listing; same scoping rules as expense
// reports.
type ListFilter struct {
	OwnerID    *int64
	Scope      string
	ResortName string
	Status     *Status
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	PageSize   int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 10
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
}

func (f *ListFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// StatsFilter narrows the daily report aggregate. OwnerID is set by the
// service under the same scoping rule as ListFilter.
type StatsFilter struct {
	OwnerID    *int64
	Scope      string
	ResortName string
	DateFrom   *time.Time
	DateTo     *time.Time
}

// Stats is the operational summary over a set of daily reports.
type Stats struct {
	TotalReports       int64           `json:"total_reports"`
	DraftCount         int64           `json:"draft_count"`
	SubmittedCount     int64           `json:"submitted_count"`
	ApprovedCount      int64           `json:"approved_count"`
	RejectedCount      int64           `json:"rejected_count"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	AverageOccupancy   decimal.Decimal `json:"average_occupancy"`
	TotalRoomsOccupied int64           `json:"total_rooms_occupied"`
	TotalGuests        int64           `json:"total_guests"`
}

type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
}

type Page struct {
	Reports    []DailyReport `json:"reports"`
	Pagination Pagination    `json:"pagination"`
}

func NewPage(reports []DailyReport, total int64, page, pageSize int) Page {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}
	if reports == nil {
		reports = []DailyReport{}
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
