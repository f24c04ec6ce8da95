package dailyreport

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/hotelops/hotel-operations/internal"
)

// Status is the daily report lifecycle state. Same one-way machine as
// expense reports: draft -> submitted -> approved | rejected, with a
// permanent lock on decision.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// MealPeriod is one food & beverage service window. Average is derived,
// never client-supplied.
type MealPeriod struct {
	Revenue decimal.Decimal `json:"revenue"`
	Guests  int64           `json:"guests"`
	Average decimal.Decimal `json:"average"`
}

// FoodBeverage is the per-day F&B breakdown.
type FoodBeverage struct {
	Breakfast MealPeriod `json:"breakfast"`
	Lunch     MealPeriod `json:"lunch"`
	Dinner    MealPeriod `json:"dinner"`
	Bar       MealPeriod `json:"bar"`
}

// RevenueSource is one distribution channel line (OTA, direct, corporate...).
type RevenueSource struct {
	Channel string          `json:"channel"`
	Rooms   int64           `json:"rooms"`
	Revenue decimal.Decimal `json:"revenue"`
	ADR     decimal.Decimal `json:"adr"`
}

// DailyReport is the per-resort daily operations document.
type DailyReport struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	OwnerID    int64     `json:"owner_id" gorm:"column:owner_id;not null"`
	ResortName string    `json:"resort_name" gorm:"column:resort_name;not null"`
	ReportDate time.Time `json:"report_date" gorm:"column:report_date;type:date"`
	Status     Status    `json:"status" gorm:"column:status;default:draft"`

	RoomsOccupied  int64           `json:"rooms_occupied" gorm:"column:rooms_occupied"`
	TotalRooms     int64           `json:"total_rooms" gorm:"column:total_rooms"`
	TotalGuests    int64           `json:"total_guests" gorm:"column:total_guests"`
	OccupancyRatio decimal.Decimal `json:"occupancy_ratio" gorm:"column:occupancy_ratio;type:numeric(7,2)"`
	OccupancyMTD   decimal.Decimal `json:"occupancy_mtd" gorm:"column:occupancy_mtd;type:numeric(7,2)"`
	OccupancyYTD   decimal.Decimal `json:"occupancy_ytd" gorm:"column:occupancy_ytd;type:numeric(7,2)"`

	RoomRevenue decimal.Decimal `json:"room_revenue" gorm:"column:room_revenue;type:numeric(14,2)"`

	FoodBeverage   datatypes.JSONType[FoodBeverage]   `json:"food_beverage" gorm:"column:food_beverage;type:jsonb"`
	TotalFBRevenue decimal.Decimal                    `json:"total_fb_revenue" gorm:"column:total_fb_revenue;type:numeric(14,2)"`
	RevenueSources datatypes.JSONSlice[RevenueSource] `json:"revenue_sources" gorm:"column:revenue_sources;type:jsonb"`

	SpaRevenue         decimal.Decimal `json:"spa_revenue" gorm:"column:spa_revenue;type:numeric(14,2)"`
	OtherRevenue       decimal.Decimal `json:"other_revenue" gorm:"column:other_revenue;type:numeric(14,2)"`
	TotalRevenueForDay decimal.Decimal `json:"total_revenue_for_day" gorm:"column:total_revenue_for_day;type:numeric(14,2)"`
	Notes              string          `json:"notes,omitempty" gorm:"column:notes"`

	IsLocked       bool       `json:"is_locked" gorm:"column:is_locked;default:false"`
	ApprovedBy     *int64     `json:"approved_by,omitempty" gorm:"column:approved_by"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty" gorm:"column:approved_at"`
	ApprovalNotes  string     `json:"approval_notes,omitempty" gorm:"column:approval_notes"`
	LastModifiedBy int64      `json:"last_modified_by" gorm:"column:last_modified_by"`
	LastModifiedAt time.Time  `json:"last_modified_at" gorm:"column:last_modified_at"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (DailyReport) TableName() string {
	return "daily_reports"
}

func (d *DailyReport) Touch(actorID int64) {
	now := time.Now()
	d.LastModifiedBy = actorID
	d.LastModifiedAt = now
	d.UpdatedAt = now
}

// Recompute derives meal averages, F&B total, occupancy ratio and the daily
// revenue total. Idempotent; zero guests or rooms never divide.
func Recompute(d *DailyReport) {
	fb := d.FoodBeverage.Data()
	recomputeMeal(&fb.Breakfast)
	recomputeMeal(&fb.Lunch)
	recomputeMeal(&fb.Dinner)
	recomputeMeal(&fb.Bar)
	d.FoodBeverage = datatypes.NewJSONType(fb)

	d.TotalFBRevenue = fb.Breakfast.Revenue.
		Add(fb.Lunch.Revenue).
		Add(fb.Dinner.Revenue).
		Add(fb.Bar.Revenue)

	if d.TotalRooms > 0 {
		d.OccupancyRatio = decimal.NewFromInt(d.RoomsOccupied).
			Div(decimal.NewFromInt(d.TotalRooms)).
			Mul(decimal.NewFromInt(100))
	} else {
		d.OccupancyRatio = decimal.Zero
	}

	d.TotalRevenueForDay = d.RoomRevenue.
		Add(d.TotalFBRevenue).
		Add(d.SpaRevenue).
		Add(d.OtherRevenue)
}

func recomputeMeal(m *MealPeriod) {
	if m.Guests > 0 {
		m.Average = m.Revenue.Div(decimal.NewFromInt(m.Guests))
	} else {
		m.Average = decimal.Zero
	}
}

// Lifecycle transitions mirror the expense report machine.

func (d *DailyReport) Mutable() bool {
	return d.Status == StatusDraft && !d.IsLocked
}

func (d *DailyReport) Submit(actorID int64) error {
	if !d.Mutable() {
		return internal.NewInvalidTransitionError(
			fmt.Sprintf("cannot submit daily report in status %q", d.Status))
	}
	d.Status = StatusSubmitted
	d.Touch(actorID)
	return nil
}

func (d *DailyReport) Decide(decision Status, approverID int64, notes string) error {
	if decision != StatusApproved && decision != StatusRejected {
		return internal.NewValidationError(
			"status must be either approved or rejected", internal.ErrCodeInvalidStatus)
	}
	if d.Status != StatusSubmitted || d.IsLocked {
		return internal.NewInvalidTransitionError(
			fmt.Sprintf("cannot %s daily report in status %q", decision, d.Status))
	}

	now := time.Now()
	d.Status = decision
	d.ApprovedBy = &approverID
	d.ApprovedAt = &now
	d.ApprovalNotes = notes
	d.IsLocked = true
	d.Touch(approverID)
	return nil
}

func (d *DailyReport) EnsureMutable() error {
	if !d.Mutable() {
		return internal.NewInvalidTransitionError(
			fmt.Sprintf("cannot modify daily report in status %q", d.Status))
	}
	return nil
}
