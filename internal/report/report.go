package report

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Status is the report lifecycle state.
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

// Bill payment states.
const (
	BillPending = "pending"
	BillPaid    = "paid"
	BillOverdue = "overdue"
)

// PurchaseItem is one store-and-purchase line.
type PurchaseItem struct {
	Item         string          `json:"item"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Supplier     string          `json:"supplier,omitempty"`
	PurchaseDate *time.Time      `json:"purchase_date,omitempty"`
}

// Bill is one department bill line.
type Bill struct {
	Department  string          `json:"department"`
	BillType    string          `json:"bill_type"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Status      string          `json:"status"`
	Description string          `json:"description,omitempty"`
}

// InventoryItem is one store-inventory line. Its value is a stock valuation,
// not a period expense, so it never feeds totalExpenses.
type InventoryItem struct {
	ItemName     string          `json:"item_name"`
	Category     string          `json:"category,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalValue   decimal.Decimal `json:"total_value"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	LastUpdated  *time.Time      `json:"last_updated,omitempty"`
}

// PowerReading is one meter reading line.
type PowerReading struct {
	MeterReading    decimal.Decimal `json:"meter_reading"`
	PreviousReading decimal.Decimal `json:"previous_reading"`
	UnitsConsumed   decimal.Decimal `json:"units_consumed"`
	RatePerUnit     decimal.Decimal `json:"rate_per_unit"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	MeterType       string          `json:"meter_type,omitempty"`
	ReadingDate     *time.Time      `json:"reading_date,omitempty"`
}

// ExpenseReport is the central entity: a per-hotel daily expense document with
// four nested line-item collections and derived financial summary fields.
type ExpenseReport struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	OwnerID    int64     `json:"owner_id" gorm:"column:owner_id;not null"`
	HotelName  string    `json:"hotel_name" gorm:"column:hotel_name;not null"`
	ReportDate time.Time `json:"report_date" gorm:"column:report_date;type:date"`
	Status     Status    `json:"status" gorm:"column:status;default:draft"`

	Purchases           datatypes.JSONSlice[PurchaseItem] `json:"purchases" gorm:"column:purchases;type:jsonb"`
	TotalPurchaseAmount decimal.Decimal                   `json:"total_purchase_amount" gorm:"column:total_purchase_amount;type:numeric(14,2)"`

	Bills            datatypes.JSONSlice[Bill] `json:"bills" gorm:"column:bills;type:jsonb"`
	TotalBillsAmount decimal.Decimal           `json:"total_bills_amount" gorm:"column:total_bills_amount;type:numeric(14,2)"`

	InventoryItems      datatypes.JSONSlice[InventoryItem] `json:"inventory_items" gorm:"column:inventory_items;type:jsonb"`
	TotalInventoryValue decimal.Decimal                    `json:"total_inventory_value" gorm:"column:total_inventory_value;type:numeric(14,2)"`

	PowerReadings  datatypes.JSONSlice[PowerReading] `json:"power_readings" gorm:"column:power_readings;type:jsonb"`
	TotalPowerCost decimal.Decimal                   `json:"total_power_cost" gorm:"column:total_power_cost;type:numeric(14,2)"`

	TotalExpenses decimal.Decimal `json:"total_expenses" gorm:"column:total_expenses;type:numeric(14,2)"`
	TotalRevenue  decimal.Decimal `json:"total_revenue" gorm:"column:total_revenue;type:numeric(14,2)"`
	NetProfit     decimal.Decimal `json:"net_profit" gorm:"column:net_profit;type:numeric(14,2)"`
	ProfitMargin  decimal.Decimal `json:"profit_margin" gorm:"column:profit_margin;type:numeric(7,2)"`
	Notes         string          `json:"notes,omitempty" gorm:"column:notes"`

	IsLocked       bool       `json:"is_locked" gorm:"column:is_locked;default:false"`
	ApprovedBy     *int64     `json:"approved_by,omitempty" gorm:"column:approved_by"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty" gorm:"column:approved_at"`
	ApprovalNotes  string     `json:"approval_notes,omitempty" gorm:"column:approval_notes"`
	LastModifiedBy int64      `json:"last_modified_by" gorm:"column:last_modified_by"`
	LastModifiedAt time.Time  `json:"last_modified_at" gorm:"column:last_modified_at"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;default:now()"`
}

func (ExpenseReport) TableName() string {
	return "expense_reports"
}

func (r *ExpenseReport) Touch(actorID int64) {
	now := time.Now()
	r.LastModifiedBy = actorID
	r.LastModifiedAt = now
	r.UpdatedAt = now
}
