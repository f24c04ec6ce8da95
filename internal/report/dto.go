package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hotelops/hotel-operations/internal/core/validation"
)

// CreateReportDTO is the payload for creating a report. Derived totals are
// never accepted from the client; they are recomputed on every write.
type CreateReportDTO struct {
	HotelName      string          `json:"hotel_name"`
	ReportDate     time.Time       `json:"report_date"`
	Purchases      []PurchaseItem  `json:"purchases"`
	Bills          []Bill          `json:"bills"`
	InventoryItems []InventoryItem `json:"inventory_items"`
	PowerReadings  []PowerReading  `json:"power_readings"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	Notes          string          `json:"notes"`
}

func (d *CreateReportDTO) Validate() error {
	v := validation.NewValidator()

	v.Field("hotel_name", d.HotelName).Required().MaxLength(255)
	v.Field("report_date", d.ReportDate).Required().NotFuture()
	v.Field("total_revenue", d.TotalRevenue).NonNegativeDecimal()

	addCollectionValidators(v, d.Purchases, d.Bills, d.InventoryItems, d.PowerReadings)

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// ToReport builds a draft report owned by the given actor.
func (d *CreateReportDTO) ToReport(ownerID int64) *ExpenseReport {
	r := &ExpenseReport{
		OwnerID:        ownerID,
		HotelName:      d.HotelName,
		ReportDate:     d.ReportDate,
		Status:         StatusDraft,
		Purchases:      d.Purchases,
		Bills:          d.Bills,
		InventoryItems: d.InventoryItems,
		PowerReadings:  d.PowerReadings,
		TotalRevenue:   d.TotalRevenue,
		Notes:          d.Notes,
	}
	r.Touch(ownerID)
	return r
}

// UpdateReportDTO is the payload for a partial update. A nil field leaves the
// stored value untouched; an empty slice replaces the stored collection.
type UpdateReportDTO struct {
	HotelName      *string          `json:"hotel_name"`
	ReportDate     *time.Time       `json:"report_date"`
	Purchases      *[]PurchaseItem  `json:"purchases"`
	Bills          *[]Bill          `json:"bills"`
	InventoryItems *[]InventoryItem `json:"inventory_items"`
	PowerReadings  *[]PowerReading  `json:"power_readings"`
	TotalRevenue   *decimal.Decimal `json:"total_revenue"`
	Notes          *string          `json:"notes"`
}

func (d *UpdateReportDTO) Validate() error {
	v := validation.NewValidator()

	if d.HotelName != nil {
		v.Field("hotel_name", *d.HotelName).Required().MaxLength(255)
	}
	if d.ReportDate != nil {
		v.Field("report_date", *d.ReportDate).Required().NotFuture()
	}
	if d.TotalRevenue != nil {
		v.Field("total_revenue", *d.TotalRevenue).NonNegativeDecimal()
	}

	var (
		purchases []PurchaseItem
		bills     []Bill
		inventory []InventoryItem
		power     []PowerReading
	)
	if d.Purchases != nil {
		purchases = *d.Purchases
	}
	if d.Bills != nil {
		bills = *d.Bills
	}
	if d.InventoryItems != nil {
		inventory = *d.InventoryItems
	}
	if d.PowerReadings != nil {
		power = *d.PowerReadings
	}
	addCollectionValidators(v, purchases, bills, inventory, power)

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// Apply merges the provided fields into the report.
func (d *UpdateReportDTO) Apply(r *ExpenseReport) {
	if d.HotelName != nil {
		r.HotelName = *d.HotelName
	}
	if d.ReportDate != nil {
		r.ReportDate = *d.ReportDate
	}
	if d.Purchases != nil {
		r.Purchases = *d.Purchases
	}
	if d.Bills != nil {
		r.Bills = *d.Bills
	}
	if d.InventoryItems != nil {
		r.InventoryItems = *d.InventoryItems
	}
	if d.PowerReadings != nil {
		r.PowerReadings = *d.PowerReadings
	}
	if d.TotalRevenue != nil {
		r.TotalRevenue = *d.TotalRevenue
	}
	if d.Notes != nil {
		r.Notes = *d.Notes
	}
}

// DecideReportDTO is the payload for approving or rejecting a report.
type DecideReportDTO struct {
	Status        Status `json:"status"`
	ApprovalNotes string `json:"approval_notes"`
}

func (d *DecideReportDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("status", string(d.Status)).Required().
		OneOf(string(StatusApproved), string(StatusRejected))
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// addCollectionValidators checks every line-item amount for negativity.
// Line totals may be omitted (zero); they get derived on recompute.
func addCollectionValidators(v *validation.ValidationBuilder, purchases []PurchaseItem, bills []Bill, inventory []InventoryItem, power []PowerReading) {
	for i, p := range purchases {
		v.Field(fmt.Sprintf("purchases[%d].quantity", i), p.Quantity).NonNegativeDecimal()
		v.Field(fmt.Sprintf("purchases[%d].unit_price", i), p.UnitPrice).NonNegativeDecimal()
		v.Field(fmt.Sprintf("purchases[%d].total_price", i), p.TotalPrice).NonNegativeDecimal()
		v.Field(fmt.Sprintf("purchases[%d].item", i), p.Item).Required().MaxLength(255)
	}
	for i, b := range bills {
		v.Field(fmt.Sprintf("bills[%d].amount", i), b.Amount).NonNegativeDecimal()
		v.Field(fmt.Sprintf("bills[%d].department", i), b.Department).Required().MaxLength(255)
		v.Field(fmt.Sprintf("bills[%d].status", i), b.Status).OneOf(BillPending, BillPaid, BillOverdue)
	}
	for i, it := range inventory {
		v.Field(fmt.Sprintf("inventory_items[%d].quantity", i), it.Quantity).NonNegativeDecimal()
		v.Field(fmt.Sprintf("inventory_items[%d].unit_cost", i), it.UnitCost).NonNegativeDecimal()
		v.Field(fmt.Sprintf("inventory_items[%d].item_name", i), it.ItemName).Required().MaxLength(255)
	}
	for i, pr := range power {
		v.Field(fmt.Sprintf("power_readings[%d].rate_per_unit", i), pr.RatePerUnit).NonNegativeDecimal()
		v.Field(fmt.Sprintf("power_readings[%d].units_consumed", i), pr.UnitsConsumed).NonNegativeDecimal()
		v.Field(fmt.Sprintf("power_readings[%d].total_cost", i), pr.TotalCost).NonNegativeDecimal()
	}
}
