package report_test

import (
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hotelops/hotel-operations/internal/report"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	Expect(err).NotTo(HaveOccurred())
	return d
}

var _ = Describe("Recompute", func() {
	Context("with an empty report", func() {
		It("should derive zero totals and zero margin", func() {
			r := &report.ExpenseReport{}

			report.Recompute(r)

			Expect(r.TotalPurchaseAmount.IsZero()).To(BeTrue())
			Expect(r.TotalBillsAmount.IsZero()).To(BeTrue())
			Expect(r.TotalInventoryValue.IsZero()).To(BeTrue())
			Expect(r.TotalPowerCost.IsZero()).To(BeTrue())
			Expect(r.TotalExpenses.IsZero()).To(BeTrue())
			Expect(r.NetProfit.IsZero()).To(BeTrue())
			Expect(r.ProfitMargin.IsZero()).To(BeTrue())
		})
	})

	Context("with purchase lines missing their totals", func() {
		It("should fill quantity x unit price into the line total", func() {
			r := &report.ExpenseReport{
				Purchases: []report.PurchaseItem{
					{Item: "Rice", Quantity: dec("50"), UnitPrice: dec("200")},
				},
			}

			report.Recompute(r)

			Expect(r.Purchases[0].TotalPrice.String()).To(Equal("10000"))
			Expect(r.TotalPurchaseAmount.String()).To(Equal("10000"))
		})

		It("should keep a client-supplied line total as-is", func() {
			r := &report.ExpenseReport{
				Purchases: []report.PurchaseItem{
					{Item: "Oil", Quantity: dec("10"), UnitPrice: dec("100"), TotalPrice: dec("950")},
				},
			}

			report.Recompute(r)

			Expect(r.Purchases[0].TotalPrice.String()).To(Equal("950"))
			Expect(r.TotalPurchaseAmount.String()).To(Equal("950"))
		})
	})

	Context("with every collection populated", func() {
		It("should sum expenses without inventory value", func() {
			r := &report.ExpenseReport{
				Purchases: []report.PurchaseItem{
					{Item: "Rice", Quantity: dec("50"), UnitPrice: dec("200")},
				},
				Bills: []report.Bill{
					{Department: "Housekeeping", Amount: dec("3000"), Status: report.BillPending},
					{Department: "Kitchen", Amount: dec("2000"), Status: report.BillPaid},
				},
				InventoryItems: []report.InventoryItem{
					{ItemName: "Linen", Quantity: dec("20"), UnitCost: dec("500")},
				},
				PowerReadings: []report.PowerReading{
					{MeterReading: dec("1200"), PreviousReading: dec("1000"), RatePerUnit: dec("8")},
				},
				TotalRevenue: dec("190000"),
			}

			report.Recompute(r)

			Expect(r.TotalPurchaseAmount.String()).To(Equal("10000"))
			Expect(r.TotalBillsAmount.String()).To(Equal("5000"))
			Expect(r.TotalInventoryValue.String()).To(Equal("10000"))
			Expect(r.PowerReadings[0].UnitsConsumed.String()).To(Equal("200"))
			Expect(r.TotalPowerCost.String()).To(Equal("1600"))

			// 10000 + 5000 + 1600; inventory is a valuation, not an expense
			Expect(r.TotalExpenses.String()).To(Equal("16600"))
			Expect(r.NetProfit.String()).To(Equal("173400"))
			Expect(r.ProfitMargin.StringFixed(2)).To(Equal("91.26"))
		})
	})

	Context("when revenue is zero", func() {
		It("should report zero margin instead of dividing", func() {
			r := &report.ExpenseReport{
				Bills:        []report.Bill{{Department: "Kitchen", Amount: dec("5000")}},
				TotalRevenue: decimal.Zero,
			}

			report.Recompute(r)

			Expect(r.NetProfit.String()).To(Equal("-5000"))
			Expect(r.ProfitMargin.IsZero()).To(BeTrue())
		})
	})

	Context("when called twice", func() {
		It("should be idempotent", func() {
			r := &report.ExpenseReport{
				Purchases: []report.PurchaseItem{
					{Item: "Rice", Quantity: dec("50"), UnitPrice: dec("200")},
				},
				TotalRevenue: dec("190000"),
			}

			report.Recompute(r)
			first := r.TotalExpenses
			firstMargin := r.ProfitMargin

			report.Recompute(r)

			Expect(r.TotalExpenses.Equal(first)).To(BeTrue())
			Expect(r.ProfitMargin.Equal(firstMargin)).To(BeTrue())
		})
	})

	Context("with stale stored totals", func() {
		It("should overwrite them from the line items", func() {
			r := &report.ExpenseReport{
				Bills:         []report.Bill{{Department: "Kitchen", Amount: dec("700")}},
				TotalExpenses: dec("999999"),
				NetProfit:     dec("123456"),
				TotalRevenue:  dec("1000"),
			}

			report.Recompute(r)

			Expect(r.TotalExpenses.String()).To(Equal("700"))
			Expect(r.NetProfit.String()).To(Equal("300"))
			Expect(r.ProfitMargin.StringFixed(2)).To(Equal("30.00"))
		})
	})
})
