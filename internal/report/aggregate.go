package report

import "github.com/shopspring/decimal"

// Recompute derives every financial total on the report from its line-item
// collections and the client-supplied revenue. It is called before every
// persist that may have changed report content; stored derived values are
// never trusted. It is deterministic, idempotent, and touches nothing but
// the derived fields.
func Recompute(r *ExpenseReport) {
	r.TotalPurchaseAmount = recomputePurchases(r.Purchases)
	r.TotalBillsAmount = recomputeBills(r.Bills)
	r.TotalInventoryValue = recomputeInventory(r.InventoryItems)
	r.TotalPowerCost = recomputePower(r.PowerReadings)

	// Inventory value is a stock valuation, not a period expense.
	r.TotalExpenses = r.TotalPurchaseAmount.
		Add(r.TotalBillsAmount).
		Add(r.TotalPowerCost)

	r.NetProfit = r.TotalRevenue.Sub(r.TotalExpenses)

	if r.TotalRevenue.IsPositive() {
		r.ProfitMargin = r.NetProfit.Div(r.TotalRevenue).Mul(decimal.NewFromInt(100))
	} else {
		r.ProfitMargin = decimal.Zero
	}
}

// recomputePurchases fills in missing line totals (quantity x unit price) and
// returns the collection sum. An empty collection sums to zero.
func recomputePurchases(items []PurchaseItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		if items[i].TotalPrice.IsZero() {
			items[i].TotalPrice = items[i].Quantity.Mul(items[i].UnitPrice)
		}
		total = total.Add(items[i].TotalPrice)
	}
	return total
}

func recomputeBills(bills []Bill) decimal.Decimal {
	total := decimal.Zero
	for i := range bills {
		total = total.Add(bills[i].Amount)
	}
	return total
}

func recomputeInventory(items []InventoryItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		if items[i].TotalValue.IsZero() {
			items[i].TotalValue = items[i].Quantity.Mul(items[i].UnitCost)
		}
		total = total.Add(items[i].TotalValue)
	}
	return total
}

// recomputePower derives units consumed from the meter delta and the line
// cost from units x rate when the caller left them unset.
func recomputePower(readings []PowerReading) decimal.Decimal {
	total := decimal.Zero
	for i := range readings {
		if readings[i].UnitsConsumed.IsZero() {
			delta := readings[i].MeterReading.Sub(readings[i].PreviousReading)
			if delta.IsPositive() {
				readings[i].UnitsConsumed = delta
			}
		}
		if readings[i].TotalCost.IsZero() {
			readings[i].TotalCost = readings[i].UnitsConsumed.Mul(readings[i].RatePerUnit)
		}
		total = total.Add(readings[i].TotalCost)
	}
	return total
}
