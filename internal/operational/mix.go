package operational

import (
	"sort"

	"github.com/shopspring/decimal"
)

// NormalizePercentages distributes whole-number percentages over the amounts
// using the largest-remainder method. The results always sum to exactly 100
// when the total is positive; an all-zero input yields all-zero percentages.
func NormalizePercentages(amounts []decimal.Decimal) []int64 {
	out := make([]int64, len(amounts))

	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	if !total.IsPositive() {
		return out
	}

	hundred := decimal.NewFromInt(100)
	type remainder struct {
		index int
		frac  decimal.Decimal
	}

	remainders := make([]remainder, len(amounts))
	var allocated int64
	for i, a := range amounts {
		exact := a.Div(total).Mul(hundred)
		floor := exact.Floor()
		out[i] = floor.IntPart()
		allocated += out[i]
		remainders[i] = remainder{index: i, frac: exact.Sub(floor)}
	}

	// Hand the leftover points to the largest fractional parts, index order
	// breaking ties so the result is deterministic.
	sort.SliceStable(remainders, func(i, j int) bool {
		return remainders[i].frac.GreaterThan(remainders[j].frac)
	})
	for i := int64(0); i < 100-allocated; i++ {
		out[remainders[int(i)%len(remainders)].index]++
	}

	return out
}
