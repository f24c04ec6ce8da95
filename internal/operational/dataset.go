package operational

import "github.com/shopspring/decimal"

// The dashboard is fed from per-location operational datasets maintained by
// the operations team. Figures for locations without a dataset fall back to
// the network-wide baseline.

const defaultLocation = "default"

type locationData struct {
	stats         Stats
	weeklyRevenue []RevenuePoint
	weeklyRevPAR  []RevPARPoint
	occupancy     Occupancy
	deptExpenses  []DepartmentExpense
	mixCategories []MixSlice
	performance   []Performance
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func decf(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func week(revenues ...int64) []RevenuePoint {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	points := make([]RevenuePoint, len(days))
	for i, d := range days {
		points[i] = RevenuePoint{Day: d, Revenue: dec(revenues[i])}
	}
	return points
}

var datasets = map[string]locationData{
	"Goa Beach Resort": {
		stats: Stats{
			TotalRevenue:         dec(680000),
			TotalExpenses:        dec(408000),
			GrossOperatingProfit: dec(272000),
			AverageOccupancy:     dec(92),
			TotalEmployees:       200,
			ActiveProjects:       12,
			AttendanceRate:       decf(96.2),
			GOPScore:             decf(82.5),
			DailyTasks:           31,
		},
		weeklyRevenue: week(25000, 22000, 28000, 35000, 32000, 40000, 35000),
		weeklyRevPAR: []RevPARPoint{
			{Day: "Mon", RevPAR: dec(3800)}, {Day: "Tue", RevPAR: dec(4200)},
			{Day: "Wed", RevPAR: dec(3900)}, {Day: "Thu", RevPAR: dec(4500)},
			{Day: "Fri", RevPAR: dec(4800)}, {Day: "Sat", RevPAR: dec(5200)},
			{Day: "Sun", RevPAR: dec(4600)},
		},
		occupancy: Occupancy{Current: dec(92), Target: dec(95), Trend: "+3.1%"},
		deptExpenses: []DepartmentExpense{
			{Department: "Housekeeping", Amount: dec(120000)},
			{Department: "Food & Beverage", Amount: dec(150000)},
			{Department: "Front Office", Amount: dec(68000)},
			{Department: "Maintenance", Amount: dec(70000)},
		},
		mixCategories: []MixSlice{
			{Category: "Room Revenue", Amount: dec(476000), Color: "blue"},
			{Category: "F&B Revenue", Amount: dec(136000), Color: "green"},
			{Category: "Spa & Wellness", Amount: dec(40800), Color: "purple"},
			{Category: "Activities & Tours", Amount: dec(27200), Color: "yellow"},
		},
		performance: []Performance{
			{Resort: "Goa Beach Resort", Manager: "A. Fernandes", Revenue: dec(680000), Occupancy: dec(92), RevPAR: dec(4450), Status: "Active"},
		},
	},
	"Kerala Backwaters Resort": {
		stats: Stats{
			TotalRevenue:         dec(420000),
			TotalExpenses:        dec(294000),
			GrossOperatingProfit: dec(126000),
			AverageOccupancy:     dec(78),
			TotalEmployees:       120,
			ActiveProjects:       6,
			AttendanceRate:       decf(91.8),
			GOPScore:             decf(75.4),
			DailyTasks:           18,
		},
		weeklyRevenue: week(15000, 12000, 18000, 22000, 20000, 25000, 22000),
		weeklyRevPAR: []RevPARPoint{
			{Day: "Mon", RevPAR: dec(2900)}, {Day: "Tue", RevPAR: dec(2600)},
			{Day: "Wed", RevPAR: dec(3100)}, {Day: "Thu", RevPAR: dec(3500)},
			{Day: "Fri", RevPAR: dec(3300)}, {Day: "Sat", RevPAR: dec(3900)},
			{Day: "Sun", RevPAR: dec(3400)},
		},
		occupancy: Occupancy{Current: dec(78), Target: dec(85), Trend: "+1.8%"},
		deptExpenses: []DepartmentExpense{
			{Department: "Housekeeping", Amount: dec(80000)},
			{Department: "Food & Beverage", Amount: dec(110000)},
			{Department: "Front Office", Amount: dec(52000)},
			{Department: "Maintenance", Amount: dec(52000)},
		},
		mixCategories: []MixSlice{
			{Category: "Room Revenue", Amount: dec(252000), Color: "blue"},
			{Category: "F&B Revenue", Amount: dec(126000), Color: "green"},
			{Category: "Ayurveda & Spa", Amount: dec(33600), Color: "purple"},
			{Category: "Boat Tours", Amount: dec(8400), Color: "cyan"},
		},
		performance: []Performance{
			{Resort: "Kerala Backwaters Resort", Manager: "R. Nair", Revenue: dec(420000), Occupancy: dec(78), RevPAR: dec(3240), Status: "Active"},
		},
	},
	"Diu - Ghogla": {
		stats: Stats{
			TotalRevenue:         dec(380000),
			TotalExpenses:        dec(266000),
			GrossOperatingProfit: dec(114000),
			AverageOccupancy:     dec(85),
			TotalEmployees:       156,
			ActiveProjects:       8,
			AttendanceRate:       decf(94.5),
			GOPScore:             decf(78.2),
			DailyTasks:           23,
		},
		weeklyRevenue: week(18000, 15000, 20000, 25000, 22000, 28000, 24000),
		weeklyRevPAR: []RevPARPoint{
			{Day: "Mon", RevPAR: dec(3100)}, {Day: "Tue", RevPAR: dec(2800)},
			{Day: "Wed", RevPAR: dec(3300)}, {Day: "Thu", RevPAR: dec(3700)},
			{Day: "Fri", RevPAR: dec(3500)}, {Day: "Sat", RevPAR: dec(4100)},
			{Day: "Sun", RevPAR: dec(3600)},
		},
		occupancy: Occupancy{Current: dec(85), Target: dec(90), Trend: "+5.2%"},
		deptExpenses: []DepartmentExpense{
			{Department: "Housekeeping", Amount: dec(76000)},
			{Department: "Food & Beverage", Amount: dec(98000)},
			{Department: "Front Office", Amount: dec(46000)},
			{Department: "Maintenance", Amount: dec(46000)},
		},
		mixCategories: []MixSlice{
			{Category: "Room Revenue", Amount: dec(209000), Color: "blue"},
			{Category: "F&B Revenue", Amount: dec(133000), Color: "green"},
			{Category: "Beach Activities", Amount: dec(26600), Color: "yellow"},
			{Category: "Water Sports", Amount: dec(11400), Color: "cyan"},
		},
		performance: []Performance{
			{Resort: "Diu - Ghogla", Manager: "S. Patel", Revenue: dec(380000), Occupancy: dec(85), RevPAR: dec(3440), Status: "Active"},
		},
	},
	defaultLocation: {
		stats: Stats{
			TotalRevenue:         dec(510000),
			TotalExpenses:        dec(357000),
			GrossOperatingProfit: dec(153000),
			AverageOccupancy:     dec(85),
			TotalEmployees:       156,
			ActiveProjects:       8,
			AttendanceRate:       decf(94.5),
			GOPScore:             decf(78.2),
			DailyTasks:           23,
		},
		weeklyRevenue: week(18750, 14062, 21875, 28125, 23437, 29687, 25000),
		weeklyRevPAR: []RevPARPoint{
			{Day: "Mon", RevPAR: dec(3800)}, {Day: "Tue", RevPAR: dec(4200)},
			{Day: "Wed", RevPAR: dec(3900)}, {Day: "Thu", RevPAR: dec(4500)},
			{Day: "Fri", RevPAR: dec(4800)}, {Day: "Sat", RevPAR: dec(5200)},
			{Day: "Sun", RevPAR: dec(4600)},
		},
		occupancy: Occupancy{Current: dec(85), Target: dec(90), Trend: "+5.2%"},
		deptExpenses: []DepartmentExpense{
			{Department: "Housekeeping", Amount: dec(100000)},
			{Department: "Food & Beverage", Amount: dec(130000)},
			{Department: "Front Office", Amount: dec(62000)},
			{Department: "Maintenance", Amount: dec(65000)},
		},
		mixCategories: []MixSlice{
			{Category: "Room Revenue", Amount: dec(331500), Color: "blue"},
			{Category: "F&B Revenue", Amount: dec(127500), Color: "green"},
			{Category: "Spa & Others", Amount: dec(51000), Color: "yellow"},
		},
		performance: []Performance{
			{Resort: "Resort", Manager: "Manager", Revenue: dec(125000), Occupancy: dec(85), RevPAR: dec(4250), Status: "Active"},
		},
	},
}

func datasetFor(location string) locationData {
	if d, ok := datasets[location]; ok {
		return d
	}
	return datasets[defaultLocation]
}
