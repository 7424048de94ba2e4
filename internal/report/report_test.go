package report

import (
	"testing"
	"time"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
)

var noon = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestPeriodResolve(t *testing.T) {
	tests := []struct {
		period     Period
		start, end time.Time
	}{
		{PeriodToday, noon, noon},
		{PeriodWeek, noon.AddDate(0, 0, -7), noon},
		{PeriodMonth, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		rng := tt.period.Resolve(noon, time.Time{}, time.Time{})
		if !rng.Start.Equal(tt.start) || !rng.End.Equal(tt.end) {
			t.Fatalf("%s: got [%v, %v], want [%v, %v]", tt.period, rng.Start, rng.End, tt.start, tt.end)
		}
	}
}

func TestPeriodResolve_CustomDefaultsToTrailing30Days(t *testing.T) {
	rng := PeriodCustom.Resolve(noon, time.Time{}, time.Time{})
	if !rng.Start.Equal(noon.AddDate(0, 0, -30)) || !rng.End.Equal(noon) {
		t.Fatalf("custom defaults wrong: [%v, %v]", rng.Start, rng.End)
	}

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	rng = PeriodCustom.Resolve(noon, start, end)
	if !rng.Start.Equal(start) || !rng.End.Equal(end) {
		t.Fatalf("explicit custom range ignored: [%v, %v]", rng.Start, rng.End)
	}
}

func TestRangeContains_BoundaryDays(t *testing.T) {
	rng := Range{
		Start: time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		at   time.Time
		want bool
	}{
		// Any time on a boundary day counts, regardless of the range's own time-of-day.
		{time.Date(2024, 6, 10, 0, 0, 1, 0, time.UTC), true},
		{time.Date(2024, 6, 12, 23, 59, 59, 0, time.UTC), true},
		{time.Date(2024, 6, 11, 3, 0, 0, 0, time.UTC), true},
		{time.Date(2024, 6, 9, 23, 59, 59, 0, time.UTC), false},
		{time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		if got := rng.Contains(tt.at); got != tt.want {
			t.Fatalf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func sale(at time.Time, customerID, customerName string, total float64, method models.PaymentMethod, items ...models.SaleItem) models.Sale {
	return models.Sale{
		ID:            "sale-" + at.Format("020115.04.05"),
		CustomerID:    customerID,
		CustomerName:  customerName,
		Items:         items,
		Total:         total,
		PaymentMethod: method,
		CreatedAt:     at,
	}
}

func TestGenerate_EmptyRange(t *testing.T) {
	state := models.EmptyState()
	rng := PeriodToday.Resolve(noon, time.Time{}, time.Time{})

	rep := Generate(state, rng)
	if rep.TotalRevenue != 0 || rep.TotalSales != 0 {
		t.Fatalf("empty state should produce zero metrics: %+v", rep)
	}
	if len(rep.TopProducts) != 0 || len(rep.TopCustomers) != 0 {
		t.Fatalf("empty state should produce empty rankings")
	}
	if rep.TopProducts == nil || rep.TopCustomers == nil || rep.LowStock == nil {
		t.Fatalf("rankings must be non-nil")
	}
}

func TestGenerate_Metrics(t *testing.T) {
	inRange := noon
	outOfRange := noon.AddDate(0, 0, -3)

	state := models.EmptyState()
	state.Sales = []models.Sale{
		sale(inRange, "c1", "Ana", 100, models.PaymentCash,
			models.SaleItem{ProductID: "p1", ProductName: "Screen", Quantity: 2, UnitPrice: 50, Total: 100}),
		sale(inRange.Add(time.Hour), "c2", "Bob", 40, models.PaymentPix,
			models.SaleItem{ProductID: "p2", ProductName: "Cable", Quantity: 4, UnitPrice: 10, Total: 40}),
		sale(outOfRange, "c1", "Ana", 999, models.PaymentCash),
	}
	state.ServiceOrders = []models.ServiceOrder{
		{ID: "o1", Status: models.StatusCompleted, FinalCost: 80, CreatedAt: inRange},
		{ID: "o2", Status: models.StatusAnalyzing, CreatedAt: inRange},
		{ID: "o3", Status: models.StatusCompleted, FinalCost: 500, CreatedAt: outOfRange},
	}
	state.Products = []models.Product{
		{ID: "p1", Name: "Screen", Stock: 2, MinStock: 5},
		{ID: "p2", Name: "Cable", Stock: 50, MinStock: 5},
	}

	rep := Generate(state, Range{Start: noon, End: noon})

	if rep.TotalSales != 2 || rep.SalesRevenue != 140 {
		t.Fatalf("sales metrics wrong: %+v", rep)
	}
	if rep.AverageTicket != 70 {
		t.Fatalf("average ticket = %v, want 70", rep.AverageTicket)
	}
	if rep.PaymentMethods[models.PaymentCash] != 1 || rep.PaymentMethods[models.PaymentPix] != 1 {
		t.Fatalf("payment tallies wrong: %+v", rep.PaymentMethods)
	}
	if rep.TotalServices != 2 || rep.ServiceRevenue != 80 {
		t.Fatalf("service metrics wrong: services=%d revenue=%v", rep.TotalServices, rep.ServiceRevenue)
	}
	if rep.StatusCounts[models.StatusCompleted] != 1 || rep.StatusCounts[models.StatusAnalyzing] != 1 {
		t.Fatalf("status counts wrong: %+v", rep.StatusCounts)
	}
	if rep.TotalRevenue != 220 {
		t.Fatalf("total revenue = %v, want 220", rep.TotalRevenue)
	}
	if len(rep.LowStock) != 1 || rep.LowStock[0].ID != "p1" {
		t.Fatalf("low stock wrong: %+v", rep.LowStock)
	}
}

func TestTopProducts_RankingAndTies(t *testing.T) {
	sales := []models.Sale{
		sale(noon, "", "", 0, models.PaymentCash,
			models.SaleItem{ProductID: "p1", ProductName: "First", Quantity: 3, Total: 30},
			models.SaleItem{ProductID: "p2", ProductName: "Second", Quantity: 5, Total: 25}),
		sale(noon, "", "", 0, models.PaymentCash,
			models.SaleItem{ProductID: "p3", ProductName: "Third", Quantity: 3, Total: 90}),
	}

	top := topProducts(sales)
	if len(top) != 3 {
		t.Fatalf("expected 3 ranked products, got %d", len(top))
	}
	if top[0].ProductID != "p2" {
		t.Fatalf("highest quantity first, got %s", top[0].ProductID)
	}
	// p1 and p3 tie on quantity; p1 was encountered first.
	if top[1].ProductID != "p1" || top[2].ProductID != "p3" {
		t.Fatalf("tie not broken by encounter order: %s, %s", top[1].ProductID, top[2].ProductID)
	}
}

func TestTopCustomers_CapAndAnonymousSkipped(t *testing.T) {
	var sales []models.Sale
	for i := 0; i < 12; i++ {
		id := string(rune('a' + i))
		sales = append(sales, sale(noon, "c-"+id, "Customer "+id, float64(100-i), models.PaymentCash))
	}
	// Anonymous sale must be skipped.
	sales = append(sales, sale(noon, "", "", 10000, models.PaymentCash))

	top := topCustomers(sales)
	if len(top) != 10 {
		t.Fatalf("expected cap at 10, got %d", len(top))
	}
	if top[0].CustomerID != "c-a" {
		t.Fatalf("highest revenue first, got %s", top[0].CustomerID)
	}
	for _, entry := range top {
		if entry.CustomerID == "" {
			t.Fatalf("anonymous sale ranked")
		}
	}
}
