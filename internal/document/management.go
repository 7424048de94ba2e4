package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
	"github.com/joaodevsafe/service-sales-buddy/internal/report"
)

// topProductsCap limits the printed product ranking; the report itself keeps
// up to ten entries, the printed document shows five.
const topProductsCap = 5

var statusOrder = []models.ServiceStatus{
	models.StatusAnalyzing,
	models.StatusRepairing,
	models.StatusCompleted,
	models.StatusDelivered,
}

// ManagementReport renders the aggregate report for a period.
func ManagementReport(rep report.Report, periodLabel string, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("=== MANAGEMENT REPORT ===\n")
	fmt.Fprintf(&b, "Period: %s\n", periodLabel)
	fmt.Fprintf(&b, "Date: %s\n\n", generatedAt.Format(dateTimeLayout))

	b.WriteString("=== SALES ===\n")
	fmt.Fprintf(&b, "Total Sales: %d\n", rep.TotalSales)
	fmt.Fprintf(&b, "Revenue: R$ %.2f\n", rep.SalesRevenue)
	fmt.Fprintf(&b, "Average Ticket: R$ %.2f\n\n", rep.AverageTicket)

	b.WriteString("=== SERVICES ===\n")
	fmt.Fprintf(&b, "Total Services: %d\n", rep.TotalServices)
	fmt.Fprintf(&b, "Service Revenue: R$ %.2f\n", rep.ServiceRevenue)
	for _, status := range statusOrder {
		if count := rep.StatusCounts[status]; count > 0 {
			fmt.Fprintf(&b, "%s: %d\n", status.Label(), count)
		}
	}
	b.WriteString("\n")

	if len(rep.TopProducts) > 0 {
		b.WriteString("=== TOP PRODUCTS ===\n")
		top := rep.TopProducts
		if len(top) > topProductsCap {
			top = top[:topProductsCap]
		}
		for i, product := range top {
			fmt.Fprintf(&b, "%d. %s\n", i+1, product.Name)
			fmt.Fprintf(&b, "   Sold: %d | Revenue: R$ %.2f\n", product.Quantity, product.Revenue)
		}
		b.WriteString("\n")
	}

	if len(rep.LowStock) > 0 {
		b.WriteString("=== LOW STOCK ===\n")
		for _, product := range rep.LowStock {
			fmt.Fprintf(&b, "- %s: %d (min: %d)\n", product.Name, product.Stock, product.MinStock)
		}
		b.WriteString("\n")
	}

	b.WriteString("=== SUMMARY ===\n")
	fmt.Fprintf(&b, "Total Revenue: R$ %.2f\n", rep.TotalRevenue)
	fmt.Fprintf(&b, "Low Stock Products: %d\n", len(rep.LowStock))
	fmt.Fprintf(&b, "Active Customers: %d\n", len(rep.TopCustomers))

	return b.String()
}
