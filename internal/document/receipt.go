// Package document renders the plain-text documents handed to the customer:
// the sales receipt, the service-order slip and the management report. Output
// is fixed-width text with "=== SECTION ===" headers, meant for printing, not
// for machines.
package document

import (
	"fmt"
	"strings"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
)

const dateTimeLayout = "02/01/2006 15:04"

// SaleReceipt renders the receipt for one recorded sale.
func SaleReceipt(sale models.Sale, company models.CompanySettings) string {
	var b strings.Builder

	if company.Name != "" {
		fmt.Fprintf(&b, "%s\n\n", company.Name)
	}
	b.WriteString("=== SALES RECEIPT ===\n\n")
	fmt.Fprintf(&b, "Date: %s\n", sale.CreatedAt.Format(dateTimeLayout))
	if sale.CustomerName != "" {
		fmt.Fprintf(&b, "Customer: %s\n", sale.CustomerName)
	}
	fmt.Fprintf(&b, "Payment: %s\n\n", sale.PaymentMethod.Label())

	b.WriteString("=== ITEMS ===\n")
	for _, item := range sale.Items {
		fmt.Fprintf(&b, "%s\n", item.ProductName)
		fmt.Fprintf(&b, "  Qty: %d x R$ %.2f\n", item.Quantity, item.UnitPrice)
		fmt.Fprintf(&b, "  Total: R$ %.2f\n\n", item.Total)
	}

	b.WriteString("==================\n")
	fmt.Fprintf(&b, "TOTAL: R$ %.2f\n", sale.Total)
	b.WriteString("==================\n\n")
	b.WriteString("Thank you for your business!")

	return b.String()
}
