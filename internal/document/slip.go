package document

import (
	"fmt"
	"strings"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
)

// OrderNumber is the short human-facing number printed on the slip: the last
// six characters of the order id, uppercased.
func OrderNumber(id string) string {
	if len(id) > 6 {
		id = id[len(id)-6:]
	}
	return strings.ToUpper(id)
}

// ServiceOrderSlip renders the printable slip for one repair order.
func ServiceOrderSlip(order models.ServiceOrder, company models.CompanySettings, warrantyDays int) string {
	var b strings.Builder

	b.WriteString("=== SERVICE ORDER ===\n")
	fmt.Fprintf(&b, "No: %s\n\n", OrderNumber(order.ID))

	if company.Name != "" {
		fmt.Fprintf(&b, "%s\n", company.Name)
	}
	if company.Address != "" {
		fmt.Fprintf(&b, "%s\n", company.Address)
	}
	if company.Phone != "" {
		fmt.Fprintf(&b, "Tel: %s\n", company.Phone)
	}
	if company.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", company.Email)
	}
	if company.CNPJ != "" {
		fmt.Fprintf(&b, "CNPJ: %s\n", company.CNPJ)
	}
	b.WriteString("\n")

	b.WriteString("=== CUSTOMER ===\n")
	fmt.Fprintf(&b, "Name: %s\n\n", order.CustomerName)

	b.WriteString("=== SERVICE ===\n")
	fmt.Fprintf(&b, "Device: %s\n", order.Device)
	fmt.Fprintf(&b, "Issue: %s\n", order.Issue)
	fmt.Fprintf(&b, "Status: %s\n", order.Status.Label())
	fmt.Fprintf(&b, "Received: %s\n", order.CreatedAt.Format(dateTimeLayout))
	if order.CompletedAt != nil {
		fmt.Fprintf(&b, "Completed: %s\n", order.CompletedAt.Format(dateTimeLayout))
	}
	if order.EstimatedCost > 0 {
		fmt.Fprintf(&b, "Estimated Cost: R$ %.2f\n", order.EstimatedCost)
	}
	if order.FinalCost > 0 {
		fmt.Fprintf(&b, "Final Cost: R$ %.2f\n", order.FinalCost)
	}

	if order.Notes != "" {
		b.WriteString("\n=== NOTES ===\n")
		fmt.Fprintf(&b, "%s\n", order.Notes)
	}

	if warrantyDays > 0 {
		fmt.Fprintf(&b, "\nWarranty: %d days from completion.", warrantyDays)
	}

	return b.String()
}
