// Package report derives aggregate metrics from the application state. Every
// function here is a pure projection: absence of data in the requested range
// yields zero-valued metrics and empty lists, never an error.
package report

import (
	"sort"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
)

const topLimit = 10

type TopProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

type TopCustomer struct {
	CustomerID string  `json:"customerId"`
	Name       string  `json:"name"`
	Sales      int     `json:"sales"`
	Revenue    float64 `json:"revenue"`
}

type Report struct {
	TotalRevenue   float64                        `json:"totalRevenue"`
	TotalSales     int                            `json:"totalSales"`
	SalesRevenue   float64                        `json:"salesRevenue"`
	AverageTicket  float64                        `json:"averageTicket"`
	PaymentMethods map[models.PaymentMethod]int   `json:"paymentMethods"`
	TotalServices  int                            `json:"totalServices"`
	ServiceRevenue float64                        `json:"serviceRevenue"`
	StatusCounts   map[models.ServiceStatus]int   `json:"statusCounts"`
	TopProducts    []TopProduct                   `json:"topProducts"`
	TopCustomers   []TopCustomer                  `json:"topCustomers"`
	LowStock       []models.Product               `json:"lowStock"`
}

// Generate aggregates sales and service orders whose createdAt falls inside
// the range. Low-stock products are reported over the whole catalog; they are
// not a range-dependent metric.
func Generate(state *models.AppState, rng Range) Report {
	rep := Report{
		PaymentMethods: map[models.PaymentMethod]int{},
		StatusCounts:   map[models.ServiceStatus]int{},
		TopProducts:    []TopProduct{},
		TopCustomers:   []TopCustomer{},
		LowStock:       []models.Product{},
	}

	var sales []models.Sale
	for _, sale := range state.Sales {
		if rng.Contains(sale.CreatedAt) {
			sales = append(sales, sale)
		}
	}

	for _, sale := range sales {
		rep.SalesRevenue += sale.Total
		rep.PaymentMethods[sale.PaymentMethod]++
	}
	rep.TotalSales = len(sales)
	if rep.TotalSales > 0 {
		rep.AverageTicket = rep.SalesRevenue / float64(rep.TotalSales)
	}

	for _, order := range state.ServiceOrders {
		if !rng.Contains(order.CreatedAt) {
			continue
		}
		rep.TotalServices++
		rep.StatusCounts[order.Status]++
		rep.ServiceRevenue += order.FinalCost
	}

	rep.TotalRevenue = rep.SalesRevenue + rep.ServiceRevenue
	rep.TopProducts = topProducts(sales)
	rep.TopCustomers = topCustomers(sales)

	for _, product := range state.Products {
		if product.LowStock() {
			rep.LowStock = append(rep.LowStock, product)
		}
	}

	return rep
}

// topProducts ranks by total quantity sold, descending. Ties keep encounter
// order (the order products first appear across the filtered sales).
func topProducts(sales []models.Sale) []TopProduct {
	index := map[string]int{}
	ranked := []TopProduct{}

	for _, sale := range sales {
		for _, item := range sale.Items {
			i, seen := index[item.ProductID]
			if !seen {
				index[item.ProductID] = len(ranked)
				ranked = append(ranked, TopProduct{ProductID: item.ProductID, Name: item.ProductName})
				i = index[item.ProductID]
			}
			ranked[i].Quantity += item.Quantity
			ranked[i].Revenue += item.Total
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Quantity > ranked[b].Quantity
	})
	if len(ranked) > topLimit {
		ranked = ranked[:topLimit]
	}
	return ranked
}

// topCustomers ranks by total revenue, descending, same tie-break. Anonymous
// sales (no customer attached) are skipped.
func topCustomers(sales []models.Sale) []TopCustomer {
	index := map[string]int{}
	ranked := []TopCustomer{}

	for _, sale := range sales {
		if sale.CustomerID == "" || sale.CustomerName == "" {
			continue
		}
		i, seen := index[sale.CustomerID]
		if !seen {
			index[sale.CustomerID] = len(ranked)
			ranked = append(ranked, TopCustomer{CustomerID: sale.CustomerID, Name: sale.CustomerName})
			i = index[sale.CustomerID]
		}
		ranked[i].Sales++
		ranked[i].Revenue += sale.Total
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Revenue > ranked[b].Revenue
	})
	if len(ranked) > topLimit {
		ranked = ranked[:topLimit]
	}
	return ranked
}
