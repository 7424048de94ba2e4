package handler

import (
	"net/http"
	"time"

	"github.com/joaodevsafe/service-sales-buddy/internal/models"
	"github.com/joaodevsafe/service-sales-buddy/internal/report"
	"github.com/joaodevsafe/service-sales-buddy/internal/store"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Store *store.Store
}

// GetDashboardStats returns the landing-screen summary: today's activity,
// pending repairs and low-stock alerts.
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	state := h.Store.State()
	now := time.Now()
	today := report.Range{Start: now, End: now}

	var todayServices, pendingServices int
	for _, order := range state.ServiceOrders {
		if today.Contains(order.CreatedAt) {
			todayServices++
		}
		if order.Status == models.StatusAnalyzing || order.Status == models.StatusRepairing {
			pendingServices++
		}
	}

	var todaySales int
	var todayRevenue float64
	for _, sale := range state.Sales {
		if today.Contains(sale.CreatedAt) {
			todaySales++
			todayRevenue += sale.Total
		}
	}

	var lowStock int
	for _, product := range state.Products {
		if product.LowStock() {
			lowStock++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_customers":  len(state.Customers),
		"total_products":   len(state.Products),
		"pending_services": pendingServices,
		"today_services":   todayServices,
		"today_sales":      todaySales,
		"today_revenue":    todayRevenue,
		"low_stock":        lowStock,
	})
}
