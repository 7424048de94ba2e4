package main

import (
	"log"
	"time"

	"github.com/joaodevsafe/service-sales-buddy/config"
	"github.com/joaodevsafe/service-sales-buddy/internal/handler"
	"github.com/joaodevsafe/service-sales-buddy/internal/logger"
	"github.com/joaodevsafe/service-sales-buddy/internal/middleware"
	"github.com/joaodevsafe/service-sales-buddy/internal/settings"
	"github.com/joaodevsafe/service-sales-buddy/internal/store"
	"github.com/joaodevsafe/service-sales-buddy/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Initialize Logger
	if err := logger.Init(config.AppConfig.IsDevelopment()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zlog := logger.L()

	// 3. Open Storage
	var (
		st  storage.Store
		err error
	)
	switch config.AppConfig.Storage.Driver {
	case "sqlite":
		st, err = storage.NewSQLiteStore(config.AppConfig.Storage.SQLitePath)
	default:
		st, err = storage.NewFileStore(config.AppConfig.Storage.DataDir)
	}
	if err != nil {
		zlog.Fatal("failed to open storage", zap.Error(err))
	}

	// 4. Load Application State
	appStore := store.New(st, zlog)
	settingsSvc := settings.NewService(st, zlog)

	// 5. Initialize Router
	if !config.AppConfig.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog))

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 6. Setup Routes
	customerHandler := &handler.CustomerHandler{Store: appStore}
	customerRoutes := r.Group("/api/v1/customers")
	{
		customerRoutes.GET("", customerHandler.ListCustomers)
		customerRoutes.POST("", customerHandler.CreateCustomer)
		customerRoutes.PUT("/:id", customerHandler.UpdateCustomer)
	}

	serviceHandler := &handler.ServiceHandler{Store: appStore, Settings: settingsSvc}
	serviceRoutes := r.Group("/api/v1/services")
	{
		serviceRoutes.GET("", serviceHandler.ListServiceOrders)
		serviceRoutes.POST("", serviceHandler.CreateServiceOrder)
		serviceRoutes.PUT("/:id", serviceHandler.UpdateServiceOrder)
		serviceRoutes.GET("/:id/slip", serviceHandler.GetOrderSlip)
	}

	productHandler := &handler.ProductHandler{Store: appStore}
	productRoutes := r.Group("/api/v1/products")
	{
		productRoutes.GET("", productHandler.ListProducts)
		productRoutes.POST("", productHandler.CreateProduct)
		productRoutes.PUT("/:id", productHandler.UpdateProduct)
		productRoutes.GET("/alerts", productHandler.GetLowStockAlerts)
	}
	r.GET("/api/v1/stock-movements", productHandler.ListMovements)
	r.POST("/api/v1/stock-movements", productHandler.RegisterMovement)

	saleHandler := &handler.SaleHandler{Store: appStore, Settings: settingsSvc}
	saleRoutes := r.Group("/api/v1/sales")
	{
		saleRoutes.GET("", saleHandler.ListSales)
		saleRoutes.POST("", saleHandler.CreateSale)
		saleRoutes.GET("/:id/receipt", saleHandler.GetReceipt)
	}

	reportHandler := &handler.ReportHandler{Store: appStore}
	r.GET("/api/v1/reports", reportHandler.GetReport)
	r.GET("/api/v1/reports/document", reportHandler.GetReportDocument)

	settingsHandler := &handler.SettingsHandler{Settings: settingsSvc}
	settingsRoutes := r.Group("/api/v1/settings")
	{
		settingsRoutes.GET("/company", settingsHandler.GetCompany)
		settingsRoutes.PUT("/company", settingsHandler.UpdateCompany)
		settingsRoutes.GET("/user", settingsHandler.GetUser)
		settingsRoutes.PUT("/user", settingsHandler.UpdateUser)
		settingsRoutes.GET("/system", settingsHandler.GetSystem)
		settingsRoutes.PUT("/system", settingsHandler.UpdateSystem)
	}
	r.GET("/api/v1/backup/export", settingsHandler.ExportBackup)
	r.POST("/api/v1/backup/import", settingsHandler.ImportBackup)

	dashboardHandler := &handler.DashboardHandler{Store: appStore}
	r.GET("/api/v1/dashboard", dashboardHandler.GetDashboardStats)

	// 7. Start Server
	addr := ":" + config.AppConfig.Server.Port
	zlog.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
