package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pharma-pos/internal/handler"
	"go-pharma-pos/internal/middleware"
	"go-pharma-pos/internal/model"
	"go-pharma-pos/internal/repository"
	"go-pharma-pos/internal/service"
	"go-pharma-pos/internal/ws"
	"go-pharma-pos/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.User{}, &model.Permission{},
		&model.Brand{}, &model.Category{}, &model.Generic{}, &model.Shelve{},
		&model.Product{}, &model.Stock{},
		&model.Customer{}, &model.Supplier{},
		&model.Purchase{}, &model.Order{}, &model.OrderItem{},
		&model.Payment{}, &model.Refund{},
		&model.Expense{}, &model.IDSequence{},
	); err != nil {
		log.Fatal("Auto migration failed: ", err)
	}

	// 3. Seed default permissions and the super admin account
	seedPermissionsAndSuperAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	permissionRepo := repository.NewPermissionRepo(db)
	brandRepo := repository.NewBrandRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	genericRepo := repository.NewGenericRepo(db)
	shelveRepo := repository.NewShelveRepo(db)
	productRepo := repository.NewProductRepo(db)
	stockRepo := repository.NewStockRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	refundRepo := repository.NewRefundRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	sequenceRepo := repository.NewSequenceRepo(db)
	reportRepo := repository.NewReportRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, permissionRepo)
	catalogService := service.NewCatalogService(brandRepo, categoryRepo, genericRepo, shelveRepo)
	productService := service.NewProductService(productRepo, categoryRepo, shelveRepo, stockRepo, sequenceRepo, db)
	stockService := service.NewStockService(stockRepo)
	customerService := service.NewCustomerService(customerRepo, sequenceRepo, db)
	supplierService := service.NewSupplierService(supplierRepo, brandRepo, sequenceRepo, db)
	purchaseService := service.NewPurchaseService(purchaseRepo, supplierRepo, productRepo, stockRepo, paymentRepo, refundRepo, sequenceRepo, db, wsHub)
	orderService := service.NewOrderService(orderRepo, customerRepo, productRepo, stockRepo, paymentRepo, sequenceRepo, db, wsHub)
	refundService := service.NewRefundService(orderRepo, refundRepo, stockRepo, db, wsHub)
	paymentService := service.NewPaymentService(paymentRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	dashboardService := service.NewDashboardService(reportRepo, expenseRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	productHandler := handler.NewProductHandler(productService)
	stockHandler := handler.NewStockHandler(stockService)
	customerHandler := handler.NewCustomerHandler(customerService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	orderHandler := handler.NewOrderHandler(orderService)
	refundHandler := handler.NewRefundHandler(refundService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Pharma POS v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	protected.Get("/auth/profile", authHandler.Profile)
	protected.Post("/auth/change-password", authHandler.ChangePassword)
	protected.Post("/auth/reset-password/:id",
		middleware.RequireRole(model.RoleAdmin), authHandler.ResetPassword)

	// Users & permissions (admin and above)
	users := protected.Group("/users", middleware.RequireRole(model.RoleAdmin))
	users.Post("/", userHandler.CreateUser)
	users.Get("/", userHandler.GetUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)
	users.Put("/:id/permissions", userHandler.AssignPermissions)

	protected.Get("/permissions", userHandler.GetPermissions)
	protected.Post("/permissions", middleware.RequireRole(model.RoleAdmin), userHandler.CreatePermission)
	protected.Delete("/permissions/:id", middleware.RequireRole(model.RoleAdmin), userHandler.DeletePermission)

	// Catalog lookups
	protected.Post("/brands", catalogHandler.CreateBrand)
	protected.Get("/brands", catalogHandler.GetBrands)
	protected.Put("/brands/:id", catalogHandler.UpdateBrand)
	protected.Delete("/brands/:id", catalogHandler.DeleteBrand)

	protected.Post("/categories", catalogHandler.CreateCategory)
	protected.Get("/categories", catalogHandler.GetCategories)
	protected.Put("/categories/:id", catalogHandler.UpdateCategory)
	protected.Delete("/categories/:id", catalogHandler.DeleteCategory)

	protected.Post("/generics", catalogHandler.CreateGeneric)
	protected.Get("/generics", catalogHandler.GetGenerics)
	protected.Put("/generics/:id", catalogHandler.UpdateGeneric)
	protected.Delete("/generics/:id", catalogHandler.DeleteGeneric)

	protected.Post("/shelves", catalogHandler.CreateShelve)
	protected.Get("/shelves", catalogHandler.GetShelves)
	protected.Put("/shelves/:id", catalogHandler.UpdateShelve)
	protected.Delete("/shelves/:id", catalogHandler.DeleteShelve)

	// Products
	protected.Post("/products", middleware.RequirePermission(model.PermCreateProduct), productHandler.CreateProduct)
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Put("/products/:id", middleware.RequirePermission(model.PermCreateProduct), productHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequirePermission(model.PermCreateProduct), productHandler.DeleteProduct)

	// Stocks
	protected.Get("/stocks", stockHandler.GetStocks)
	protected.Get("/stocks/low", stockHandler.GetLowStocks)
	protected.Get("/stocks/product/:productId", stockHandler.GetStockByProduct)
	protected.Get("/stocks/:id", stockHandler.GetStock)
	protected.Put("/stocks/:id", stockHandler.UpdateStock)

	// Customers & suppliers
	protected.Post("/customers", customerHandler.CreateCustomer)
	protected.Get("/customers", customerHandler.GetCustomers)
	protected.Get("/customers/:id", customerHandler.GetCustomer)
	protected.Put("/customers/:id", customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", customerHandler.DeleteCustomer)

	protected.Post("/suppliers", supplierHandler.CreateSupplier)
	protected.Get("/suppliers", supplierHandler.GetSuppliers)
	protected.Get("/suppliers/:id", supplierHandler.GetSupplier)
	protected.Put("/suppliers/:id", supplierHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", supplierHandler.DeleteSupplier)

	// Purchases
	protected.Post("/purchases", middleware.RequirePermission(model.PermCreatePurchase), purchaseHandler.CreatePurchase)
	protected.Get("/purchases", purchaseHandler.GetPurchases)
	protected.Get("/purchases/:billid", purchaseHandler.GetPurchase)
	protected.Put("/purchases/:billid", purchaseHandler.UpdatePurchase)
	protected.Delete("/purchases/:billid", middleware.RequireRole(model.RoleAdmin), purchaseHandler.DeletePurchase)
	protected.Post("/purchases/:billid/due-payment", purchaseHandler.DuePayment)
	protected.Post("/purchases/:billid/refund", middleware.RequirePermission(model.PermRefundPurchase), purchaseHandler.RefundPurchase)

	// Orders (sales)
	protected.Post("/orders", middleware.RequirePermission(model.PermCreateSell), orderHandler.CreateOrder)
	protected.Get("/orders", orderHandler.GetOrders)
	protected.Get("/orders/:billid", orderHandler.GetOrder)
	protected.Get("/orders/:billid/items", orderHandler.GetOrderItems)
	protected.Post("/orders/:billid/due-payment", orderHandler.DuePayment)
	protected.Post("/orders/:billid/refund", middleware.RequirePermission(model.PermRefundSell), refundHandler.CreateOrderRefund)

	// Refund & payment logs
	protected.Get("/refunds", refundHandler.GetRefunds)
	protected.Get("/refunds/totals", refundHandler.GetRefundTotals)
	protected.Get("/refunds/:id", refundHandler.GetRefund)
	protected.Get("/payments", paymentHandler.GetPayments)
	protected.Get("/payments/:id", paymentHandler.GetPayment)

	// Expenses (account admin and above)
	expenses := protected.Group("/expenses", middleware.RequireRole(model.RoleAdmin, model.RoleAccountAdmin))
	expenses.Post("/", expenseHandler.CreateExpense)
	expenses.Get("/", expenseHandler.GetExpenses)
	expenses.Get("/:id", expenseHandler.GetExpense)
	expenses.Put("/:id", expenseHandler.UpdateExpense)
	expenses.Delete("/:id", expenseHandler.DeleteExpense)

	// Dashboard
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)
	protected.Get("/dashboard/stock-movement", dashboardHandler.GetStockMovement)
	protected.Get("/dashboard/financial-summary", dashboardHandler.GetFinancialSummary)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedPermissionsAndSuperAdmin creates the default permission codes and the
// bootstrap super admin account if they don't exist
func seedPermissionsAndSuperAdmin(db *gorm.DB) {
	permissionRepo := repository.NewPermissionRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := permissionRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed permissions: %v", err)
	}

	email := os.Getenv("SUPER_ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	allPermissions, _ := permissionRepo.FindAll()

	admin := &model.User{
		Email:       email,
		Name:        "Super Administrator",
		Role:        model.RoleSuperAdmin,
		Status:      model.StatusActive,
		Permissions: allPermissions,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	password := os.Getenv("SUPER_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash super admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create super admin: %v", err)
	} else {
		log.Printf("✅ Super admin created: %s", email)
	}
}
