package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/handler"
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/middleware"
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/model"
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/repository"
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/service"
	"github.com/EliseyAgustin/Sistema-de-Inventario/internal/ws"
	"github.com/EliseyAgustin/Sistema-de-Inventario/pkg/database"

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
	if err := db.AutoMigrate(&model.User{}, &model.Category{}, &model.Product{}, &model.InventoryLog{}); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// 3. Seed default admin user and categories
	seedDefaults(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	logRepo := repository.NewInventoryLogRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	userRepo := repository.NewUserRepo(db)

	invService := service.NewInventoryService(productRepo, logRepo, categoryRepo, db, wsHub)
	dashService := service.NewDashboardService(productRepo, logRepo)
	authService := service.NewAuthService(userRepo)

	invHandler := handler.NewInventoryHandler(invService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Sistema de Inventario v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api")

	// Auth routes (login and register are public)
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Get("/profile", middleware.RequireAuth(), authHandler.Profile)

	// All inventory routes require a valid bearer token
	inventory := api.Group("/inventory", middleware.RequireAuth())

	inventory.Get("/products", invHandler.GetProducts)
	inventory.Post("/products", invHandler.CreateProduct)
	inventory.Get("/products/:id", invHandler.GetProduct)
	inventory.Put("/products/:id", invHandler.UpdateProduct)
	inventory.Delete("/products/:id", invHandler.DeleteProduct)
	inventory.Post("/products/:id/stock", invHandler.AdjustStock)
	inventory.Get("/products/:id/logs", invHandler.GetProductLogs)

	inventory.Get("/categories", invHandler.GetCategories)
	inventory.Post("/categories", invHandler.CreateCategory)
	inventory.Delete("/categories/:id", invHandler.DeleteCategory)

	inventory.Get("/dashboard", dashHandler.GetDashboard)

	// WebSocket route for live stock events
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register(c)
		defer wsHub.Unregister(c)

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

// seedDefaults creates the default admin user and starter categories if absent
func seedDefaults(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByUsername("admin"); err != nil {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123"
		}

		admin := &model.User{
			Username: "admin",
			Name:     "Administrator",
			Role:     model.RoleAdmin,
		}
		if err := admin.SetPassword(password); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}
		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("Default admin user created")
		}
	}

	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count == 0 {
		defaults := []model.Category{
			{Name: "Electronics", Description: "Electronic devices and accessories"},
			{Name: "Office Supplies", Description: "Office stationery and supplies"},
			{Name: "Furniture", Description: "Office and home furniture"},
		}
		if err := db.Create(&defaults).Error; err != nil {
			log.Printf("Warning: Failed to seed categories: %v", err)
		} else {
			log.Println("Default categories created")
		}
	}
}
