package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/DouglasMoraesDev/AppDelivery/internal/config"
	"github.com/DouglasMoraesDev/AppDelivery/internal/controllers"
	"github.com/DouglasMoraesDev/AppDelivery/internal/database"
	"github.com/DouglasMoraesDev/AppDelivery/internal/middleware"
	"github.com/DouglasMoraesDev/AppDelivery/internal/models"
	"github.com/DouglasMoraesDev/AppDelivery/internal/services"
	"github.com/DouglasMoraesDev/AppDelivery/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db              *gorm.DB
	configuration   *config.Config
	imageStore      storage.ImageStore
	authController  *controllers.AuthController
	categoryCtrl    controllers.CategoryController
	productCtrl     controllers.ProductController
	orderController *controllers.PublicOrderController
	configCtrl      *controllers.ConfigController
)

// @title AppDelivery API
// @version 1.0
// @description Multi-tenant restaurant ordering API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize upload storage
	setupStorage(configuration)

	// Initialize services and controllers
	setupControllers()

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf.String())
	return conf
}

// setupDatabase initializes the database connection, runs migrations and
// seeds a demo tenant when the database is empty
func setupDatabase(conf *config.Config) {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))

	// Seed only if no tenant exists yet
	var count int64
	db.Model(&models.Tenant{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
}

// setupStorage prepares the shared image upload directory
func setupStorage(conf *config.Config) {
	var err error
	imageStore, err = storage.NewDiskStore(conf.UploadDir)
	checkPanicErr(err)
}

// setupControllers wires services and controllers with their dependencies
func setupControllers() {
	production := configuration.IsProduction()

	tenantService := services.NewTenantService(db)
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	orderService := services.NewOrderService(db)
	userService := services.NewUserService(db)

	authController = controllers.NewAuthController(userService, configuration.JWTSecret)
	categoryCtrl = controllers.NewCategoryController(categoryService, tenantService, production)
	productCtrl = controllers.NewProductController(productService, tenantService, imageStore, production)
	orderController = controllers.NewPublicOrderController(orderService, production)
	configCtrl = controllers.NewConfigController(tenantService, imageStore, production)
}

// seedDatabase seeds the database with a demo tenant, an admin account
// and a small menu so a fresh deployment is immediately usable
func seedDatabase() {
	log.Info("Seeding database with initial data")

	tenant := models.Tenant{
		Slug:           "demo-restaurant",
		Status:         models.TenantStatusActive,
		BusinessName:   "Demo Restaurant",
		Email:          "admin@demo-restaurant.com",
		Phone:          "(11) 99999-9999",
		WhatsappNumber: "5511999999999",
		PrimaryColor:   "#ea580c",
		SecondaryColor: "#18181b",
		AccentColor:    "#f97316",
		TextColor:      "#ffffff",
		BgColor:        "#0a0a0a",
		IsOpen:         true,
	}
	checkPanicErr(db.Create(&tenant).Error)

	admin := models.User{
		TenantID: tenant.ID,
		Email:    "admin@demo-restaurant.com",
		Name:     "Demo Admin",
		Role:     "admin",
	}
	checkPanicErr(admin.SetPassword(config.GetEnvWithDefault("ADMIN_PASSWORD", "admin123")))
	checkPanicErr(db.Create(&admin).Error)

	burgers := models.Category{TenantID: tenant.ID, Name: "Burgers", Slug: "burgers", Order: 1, Active: true}
	drinks := models.Category{TenantID: tenant.ID, Name: "Drinks", Slug: "drinks", Order: 2, Active: true}
	checkPanicErr(db.Create(&burgers).Error)
	checkPanicErr(db.Create(&drinks).Error)

	products := []models.Product{
		{TenantID: tenant.ID, CategoryID: burgers.ID, Name: "Classic Burger", Slug: "classic-burger",
			Price: decimal.RequireFromString("29.90"), Available: true,
			Ingredients: []string{"Beef", "Cheddar", "Lettuce", "Tomato"}},
		{TenantID: tenant.ID, CategoryID: burgers.ID, Name: "Double Bacon", Slug: "double-bacon",
			Price: decimal.RequireFromString("39.90"), Available: true,
			Ingredients: []string{"Beef", "Bacon", "Cheddar"}},
		{TenantID: tenant.ID, CategoryID: drinks.ID, Name: "Lemonade", Slug: "lemonade",
			Price: decimal.RequireFromString("9.90"), Available: true},
	}
	for _, product := range products {
		checkPanicErr(db.Create(&product).Error)
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Uploaded images are served from shared storage
	router.Static("/uploads", configuration.UploadDir)

	api := router.Group("/api")
	{
		// Authentication
		api.POST("/auth/login", authController.Login)

		// Public storefront routes (no authentication)
		publicApi := api.Group("/public")
		{
			publicApi.GET("/config", configCtrl.GetPublicConfig)
			publicApi.GET("/categories", categoryCtrl.ListPublicCategories)
			publicApi.GET("/products", productCtrl.ListPublicProducts)

			publicApi.POST("/orders", orderController.CreateOrder)
			publicApi.GET("/orders/by-phone/:phone", orderController.ListOrdersByPhone)
			publicApi.GET("/orders/:orderNumber", orderController.GetOrderByNumber)

			// Tenant-addressed variants for true multi-tenant deployments
			publicApi.GET("/:tenantSlug/config", configCtrl.GetPublicConfig)
			publicApi.GET("/:tenantSlug/categories", categoryCtrl.ListPublicCategories)
			publicApi.GET("/:tenantSlug/products", productCtrl.ListPublicProducts)
			publicApi.GET("/:tenantSlug/products/:slug", productCtrl.GetPublicProductBySlug)
		}

		// Protected routes (requires JWT authentication)
		protectedApi := api.Group("")
		protectedApi.Use(middleware.JWTAuth([]byte(configuration.JWTSecret)))
		protectedApi.Use(middleware.RequireRole("admin"))
		{
			protectedApi.GET("/categories", categoryCtrl.ListCategories)
			protectedApi.POST("/categories", categoryCtrl.CreateCategory)
			protectedApi.PUT("/categories/:id", categoryCtrl.UpdateCategory)
			protectedApi.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

			protectedApi.GET("/products", productCtrl.ListProducts)
			protectedApi.GET("/products/:id", productCtrl.GetProductByID)
			protectedApi.POST("/products", productCtrl.CreateProduct)
			protectedApi.PUT("/products/:id", productCtrl.UpdateProduct)
			protectedApi.DELETE("/products/:id", productCtrl.DeleteProduct)

			protectedApi.GET("/config", configCtrl.GetConfig)
			protectedApi.PUT("/config", configCtrl.UpdateConfig)
			protectedApi.POST("/config/upload-image", configCtrl.UploadImage)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "appdelivery-api",
	})
}
