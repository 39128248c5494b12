// Savoria Admin Backend
//
// Backend for the Savoria restaurant group: the staff dashboard (menus,
// reservations, transactions, analytics) plus the small unauthenticated
// surface the customer site and QR menus read from.
//
// @title Savoria Admin API
// @version 1.0
// @description Admin dashboard and public site API for the Savoria restaurant group
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Savoria-Hospitality/savoria-admin-backend/config"
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/menu_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/controllers/admin/qrcode_controller"
	"github.com/Savoria-Hospitality/savoria-admin-backend/middleware"
	"github.com/Savoria-Hospitality/savoria-admin-backend/routes/admin_routes"
	"github.com/Savoria-Hospitality/savoria-admin-backend/routes/public_routes"
	"github.com/Savoria-Hospitality/savoria-admin-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection (rate limiting)
	config.ConnectRedis()

	// Initialize Cloudinary service
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := menu_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Initialize QR service with the public menu base URL
	qrBaseURL := os.Getenv("QR_BASE_URL")
	if qrBaseURL == "" {
		qrBaseURL = "http://localhost:3000"
	}
	if err := qrcode_controller.InitQRService(qrBaseURL); err != nil {
		log.Fatalf("Failed to initialize QR service: %v", err)
	}

	// ✅ Configure CORS properly for all content types including PDFs
	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()

	// ✅ Use ONLY the cors.New() middleware - single CORS config
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// ✅ Setup Admin Routes (at /api/v1/admin prefix)
	admin_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	// Dashboard routes (at /api/v1/admin prefix, rate limited)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	admin_routes.SetupMenuRoutes(adminGroup)
	admin_routes.SetupTransactionRoutes(adminGroup)
	admin_routes.SetupReservationRoutes(adminGroup)
	admin_routes.SetupContentRoutes(adminGroup)
	admin_routes.SetupBranchRoutes(adminGroup)

	// Public site + QR menu (no rate limiter)
	public_routes.SetupPublicRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
