// @title           RFQ Portal API
// @version         1.0
// @description     RFQ viewer backend - snapshot loading, filtering and document/spreadsheet exports.

// @contact.name   API Support

// @BasePath  /

// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "rfqportal/docs"
	"rfqportal/handlers"
	"rfqportal/services"
	"rfqportal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:9000",
		"http://localhost:3000",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Referer",
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS", "HEAD"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "Content-Type", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	store := storage.NewSnapshotStore()
	loader := services.NewLoaderService(store)

	// One fetch per process start. The server comes up immediately and the
	// views show the loading state until the snapshot is installed.
	go loader.Load()

	r := gin.Default()
	r.Use(cors.New(CORSConfig()))
	r.SetFuncMap(handlers.TemplateFuncMap())
	r.LoadHTMLGlob("templates/*.html")

	// ==================== 1. PAGES ====================
	r.GET("/", handlers.RFQTablePage(store))
	r.GET("/rfq/:id", handlers.RFQDetailPage(store))

	// ==================== 2. RFQ API ====================
	r.GET("/api/rfqs", handlers.GetRFQs(store))
	r.GET("/api/rfqs/:id", handlers.GetRFQByID(store))
	r.GET("/api/rfq_summary", handlers.GetRFQSummary(store))
	r.GET("/api/product_lines", handlers.GetProductLines(store))
	r.GET("/api/health", handlers.HealthCheck(store))

	// ==================== 3. EXPORTS ====================
	r.GET("/api/rfq_pdf/:id", handlers.GenerateRFQPDF(store))
	r.GET("/api/rfq_excel/:id", handlers.ExportRFQExcel(store))

	// ==================== 4. API DOCS ====================
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}
	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}
	if portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT: %d. Must be between 0 and 65535.", portInt)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("RFQ portal listening on :%s", port)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
