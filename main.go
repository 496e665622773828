package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"qr-dine/config"
	"qr-dine/controllers"
	_ "qr-dine/docs"
	"qr-dine/middleware"
	"qr-dine/models"
	"qr-dine/realtime"
	"qr-dine/repositories"
	"qr-dine/routes"
	"qr-dine/stores"
)

func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	pool, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	redisClient := config.ConnectRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	var feed realtime.Feed
	var publisher realtime.Publisher
	var persister stores.CartPersister
	if redisClient != nil {
		redisFeed := realtime.NewRedisFeed(redisClient)
		feed = redisFeed
		publisher = redisFeed
		persister = repositories.NewCartRepository(redisClient)
	}

	var uploader stores.ImageUploader
	if cld, err := models.NewCloudinaryService(); err == nil {
		uploader = cld
	} else {
		log.Println("Image storage disabled:", err)
	}

	var notifier stores.OrderNotifier
	if mailer, err := models.NewEmailService(config.AppConfig.StaffEmail); err == nil {
		notifier = mailer
	} else {
		log.Println("Order email notifications disabled:", err)
	}

	menuStore := stores.NewMenuStore(repositories.NewMenuRepository(pool), uploader)
	orderStore := stores.NewOrderStore(repositories.NewOrderRepository(pool, publisher), feed, notifier)
	tableStore := stores.NewTableStore()

	ctx := context.Background()
	if err := menuStore.FetchMenuItems(ctx); err != nil {
		log.Println("Initial menu fetch failed:", err)
	}
	if err := menuStore.FetchCategories(ctx); err != nil {
		log.Println("Initial category fetch failed:", err)
	}
	if err := orderStore.FetchOrders(ctx); err != nil {
		log.Println("Initial order fetch failed:", err)
	}
	if err := orderStore.StartRealtimeSubscription(ctx); err != nil {
		log.Println("Failed to start order subscription:", err)
	}
	defer orderStore.StopRealtimeSubscription()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, routes.Controllers{
		Auth:  controllers.NewAuthController(pool),
		Menu:  controllers.NewMenuController(menuStore),
		Cart:  controllers.NewCartController(persister, menuStore, orderStore),
		Order: controllers.NewOrderController(orderStore),
		Table: controllers.NewTableController(tableStore),
	})

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
