package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"qr-dine/config"
	"qr-dine/controllers"
	"qr-dine/middleware"
	"qr-dine/models"
	"qr-dine/realtime"
	"qr-dine/repositories"
	"qr-dine/routes"
	"qr-dine/stores"
)

var (
	router *gin.Engine
	once   sync.Once
)

// initApp wires the application once per serverless instance. The realtime
// subscription is not started here: function instances are short-lived, so
// the dashboard relies on refresh=true instead.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()

		pool, err := config.ConnectDB()
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		redisClient := config.ConnectRedis()

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
		}

		menuStore := stores.NewMenuStore(repositories.NewMenuRepository(pool), uploader)
		orderStore := stores.NewOrderStore(repositories.NewOrderRepository(pool, publisher), feed, nil)
		tableStore := stores.NewTableStore()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, routes.Controllers{
			Auth:  controllers.NewAuthController(pool),
			Menu:  controllers.NewMenuController(menuStore),
			Cart:  controllers.NewCartController(persister, menuStore, orderStore),
			Order: controllers.NewOrderController(orderStore),
			Table: controllers.NewTableController(tableStore),
		})
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
