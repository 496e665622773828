package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"qr-dine/controllers"
	"qr-dine/middleware"
)

type Controllers struct {
	Auth  *controllers.AuthController
	Menu  *controllers.MenuController
	Cart  *controllers.CartController
	Order *controllers.OrderController
	Table *controllers.TableController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", ctrl.Auth.Register)
	router.POST("/auth/login", ctrl.Auth.Login)

	router.GET("/menu/items", ctrl.Menu.GetMenuItems)
	router.GET("/menu/categories", ctrl.Menu.GetCategories)
	router.GET("/tables/:number", ctrl.Table.GetTableByNumber)

	cart := router.Group("/cart")
	{
		cart.GET("", ctrl.Cart.GetCart)
		cart.DELETE("", ctrl.Cart.ClearCart)
		cart.POST("/items", ctrl.Cart.AddItem)
		cart.PATCH("/items/:id", ctrl.Cart.UpdateQuantity)
		cart.DELETE("/items/:id", ctrl.Cart.RemoveItem)
		cart.PUT("/table", ctrl.Cart.SetTableNumber)
		cart.POST("/checkout", ctrl.Cart.Checkout)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", ctrl.Auth.GetProfile)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/menu/items", ctrl.Menu.CreateMenuItem)
		admin.PATCH("/menu/items/:id", ctrl.Menu.UpdateMenuItem)
		admin.DELETE("/menu/items/:id", ctrl.Menu.DeleteMenuItem)

		admin.POST("/menu/categories", ctrl.Menu.CreateCategory)
		admin.PATCH("/menu/categories/:id", ctrl.Menu.UpdateCategory)
		admin.DELETE("/menu/categories/:id", ctrl.Menu.DeleteCategory)

		admin.GET("/orders", ctrl.Order.GetAllOrders)
		admin.GET("/orders/:id", ctrl.Order.GetOrderByID)
		admin.PATCH("/orders/:id/status", ctrl.Order.UpdateOrderStatus)

		admin.GET("/tables", ctrl.Table.GetTables)
		admin.POST("/tables", ctrl.Table.AddTable)
		admin.DELETE("/tables/:id", ctrl.Table.RemoveTable)
	}
}
