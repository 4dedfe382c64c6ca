package route

import (
	"github.com/gin-gonic/gin"

	"qrmenu/config"
	"qrmenu/controller"
	"qrmenu/database"
	"qrmenu/repository"
	"qrmenu/service"
	"qrmenu/utils"
)

// Register wires every controller onto the router. The provider may be
// disconnected at this point; handlers fetch the handle per request, so
// a connection the health probe establishes later serves requests
// without rewiring.
func Register(router *gin.Engine, provider *database.Provider, cfg *config.Config) {
	menuRepo := repository.NewMenuRepository(provider)
	menuSvc := service.NewMenuService(menuRepo)

	menu := controller.NewMenuController(menuSvc)
	health := controller.NewHealthController(provider)
	qr := controller.NewQRCodeController(cfg.Server.BaseURL)
	notifications := controller.NewNotificationController(provider)
	auth := controller.NewAuthController(provider)
	admin := controller.NewAdminController(provider)

	router.GET("/healthz", health.Healthz)
	router.GET("/restaurant/:slug", menu.GetRestaurant)
	router.GET("/menu/:slug", menu.GetMenu)
	router.GET("/notifications/:restaurant_id", notifications.List)
	router.GET("/qrcode/:slug/:lang", qr.Generate)

	router.POST("/auth/login", auth.Login)
	router.POST("/auth/refresh", auth.Refresh)

	adminGroup := router.Group("/admin")
	adminGroup.Use(utils.OwnerMiddleware())
	{
		adminGroup.POST("/categories", admin.AddCategory)
		adminGroup.POST("/items", admin.AddItem)
		adminGroup.POST("/items/translate", admin.TranslateItem)
	}
}
