package routes

import (
	"github.com/waweru234/houselook-rr/handlers"
	"github.com/waweru234/houselook-rr/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handlers.HealthCheck)

	userController := handlers.NewUserController()
	propertyController := handlers.NewPropertyController()
	savedController := handlers.NewSavedController()
	pointsController := handlers.NewPointsController()
	leadController := handlers.NewLeadController()
	adminController := handlers.NewAdminController()

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", userController.Register)
	auth.POST("/login", userController.Login)
	auth.POST("/google", userController.GoogleLogin)

	api.GET("/properties", propertyController.ListProperties)
	api.POST("/leads", leadController.CreateLead)

	protected := api.Group("", middleware.JWTMiddleware())
	protected.GET("/properties/mine", propertyController.MyProperties)
	protected.GET("/properties/:id", propertyController.GetProperty)

	protected.GET("/user", userController.GetProfile)
	protected.PUT("/user", userController.UpdateProfile)
	protected.DELETE("/user", userController.DeleteAccount)

	protected.POST("/saved/:propertyId", savedController.SaveProperty)
	protected.DELETE("/saved/:propertyId", savedController.UnsaveProperty)
	protected.GET("/saved", savedController.GetSaved)

	protected.GET("/points", pointsController.GetBalance)
	protected.POST("/points/topup", pointsController.TopUp)

	admin := api.Group("/admin", middleware.JWTMiddleware(), middleware.AdminOnly())
	admin.GET("/users", userController.GetAllUsers)
	admin.GET("/statistics", adminController.GetStatistics)
	admin.GET("/leads", leadController.GetLeads)
	admin.POST("/properties", propertyController.CreateProperty)
	admin.PUT("/properties/:id", propertyController.UpdateProperty)
	admin.DELETE("/properties/:id", propertyController.DeleteProperty)
}
