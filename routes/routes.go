package routes

import (
	"carrental/configs"
	"carrental/controllers"
	"carrental/entity"
	"carrental/middlewares"
	"carrental/pkg/logger"
	"carrental/repository"
	"carrental/services"
	"carrental/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, geo services.Geocoder, log logger.ILogger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	cfg := configs.LoadConfig()

	// Services
	authSvc := services.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.JWTTTL)
	carSvc := services.NewCarService(db, geo)
	driverSvc := services.NewDriverService(db)
	bookingSvc := services.NewBookingService(db)
	adminSvc := services.NewAdminService(db)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	carCtrl := controllers.NewCarController(carSvc)
	driverCtrl := controllers.NewDriverController(driverSvc)
	bookingCtrl := controllers.NewBookingController(bookingSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)
	chatCtrl := controllers.NewChatbotController()
	trackCtrl := controllers.NewTrackingController(carSvc, geo)

	supportHub := ws.NewSupportHub(log)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(), authCtrl.Me)

	// Public browsing
	r.GET("/cars", carCtrl.List)
	r.GET("/cars/:id", carCtrl.Detail)
	r.GET("/drivers", driverCtrl.List)

	// Support chat
	r.POST("/chatbot", chatCtrl.Chat)
	r.GET("/ws/support", supportHub.Serve)

	// Any authenticated user
	u := r.Group("/", middlewares.AuthMiddleware())
	{
		u.POST("/bookings", bookingCtrl.Create)
		u.GET("/bookings", bookingCtrl.ListForMe)
		u.PATCH("/bookings/:id/status", bookingCtrl.UpdateStatus)
		u.DELETE("/bookings/:id", bookingCtrl.Delete)
		u.GET("/tracking/cars", trackCtrl.Track)
	}

	// Clients (and admin) manage listings
	partner := r.Group("/", middlewares.AuthMiddleware(entity.RoleClient, entity.RoleAdmin))
	{
		partner.POST("/cars", carCtrl.Create)
		partner.DELETE("/cars/:id", carCtrl.Delete)
		partner.GET("/partner/cars", carCtrl.ListMine)
		partner.POST("/drivers", driverCtrl.Create)
		partner.DELETE("/drivers/:id", driverCtrl.Delete)
		partner.GET("/partner/driver/dashboard", driverCtrl.Dashboard)
	}

	// Admin only
	admin := r.Group("/admin", middlewares.AuthMiddleware(entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/users", adminCtrl.Users)
		admin.GET("/cars", adminCtrl.Cars)
		admin.GET("/drivers", adminCtrl.Drivers)
		admin.GET("/bookings", adminCtrl.Bookings)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
	}
}
