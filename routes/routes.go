package routes

import (
	"github.com/Nachiketh1704/InternHub/configs"
	"github.com/Nachiketh1704/InternHub/controllers"
	"github.com/Nachiketh1704/InternHub/middlewares"
	"github.com/Nachiketh1704/InternHub/repository"
	"github.com/Nachiketh1704/InternHub/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	// Repositories
	appRepo := repository.NewApplicationRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	appSvc := services.NewApplicationService(appRepo)
	authSvc := services.NewAuthService(userRepo, appRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	appCtrl := controllers.NewApplicationController(appSvc)
	adminCtrl := controllers.NewAdminController(appSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	api := r.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "TalentHub API is running"})
		})

		// Public
		api.POST("/applications", appCtrl.Create)
		api.POST("/login", authCtrl.Login)
		api.GET("/applicant/status/:id", appCtrl.Status)

		// Admin (ต้องมี token user_type=admin)
		admin := api.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
		{
			admin.GET("/applications", adminCtrl.List)
			admin.PUT("/applications/:id/status", adminCtrl.UpdateStatus)
			admin.DELETE("/applications/:id", adminCtrl.Delete)
		}
	}

	// route ที่ไม่มีจริง
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Route not found"})
	})
}
