package main

import (
	"fmt"
	"log"

	"github.com/Nachiketh1704/InternHub/configs"
	"github.com/Nachiketh1704/InternHub/middlewares"
	"github.com/Nachiketh1704/InternHub/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedApplications(); err != nil {
		log.Fatalf("seed applications failed: %v", err)
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Logger())

	// panic ที่หลุดมาต้องตอบเป็น JSON 500 กลาง ๆ
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Println("panic recovered:", recovered)
		c.AbortWithStatusJSON(500, gin.H{"error": "Something went wrong!"})
	}))

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware())

	// ✅ Register API routes
	routes.RegisterRoutes(r, db, cfg)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
