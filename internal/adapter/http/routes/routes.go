package routes

import (
	"context"

	_ "tender_service/docs"
	"tender_service/internal/infrastructure/config"
	"tender_service/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	app, err := newApplication(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	router := newRouter(app)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func newRouter(app *application) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(app.metrics.Handler()))

	getRoutes(router, app)
	return router
}

func getRoutes(router *gin.Engine, app *application) {
	h := newTenderHandlers(app)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTenderRoutes(v1, h)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("path", c.Request.URL.Path).Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
