package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cppla/miniblog/config"
	"github.com/cppla/miniblog/controllers"
	"github.com/cppla/miniblog/middleware"
	"github.com/cppla/miniblog/store"
	"github.com/cppla/miniblog/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if utils.Logger != nil {
		r.Use(ginzap.Ginzap(utils.Logger, time.RFC3339, true))
		r.Use(ginzap.RecoveryWithZap(utils.Logger, false))
	} else {
		// logger not initialized (tests); keep panic recovery only
		r.Use(gin.Recovery())
	}
	r.Use(middleware.RequestID())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	st := store.New(db)
	userController := controllers.NewUserController(st)
	postController := controllers.NewPostController(st)

	limited := middleware.RateLimitMiddleware()

	users := r.Group("/users")
	users.POST("/", limited, userController.CreateUser)
	users.GET("/:id", userController.GetUser)
	users.PUT("/:id", limited, userController.UpdateUser)
	users.DELETE("/:id", limited, userController.DeleteUser)

	posts := r.Group("/posts")
	posts.POST("/", limited, postController.CreatePost)
	posts.GET("/:id", postController.GetPost)
	posts.PUT("/:id", limited, postController.UpdatePost)
	posts.DELETE("/:id", limited, postController.DeletePost)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
