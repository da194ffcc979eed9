package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"spontrip/cmd/fx/config_fx"
	"spontrip/cmd/fx/controllers_fx"
	"spontrip/cmd/fx/friends_fx"
	"spontrip/cmd/fx/kv_fx"
	"spontrip/cmd/fx/memories_fx"
	"spontrip/cmd/fx/moods_fx"
	"spontrip/cmd/fx/plan_fx"
	"spontrip/cmd/fx/prefs_fx"
	"spontrip/cmd/fx/session_fx"
	"spontrip/cmd/fx/store_fx"
	"spontrip/cmd/fx/trips_fx"
	"spontrip/internal/api/controllers"
	"spontrip/internal/config"
	"spontrip/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		store_fx.Module,
		kv_fx.Module,
		session_fx.Module,
		prefs_fx.Module,
		plan_fx.Module,
		moods_fx.Module,
		trips_fx.Module,
		memories_fx.Module,
		friends_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Server.Port)
				if err := engine.Run(":" + cfg.Server.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	memoryController *controllers.MemoryController,
	friendController *controllers.FriendController,
	planController *controllers.PlanController,
	preferenceController *controllers.PreferenceController,
	moodController *controllers.MoodController,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		authController,
		tripController,
		memoryController,
		friendController,
		planController,
		preferenceController,
		moodController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	memoryController *controllers.MemoryController,
	friendController *controllers.FriendController,
	planController *controllers.PlanController,
	preferenceController *controllers.PreferenceController,
	moodController *controllers.MoodController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", authController.Signup)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", authController.Logout)
	authGroup.GET("/session", authController.Session)
	authGroup.PUT("/me", middleware.JWTAuthMiddleware(), authController.UpdateMe)

	tripsGroup := r.Group("/trips", middleware.JWTAuthMiddleware())
	tripsGroup.GET("", tripController.ListMine)
	tripsGroup.POST("", tripController.Create)
	tripsGroup.GET("/:id", tripController.Get)
	tripsGroup.PUT("/:id", tripController.Update)
	tripsGroup.DELETE("/:id", tripController.Delete)
	tripsGroup.POST("/:id/comments", tripController.AddComment)
	tripsGroup.POST("/:id/collaborators", tripController.AddCollaborator)

	memoriesGroup := r.Group("/memories", middleware.JWTAuthMiddleware())
	memoriesGroup.GET("", memoryController.ListMine)
	memoriesGroup.POST("", memoryController.Create)

	friendsGroup := r.Group("/friends", middleware.JWTAuthMiddleware())
	friendsGroup.GET("", friendController.List)
	friendsGroup.GET("/search", friendController.Search)
	friendsGroup.POST("", friendController.Add)

	plansGroup := r.Group("/plans", middleware.JWTAuthMiddleware())
	plansGroup.POST("/generate", planController.Generate)
	plansGroup.GET("/directions", planController.Directions)

	// preferences are independent of the session
	preferencesGroup := r.Group("/preferences")
	preferencesGroup.GET("/theme", preferenceController.GetTheme)
	preferencesGroup.POST("/theme/toggle", preferenceController.ToggleTheme)

	metaGroup := r.Group("/meta")
	metaGroup.GET("/moods", moodController.ListMoods)
	metaGroup.GET("/durations", moodController.ListDurations)
}
