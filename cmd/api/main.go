package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/agora/app"
	"github.com/joefazee/agora/app/activity"
	"github.com/joefazee/agora/app/api"
	"github.com/joefazee/agora/app/categories"
	"github.com/joefazee/agora/app/database"
	apiDoc "github.com/joefazee/agora/app/doc"
	"github.com/joefazee/agora/app/markets"
	"github.com/joefazee/agora/app/platform"
	"github.com/joefazee/agora/app/prediction"
	"github.com/joefazee/agora/app/settlement"
	"github.com/joefazee/agora/app/user"
	"github.com/joefazee/agora/app/wallet"
	"github.com/joefazee/agora/internal/cache"
	"github.com/joefazee/agora/internal/sanitizer"
	"github.com/joefazee/agora/internal/security"
	"github.com/joefazee/agora/models"
)

// @title Agora API
// @version 1.0
// @description Community prediction markets: propose questions, vote them live, stake points and settle outcomes.
// @termsOfService https://agora.community/terms

// @contact.name API Support Team
// @contact.url https://agora.community/support
// @contact.email support@agora.community

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.New(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	htmlSanitizer := sanitizer.NewHTMLStripper()

	tokenMaker, err := security.NewPasetoMaker(cfg.User.SymmetricKey)
	if err != nil {
		log.Fatal("Failed to create token maker:", err)
	}

	snapshotCache, categoryCache := buildCaches(cfg)

	platformSvc := platform.NewServiceFromDeps(platform.Dependencies{
		DB:    db,
		Cache: snapshotCache,
	})
	activitySvc := activity.NewServiceFromDB(db)

	r := gin.Default()
	r.Use(api.CorsMiddleware())

	apiV1 := r.Group("/api/v1")
	apiV1.GET("/healthz", api.HealthCheck)

	userRepo := user.Init(apiV1, user.Dependencies{
		DB:         db,
		TokenMaker: tokenMaker,
		Sanitizer:  htmlSanitizer,
		Config:     &cfg.User,
		Platform:   platformSvc,
		Recorder:   activitySvc,
	})

	categoryRepo := categories.Init(apiV1, categories.Dependencies{
		DB:         db,
		TokenMaker: tokenMaker,
		UserRepo:   userRepo,
		Cache:      categoryCache,
	})

	marketRepo := markets.Init(apiV1, markets.Dependencies{
		DB:         db,
		TokenMaker: tokenMaker,
		UserRepo:   userRepo,
		Sanitizer:  htmlSanitizer,
		Config:     &cfg.Markets,
		Platform:   platformSvc,
		Recorder:   activitySvc,
		Categories: categoryRepo,
	})

	predictionRepo := prediction.Init(apiV1, prediction.Dependencies{
		DB:         db,
		TokenMaker: tokenMaker,
		UserRepo:   userRepo,
		MarketRepo: marketRepo,
		Config:     &cfg.Prediction,
		Platform:   platformSvc,
		Recorder:   activitySvc,
	})

	settlement.Init(apiV1, settlement.Dependencies{
		DB:             db,
		TokenMaker:     tokenMaker,
		UserRepo:       userRepo,
		MarketRepo:     marketRepo,
		PredictionRepo: predictionRepo,
		Sanitizer:      htmlSanitizer,
		Platform:       platformSvc,
		Recorder:       activitySvc,
	})

	wallet.Init(apiV1, wallet.Dependencies{
		DB:         db,
		TokenMaker: tokenMaker,
		UserRepo:   userRepo,
	})

	adminGroup := apiV1.Group("/")
	adminGroup.Use(user.AuthMiddleware(tokenMaker, userRepo))
	platform.Init(adminGroup, platformSvc)
	activity.Init(adminGroup, activitySvc)

	apiDoc.Init(r)

	log.Printf("Starting Agora API server on %s:%s", cfg.AppHost, cfg.AppPort)
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func buildCaches(cfg *app.Config) (cache.Cache[models.Snapshot], cache.Cache[[]categories.CategoryResponse]) {
	if cfg.CacheBackend == cache.RedisBackend {
		opts := &cache.RedisOptions{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		}
		return cache.NewRedisCache[models.Snapshot](opts),
			cache.NewRedisCache[[]categories.CategoryResponse](opts)
	}
	return cache.NewMemoryCache[models.Snapshot](),
		cache.NewMemoryCache[[]categories.CategoryResponse]()
}
