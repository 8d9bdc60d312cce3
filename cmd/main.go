package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"marketgogo/backend/internal/api/handler"
	"marketgogo/backend/internal/cache"
	"marketgogo/backend/internal/catalog"
	"marketgogo/backend/internal/config"
	"marketgogo/backend/internal/geoip"
	"marketgogo/backend/internal/locale"
	"marketgogo/backend/internal/models"
	"marketgogo/backend/internal/storage"
	"marketgogo/backend/internal/translation"
	"marketgogo/backend/internal/translator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.Translation{},
		&models.Product{},
		&models.Company{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting MarketGoGo Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	// 1. Connections and migrations
	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	// 2. Translation pipeline
	cat, err := catalog.New(cfg.CatalogDir)
	if err != nil {
		log.Fatalf("Failed to load translation catalog: %v", err)
	}
	transCache := cache.NewRedisCache(rdb, config.CacheTTL)
	client := translator.NewClient(cfg.TranslateAPIKey, cfg.TranslateBaseURL)
	if cfg.TranslateAPIKey == "" {
		log.Println("Warning: DEEPL_API_KEY not set, external translation disabled")
	}
	translations := translation.NewService(s, transCache, cat, client, translation.DefaultRegistry())

	// 3. Locale detection
	geo := geoip.NewClient(cfg.GeoIPBaseURL)
	detector := locale.NewDetector(s, geo, cfg.SupportedLocales, config.DefaultLocale)

	// 4. Gin routing
	r := gin.Default()
	h := handler.NewHandler(s, detector, translations, client)
	r.Use(h.LocaleMiddleware())

	r.GET("/api/products", h.ListProducts)
	r.GET("/api/products/:id", h.GetProduct)
	r.GET("/api/locales", h.GetLocales)
	r.GET("/api/translation/usage", h.GetTranslationUsage)

	server := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
