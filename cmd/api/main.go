package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/harentsoaR/swasth-api/internal/config"
	"github.com/harentsoaR/swasth-api/internal/flows"
	"github.com/harentsoaR/swasth-api/internal/handlers"
	"github.com/harentsoaR/swasth-api/internal/jobs"
	"github.com/harentsoaR/swasth-api/internal/logger"
	"github.com/harentsoaR/swasth-api/internal/repository"
	"github.com/harentsoaR/swasth-api/internal/services"
	"github.com/harentsoaR/swasth-api/internal/utils"
)

const tokenTTL = 24 * time.Hour

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	if envErr != nil {
		zlog.Info("No .env file found, relying on environment variables.")
	}
	zlog.Info("configuration loaded",
		zap.String("environment", cfg.Environment),
		zap.String("mongoDatabase", cfg.MongoDatabase),
		zap.String("port", cfg.Port),
		zap.Bool("jwtSecretSet", cfg.JWTSecret != ""),
		zap.Bool("geminiKeySet", cfg.GeminiAPIKey != ""),
		zap.Bool("redisEnabled", cfg.RedisAddr != ""))
	if cfg.JWTSecret == "" {
		zlog.Warn("JWT_SECRET is not set, login and protected routes will fail")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zlog.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	if err := client.Ping(ctx, nil); err != nil {
		zlog.Fatal("MongoDB is not reachable", zap.Error(err))
	}
	db := client.Database(cfg.MongoDatabase)
	zlog.Info("Successfully connected to MongoDB")

	medicines := repository.NewMedicineRepository(db)
	doctors := repository.NewDoctorRepository(db)
	appointments := repository.NewAppointmentRepository(db)
	if err := repository.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		zlog.Fatal("Failed to create user indexes", zap.Error(err))
	}

	if cfg.SeedMedicines {
		if err := jobs.SeedMedicines(ctx, medicines, zlog); err != nil {
			zlog.Error("medicine seed failed", zap.Error(err))
		}
	}

	// --- Clinic cache ---
	var clinicCache services.ClinicCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			zlog.Warn("Redis unavailable, clinic lookups will not be cached", zap.Error(err))
		} else {
			clinicCache = services.NewRedisClinicCache(rdb)
		}
	}

	// --- Initialize Services ---
	gemini := services.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, zlog)
	clinicFinder := services.NewClinicFinder(cfg.NominatimURL, cfg.OverpassURL, clinicCache, cfg.ClinicCacheTTL, zlog)
	notificationSvc := services.NewNotificationService(cfg.TextbeltAPIKey, cfg.TextbeltURL, zlog)
	jwtManager := utils.NewJWTManager(cfg.JWTSecret, tokenTTL)

	scheduler, err := jobs.StartReminders(cfg.ReminderSchedule, &jobs.ReminderJob{
		Appointments: appointments,
		Doctors:      doctors,
		Notifier:     notificationSvc,
		Logger:       zlog,
	})
	if err != nil {
		zlog.Fatal("Invalid REMINDER_SCHEDULE", zap.String("schedule", cfg.ReminderSchedule), zap.Error(err))
	}
	defer scheduler.Stop()

	// --- Initialize Handlers with DB and Services ---
	h := handlers.NewHandler(db, flows.New(gemini), clinicFinder, notificationSvc, jwtManager, zlog)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := handlers.NewRouter(h, cfg.AllowedOrigins)

	zlog.Info("Starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
