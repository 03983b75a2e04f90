package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/mock-interview/internal/config"
	"github.com/fadilmartias/mock-interview/internal/domain/fiber/handler"
	"github.com/fadilmartias/mock-interview/internal/middleware"
	"github.com/fadilmartias/mock-interview/internal/model"
	"github.com/fadilmartias/mock-interview/internal/repository"
	"github.com/fadilmartias/mock-interview/internal/service"
	"github.com/fadilmartias/mock-interview/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	gormlogrus "github.com/onrik/gorm-logrus"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	interviewRepo := repository.NewInterviewRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	generator, err := buildGenerator(ctx)
	if err != nil {
		logrus.Fatal(err)
	}

	interviewUC := usecase.NewInterviewUsecase(interviewRepo, generator)
	feedbackUC := usecase.NewFeedbackUsecase(answerRepo)

	handler.NewInterviewHandler(interviewUC, feedbackUC).RegisterRoutes(app)
	handler.NewSessionHandler(interviewUC, answerRepo, generator).RegisterRoutes(app)

	logrus.Info("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		logrus.Fatal(err)
	}
}

// buildGenerator memilih provider LLM dari env. Default Gemini; OpenRouter
// tersedia untuk fallback manual tanpa ganti kode.
func buildGenerator(ctx context.Context) (service.TextGenerator, error) {
	switch config.LoadAIConfig().Provider {
	case "openrouter":
		return service.NewOpenRouterService(), nil
	case "gemini":
		return service.NewGeminiService(ctx)
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER %q", config.LoadAIConfig().Provider)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Jakarta",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogrus.New()})
	if err != nil {
		logrus.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	// migrasi tabel
	if err := db.AutoMigrate(&model.Interview{}, &model.UserAnswer{}); err != nil {
		logrus.Fatal("migration failed: ", err)
	}
	return db
}
