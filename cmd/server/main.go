package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hyrind/role-recommender/internal/config"
	"github.com/hyrind/role-recommender/internal/domain/fiber/handler"
	"github.com/hyrind/role-recommender/internal/logger"
	"github.com/hyrind/role-recommender/internal/middleware"
	"github.com/hyrind/role-recommender/internal/model"
	"github.com/hyrind/role-recommender/internal/repository"
	"github.com/hyrind/role-recommender/internal/service"
	"github.com/hyrind/role-recommender/internal/usecase"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	log, err := logger.New(appConfig.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

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
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
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

	db := connectDB(log)

	intakeRepo := repository.NewIntakeFormRepository(db)
	profileRepo := repository.NewSkillProfileRepository(db)
	roleRepo := repository.NewJobRoleRepository(db)
	recRepo := repository.NewRecommendationRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	scorer := service.NewScoringService(config.DefaultScoring())
	profiles := usecase.NewProfileUsecase(intakeRepo, profileRepo, log)
	recommendations := usecase.NewRecommendationUsecase(db, profiles, roleRepo, recRepo, feedbackRepo, scorer, log)
	catalog := usecase.NewRoleCatalogUsecase(roleRepo)

	handler.NewRoleHandler(catalog).RegisterRoutes(app)
	handler.NewRecommendationHandler(recommendations, profiles).RegisterRoutes(app)

	log.Info("server running", "port", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}

func connectDB(log *logger.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("could not connect to database", "error", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatal("could not get database instance", "error", err)
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

	err = db.AutoMigrate(
		&model.IntakeForm{},
		&model.JobRole{},
		&model.SkillProfile{},
		&model.RoleRecommendation{},
		&model.RecommendationFeedback{},
	)
	if err != nil {
		log.Fatal("migration failed", "error", err)
	}
	return db
}
