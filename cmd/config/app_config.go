package config

import (
	"os"
	"path/filepath"
	"time"

	"Recipe-Book/domain"
	"Recipe-Book/internal/api/handlers"
	"Recipe-Book/internal/api/routes"
	"Recipe-Book/internal/middleware"
	"Recipe-Book/internal/utils"
	"Recipe-Book/internal/utils/mailing"
	"Recipe-Book/internal/utils/storage"
	"Recipe-Book/pkg/comment"
	"Recipe-Book/pkg/favourite"
	"Recipe-Book/pkg/jwt"
	"Recipe-Book/pkg/rating"
	"Recipe-Book/pkg/recipe"
	"Recipe-Book/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// Dependencies are the outside services the app talks to besides the database.
type Dependencies struct {
	JWTService jwt.JWTService
	Storage    storage.AwsS3
	Notifier   comment.Notifier
	PageSize   int
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	jwtService, err := jwt.NewJWTService()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})

	// setting up logging and limiter
	logFile := utils.GetConfig("LOG_FILE")
	if logFile == "" {
		logFile = "./logs/app.log"
	}
	err = os.MkdirAll(filepath.Dir(logFile), os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		logFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT_MAX", 10),
		Expiration: 1 * time.Second,
	}))

	Register(app, db, Dependencies{
		JWTService: jwtService,
		Storage:    storage.NewAwsS3(),
		Notifier:   mailing.NewCommentNotifier(),
		PageSize:   utils.GetConfigInt("PAGE_SIZE", domain.DefaultPageSize),
	})
	return app, nil
}

// Register wires repositories, services and handlers onto app.
func Register(app *fiber.App, db *gorm.DB, deps Dependencies) {
	utils.InitValidator()
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	favouriteRepository := favourite.NewFavouriteRepository(db)
	ratingRepository := rating.NewRatingRepository(db)
	commentRepository := comment.NewCommentRepository(db)

	// Service
	userService := user.NewUserService(userRepository, deps.JWTService)
	favouriteService := favourite.NewFavouriteService(favouriteRepository, recipeRepository)
	ratingService := rating.NewRatingService(ratingRepository, recipeRepository)
	commentService := comment.NewCommentService(commentRepository, recipeRepository, deps.Notifier)
	recipeService := recipe.NewRecipeService(
		recipeRepository,
		ratingService,
		favouriteService,
		commentService,
		deps.Storage,
		deps.PageSize,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	favouriteHandler := handlers.NewFavouriteHandler(favouriteService, recipeService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)
	commentHandler := handlers.NewCommentHandler(commentService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		RecipeHandler:    recipeHandler,
		FavouriteHandler: favouriteHandler,
		RatingHandler:    ratingHandler,
		CommentHandler:   commentHandler,
		Middleware:       middlewares,
		JWTService:       deps.JWTService,
	}
	routesConfig.Setup()
}
