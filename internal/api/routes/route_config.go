package routes

import (
	"Recipe-Book/internal/api/handlers"
	"Recipe-Book/internal/middleware"
	"Recipe-Book/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	RecipeHandler    handlers.RecipeHandler
	FavouriteHandler handlers.FavouriteHandler
	RatingHandler    handlers.RatingHandler
	CommentHandler   handlers.CommentHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Recipes()
	c.Favourites()
	c.Ratings()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Recipes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.OptionalAuthMiddleware(c.JWTService))

	recipes.Get("", c.RecipeHandler.ListRecipes)
	recipes.Get("/highlights", c.RecipeHandler.GetHighlights)
	recipes.Get("/:slug", c.RecipeHandler.GetRecipeDetail)

	// authoring
	recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
	recipes.Patch("/:slug", auth, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:slug", auth, c.RecipeHandler.DeleteRecipe)

	// comments answer anonymous viewers with their own messages
	recipes.Post("/:slug/comments", c.CommentHandler.AddComment)
	recipes.Put("/:slug/comments", c.CommentHandler.EditComment)
	recipes.Delete("/:slug/comments", c.CommentHandler.DeleteComment)
}

func (c *Config) Favourites() {
	favourites := c.App.Group("/api/v1/favourites", c.Middleware.OptionalAuthMiddleware(c.JWTService))
	favourites.Get("", c.FavouriteHandler.GetFavourites)
	favourites.Post("/toggle", c.FavouriteHandler.ToggleFavourite)
}

func (c *Config) Ratings() {
	ratings := c.App.Group("/api/v1/ratings", c.Middleware.OptionalAuthMiddleware(c.JWTService))
	ratings.Post("", c.RatingHandler.UpsertRating)
	ratings.Delete("", c.RatingHandler.DeleteRating)
}
