package handlers

import (
	"Recipe-Book/domain"
	"Recipe-Book/internal/api/presenters"
	"Recipe-Book/pkg/favourite"
	"Recipe-Book/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FavouriteHandler interface {
		ToggleFavourite(c *fiber.Ctx) error
		GetFavourites(c *fiber.Ctx) error
	}

	favouriteHandler struct {
		favouriteService favourite.FavouriteService
		recipeService    recipe.RecipeService
		validator        *validator.Validate
	}
)

func NewFavouriteHandler(favouriteService favourite.FavouriteService, recipeService recipe.RecipeService, validator *validator.Validate) FavouriteHandler {
	return &favouriteHandler{
		favouriteService: favouriteService,
		recipeService:    recipeService,
		validator:        validator,
	}
}

func (h *favouriteHandler) ToggleFavourite(c *fiber.Ctx) error {
	viewer := viewerFrom(c)
	if !viewer.Authenticated {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFavouriteLoginRequired, domain.ErrUnauthenticated)
	}

	req := new(domain.ToggleFavouriteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageSomethingWentWrong, err)
	}

	res, err := h.favouriteService.Toggle(c.Context(), viewer.UserID, req.RecipeID)
	if err != nil {
		return presenters.ServiceError(c, err, fiber.StatusBadRequest, domain.MessageSomethingWentWrong)
	}

	message := domain.MessageFavouriteRemoved + res.RecipeTitle
	if res.Action == domain.FavouriteActionAdded {
		message = domain.MessageFavouriteAdded + res.RecipeTitle
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}

func (h *favouriteHandler) GetFavourites(c *fiber.Ctx) error {
	res, err := h.recipeService.GetFavouriteRecipes(c.Context(), viewerFrom(c), c.QueryInt("page", 1), c.QueryInt("limit", 0))
	if err != nil {
		return presenters.ServiceError(c, err, fiber.StatusBadRequest, domain.MessageFailedGetFavourites)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFavourites)
}
