package handlers

import (
	"fmt"

	"Recipe-Book/domain"
	"Recipe-Book/internal/api/presenters"
	"Recipe-Book/pkg/rating"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RatingHandler interface {
		UpsertRating(c *fiber.Ctx) error
		DeleteRating(c *fiber.Ctx) error
	}

	ratingHandler struct {
		ratingService rating.RatingService
		validator     *validator.Validate
	}
)

func NewRatingHandler(ratingService rating.RatingService, validator *validator.Validate) RatingHandler {
	return &ratingHandler{
		ratingService: ratingService,
		validator:     validator,
	}
}

func (h *ratingHandler) UpsertRating(c *fiber.Ctx) error {
	viewer := viewerFrom(c)
	if !viewer.Authenticated {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageRatingLoginRequired, domain.ErrUnauthenticated)
	}

	req := new(domain.UpsertRatingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageRatingFailedUpsert, err)
	}

	res, err := h.ratingService.Upsert(c.Context(), viewer.UserID, req.RecipeID, req.Rating)
	if err != nil {
		return presenters.ServiceError(c, err, fiber.StatusBadRequest, domain.MessageRatingFailedUpsert)
	}

	message := domain.MessageRatingUpdated + res.RecipeTitle
	if res.Action == domain.RatingActionCreated {
		message = fmt.Sprintf("%d%s%s", req.Rating, domain.MessageRatingAdded, res.RecipeTitle)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}

func (h *ratingHandler) DeleteRating(c *fiber.Ctx) error {
	viewer := viewerFrom(c)
	if !viewer.Authenticated {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageRatingLoginToDelete, domain.ErrUnauthenticated)
	}

	recipeID := c.Query("recipeId")
	if recipeID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageRatingNotFound, domain.ErrRatingNotFound)
	}

	res, err := h.ratingService.Delete(c.Context(), viewer.UserID, recipeID)
	if err != nil {
		return presenters.ServiceError(c, err, fiber.StatusBadRequest, domain.MessageRatingNotFound)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageRatingDeleted+res.RecipeTitle)
}
