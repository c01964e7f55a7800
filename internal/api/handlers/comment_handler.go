package handlers

import (
	"errors"

	"Recipe-Book/domain"
	"Recipe-Book/internal/api/presenters"
	"Recipe-Book/pkg/comment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommentHandler interface {
		AddComment(c *fiber.Ctx) error
		EditComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
	}

	commentHandler struct {
		commentService comment.CommentService
		validator      *validator.Validate
	}
)

func NewCommentHandler(commentService comment.CommentService, validator *validator.Validate) CommentHandler {
	return &commentHandler{
		commentService: commentService,
		validator:      validator,
	}
}

func (h *commentHandler) AddComment(c *fiber.Ctx) error {
	viewer := viewerFrom(c)
	if !viewer.Authenticated {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageCommentLoginRequired, domain.ErrUnauthenticated)
	}

	req := new(domain.AddCommentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageCommentInvalid, err)
	}

	res, err := h.commentService.AddComment(c.Context(), viewer.UserID, c.Params("slug"), *req)
	if err != nil {
		return commentError(c, err, domain.MessageCommentInvalid)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddComment)
}

func (h *commentHandler) EditComment(c *fiber.Ctx) error {
	viewer := viewerFrom(c)
	if !viewer.Authenticated {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageCommentNotEditable, domain.ErrUnauthenticated)
	}

	req := new(domain.EditCommentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageCommentFailedUpdate, err)
	}

	res, err := h.commentService.EditComment(c.Context(), viewer.UserID, c.Params("slug"), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageCommentNotFound, err)
		case errors.Is(err, domain.ErrCommentUnauthorized):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageCommentNotEditable, err)
		case errors.Is(err, domain.ErrCommentUnchanged):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageCommentUnchanged, err)
		}
		return commentError(c, err, domain.MessageCommentFailedUpdate)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEditComment)
}

func (h *commentHandler) DeleteComment(c *fiber.Ctx) error {
	viewer := viewerFrom(c)
	if !viewer.Authenticated {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageCommentNotDeletable, domain.ErrUnauthenticated)
	}

	err := h.commentService.DeleteComment(c.Context(), viewer.UserID, c.Params("slug"), c.Query("commentId"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageCommentCouldNotFind, err)
		case errors.Is(err, domain.ErrCommentUnauthorized):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageCommentNotDeletable, err)
		}
		return commentError(c, err, domain.MessageSomethingWentWrong)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}

// commentError answers 404 when the recipe page itself is missing and
// falls back to the kind mapping otherwise.
func commentError(c *fiber.Ctx, err error, message string) error {
	if errors.Is(err, domain.ErrRecipeNotFound) {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
	}
	return presenters.ServiceError(c, err, fiber.StatusBadRequest, message)
}
