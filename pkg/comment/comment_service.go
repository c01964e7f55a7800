package comment

import (
	"context"
	"strings"
	"unicode/utf8"

	"Recipe-Book/domain"
	"Recipe-Book/entities"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	// RecipeFinder resolves a published recipe by slug, with its author.
	RecipeFinder interface {
		GetPublishedRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error)
	}

	Notifier interface {
		NotifyNewComment(toEmail, recipeTitle, recipeSlug, commenter, body string) error
	}

	CommentService interface {
		ListForRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.Comment, int64, error)
		AddComment(ctx context.Context, viewerID, slug string, req domain.AddCommentRequest) (domain.Comment, error)
		EditComment(ctx context.Context, viewerID, slug string, req domain.EditCommentRequest) (domain.Comment, error)
		DeleteComment(ctx context.Context, viewerID, slug, commentID string) error
	}

	commentService struct {
		commentRepository CommentRepository
		recipes           RecipeFinder
		notifier          Notifier
	}
)

// NewCommentService wires the service. notifier may be nil.
func NewCommentService(commentRepository CommentRepository, recipes RecipeFinder, notifier Notifier) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		recipes:           recipes,
		notifier:          notifier,
	}
}

// ListForRecipe returns every comment newest first together with the
// number of approved ones.
func (s *commentService) ListForRecipe(ctx context.Context, recipeID uuid.UUID) ([]domain.Comment, int64, error) {
	rows, err := s.commentRepository.GetRecipeComments(ctx, recipeID)
	if err != nil {
		return nil, 0, err
	}
	approved, err := s.commentRepository.CountApproved(ctx, recipeID)
	if err != nil {
		return nil, 0, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, toDomainComment(row))
	}
	return comments, approved, nil
}

func (s *commentService) AddComment(ctx context.Context, viewerID, slug string, req domain.AddCommentRequest) (domain.Comment, error) {
	authorID, err := uuid.Parse(viewerID)
	if err != nil {
		return domain.Comment{}, domain.ErrUnauthenticated
	}

	recipe, err := s.recipes.GetPublishedRecipeBySlug(ctx, slug)
	if err != nil {
		return domain.Comment{}, err
	}

	body, err := validBody(req.Body)
	if err != nil {
		return domain.Comment{}, err
	}

	comment := entities.Comment{
		RecipeID: recipe.ID,
		AuthorID: authorID,
		Body:     body,
		Approved: true,
	}
	if err := s.commentRepository.CreateComment(ctx, &comment); err != nil {
		return domain.Comment{}, err
	}

	s.notify(recipe, &comment)
	return toDomainComment(&comment), nil
}

func (s *commentService) EditComment(ctx context.Context, viewerID, slug string, req domain.EditCommentRequest) (domain.Comment, error) {
	comment, err := s.findComment(ctx, slug, req.CommentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if comment.AuthorID.String() != viewerID {
		return domain.Comment{}, domain.ErrCommentUnauthorized
	}
	if comment.Body == strings.TrimSpace(req.Body) {
		return domain.Comment{}, domain.ErrCommentUnchanged
	}

	body, err := validBody(req.Body)
	if err != nil {
		return domain.Comment{}, err
	}

	comment.Body = body
	comment.Approved = true
	if err := s.commentRepository.UpdateComment(ctx, comment); err != nil {
		return domain.Comment{}, err
	}
	return toDomainComment(comment), nil
}

func (s *commentService) DeleteComment(ctx context.Context, viewerID, slug, commentID string) error {
	comment, err := s.findComment(ctx, slug, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID.String() != viewerID {
		return domain.ErrCommentUnauthorized
	}
	return s.commentRepository.DeleteComment(ctx, comment.ID)
}

func (s *commentService) findComment(ctx context.Context, slug, commentID string) (*entities.Comment, error) {
	recipe, err := s.recipes.GetPublishedRecipeBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(commentID)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}
	return s.commentRepository.GetCommentByID(ctx, recipe.ID, id)
}

// notify mails the recipe author. Delivery problems are logged only.
func (s *commentService) notify(recipe *entities.Recipe, comment *entities.Comment) {
	if s.notifier == nil || recipe.Author == nil || recipe.AuthorID == comment.AuthorID {
		return
	}
	commenter := ""
	if comment.Author != nil {
		commenter = comment.Author.Username
	}
	if err := s.notifier.NotifyNewComment(recipe.Author.Email, recipe.Title, recipe.Slug, commenter, comment.Body); err != nil {
		log.Warnf("comment notification for %s: %v", recipe.Slug, err)
	}
}

func validBody(body string) (string, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > domain.MaxCommentLength {
		return "", domain.ErrCommentInvalid
	}
	return trimmed, nil
}

func toDomainComment(comment *entities.Comment) domain.Comment {
	res := domain.Comment{
		ID:        comment.ID.String(),
		Body:      comment.Body,
		AuthorID:  comment.AuthorID.String(),
		Approved:  comment.Approved,
		CreatedAt: comment.CreatedAt,
	}
	if comment.Author != nil {
		res.Author = comment.Author.Username
	}
	return res
}
