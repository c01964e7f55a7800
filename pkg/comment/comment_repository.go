package comment

import (
	"context"
	"errors"

	"Recipe-Book/domain"
	"Recipe-Book/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentRepository interface {
		CreateComment(ctx context.Context, comment *entities.Comment) error
		UpdateComment(ctx context.Context, comment *entities.Comment) error
		DeleteComment(ctx context.Context, id uuid.UUID) error
		GetCommentByID(ctx context.Context, recipeID, id uuid.UUID) (*entities.Comment, error)
		// GetRecipeComments lists a recipe's comments newest first.
		GetRecipeComments(ctx context.Context, recipeID uuid.UUID) ([]*entities.Comment, error)
		CountApproved(ctx context.Context, recipeID uuid.UUID) (int64, error)
	}

	commentRepository struct {
		db *gorm.DB
	}
)

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	if err := r.db.WithContext(ctx).Omit("Author").Create(comment).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Author").First(comment, "id = ?", comment.ID).Error
}

func (r *commentRepository) UpdateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{"body": comment.Body, "approved": comment.Approved}).Error
}

func (r *commentRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *commentRepository) GetCommentByID(ctx context.Context, recipeID, id uuid.UUID) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND recipe_id = ?", id, recipeID).
		First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetRecipeComments(ctx context.Context, recipeID uuid.UUID) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) CountApproved(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("recipe_id = ? AND approved = ?", recipeID, true).
		Count(&count).Error
	return count, err
}
