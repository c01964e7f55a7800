package favourite

import (
	"context"
	"errors"

	"Recipe-Book/domain"
	"Recipe-Book/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDuplicateFavourite = domain.NewError(domain.ErrConflict, "recipe already in favourites")

type (
	FavouriteRepository interface {
		IsRecipeFavourite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		GetUserFavouriteIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
		// ToggleFavourite deletes the (user, recipe) row when present and
		// creates it otherwise, inside one transaction. It reports whether
		// the row exists afterwards.
		ToggleFavourite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	}

	favouriteRepository struct {
		db *gorm.DB
	}
)

func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &favouriteRepository{db: db}
}

func (r *favouriteRepository) IsRecipeFavourite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favourite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favouriteRepository) GetUserFavouriteIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&entities.Favourite{}).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Pluck("recipe_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *favouriteRepository) ToggleFavourite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	added := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&entities.Favourite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		if err := tx.Create(&entities.Favourite{UserID: userID, RecipeID: recipeID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateFavourite
			}
			return err
		}
		added = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return added, nil
}
