package rating

import (
	"context"
	"errors"

	"Recipe-Book/domain"
	"Recipe-Book/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RatingRepository interface {
		GetRecipeStats(ctx context.Context, recipeID uuid.UUID) (domain.RatingStats, error)
		// GetStatsForRecipes returns stats keyed by recipe id. Recipes
		// without ratings are absent from the map.
		GetStatsForRecipes(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error)
		GetUserRating(ctx context.Context, userID, recipeID uuid.UUID) (*entities.Rating, error)
		GetUserScores(ctx context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]int, error)
		// UpsertRating writes the score for (user, recipe) and returns
		// whether a new row was created plus the stats after the write.
		UpsertRating(ctx context.Context, userID, recipeID uuid.UUID, score int) (bool, domain.RatingStats, error)
		// DeleteRating removes the (user, recipe) row and returns the stats
		// after the delete. domain.ErrRatingNotFound when no row existed.
		DeleteRating(ctx context.Context, userID, recipeID uuid.UUID) (domain.RatingStats, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}

	statsRow struct {
		RecipeID uuid.UUID
		Count    int64
		Average  float64
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) GetRecipeStats(ctx context.Context, recipeID uuid.UUID) (domain.RatingStats, error) {
	return recipeStats(r.db.WithContext(ctx), recipeID)
}

func recipeStats(db *gorm.DB, recipeID uuid.UUID) (domain.RatingStats, error) {
	var row statsRow
	if err := db.
		Model(&entities.Rating{}).
		Select("COUNT(*) AS count, COALESCE(AVG(score), 0) AS average").
		Where("recipe_id = ?", recipeID).
		Scan(&row).Error; err != nil {
		return domain.RatingStats{}, err
	}
	return domain.RatingStats{Count: row.Count, Average: row.Average}, nil
}

func (r *ratingRepository) GetStatsForRecipes(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error) {
	stats := make(map[uuid.UUID]domain.RatingStats, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return stats, nil
	}

	var rows []statsRow
	if err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Select("recipe_id, COUNT(*) AS count, COALESCE(AVG(score), 0) AS average").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats[row.RecipeID] = domain.RatingStats{Count: row.Count, Average: row.Average}
	}
	return stats, nil
}

func (r *ratingRepository) GetUserRating(ctx context.Context, userID, recipeID uuid.UUID) (*entities.Rating, error) {
	var rating entities.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) GetUserScores(ctx context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	scores := make(map[uuid.UUID]int, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return scores, nil
	}

	var ratings []entities.Rating
	if err := r.db.WithContext(ctx).
		Select("recipe_id", "score").
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Find(&ratings).Error; err != nil {
		return nil, err
	}

	for _, rating := range ratings {
		scores[rating.RecipeID] = rating.Score
	}
	return scores, nil
}

func (r *ratingRepository) UpsertRating(ctx context.Context, userID, recipeID uuid.UUID, score int) (bool, domain.RatingStats, error) {
	var (
		created bool
		stats   domain.RatingStats
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// DO NOTHING waits out a concurrent first rating and then reports
		// zero rows, so exactly one caller sees the insert.
		rating := entities.Rating{UserID: userID, RecipeID: recipeID, Score: score}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoNothing: true,
		}).Create(&rating)
		if res.Error != nil {
			return res.Error
		}
		created = res.RowsAffected == 1

		if !created {
			if err := tx.Model(&entities.Rating{}).
				Where("user_id = ? AND recipe_id = ?", userID, recipeID).
				Update("score", score).Error; err != nil {
				return err
			}
		}

		var err error
		stats, err = recipeStats(tx, recipeID)
		return err
	})
	if err != nil {
		return false, domain.RatingStats{}, err
	}
	return created, stats, nil
}

func (r *ratingRepository) DeleteRating(ctx context.Context, userID, recipeID uuid.UUID) (domain.RatingStats, error) {
	var stats domain.RatingStats

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&entities.Rating{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRatingNotFound
		}

		var err error
		stats, err = recipeStats(tx, recipeID)
		return err
	})
	if err != nil {
		return domain.RatingStats{}, err
	}
	return stats, nil
}
