package rating

import (
	"context"
	"errors"

	"Recipe-Book/domain"
	"Recipe-Book/entities"

	"github.com/google/uuid"
)

type (
	// RecipeFinder resolves a recipe by id. It returns domain.ErrRecipeNotFound
	// when the recipe does not exist.
	RecipeFinder interface {
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
	}

	RatingService interface {
		AverageFor(ctx context.Context, recipeID string) (float64, error)
		CountFor(ctx context.Context, recipeID string) (int64, error)
		ScoreFor(ctx context.Context, viewer domain.Viewer, recipeID string) (*int, error)
		StatsFor(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error)
		ScoresFor(ctx context.Context, viewer domain.Viewer, recipeIDs []uuid.UUID) (map[uuid.UUID]int, error)
		Upsert(ctx context.Context, viewerID, recipeID string, score int) (domain.UpsertRatingResult, error)
		Delete(ctx context.Context, viewerID, recipeID string) (domain.DeleteRatingResult, error)
	}

	ratingService struct {
		ratingRepository RatingRepository
		recipes          RecipeFinder
	}
)

func NewRatingService(ratingRepository RatingRepository, recipes RecipeFinder) RatingService {
	return &ratingService{
		ratingRepository: ratingRepository,
		recipes:          recipes,
	}
}

// AverageFor is 0.0 for recipes without ratings.
func (s *ratingService) AverageFor(ctx context.Context, recipeID string) (float64, error) {
	stats, err := s.stats(ctx, recipeID)
	return stats.Average, err
}

func (s *ratingService) CountFor(ctx context.Context, recipeID string) (int64, error) {
	stats, err := s.stats(ctx, recipeID)
	return stats.Count, err
}

func (s *ratingService) stats(ctx context.Context, recipeID string) (domain.RatingStats, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RatingStats{}, domain.ErrRecipeNotFound
	}
	return s.ratingRepository.GetRecipeStats(ctx, id)
}

// ScoreFor returns nil when the viewer is anonymous or has not rated the recipe.
func (s *ratingService) ScoreFor(ctx context.Context, viewer domain.Viewer, recipeID string) (*int, error) {
	userID, ok := viewerUUID(viewer)
	if !ok {
		return nil, nil
	}
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, nil
	}

	rating, err := s.ratingRepository.GetUserRating(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrRatingNotFound) {
			return nil, nil
		}
		return nil, err
	}
	score := rating.Score
	return &score, nil
}

func (s *ratingService) StatsFor(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]domain.RatingStats, error) {
	return s.ratingRepository.GetStatsForRecipes(ctx, recipeIDs)
}

// ScoresFor returns an empty map for anonymous viewers.
func (s *ratingService) ScoresFor(ctx context.Context, viewer domain.Viewer, recipeIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	userID, ok := viewerUUID(viewer)
	if !ok {
		return map[uuid.UUID]int{}, nil
	}
	return s.ratingRepository.GetUserScores(ctx, userID, recipeIDs)
}

func (s *ratingService) Upsert(ctx context.Context, viewerID, recipeID string, score int) (domain.UpsertRatingResult, error) {
	if score < entities.MinRatingScore || score > entities.MaxRatingScore {
		return domain.UpsertRatingResult{}, domain.ErrInvalidScore
	}
	userID, err := uuid.Parse(viewerID)
	if err != nil {
		return domain.UpsertRatingResult{}, domain.ErrUnauthenticated
	}

	recipe, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.UpsertRatingResult{}, err
	}

	created, stats, err := s.ratingRepository.UpsertRating(ctx, userID, recipe.ID, score)
	if err != nil {
		return domain.UpsertRatingResult{}, err
	}

	action := domain.RatingActionUpdated
	if created {
		action = domain.RatingActionCreated
	}
	return domain.UpsertRatingResult{
		Action:      action,
		RecipeTitle: recipe.Title,
		RatingStats: stats,
	}, nil
}

func (s *ratingService) Delete(ctx context.Context, viewerID, recipeID string) (domain.DeleteRatingResult, error) {
	userID, err := uuid.Parse(viewerID)
	if err != nil {
		return domain.DeleteRatingResult{}, domain.ErrUnauthenticated
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.DeleteRatingResult{}, domain.ErrRatingNotFound
	}

	stats, err := s.ratingRepository.DeleteRating(ctx, userID, recipeUUID)
	if err != nil {
		return domain.DeleteRatingResult{}, err
	}

	result := domain.DeleteRatingResult{RatingStats: stats}
	if recipe, err := s.recipes.GetRecipeByID(ctx, recipeID); err == nil {
		result.RecipeTitle = recipe.Title
	}
	return result, nil
}

func viewerUUID(viewer domain.Viewer) (uuid.UUID, bool) {
	if !viewer.Authenticated {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(viewer.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
