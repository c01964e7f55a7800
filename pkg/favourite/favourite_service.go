package favourite

import (
	"context"

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

	FavouriteService interface {
		IsFavourite(ctx context.Context, viewer domain.Viewer, recipeID string) (bool, error)
		FavouriteIDsFor(ctx context.Context, viewer domain.Viewer) ([]uuid.UUID, error)
		Toggle(ctx context.Context, viewerID, recipeID string) (domain.ToggleFavouriteResult, error)
	}

	favouriteService struct {
		favouriteRepository FavouriteRepository
		recipes             RecipeFinder
	}
)

func NewFavouriteService(favouriteRepository FavouriteRepository, recipes RecipeFinder) FavouriteService {
	return &favouriteService{
		favouriteRepository: favouriteRepository,
		recipes:             recipes,
	}
}

// IsFavourite is false for anonymous viewers.
func (s *favouriteService) IsFavourite(ctx context.Context, viewer domain.Viewer, recipeID string) (bool, error) {
	userID, ok := viewerUUID(viewer)
	if !ok {
		return false, nil
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return false, nil
	}
	return s.favouriteRepository.IsRecipeFavourite(ctx, userID, recipeUUID)
}

// FavouriteIDsFor returns the recipes the viewer favourited, oldest first.
// Anonymous viewers get an empty, non-nil slice.
func (s *favouriteService) FavouriteIDsFor(ctx context.Context, viewer domain.Viewer) ([]uuid.UUID, error) {
	userID, ok := viewerUUID(viewer)
	if !ok {
		return []uuid.UUID{}, nil
	}
	ids, err := s.favouriteRepository.GetUserFavouriteIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

func (s *favouriteService) Toggle(ctx context.Context, viewerID, recipeID string) (domain.ToggleFavouriteResult, error) {
	userID, err := uuid.Parse(viewerID)
	if err != nil {
		return domain.ToggleFavouriteResult{}, domain.ErrUnauthenticated
	}

	recipe, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.ToggleFavouriteResult{}, err
	}

	added, err := s.favouriteRepository.ToggleFavourite(ctx, userID, recipe.ID)
	if err != nil {
		return domain.ToggleFavouriteResult{}, err
	}

	action := domain.FavouriteActionRemoved
	if added {
		action = domain.FavouriteActionAdded
	}
	return domain.ToggleFavouriteResult{
		Action:      action,
		RecipeTitle: recipe.Title,
	}, nil
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
