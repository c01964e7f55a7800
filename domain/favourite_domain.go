package domain

var (
	MessageSuccessGetFavourites = "success get favourite recipes"
	MessageFailedGetFavourites  = "failed to get favourite recipes"

	MessageFavouriteAdded         = "Added to favourites: "
	MessageFavouriteRemoved       = "Removed from favourites: "
	MessageFavouriteLoginRequired = "Log in to favourite recipes"
)

const (
	FavouriteActionAdded   = "added"
	FavouriteActionRemoved = "removed"
)

type (
	ToggleFavouriteRequest struct {
		RecipeID string `json:"recipeId" validate:"required,uuid"`
	}

	ToggleFavouriteResult struct {
		Action      string `json:"action"`
		RecipeTitle string `json:"recipe_title"`
	}

	FavouriteListResponse struct {
		Recipes    []Recipe   `json:"recipes"`
		Pagination Pagination `json:"pagination"`
	}
)
