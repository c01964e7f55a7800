package domain

var (
	MessageRatingAdded         = " star rating added to "
	MessageRatingUpdated       = "Rating updated for "
	MessageRatingDeleted       = "Rating deleted for recipe "
	MessageRatingLoginRequired = "You need to be logged in to rate recipes!"
	MessageRatingLoginToDelete = "You must be logged in to rate recipes"
	MessageRatingNotFound      = "Sorry, we could not find this rating"
	MessageRatingFailedUpsert  = "Sorry! Something went wrong."

	ErrRatingNotFound = NewError(ErrNotFound, "rating not found")
	ErrInvalidScore   = NewError(ErrInvalidInput, "rating must be a whole number between 1 and 5")
)

const (
	RatingActionCreated = "created"
	RatingActionUpdated = "updated"
)

type (
	UpsertRatingRequest struct {
		RecipeID string `json:"recipeId" validate:"required,uuid"`
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	}

	RatingStats struct {
		Count   int64   `json:"count"`
		Average float64 `json:"average"`
	}

	UpsertRatingResult struct {
		Action      string `json:"action"`
		RecipeTitle string `json:"-"`
		RatingStats
	}

	DeleteRatingResult struct {
		RecipeTitle string `json:"-"`
		RatingStats
	}
)
