package domain

import (
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessGetHighlights   = "success get recipe highlights"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedGetHighlights   = "failed to get recipe highlights"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound           = NewError(ErrNotFound, "recipe not found")
	ErrUnauthorizedRecipeAccess = NewError(ErrUnauthorized, "unauthorized access to recipe")
	ErrDuplicateRecipe          = NewError(ErrConflict, "a recipe with this title or slug already exists")
	ErrInvalidCategory          = NewError(ErrInvalidInput, "invalid recipe category")
	ErrInvalidStatus            = NewError(ErrInvalidInput, "invalid recipe status")
	ErrInvalidSlug              = NewError(ErrInvalidInput, "slug must contain letters or digits")
	ErrReservedSlug             = NewError(ErrInvalidInput, "slug is reserved")
)

const (
	SortNewest        = "newest"
	SortOldest        = "oldest"
	SortHighestRating = "highest-rating"

	QueryAll = "all"
)

type (
	RecipeListRequest struct {
		Query string
		Sort  string
		Page  int
		Limit int
	}

	Recipe struct {
		ID           string    `json:"id"`
		Title        string    `json:"title"`
		Slug         string    `json:"slug"`
		AuthorID     string    `json:"author_id"`
		Author       string    `json:"author,omitempty"`
		Teaser       string    `json:"teaser"`
		FeatureImage string    `json:"feature_image"`
		AltText      string    `json:"alt_text"`
		Category     string    `json:"category"`
		Status       string    `json:"status"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
		AvgRating    float64   `json:"avg_rating"`
		RatingsCount int64     `json:"ratings_count"`
		UserRating   *int      `json:"user_rating"`
		IsFavourite  bool      `json:"is_favourite"`
	}

	RecipeListResponse struct {
		Recipes        []Recipe   `json:"recipes"`
		SearchHeading  string     `json:"search_heading"`
		UserFavourites []string   `json:"user_favourites"`
		Pagination     Pagination `json:"pagination"`
	}

	RecipeHighlightsResponse struct {
		RecipesByRating []Recipe `json:"recipes_by_rating"`
		RecipesByDate   []Recipe `json:"recipes_by_date"`
		UserFavourites  []string `json:"user_favourites"`
	}

	RecipeDetail struct {
		Recipe
		Content      string    `json:"content"`
		Ingredients  string    `json:"ingredients"`
		Comments     []Comment `json:"comments"`
		NoOfComments int64     `json:"no_of_comments"`
	}

	CreateRecipeRequest struct {
		Title       string                `json:"title" form:"title" validate:"required,notblank,max=70"`
		Slug        string                `json:"slug" form:"slug" validate:"omitempty,max=70"`
		Content     string                `json:"content" form:"content" validate:"required,min=100,max=5000"`
		Ingredients string                `json:"ingredients" form:"ingredients" validate:"required,min=10,max=2500"`
		Teaser      string                `json:"teaser" form:"teaser" validate:"required,notblank,max=180"`
		AltText     string                `json:"alt_text" form:"alt_text" validate:"omitempty,max=125"`
		Category    string                `json:"category" form:"category" validate:"omitempty,oneof=none chicken pork beef fish vegetarian"`
		Status      string                `json:"status" form:"status" validate:"omitempty,oneof=draft published"`
		Image       *multipart.FileHeader `json:"-" form:"-"`
	}

	UpdateRecipeRequest struct {
		Title       *string `json:"title" validate:"omitempty,notblank,max=70"`
		Content     *string `json:"content" validate:"omitempty,min=100,max=5000"`
		Ingredients *string `json:"ingredients" validate:"omitempty,min=10,max=2500"`
		Teaser      *string `json:"teaser" validate:"omitempty,notblank,max=180"`
		AltText     *string `json:"alt_text" validate:"omitempty,max=125"`
		Category    *string `json:"category" validate:"omitempty,oneof=none chicken pork beef fish vegetarian"`
		Status      *string `json:"status" validate:"omitempty,oneof=draft published"`
	}
)
