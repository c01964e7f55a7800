package recipe

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"Recipe-Book/domain"
	"Recipe-Book/entities"
	"Recipe-Book/internal/testutil"
	"Recipe-Book/pkg/comment"
	"Recipe-Book/pkg/favourite"
	"Recipe-Book/pkg/rating"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const fakeBucketURL = "https://bucket.test/"

type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (f *fakeStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/" + fileName + "-" + file.Filename
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeStorage) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return fakeBucketURL + objectKey
}

func (f *fakeStorage) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, fakeBucketURL) {
		return ""
	}
	return strings.TrimPrefix(link, fakeBucketURL)
}

func newTestService(t *testing.T) (RecipeService, *gorm.DB, *fakeStorage) {
	t.Helper()
	db := testutil.NewDB(t)
	recipeRepository := NewRecipeRepository(db)
	ratingService := rating.NewRatingService(rating.NewRatingRepository(db), recipeRepository)
	favouriteService := favourite.NewFavouriteService(favourite.NewFavouriteRepository(db), recipeRepository)
	commentService := comment.NewCommentService(comment.NewCommentRepository(db), recipeRepository, nil)
	store := &fakeStorage{}
	svc := NewRecipeService(recipeRepository, ratingService, favouriteService, commentService, store, 0)
	return svc, db, store
}

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func at(i int) testutil.RecipeOption {
	return testutil.CreatedAt(baseTime.Add(time.Duration(i) * time.Hour))
}

func titles(recipes []domain.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Title
	}
	return out
}

func TestListRecipes_PaginatesPublishedRecipes(t *testing.T) {
	svc, db, _ := newTestService(t)
	author := testutil.CreateUser(t, db, "author")
	for i := 0; i < 12; i++ {
		testutil.CreateRecipe(t, db, author, fmt.Sprintf("Recipe %02d", i), at(i))
	}
	testutil.CreateRecipe(t, db, author, "Secret Draft", testutil.Draft(), at(20))

	ctx := context.Background()
	first, err := svc.ListRecipes(ctx, domain.Anonymous(), domain.RecipeListRequest{Page: 1})
	require.NoError(t, err)
	assert.Len(t, first.Recipes, 8)
	assert.Equal(t, 2, first.Pagination.TotalPages)
	assert.Equal(t, int64(12), first.Pagination.Total)
	assert.Equal(t, "Search for your new favourite recipes", first.SearchHeading)
	assert.Equal(t, "Recipe 00", first.Recipes[0].Title)

	second, err := svc.ListRecipes(ctx, domain.Anonymous(), domain.RecipeListRequest{Page: 2})
	require.NoError(t, err)
	assert.Len(t, second.Recipes, 4)
	assert.Equal(t, 4, second.Pagination.Count)
	assert.NotContains(t, titles(second.Recipes), "Secret Draft")
	assert.NotNil(t, second.UserFavourites)
	assert.Empty(t, second.UserFavourites)
}

func TestListRecipes_CategoryKeyword(t *testing.T) {
	svc, db, _ := newTestService(t)
	author := testutil.CreateUser(t, db, "author")
	testutil.CreateRecipe(t, db, author, "Roast Dinner", testutil.WithCategory(entities.CategoryChicken), at(0))
	testutil.CreateRecipe(t, db, author, "Chicken Style Beef", testutil.WithCategory(entities.CategoryBeef), at(1))
	testutil.CreateRecipe(t, db, author, "Pie", testutil.WithIngredients("chicken, pastry"), at(2))
	testutil.CreateRecipe(t, db, author, "Draft Curry", testutil.WithCategory(entities.CategoryChicken), testutil.Draft(), at(3))

	for _, q := range []string{"chicken", "CHICKEN", "Chicken"} {
		res, err := svc.ListRecipes(context.Background(), domain.Anonymous(), domain.RecipeListRequest{Query: q})
		require.NoError(t, err)
		assert.Equal(t, []string{"Roast Dinner"}, titles(res.Recipes), q)
		assert.Equal(t, fmt.Sprintf("Showing 1 results for '%s'.", q), res.SearchHeading)
	}
}

func TestListRecipes_SubstringSearch(t *testing.T) {
	svc, db, _ := newTestService(t)
	author := testutil.CreateUser(t, db, "author")
	testutil.CreateRecipe(t, db, author, "Garlic Bread", at(0))
	testutil.CreateRecipe(t, db, author, "Aioli", testutil.WithIngredients("egg, GARLIC, oil"), at(1))
	testutil.CreateRecipe(t, db, author, "Plain Rice", at(2))
	testutil.CreateRecipe(t, db, author, "Garlic Draft", testutil.Draft(), at(3))

	res, err := svc.ListRecipes(context.Background(), domain.Anonymous(), domain.RecipeListRequest{Query: "gArLiC"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Garlic Bread", "Aioli"}, titles(res.Recipes))

	res, err = svc.ListRecipes(context.Background(), domain.Anonymous(), domain.RecipeListRequest{Query: "100%"})
	require.NoError(t, err)
	assert.Empty(t, res.Recipes)
}

func TestListRecipes_NoResultsHeading(t *testing.T) {
	svc, db, _ := newTestService(t)
	author := testutil.CreateUser(t, db, "author")
	testutil.CreateRecipe(t, db, author, "Soup")

	res, err := svc.ListRecipes(context.Background(), domain.Anonymous(), domain.RecipeListRequest{Query: "not-existing"})
	require.NoError(t, err)
	assert.Empty(t, res.Recipes)
	assert.Equal(t, "Sorry, no results for 'not-existing'. Please try again.", res.SearchHeading)

	res, err = svc.ListRecipes(context.Background(), domain.Anonymous(), domain.RecipeListRequest{Query: "all"})
	require.NoError(t, err)
	assert.Len(t, res.Recipes, 1)
	assert.Equal(t, "Showing all recipes, a total of 1.", res.SearchHeading)
}

func TestListRecipes_AnnotatesForViewer(t *testing.T) {
	svc, db, _ := newTestService(t)
	author := testutil.CreateUser(t, db, "author")
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	stew := testutil.CreateRecipe(t, db, author, "Stew", at(0))
	salad := testutil.CreateRecipe(t, db, author, "Salad", at(1))
	testutil.CreateRecipe(t, db, author, "Toast", at(2))

	testutil.Rate(t, db, alice, stew, 1)
	testutil.Rate(t, db, bob, stew, 5)
	testutil.Rate(t, db, bob, salad, 4)
	testutil.Favourite(t, db, alice, salad)

	viewer := domain.AuthenticatedViewer(alice.ID.String())
	res, err := svc.ListRecipes(context.Background(), viewer, domain.RecipeListRequest{Sort: domain.SortHighestRating})
	require.NoError(t, err)
	require.Equal(t, []string{"Salad", "Stew", "Toast"}, titles(res.Recipes))

	saladRes, stewRes, toastRes := res.Recipes[0], res.Recipes[1], res.Recipes[2]
	assert.Equal(t, 4.0, saladRes.AvgRating)
	assert.Nil(t, saladRes.UserRating)
	assert.True(t, saladRes.IsFavourite)

	assert.Equal(t, 3.0, stewRes.AvgRating)
	assert.Equal(t, int64(2), stewRes.RatingsCount)
	require.NotNil(t, stewRes.UserRating)
	assert.Equal(t, 1, *stewRes.UserRating)
	assert.False(t, stewRes.IsFavourite)

	assert.Equal(t, 0.0, toastRes.AvgRating)
	assert.Equal(t, int64(0), toastRes.RatingsCount)

	assert.Equal(t, []string{salad.ID.String()}, res.UserFavourites)

	anon, err := svc.ListRecipes(context.Background(), domain.Anonymous(), domain.RecipeListRequest{})
	require.NoError(t, err)
	for _, r := range anon.Recipes {
		assert.Nil(t, r.UserRating)
		assert.False(t, r.IsFavourite)
	}
}

func TestListRecipes_SortIsRepeatable(t *testing.T) {
	svc, db, _ := newTestService(t)
	author := testutil.CreateUser(t, db, "author")
	for i := 0; i < 5; i++ {
		testutil.CreateRecipe(t, db, author, fmt.Sprintf("Dish %d", i), testutil.CreatedAt(baseTime))
	}

	req := domain.RecipeListRequest{Sort: domain.SortHighestRating}
	first, err := svc.ListRecipes(context.Background(), domain.Anonymous(), req)
	require.NoError(t, err)
	second, err := svc.ListRecipes(context.Background(), domain.Anonymous(), req)
	require.NoError(t, err)
	assert.Equal(t, titles(first.Recipes), titles(second.Recipes))
}

func TestGetHighlights(t *testing.T) {
	svc, db, _ := newTestService(t)
	author := testutil.CreateUser(t, db, "author")
	rater := testutil.CreateUser(t, db, "rater")

	var recipes []*entities.Recipe
	for i := 0; i < 6; i++ {
		recipes = append(recipes, testutil.CreateRecipe(t, db, author, fmt.Sprintf("Dish %d", i), at(i)))
	}
	testutil.CreateRecipe(t, db, author, "Draft", testutil.Draft(), at(10))
	testutil.Rate(t, db, rater, recipes[5], 5)
	testutil.Rate(t, db, rater, recipes[0], 4)
	testutil.Rate(t, db, rater, recipes[2], 3)

	res, err := svc.GetHighlights(context.Background(), domain.Anonymous())
	require.NoError(t, err)
	assert.Equal(t, []string{"Dish 5", "Dish 0", "Dish 2", "Dish 1"}, titles(res.RecipesByRating))
	assert.Equal(t, []string{"Dish 5", "Dish 4", "Dish 3", "Dish 2"}, titles(res.RecipesByDate))
}

func TestGetRecipeDetail(t *testing.T) {
	svc, db, _ := newTestService(t)
	author := testutil.CreateUser(t, db, "author")
	reader := testutil.CreateUser(t, db, "reader")
	recipe := testutil.CreateRecipe(t, db, author, "Fish Pie", testutil.WithCategory(entities.CategoryFish))
	testutil.CreateRecipe(t, db, author, "Hidden", testutil.Draft())

	older := entities.Comment{RecipeID: recipe.ID, AuthorID: reader.ID, Body: "first", CreatedAt: baseTime}
	newer := entities.Comment{RecipeID: recipe.ID, AuthorID: author.ID, Body: "second", CreatedAt: baseTime.Add(time.Hour)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)
	require.NoError(t, db.Model(&older).Update("approved", false).Error)
	testutil.Rate(t, db, reader, recipe, 4)
	testutil.Favourite(t, db, reader, recipe)

	res, err := svc.GetRecipeDetail(context.Background(), domain.AuthenticatedViewer(reader.ID.String()), "fish-pie")
	require.NoError(t, err)
	assert.Equal(t, "Fish Pie", res.Title)
	assert.Equal(t, "author", res.Author)
	assert.Equal(t, recipe.Content, res.Content)
	assert.Equal(t, 4.0, res.AvgRating)
	require.NotNil(t, res.UserRating)
	assert.Equal(t, 4, *res.UserRating)
	assert.True(t, res.IsFavourite)

	require.Len(t, res.Comments, 2)
	assert.Equal(t, "second", res.Comments[0].Body)
	assert.Equal(t, "reader", res.Comments[1].Author)
	assert.Equal(t, int64(1), res.NoOfComments)

	_, err = svc.GetRecipeDetail(context.Background(), domain.Anonymous(), "hidden")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetRecipeDetail(context.Background(), domain.Anonymous(), "missing")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetFavouriteRecipes(t *testing.T) {
	svc, db, _ := newTestService(t)
	author := testutil.CreateUser(t, db, "author")
	fan := testutil.CreateUser(t, db, "fan")
	liked := testutil.CreateRecipe(t, db, author, "Liked", at(0))
	draft := testutil.CreateRecipe(t, db, author, "Liked Draft", testutil.Draft(), at(1))
	testutil.CreateRecipe(t, db, author, "Ignored", at(2))
	testutil.Favourite(t, db, fan, liked)
	testutil.Favourite(t, db, fan, draft)

	res, err := svc.GetFavouriteRecipes(context.Background(), domain.AuthenticatedViewer(fan.ID.String()), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Liked"}, titles(res.Recipes))
	assert.True(t, res.Recipes[0].IsFavourite)

	anon, err := svc.GetFavouriteRecipes(context.Background(), domain.Anonymous(), 1, 0)
	require.NoError(t, err)
	assert.Empty(t, anon.Recipes)
}

func validCreateRequest(title string) domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Title:       title,
		Content:     strings.Repeat("Whisk the batter until smooth. ", 4),
		Ingredients: "flour, eggs, milk",
		Teaser:      "Thin and crisp",
		Category:    "vegetarian",
		Status:      "published",
	}
}

func TestCreateRecipe(t *testing.T) {
	svc, db, store := newTestService(t)
	author := testutil.CreateUser(t, db, "author")

	res, err := svc.CreateRecipe(context.Background(), author.ID.String(), validCreateRequest("Sunday Pancakes"))
	require.NoError(t, err)
	assert.Equal(t, "sunday-pancakes", res.Slug)
	assert.Equal(t, entities.PlaceholderImage, res.FeatureImage)
	assert.Equal(t, "vegetarian", res.Category)
	assert.Empty(t, store.uploaded)

	_, err = svc.CreateRecipe(context.Background(), author.ID.String(), validCreateRequest("Sunday Pancakes"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	req := validCreateRequest("Crepes")
	req.Status = ""
	req.Image = &multipart.FileHeader{Filename: "crepes.jpg", Size: 1024}
	res, err = svc.CreateRecipe(context.Background(), author.ID.String(), req)
	require.NoError(t, err)
	assert.Equal(t, "draft", res.Status)
	assert.Equal(t, fakeBucketURL+"recipes/crepes-crepes.jpg", res.FeatureImage)

	req = validCreateRequest("!!!")
	_, err = svc.CreateRecipe(context.Background(), author.ID.String(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidSlug)

	res, err = svc.CreateRecipe(context.Background(), author.ID.String(), validCreateRequest("Crème Brûlée"))
	require.NoError(t, err)
	assert.Equal(t, "creme-brulee", res.Slug)
}

func TestCreateRecipeReservedSlug(t *testing.T) {
	svc, db, _ := newTestService(t)
	author := testutil.CreateUser(t, db, "author")

	_, err := svc.CreateRecipe(context.Background(), author.ID.String(), validCreateRequest("Highlights"))
	assert.ErrorIs(t, err, domain.ErrReservedSlug)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req := validCreateRequest("Weekly Picks")
	req.Slug = "Highlights"
	_, err = svc.CreateRecipe(context.Background(), author.ID.String(), req)
	assert.ErrorIs(t, err, domain.ErrReservedSlug)

	var count int64
	db.Model(&entities.Recipe{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateRecipeForDeletedAuthor(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateRecipe(context.Background(), uuid.NewString(), validCreateRequest("Orphan Stew"))
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}

func TestUpdateAndDeleteRecipe(t *testing.T) {
	svc, db, store := newTestService(t)
	author := testutil.CreateUser(t, db, "author")
	other := testutil.CreateUser(t, db, "other")
	fan := testutil.CreateUser(t, db, "fan")

	req := validCreateRequest("Waffles")
	req.Image = &multipart.FileHeader{Filename: "waffles.png", Size: 10}
	created, err := svc.CreateRecipe(context.Background(), author.ID.String(), req)
	require.NoError(t, err)

	newTitle := "Belgian Waffles"
	status := "draft"
	_, err = svc.UpdateRecipe(context.Background(), other.ID.String(), "waffles", domain.UpdateRecipeRequest{Title: &newTitle})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	updated, err := svc.UpdateRecipe(context.Background(), author.ID.String(), "waffles", domain.UpdateRecipeRequest{Title: &newTitle, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, "waffles", updated.Slug)
	assert.Equal(t, "draft", updated.Status)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	var recipe entities.Recipe
	require.NoError(t, db.First(&recipe, "slug = ?", "waffles").Error)
	testutil.Rate(t, db, fan, &recipe, 5)
	testutil.Favourite(t, db, fan, &recipe)

	assert.ErrorIs(t, svc.DeleteRecipe(context.Background(), other.ID.String(), "waffles"), domain.ErrUnauthorized)
	require.NoError(t, svc.DeleteRecipe(context.Background(), author.ID.String(), "waffles"))
	assert.ErrorIs(t, svc.DeleteRecipe(context.Background(), author.ID.String(), "waffles"), domain.ErrNotFound)

	var ratings, favourites int64
	db.Model(&entities.Rating{}).Where("recipe_id = ?", recipe.ID).Count(&ratings)
	db.Model(&entities.Favourite{}).Where("recipe_id = ?", recipe.ID).Count(&favourites)
	assert.Zero(t, ratings)
	assert.Zero(t, favourites)
	assert.Equal(t, []string{"recipes/waffles-waffles.png"}, store.deleted)
}
