package rating_test

import (
	"context"
	"testing"

	"Recipe-Book/domain"
	"Recipe-Book/entities"
	"Recipe-Book/internal/testutil"
	"Recipe-Book/pkg/rating"
	"Recipe-Book/pkg/recipe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (rating.RatingService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := rating.NewRatingService(rating.NewRatingRepository(db), recipe.NewRecipeRepository(db))
	return svc, db
}

func TestNoRatings(t *testing.T) {
	svc, db := newService(t)
	author := testutil.CreateUser(t, db, "author")
	r := testutil.CreateRecipe(t, db, author, "Toast")

	avg, err := svc.AverageFor(context.Background(), r.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	count, err := svc.CountFor(context.Background(), r.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	score, err := svc.ScoreFor(context.Background(), domain.AuthenticatedViewer(author.ID.String()), r.ID.String())
	require.NoError(t, err)
	assert.Nil(t, score)
}

func TestUpsert_TwoUsersAverage(t *testing.T) {
	svc, db := newService(t)
	author := testutil.CreateUser(t, db, "author")
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	r := testutil.CreateRecipe(t, db, author, "Chili")

	res, err := svc.Upsert(context.Background(), alice.ID.String(), r.ID.String(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.RatingActionCreated, res.Action)
	assert.Equal(t, "Chili", res.RecipeTitle)

	res, err = svc.Upsert(context.Background(), bob.ID.String(), r.ID.String(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Count)
	assert.Equal(t, 3.0, res.Average)

	avg, err := svc.AverageFor(context.Background(), r.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 3.0, avg)

	count, err := svc.CountFor(context.Background(), r.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestUpsert_UpdatesInPlace(t *testing.T) {
	svc, db := newService(t)
	author := testutil.CreateUser(t, db, "author")
	user := testutil.CreateUser(t, db, "user")
	r := testutil.CreateRecipe(t, db, author, "Chili")

	_, err := svc.Upsert(context.Background(), user.ID.String(), r.ID.String(), 2)
	require.NoError(t, err)

	res, err := svc.Upsert(context.Background(), user.ID.String(), r.ID.String(), 4)
	require.NoError(t, err)
	assert.Equal(t, domain.RatingActionUpdated, res.Action)
	assert.Equal(t, int64(1), res.Count)
	assert.Equal(t, 4.0, res.Average)

	var rows int64
	db.Model(&entities.Rating{}).Where("user_id = ? AND recipe_id = ?", user.ID, r.ID).Count(&rows)
	assert.Equal(t, int64(1), rows)

	score, err := svc.ScoreFor(context.Background(), domain.AuthenticatedViewer(user.ID.String()), r.ID.String())
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, 4, *score)
}

func TestUpsert_Invalid(t *testing.T) {
	svc, db := newService(t)
	author := testutil.CreateUser(t, db, "author")
	r := testutil.CreateRecipe(t, db, author, "Chili")

	for _, score := range []int{0, 6, -1} {
		_, err := svc.Upsert(context.Background(), author.ID.String(), r.ID.String(), score)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	_, err := svc.Upsert(context.Background(), author.ID.String(), uuid.NewString(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpsertThenDelete_RestoresStats(t *testing.T) {
	svc, db := newService(t)
	author := testutil.CreateUser(t, db, "author")
	user := testutil.CreateUser(t, db, "user")
	r := testutil.CreateRecipe(t, db, author, "Chili")
	testutil.Rate(t, db, author, r, 2)

	beforeAvg, _ := svc.AverageFor(context.Background(), r.ID.String())
	beforeCount, _ := svc.CountFor(context.Background(), r.ID.String())

	_, err := svc.Upsert(context.Background(), user.ID.String(), r.ID.String(), 5)
	require.NoError(t, err)

	res, err := svc.Delete(context.Background(), user.ID.String(), r.ID.String())
	require.NoError(t, err)
	assert.Equal(t, beforeCount, res.Count)
	assert.Equal(t, beforeAvg, res.Average)
	assert.Equal(t, "Chili", res.RecipeTitle)

	_, err = svc.Delete(context.Background(), user.ID.String(), r.ID.String())
	assert.ErrorIs(t, err, domain.ErrRatingNotFound)
}

func TestScoreFor_Anonymous(t *testing.T) {
	svc, db := newService(t)
	author := testutil.CreateUser(t, db, "author")
	r := testutil.CreateRecipe(t, db, author, "Chili")
	testutil.Rate(t, db, author, r, 5)

	score, err := svc.ScoreFor(context.Background(), domain.Anonymous(), r.ID.String())
	require.NoError(t, err)
	assert.Nil(t, score)

	scores, err := svc.ScoresFor(context.Background(), domain.Anonymous(), []uuid.UUID{r.ID})
	require.NoError(t, err)
	assert.Empty(t, scores)
}
