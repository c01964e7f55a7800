// Package testutil opens a migrated in-memory database and seeds fixtures for tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	migration "Recipe-Book/cmd/database/migrate"
	"Recipe-Book/entities"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// NewDB returns a fresh SQLite database with every table migrated. A single
// connection is used so the in-memory database is shared by all queries.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:recipebook%d?mode=memory&cache=shared&_foreign_keys=on", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := migration.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()
	user := &entities.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

// RecipeOption customises a fixture recipe.
type RecipeOption func(*entities.Recipe)

func WithCategory(c entities.RecipeCategory) RecipeOption {
	return func(r *entities.Recipe) { r.Category = c }
}

func WithIngredients(s string) RecipeOption {
	return func(r *entities.Recipe) { r.Ingredients = s }
}

func Draft() RecipeOption {
	return func(r *entities.Recipe) { r.Status = entities.StatusDraft }
}

// CreatedAt pins the creation time so ordering tests are deterministic.
func CreatedAt(ts time.Time) RecipeOption {
	return func(r *entities.Recipe) { r.CreatedAt = ts }
}

// CreateRecipe inserts a published recipe with valid field lengths.
func CreateRecipe(t *testing.T, db *gorm.DB, author *entities.User, title string, opts ...RecipeOption) *entities.Recipe {
	t.Helper()
	recipe := &entities.Recipe{
		AuthorID:    author.ID,
		Title:       title,
		Slug:        slugFor(title),
		Content:     strings.Repeat("Stir gently and season to taste. ", 4),
		Ingredients: "salt, pepper, olive oil",
		Teaser:      "A teaser for " + title,
		Category:    entities.CategoryNone,
		Status:      entities.StatusPublished,
	}
	for _, opt := range opts {
		opt(recipe)
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("create recipe %s: %v", title, err)
	}
	return recipe
}

func Rate(t *testing.T, db *gorm.DB, user *entities.User, recipe *entities.Recipe, score int) {
	t.Helper()
	if err := db.Create(&entities.Rating{UserID: user.ID, RecipeID: recipe.ID, Score: score}).Error; err != nil {
		t.Fatalf("rate recipe: %v", err)
	}
}

func Favourite(t *testing.T, db *gorm.DB, user *entities.User, recipe *entities.Recipe) {
	t.Helper()
	if err := db.Create(&entities.Favourite{UserID: user.ID, RecipeID: recipe.ID}).Error; err != nil {
		t.Fatalf("favourite recipe: %v", err)
	}
}

func slugFor(title string) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "-"))
	if slug == "" {
		return uuid.NewString()
	}
	return slug
}
