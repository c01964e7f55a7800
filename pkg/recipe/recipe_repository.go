package recipe

import (
	"context"
	"errors"
	"strings"

	"Recipe-Book/domain"
	"Recipe-Book/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uuid.UUID) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error)
		GetPublishedRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error)
		// GetPublishedRecipes returns published recipes matching filter in
		// creation order (created_at, then id).
		GetPublishedRecipes(ctx context.Context, filter SearchFilter) ([]*entities.Recipe, error)
		GetPublishedRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRecipe
		}
		return err
	}
	return nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	if err := r.db.WithContext(ctx).Omit("Author").Save(recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRecipe
		}
		return err
	}
	return nil
}

// DeleteRecipe removes the recipe and everything that belongs to it. The
// foreign keys cascade as well; deleting explicitly keeps stores without
// enforced constraints consistent.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []any{&entities.Comment{}, &entities.Favourite{}, &entities.Rating{}} {
			if err := tx.Where("recipe_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(&entities.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRecipeNotFound
		}
		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", recipeID).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	return r.firstBySlug(r.db.WithContext(ctx), slug)
}

func (r *recipeRepository) GetPublishedRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	return r.firstBySlug(r.db.WithContext(ctx).Where("status = ?", entities.StatusPublished), slug)
}

func (r *recipeRepository) firstBySlug(db *gorm.DB, slug string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := db.Preload("Author").Where("slug = ?", slug).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetPublishedRecipes(ctx context.Context, filter SearchFilter) ([]*entities.Recipe, error) {
	query := r.db.WithContext(ctx).
		Preload("Author").
		Where("status = ?", entities.StatusPublished)

	switch {
	case filter.Category != "":
		query = query.Where("category = ?", filter.Category)
	case filter.Text != "":
		like := "%" + escapeLike(strings.ToLower(filter.Text)) + "%"
		query = query.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(ingredients) LIKE ? ESCAPE '\')`, like, like)
	}

	var recipes []*entities.Recipe
	if err := query.Order("created_at ASC, id ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetPublishedRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	if len(ids) == 0 {
		return []*entities.Recipe{}, nil
	}

	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("status = ? AND id IN ?", entities.StatusPublished, ids).
		Order("created_at ASC, id ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
