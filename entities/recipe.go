// File: entities/recipe.go
package entities

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeCategory string
	RecipeStatus   string
)

const (
	CategoryNone       RecipeCategory = "none"
	CategoryChicken    RecipeCategory = "chicken"
	CategoryPork       RecipeCategory = "pork"
	CategoryBeef       RecipeCategory = "beef"
	CategoryFish       RecipeCategory = "fish"
	CategoryVegetarian RecipeCategory = "vegetarian"

	StatusDraft     RecipeStatus = "draft"
	StatusPublished RecipeStatus = "published"

	PlaceholderImage = "placeholder"
	PlaceholderAlt   = "This is a placeholder image"
)

// RecipeCategories lists every category in display order.
var RecipeCategories = []RecipeCategory{
	CategoryNone,
	CategoryChicken,
	CategoryPork,
	CategoryBeef,
	CategoryFish,
	CategoryVegetarian,
}

// ParseRecipeCategory matches a category token case-insensitively.
func ParseRecipeCategory(s string) (RecipeCategory, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range RecipeCategories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

func ParseRecipeStatus(s string) (RecipeStatus, bool) {
	switch RecipeStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusDraft:
		return StatusDraft, true
	case StatusPublished:
		return StatusPublished, true
	}
	return "", false
}

type Recipe struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	Title        string         `gorm:"size:70;uniqueIndex;not null" json:"title"`
	Slug         string         `gorm:"size:70;uniqueIndex;not null" json:"slug"`
	Content      string         `gorm:"type:text;not null" json:"content"`
	Ingredients  string         `gorm:"type:text;not null" json:"ingredients"`
	Teaser       string         `gorm:"size:180;not null" json:"teaser"`
	FeatureImage string         `gorm:"not null" json:"feature_image"`
	AltText      string         `gorm:"size:125" json:"alt_text"`
	Category     RecipeCategory `gorm:"size:20;not null;index" json:"category"`
	Status       RecipeStatus   `gorm:"size:20;not null;index" json:"status"`

	Author     *User        `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments   []*Comment   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Favourites []*Favourite `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Ratings    []*Rating    `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (r *Recipe) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.FeatureImage == "" {
		r.FeatureImage = PlaceholderImage
	}
	if r.AltText == "" {
		r.AltText = PlaceholderAlt
	}
	if r.Category == "" {
		r.Category = CategoryNone
	}
	if r.Status == "" {
		r.Status = StatusDraft
	}
	return nil
}
