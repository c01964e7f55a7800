package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

type Rating struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_rating_user_recipe;index" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_rating_user_recipe;index" json:"recipe_id"`
	Score    int       `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}

func (r *Rating) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
