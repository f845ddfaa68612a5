package models

type RecipeCategory struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:255"`
}

func (RecipeCategory) TableName() string { return "recipe_categories" }
