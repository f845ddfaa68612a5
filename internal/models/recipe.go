package models

import "time"

type Recipe struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:100;not null"`
	Instructions *string `gorm:"type:text"` // opsiyonel
	SellingPrice float64 `gorm:"not null;default:0"`
	ImageURL     string  `gorm:"column:image_url;size:255"`
	CategoryID   *uint
	Category     *RecipeCategory `gorm:"constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Recipe) TableName() string { return "recipes" }
