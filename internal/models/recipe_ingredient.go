package models

type RecipeIngredient struct {
	ID                   uint          `gorm:"primaryKey"`
	RecipeID             uint          `gorm:"index;not null"`
	Recipe               Recipe        `gorm:"constraint:OnDelete:CASCADE"`
	InventoryItemID      uint          `gorm:"index;not null"`
	InventoryItem        InventoryItem `gorm:"constraint:OnDelete:RESTRICT"` // malzeme kullanımdayken silinemez
	Quantity             float64       `gorm:"not null"`
	Unit                 string        `gorm:"size:20;not null"`
	UnitConversionFactor float64       `gorm:"column:unit_conversion_factor;default:1"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }
