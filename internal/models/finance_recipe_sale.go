package models

// FinanceRecipeSale: Bir gelir kaydını satılan tariflere bağlar.
type FinanceRecipeSale struct {
	ID           uint          `gorm:"primaryKey"`
	FinanceID    uint          `gorm:"column:finance_id;index;not null"`
	Finance      FinanceRecord `gorm:"foreignKey:FinanceID;references:RecordID;constraint:OnDelete:CASCADE"`
	RecipeID     uint          `gorm:"index;not null"`
	Recipe       Recipe        `gorm:"constraint:OnDelete:RESTRICT"`
	QuantitySold int           `gorm:"not null;default:1"`
}

func (FinanceRecipeSale) TableName() string { return "finance_recipe_sales" }
