package models

import "time"

// StockHistory: Envanter miktar değişikliklerinin append-only kaydı.
type StockHistory struct {
	ID              uint          `gorm:"primaryKey"`
	InventoryItemID uint          `gorm:"index;not null"`
	InventoryItem   InventoryItem `gorm:"constraint:OnDelete:CASCADE"`
	QuantityChange  float64       `gorm:"not null"` // pozitif = giriş, negatif = çıkış
	Reason          string        `gorm:"size:255"`
	RecipeID        *uint
	Recipe          *Recipe   `gorm:"constraint:OnDelete:SET NULL"`
	ChangeDate      time.Time `gorm:"column:change_date;autoCreateTime"`
}

func (StockHistory) TableName() string { return "inventory_stock_history" }
