package models

import "time"

type InventoryItem struct {
	ID                uint      `gorm:"primaryKey"`
	Name              string    `gorm:"size:100;not null"`
	Quantity          float64   `gorm:"not null"`
	Unit              string    `gorm:"size:20;not null"` // kg, adet, litre vs.
	Price             float64   `gorm:"not null"`         // birim fiyat
	LowStockThreshold int       `gorm:"default:5"`        // bu miktarın altı "az stok"
	Description       string    `gorm:"size:255"`
	LastUpdated       time.Time `gorm:"column:last_updated;autoUpdateTime"`
}

func (InventoryItem) TableName() string { return "inventory_items" }
