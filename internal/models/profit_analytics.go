package models

import "time"

// ProfitAnalytics: Ay bazlı kar/zarar anlık görüntüsü. Her ay için tek satır.
type ProfitAnalytics struct {
	AnalyticsID      uint    `gorm:"column:analytics_id;primaryKey"`
	Month            string  `gorm:"size:7;not null;uniqueIndex"` // "YYYY-MM"
	TotalIncome      float64 `gorm:"default:0"`
	TotalExpense     float64 `gorm:"default:0"`
	NetProfit        float64 `gorm:"default:0"`
	RecipeSalesCount int     `gorm:"default:0"`
	UpdatedAt        time.Time
}

func (ProfitAnalytics) TableName() string { return "profit_analytics" }
