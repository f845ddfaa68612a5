package models

import "time"

type FinanceType string

const (
	FinanceTypeIncome  FinanceType = "income"  // gelir
	FinanceTypeExpense FinanceType = "expense" // gider
)

type FinanceRecord struct {
	RecordID    uint        `gorm:"column:record_id;primaryKey"`
	Date        time.Time   `gorm:"index;not null"`
	Description string      `gorm:"size:255"`
	Amount      float64     `gorm:"not null"`
	Type        FinanceType `gorm:"size:10;not null"` // income | expense
	Category    string      `gorm:"size:100"`
}

func (FinanceRecord) TableName() string { return "finance" }
