package analytics

import (
	"time"

	"mutfak-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SnapshotResponse struct {
	AnalyticsID      uint      `json:"analytics_id"`
	Month            string    `json:"month"`
	TotalIncome      float64   `json:"total_income"`
	TotalExpense     float64   `json:"total_expense"`
	NetProfit        float64   `json:"net_profit"`
	RecipeSalesCount int       `json:"recipe_sales_count"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CalculateRequest struct {
	Month string `json:"month"` // "YYYY-MM"
}

func toSnapshotResponse(s models.ProfitAnalytics) SnapshotResponse {
	return SnapshotResponse{
		AnalyticsID:      s.AnalyticsID,
		Month:            s.Month,
		TotalIncome:      s.TotalIncome,
		TotalExpense:     s.TotalExpense,
		NetProfit:        s.NetProfit,
		RecipeSalesCount: s.RecipeSalesCount,
		UpdatedAt:        s.UpdatedAt,
	}
}

// GET /analytics
func ListSnapshotsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var snapshots []models.ProfitAnalytics
		if err := db.Find(&snapshots).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Analiz kayıtları listelenemedi")
		}

		res := make([]SnapshotResponse, 0, len(snapshots))
		for _, s := range snapshots {
			res = append(res, toSnapshotResponse(s))
		}
		return c.JSON(res)
	}
}

// POST /analytics/calculate
// Ay toplamlarını hesaplayıp yeni bir snapshot satırı yazar. Aynı ay ikinci
// kez hesaplanmak istenirse unique ihlali veritabanına inmeden 409 döner.
func CalculateHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CalculateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		monthStart, err := time.Parse("2006-01", body.Month)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Ay formatı geçersiz, 'YYYY-MM' olmalı")
		}
		monthEnd := monthStart.AddDate(0, 1, 0)

		var existing int64
		if err := db.Model(&models.ProfitAnalytics{}).
			Where("month = ?", body.Month).
			Count(&existing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Analiz kontrol edilemedi")
		}
		if existing > 0 {
			return fiber.NewError(fiber.StatusConflict, "Bu ay için analiz zaten hesaplanmış")
		}

		// Yarı açık aralık [ay başı, sonraki ay başı): SQLite ve Postgres'te
		// aynı şekilde çalışır, strftime benzeri fonksiyonlara gerek kalmaz.
		sumByType := func(t models.FinanceType) (float64, error) {
			var total float64
			err := db.Model(&models.FinanceRecord{}).
				Select("COALESCE(SUM(amount), 0)").
				Where("type = ? AND date >= ? AND date < ?", t, monthStart, monthEnd).
				Scan(&total).Error
			return total, err
		}

		income, err := sumByType(models.FinanceTypeIncome)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gelir toplamı hesaplanamadı")
		}
		expense, err := sumByType(models.FinanceTypeExpense)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gider toplamı hesaplanamadı")
		}

		var salesCount int64
		if err := db.Model(&models.FinanceRecipeSale{}).
			Select("COALESCE(SUM(finance_recipe_sales.quantity_sold), 0)").
			Joins("JOIN finance ON finance.record_id = finance_recipe_sales.finance_id").
			Where("finance.type = ? AND finance.date >= ? AND finance.date < ?",
				models.FinanceTypeIncome, monthStart, monthEnd).
			Scan(&salesCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış adedi hesaplanamadı")
		}

		snapshot := models.ProfitAnalytics{
			Month:            body.Month,
			TotalIncome:      income,
			TotalExpense:     expense,
			NetProfit:        income - expense,
			RecipeSalesCount: int(salesCount),
		}

		if err := db.Create(&snapshot).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Analiz kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toSnapshotResponse(snapshot))
	}
}
