package dashboard

import (
	"time"

	"mutfak-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SummaryResponse struct {
	InventoryCount int64   `json:"inventory_count"`
	LowStockCount  int64   `json:"low_stock_count"`
	InventoryValue float64 `json:"inventory_value"`
	RecipeCount    int64   `json:"recipe_count"`
	Month          string  `json:"month"`
	MonthIncome    float64 `json:"month_income"`
	MonthExpense   float64 `json:"month_expense"`
	MonthNetProfit float64 `json:"month_net_profit"`
}

// GET /dashboard/summary
// Panonun üst kartları için toplu rakamlar: envanter sayıları ve içinde
// bulunulan ayın gelir/gider toplamları.
func SummaryHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var res SummaryResponse

		if err := db.Model(&models.InventoryItem{}).Count(&res.InventoryCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter sayısı alınamadı")
		}
		if err := db.Model(&models.InventoryItem{}).
			Where("quantity <= low_stock_threshold").
			Count(&res.LowStockCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Az stok sayısı alınamadı")
		}
		if err := db.Model(&models.InventoryItem{}).
			Select("COALESCE(SUM(quantity * price), 0)").
			Scan(&res.InventoryValue).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter değeri hesaplanamadı")
		}
		if err := db.Model(&models.Recipe{}).Count(&res.RecipeCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tarif sayısı alınamadı")
		}

		now := time.Now()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		monthEnd := monthStart.AddDate(0, 1, 0)
		res.Month = monthStart.Format("2006-01")

		sumByType := func(t models.FinanceType) (float64, error) {
			var total float64
			err := db.Model(&models.FinanceRecord{}).
				Select("COALESCE(SUM(amount), 0)").
				Where("type = ? AND date >= ? AND date < ?", t, monthStart, monthEnd).
				Scan(&total).Error
			return total, err
		}

		var err error
		if res.MonthIncome, err = sumByType(models.FinanceTypeIncome); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Aylık gelir hesaplanamadı")
		}
		if res.MonthExpense, err = sumByType(models.FinanceTypeExpense); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Aylık gider hesaplanamadı")
		}
		res.MonthNetProfit = res.MonthIncome - res.MonthExpense

		return c.JSON(res)
	}
}
