package finance

import (
	"strings"
	"time"

	"mutfak-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RecordResponse struct {
	RecordID    uint               `json:"record_id"`
	Date        time.Time          `json:"date"`
	Description string             `json:"description"`
	Amount      float64            `json:"amount"`
	Type        models.FinanceType `json:"type"`
	Category    string             `json:"category"`
}

type RecipeSaleRequest struct {
	RecipeID     uint `json:"recipe_id"`
	QuantitySold int  `json:"quantity_sold"`
}

type CreateRecordRequest struct {
	Date        *string             `json:"date"` // "2025-12-09" formatında, boşsa bugün
	Description string              `json:"description"`
	Amount      *float64            `json:"amount"`
	Type        models.FinanceType  `json:"type"` // "income" | "expense"
	Category    string              `json:"category"`
	RecipeSales []RecipeSaleRequest `json:"recipe_sales"` // opsiyonel, gelir kayıtları için
}

func toRecordResponse(rec models.FinanceRecord) RecordResponse {
	return RecordResponse{
		RecordID:    rec.RecordID,
		Date:        rec.Date,
		Description: rec.Description,
		Amount:      rec.Amount,
		Type:        rec.Type,
		Category:    rec.Category,
	}
}

// GET /finance
func ListRecordsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var records []models.FinanceRecord
		if err := db.Find(&records).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Finans kayıtları listelenemedi")
		}

		res := make([]RecordResponse, 0, len(records))
		for _, rec := range records {
			res = append(res, toRecordResponse(rec))
		}
		return c.JSON(res)
	}
}

// POST /finance
// recipe_sales gönderilmişse kayıt ve satış satırları tek transaction'da yazılır.
func CreateRecordHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRecordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Amount == nil {
			return fiber.NewError(fiber.StatusBadRequest, "amount zorunlu")
		}

		switch body.Type {
		case models.FinanceTypeIncome, models.FinanceTypeExpense:
			// ok
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz type (income|expense)")
		}

		var date time.Time
		if body.Date == nil || *body.Date == "" {
			date = time.Now()
		} else {
			d, err := time.Parse("2006-01-02", *body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı geçersiz, 'YYYY-MM-DD' olmalı")
			}
			date = d
		}

		for _, sale := range body.RecipeSales {
			if sale.RecipeID == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Her satış için recipe_id zorunlu")
			}
		}

		rec := models.FinanceRecord{
			Date:        date,
			Description: strings.TrimSpace(body.Description),
			Amount:      *body.Amount,
			Type:        body.Type,
			Category:    strings.TrimSpace(body.Category),
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			for _, sale := range body.RecipeSales {
				qty := sale.QuantitySold
				if qty <= 0 {
					qty = 1
				}
				row := models.FinanceRecipeSale{
					FinanceID:    rec.RecordID,
					RecipeID:     sale.RecipeID,
					QuantitySold: qty,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Finans kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toRecordResponse(rec))
	}
}
