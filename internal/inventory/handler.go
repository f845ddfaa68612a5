package inventory

import (
	"strings"
	"time"

	"mutfak-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ItemResponse struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Quantity          float64   `json:"quantity"`
	Unit              string    `json:"unit"`
	Price             float64   `json:"price"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	Description       string    `json:"description"`
	LastUpdated       time.Time `json:"last_updated"`
}

type ItemRequest struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
	Price    *float64 `json:"price"`
}

type StockHistoryResponse struct {
	ID              uint      `json:"id"`
	InventoryItemID uint      `json:"inventory_item_id"`
	QuantityChange  float64   `json:"quantity_change"`
	Reason          string    `json:"reason"`
	RecipeID        *uint     `json:"recipe_id"`
	ChangeDate      time.Time `json:"change_date"`
}

func toItemResponse(it models.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:                it.ID,
		Name:              it.Name,
		Quantity:          it.Quantity,
		Unit:              it.Unit,
		Price:             it.Price,
		LowStockThreshold: it.LowStockThreshold,
		Description:       it.Description,
		LastUpdated:       it.LastUpdated,
	}
}

// Ortak body kontrolü: name/unit boş olamaz, quantity/price gönderilmek zorunda.
// Negatif değerler bilinçli olarak kabul ediliyor (sayım düzeltmeleri için).
func validateItemRequest(body *ItemRequest) error {
	body.Name = strings.TrimSpace(body.Name)
	body.Unit = strings.TrimSpace(body.Unit)
	if body.Name == "" || body.Unit == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name ve unit zorunlu")
	}
	if body.Quantity == nil || body.Price == nil {
		return fiber.NewError(fiber.StatusBadRequest, "quantity ve price zorunlu")
	}
	return nil
}

// GET /inventory
func ListItemsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.InventoryItem
		if err := db.Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter listelenemedi")
		}

		res := make([]ItemResponse, 0, len(items))
		for _, it := range items {
			res = append(res, toItemResponse(it))
		}
		return c.JSON(res)
	}
}

// POST /inventory
func CreateItemHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateItemRequest(&body); err != nil {
			return err
		}

		it := models.InventoryItem{
			Name:     body.Name,
			Quantity: *body.Quantity,
			Unit:     body.Unit,
			Price:    *body.Price,
		}

		if err := db.Create(&it).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"item_id":  it.ID,
			"name":     it.Name,
			"quantity": it.Quantity,
			"unit":     it.Unit,
			"price":    it.Price,
		})
	}
}

// PUT /inventory/:id
// Dört kolonun hepsini koşulsuz yazar (kısmi güncelleme yok). Satır
// bulunamasa da success döner; miktar değiştiyse stok geçmişine kayıt düşer.
func UpdateItemHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body ItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateItemRequest(&body); err != nil {
			return err
		}

		var existing models.InventoryItem
		found := db.First(&existing, "id = ?", id).Error == nil

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.InventoryItem{}).
				Where("id = ?", id).
				Updates(map[string]interface{}{
					"name":     body.Name,
					"quantity": *body.Quantity,
					"unit":     body.Unit,
					"price":    *body.Price,
				}).Error; err != nil {
				return err
			}

			if found && existing.Quantity != *body.Quantity {
				hist := models.StockHistory{
					InventoryItemID: existing.ID,
					QuantityChange:  *body.Quantity - existing.Quantity,
					Reason:          "manuel güncelleme",
				}
				if err := tx.Create(&hist).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter güncellenemedi")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}

// DELETE /inventory/:id
// Stok geçmişi cascade ile silinir; bir tarifte kullanılan malzeme silinemez.
func DeleteItemHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var refCount int64
		if err := db.Model(&models.RecipeIngredient{}).
			Where("inventory_item_id = ?", id).
			Count(&refCount).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Malzeme kontrol edilemedi")
		}
		if refCount > 0 {
			return fiber.NewError(fiber.StatusConflict, "Malzeme bir veya daha fazla tarifte kullanılıyor, önce tariflerden çıkarın")
		}

		if err := db.Delete(&models.InventoryItem{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Envanter kaydı silinemedi")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}

// GET /inventory/:id/history
func ListStockHistoryHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.InventoryItem
		if err := db.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Envanter kaydı bulunamadı")
		}

		var rows []models.StockHistory
		if err := db.Where("inventory_item_id = ?", item.ID).
			Order("change_date desc, id desc").
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok geçmişi listelenemedi")
		}

		res := make([]StockHistoryResponse, 0, len(rows))
		for _, h := range rows {
			res = append(res, StockHistoryResponse{
				ID:              h.ID,
				InventoryItemID: h.InventoryItemID,
				QuantityChange:  h.QuantityChange,
				Reason:          h.Reason,
				RecipeID:        h.RecipeID,
				ChangeDate:      h.ChangeDate,
			})
		}
		return c.JSON(res)
	}
}
