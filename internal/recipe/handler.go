package recipe

import (
	"strings"
	"time"

	"mutfak-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RecipeResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Instructions *string   `json:"instructions"`
	SellingPrice float64   `json:"selling_price"`
	ImageURL     string    `json:"image_url"`
	CategoryID   *uint     `json:"category_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IngredientDetail: tarif malzemesi + envanterden çekilen güncel ad ve fiyat.
// Fiyat okuma anındaki envanter fiyatıdır, tarife kaydedilmiş bir kopya değil.
type IngredientDetail struct {
	ID                   uint    `gorm:"column:id" json:"id"`
	RecipeID             uint    `gorm:"column:recipe_id" json:"recipe_id"`
	InventoryItemID      uint    `gorm:"column:inventory_item_id" json:"inventory_item_id"`
	Quantity             float64 `gorm:"column:quantity" json:"quantity"`
	Unit                 string  `gorm:"column:unit" json:"unit"`
	UnitConversionFactor float64 `gorm:"column:unit_conversion_factor" json:"unit_conversion_factor"`
	IngredientName       string  `gorm:"column:ingredient_name" json:"ingredient_name"`
	Price                float64 `gorm:"column:price" json:"price"`
}

type RecipeDetailResponse struct {
	RecipeResponse
	Ingredients []IngredientDetail `json:"ingredients"`
}

type IngredientRequest struct {
	InventoryItemID      uint     `json:"inventory_item_id"`
	Quantity             *float64 `json:"quantity"`
	Unit                 string   `json:"unit"`
	UnitConversionFactor *float64 `json:"unit_conversion_factor"`
}

type RecipeRequest struct {
	Name         string              `json:"name"`
	Instructions *string             `json:"instructions"`
	SellingPrice *float64            `json:"selling_price"`
	ImageURL     *string             `json:"image_url"`
	CategoryID   *uint               `json:"category_id"`
	Ingredients  []IngredientRequest `json:"ingredients"`
}

func toRecipeResponse(r models.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:           r.ID,
		Name:         r.Name,
		Instructions: r.Instructions,
		SellingPrice: r.SellingPrice,
		ImageURL:     r.ImageURL,
		CategoryID:   r.CategoryID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func validateRecipeRequest(body *RecipeRequest) error {
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name zorunlu")
	}
	if body.SellingPrice == nil {
		return fiber.NewError(fiber.StatusBadRequest, "selling_price zorunlu")
	}
	for i := range body.Ingredients {
		ing := &body.Ingredients[i]
		ing.Unit = strings.TrimSpace(ing.Unit)
		if ing.InventoryItemID == 0 || ing.Quantity == nil || ing.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Her malzeme için inventory_item_id, quantity ve unit zorunlu")
		}
	}
	return nil
}

func buildIngredients(recipeID uint, reqs []IngredientRequest) []models.RecipeIngredient {
	rows := make([]models.RecipeIngredient, 0, len(reqs))
	for _, ing := range reqs {
		factor := 1.0
		if ing.UnitConversionFactor != nil {
			factor = *ing.UnitConversionFactor
		}
		rows = append(rows, models.RecipeIngredient{
			RecipeID:             recipeID,
			InventoryItemID:      ing.InventoryItemID,
			Quantity:             *ing.Quantity,
			Unit:                 ing.Unit,
			UnitConversionFactor: factor,
		})
	}
	return rows
}

// GET /recipes
// Malzemeler dahil edilmez, sadece tarif satırları döner.
func ListRecipesHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var recipes []models.Recipe
		if err := db.Find(&recipes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tarifler listelenemedi")
		}

		res := make([]RecipeResponse, 0, len(recipes))
		for _, r := range recipes {
			res = append(res, toRecipeResponse(r))
		}
		return c.JSON(res)
	}
}

// GET /recipes/:id
func GetRecipeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var r models.Recipe
		if err := db.First(&r, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tarif bulunamadı")
		}

		ingredients := make([]IngredientDetail, 0)
		if err := db.Table("recipe_ingredients ri").
			Select("ri.*, i.name as ingredient_name, i.price").
			Joins("JOIN inventory_items i ON ri.inventory_item_id = i.id").
			Where("ri.recipe_id = ?", r.ID).
			Scan(&ingredients).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tarif malzemeleri alınamadı")
		}

		return c.JSON(RecipeDetailResponse{
			RecipeResponse: toRecipeResponse(r),
			Ingredients:    ingredients,
		})
	}
}

// POST /recipes
// Tarif ve malzemeleri tek transaction içinde yazılır; malzeme eklenemezse
// tarif de kalmaz.
func CreateRecipeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecipeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateRecipeRequest(&body); err != nil {
			return err
		}

		r := models.Recipe{
			Name:         body.Name,
			Instructions: body.Instructions,
			SellingPrice: *body.SellingPrice,
			CategoryID:   body.CategoryID,
		}
		if body.ImageURL != nil {
			r.ImageURL = *body.ImageURL
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&r).Error; err != nil {
				return err
			}
			if len(body.Ingredients) > 0 {
				rows := buildIngredients(r.ID, body.Ingredients)
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tarif oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"recipe_id":     r.ID,
			"name":          r.Name,
			"instructions":  r.Instructions,
			"ingredients":   body.Ingredients,
			"selling_price": r.SellingPrice,
		})
	}
}

// PUT /recipes/:id
// ingredients gönderilmişse mevcut malzeme listesi komple değiştirilir,
// gönderilmemişse sadece tarif alanları güncellenir.
func UpdateRecipeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var r models.Recipe
		if err := db.First(&r, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tarif bulunamadı")
		}

		var body RecipeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateRecipeRequest(&body); err != nil {
			return err
		}

		r.Name = body.Name
		r.Instructions = body.Instructions
		r.SellingPrice = *body.SellingPrice
		r.CategoryID = body.CategoryID
		if body.ImageURL != nil {
			r.ImageURL = *body.ImageURL
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&r).Error; err != nil {
				return err
			}
			if body.Ingredients != nil {
				if err := tx.Where("recipe_id = ?", r.ID).
					Delete(&models.RecipeIngredient{}).Error; err != nil {
					return err
				}
				if len(body.Ingredients) > 0 {
					rows := buildIngredients(r.ID, body.Ingredients)
					if err := tx.Create(&rows).Error; err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tarif güncellenemedi")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}

// DELETE /recipes/:id
// Malzeme satırları cascade ile silinir.
func DeleteRecipeHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := db.Delete(&models.Recipe{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tarif silinemedi")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
