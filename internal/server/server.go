package server

import (
	"log"
	"strings"

	"mutfak-backend/internal/analytics"
	"mutfak-backend/internal/auth"
	"mutfak-backend/internal/config"
	"mutfak-backend/internal/dashboard"
	"mutfak-backend/internal/finance"
	"mutfak-backend/internal/inventory"
	"mutfak-backend/internal/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

// ErrorHandler tüm fiber.Error'ları {"error": mesaj} gövdesiyle döner.
// Tarif 404'ü dahil her hata JSON'dur, plain-text gövde yok.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
		})
	}
	log.Println("Beklenmeyen hata:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Beklenmeyen sunucu hatası",
	})
}

// New fiber uygulamasını kurar ve tüm route'ları bağlar.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("")

	// JWT_SECRET tanımlıysa auth route'ları açılır ve kaynak endpoint'leri
	// token ister; tanımlı değilse API açık çalışır.
	if cfg.JWTSecret != "" {
		app.Post("/auth/register-admin", auth.RegisterAdminHandler(db))
		app.Post("/auth/login", auth.LoginHandler(db, cfg.JWTSecret))

		api.Use(auth.JWTMiddleware(cfg.JWTSecret))
		api.Get("/auth/me", auth.MeHandler(db))
	}

	// Envanter
	inv := api.Group("/inventory")
	inv.Get("/", inventory.ListItemsHandler(db))
	inv.Post("/", inventory.CreateItemHandler(db))
	inv.Put("/:id", inventory.UpdateItemHandler(db))
	inv.Delete("/:id", inventory.DeleteItemHandler(db))
	inv.Get("/:id/history", inventory.ListStockHistoryHandler(db))

	// Tarifler
	rec := api.Group("/recipes")
	rec.Get("/", recipe.ListRecipesHandler(db))
	rec.Get("/:id", recipe.GetRecipeHandler(db))
	rec.Post("/", recipe.CreateRecipeHandler(db))
	rec.Put("/:id", recipe.UpdateRecipeHandler(db))
	rec.Delete("/:id", recipe.DeleteRecipeHandler(db))

	// Tarif kategorileri
	api.Get("/recipe-categories", recipe.ListCategoriesHandler(db))
	api.Post("/recipe-categories", recipe.CreateCategoryHandler(db))

	// Finans
	fin := api.Group("/finance")
	fin.Get("/", finance.ListRecordsHandler(db))
	fin.Post("/", finance.CreateRecordHandler(db))

	// Analiz
	ana := api.Group("/analytics")
	ana.Get("/", analytics.ListSnapshotsHandler(db))
	ana.Post("/calculate", analytics.CalculateHandler(db))

	// Pano
	api.Get("/dashboard/summary", dashboard.SummaryHandler(db))

	return app
}
