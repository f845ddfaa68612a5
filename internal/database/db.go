package database

import (
	"fmt"

	"mutfak-backend/internal/config"
	"mutfak-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open veritabanı bağlantısını açar ve migration'ları çalıştırır.
// DATABASE_DSN doluysa Postgres, değilse dosya bazlı SQLite kullanılır.
// Handle'ı global tutmuyoruz; handler'lara açıkça geçirilir.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseDSN != "" {
		dialector = postgres.Open(cfg.DatabaseDSN)
	} else {
		// _fk=1: SQLite'ta foreign key zorlaması (RESTRICT/CASCADE) için şart
		dialector = sqlite.Open(fmt.Sprintf("file:%s?_fk=1", cfg.DatabasePath))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate tüm tabloları oluşturur/günceller. Testler in-memory SQLite
// üzerinde doğrudan bunu çağırır.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.InventoryItem{},
		&models.RecipeCategory{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.StockHistory{},
		&models.FinanceRecord{},
		&models.FinanceRecipeSale{},
		&models.ProfitAnalytics{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate hatası: %w", err)
	}
	return nil
}
