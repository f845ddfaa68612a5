package database

import (
	"fmt"
	"testing"

	"mutfak-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("sqlite açılamadı: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migration hatası: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedItem(t *testing.T, db *gorm.DB) models.InventoryItem {
	t.Helper()
	item := models.InventoryItem{Name: "Un", Quantity: 10, Unit: "kg", Price: 25}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("malzeme oluşturulamadı: %v", err)
	}
	return item
}

func TestDeleteItemRestrictedByRecipeIngredient(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db)

	r := models.Recipe{Name: "Ekmek", SellingPrice: 30}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("tarif oluşturulamadı: %v", err)
	}
	ing := models.RecipeIngredient{RecipeID: r.ID, InventoryItemID: item.ID, Quantity: 2, Unit: "kg", UnitConversionFactor: 1}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("tarif malzemesi oluşturulamadı: %v", err)
	}

	if err := db.Delete(&models.InventoryItem{}, item.ID).Error; err == nil {
		t.Fatal("tarifte kullanılan malzemenin silinmesi RESTRICT ile engellenmeliydi")
	}

	var count int64
	db.Model(&models.InventoryItem{}).Where("id = ?", item.ID).Count(&count)
	if count != 1 {
		t.Fatal("malzeme silinmemeliydi")
	}
}

func TestDeleteItemCascadesStockHistory(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db)

	hist := models.StockHistory{InventoryItemID: item.ID, QuantityChange: -2, Reason: "test"}
	if err := db.Create(&hist).Error; err != nil {
		t.Fatalf("stok geçmişi oluşturulamadı: %v", err)
	}

	if err := db.Delete(&models.InventoryItem{}, item.ID).Error; err != nil {
		t.Fatalf("sadece stok geçmişi olan malzeme silinebilmeliydi: %v", err)
	}

	var count int64
	db.Model(&models.StockHistory{}).Where("inventory_item_id = ?", item.ID).Count(&count)
	if count != 0 {
		t.Fatal("stok geçmişi cascade ile silinmeliydi")
	}
}

func TestDeleteRecipeCascadesIngredientsAndNullsHistory(t *testing.T) {
	db := newTestDB(t)
	item := seedItem(t, db)

	r := models.Recipe{Name: "Ekmek", SellingPrice: 30}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("tarif oluşturulamadı: %v", err)
	}
	ing := models.RecipeIngredient{RecipeID: r.ID, InventoryItemID: item.ID, Quantity: 2, Unit: "kg", UnitConversionFactor: 1}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("tarif malzemesi oluşturulamadı: %v", err)
	}
	hist := models.StockHistory{InventoryItemID: item.ID, QuantityChange: -2, RecipeID: &r.ID, Reason: "üretim"}
	if err := db.Create(&hist).Error; err != nil {
		t.Fatalf("stok geçmişi oluşturulamadı: %v", err)
	}

	if err := db.Delete(&models.Recipe{}, r.ID).Error; err != nil {
		t.Fatalf("tarif silinemedi: %v", err)
	}

	var ingCount int64
	db.Model(&models.RecipeIngredient{}).Where("recipe_id = ?", r.ID).Count(&ingCount)
	if ingCount != 0 {
		t.Fatal("tarif malzemeleri cascade ile silinmeliydi")
	}

	var reloaded models.StockHistory
	if err := db.First(&reloaded, hist.ID).Error; err != nil {
		t.Fatalf("stok geçmişi kaybolmamalıydı: %v", err)
	}
	if reloaded.RecipeID != nil {
		t.Fatal("stok geçmişindeki recipe_id SET NULL olmalıydı")
	}
}

func TestMonthUniqueConstraint(t *testing.T) {
	db := newTestDB(t)

	first := models.ProfitAnalytics{Month: "2024-03", TotalIncome: 100}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("snapshot oluşturulamadı: %v", err)
	}
	dup := models.ProfitAnalytics{Month: "2024-03", TotalIncome: 200}
	if err := db.Create(&dup).Error; err == nil {
		t.Fatal("aynı ay için ikinci snapshot unique index'e takılmalıydı")
	}
}
