//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"

	"github.com/shopfront/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.OrderItem{},
		&models.Order{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresOrderArchiveRoundTrip(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewOrderRepository(db)

	order := &models.Order{
		OrderNo:       "ORD-555555",
		SessionID:     "pg-session",
		Email:         "pg@example.com",
		PaymentMethod: "paypal",
		Subtotal:      models.MustMoney("99.99"),
		Tax:           models.MustMoney("7.00"),
		Total:         models.MustMoney("106.99"),
		TotalItems:    1,
	}
	items := []models.OrderItem{{
		ProductID: 1,
		Name:      "Wireless Bluetooth Headphones",
		UnitPrice: models.MustMoney("99.99"),
		Quantity:  1,
		LineTotal: models.MustMoney("99.99"),
	}}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	got, err := repo.GetByOrderNoAndSession("ORD-555555", "pg-session")
	if err != nil || got == nil {
		t.Fatalf("get order failed: %v", err)
	}
	if got.Total.String() != "106.99" || len(got.Items) != 1 {
		t.Fatalf("unexpected archived order: total=%s items=%d", got.Total.String(), len(got.Items))
	}

	other, err := repo.GetByOrderNoAndSession("ORD-555555", "someone-else")
	if err != nil || other != nil {
		t.Fatalf("other session must not read the order, got %v %v", other, err)
	}

	exists, err := repo.ExistsOrderNo("ORD-555555")
	if err != nil || !exists {
		t.Fatalf("order number should exist")
	}
}
