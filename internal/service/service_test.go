package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopfront/internal/cart"
	"github.com/shopfront/internal/catalog"
	"github.com/shopfront/internal/checkout"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestOrderRepo(t *testing.T) *repository.GormOrderRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate order failed: %v", err)
	}
	return repository.NewOrderRepository(db)
}

type testServices struct {
	catalog  *catalog.Catalog
	carts    *cart.Registry
	cart     *CartService
	checkout *CheckoutService
	orders   *OrderService
	repo     *repository.GormOrderRepository
}

func newTestServices(t *testing.T, processor *checkout.Processor) *testServices {
	t.Helper()
	repo := newTestOrderRepo(t)
	return newTestServicesWithRepo(t, processor, repo, repo)
}

// newTestServicesWithRepo 结算使用 checkoutRepo，订单查询使用 repo
func newTestServicesWithRepo(t *testing.T, processor *checkout.Processor, repo *repository.GormOrderRepository, checkoutRepo repository.OrderRepository) *testServices {
	t.Helper()
	c := catalog.Default()
	carts := cart.NewRegistry(c.FindByID, nil)
	checkoutService := NewCheckoutService(CheckoutServiceOptions{
		Carts:       carts,
		Processor:   processor,
		OrderRepo:   checkoutRepo,
		OrderPrefix: "ORD-",
	})
	t.Cleanup(func() {
		_ = checkoutService.Shutdown(context.Background())
	})
	return &testServices{
		catalog:  c,
		carts:    carts,
		cart:     NewCartService(c, carts),
		checkout: checkoutService,
		orders:   NewOrderService(repo),
		repo:     repo,
	}
}
