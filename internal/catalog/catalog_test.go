package catalog

import (
	"testing"

	"github.com/shopfront/internal/models"

	"github.com/shopspring/decimal"
)

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func productIDs(products []models.Product) []uint {
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func assertIDs(t *testing.T, got []models.Product, want ...uint) {
	t.Helper()
	ids := productIDs(got)
	if len(ids) != len(want) {
		t.Fatalf("ids want %v got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids want %v got %v", want, ids)
		}
	}
}

func TestDefaultCatalogUniqueIDs(t *testing.T) {
	c := Default()
	if c.Len() != 8 {
		t.Fatalf("default catalog want 8 products got %d", c.Len())
	}
	seen := map[uint]bool{}
	for _, p := range c.All() {
		if seen[p.ID] {
			t.Fatalf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
		if p.Price.IsNegative() {
			t.Fatalf("product %d has negative price", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			t.Fatalf("product %d rating out of range: %v", p.ID, p.Rating)
		}
	}
}

func TestFindByID(t *testing.T) {
	c := Default()
	p, ok := c.FindByID(1)
	if !ok || p == nil {
		t.Fatalf("product 1 should exist")
	}
	if p.Name != "Wireless Bluetooth Headphones" {
		t.Fatalf("unexpected product name %s", p.Name)
	}
	if !p.Price.Equal(decimal.RequireFromString("99.99")) {
		t.Fatalf("price want 99.99 got %s", p.Price)
	}

	if p, ok := c.FindByID(999); ok || p != nil {
		t.Fatalf("missing product should report not found")
	}
}

func TestFindByIDReturnsCopy(t *testing.T) {
	c := Default()
	p, _ := c.FindByID(2)
	p.Name = "mutated"
	p.Features[0] = "mutated"

	again, _ := c.FindByID(2)
	if again.Name == "mutated" || again.Features[0] == "mutated" {
		t.Fatalf("catalog must not be mutable through lookups")
	}
}

func TestFilter(t *testing.T) {
	c := Default()
	cases := []struct {
		name   string
		filter ProductFilter
		want   []uint
	}{
		{name: "no predicates", filter: ProductFilter{}, want: []uint{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "all category", filter: ProductFilter{Category: "all"}, want: []uint{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "electronics", filter: ProductFilter{Category: "Electronics"}, want: []uint{1, 2, 4, 7}},
		{name: "fashion in stock", filter: ProductFilter{Category: "Fashion", InStockOnly: true}, want: []uint{3, 8}},
		{name: "min price inclusive", filter: ProductFilter{MinPrice: decimalPtr("149.99")}, want: []uint{2, 4, 6}},
		{name: "max price inclusive", filter: ProductFilter{MaxPrice: decimalPtr("35.99")}, want: []uint{5, 8}},
		{name: "range and category", filter: ProductFilter{Category: "Electronics", MinPrice: decimalPtr("50"), MaxPrice: decimalPtr("150")}, want: []uint{1, 4, 7}},
		{name: "unknown category", filter: ProductFilter{Category: "Toys"}, want: []uint{}},
		{name: "case sensitive category", filter: ProductFilter{Category: "electronics"}, want: []uint{}},
		{name: "empty range", filter: ProductFilter{MinPrice: decimalPtr("500"), MaxPrice: decimalPtr("100")}, want: []uint{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertIDs(t, c.Filter(tc.filter), tc.want...)
		})
	}
}

func TestFilterCategoryOnlyReturnsThatCategory(t *testing.T) {
	for _, p := range Default().Filter(ProductFilter{Category: "Electronics"}) {
		if p.Category != "Electronics" {
			t.Fatalf("unexpected category %s for product %d", p.Category, p.ID)
		}
	}
}

func TestRelatedTo(t *testing.T) {
	c := Default()
	p, _ := c.FindByID(1)
	assertIDs(t, c.RelatedTo(p, 4), 2, 4, 7)
	assertIDs(t, c.RelatedTo(p, 2), 2, 4)

	home, _ := c.FindByID(5)
	assertIDs(t, c.RelatedTo(home, 4))

	if got := c.RelatedTo(nil, 4); len(got) != 0 {
		t.Fatalf("nil product should have no related products")
	}
	if got := c.RelatedTo(p, 0); len(got) != 0 {
		t.Fatalf("zero limit should return nothing")
	}
}

func TestFeaturedAndCategories(t *testing.T) {
	c := Default()
	assertIDs(t, c.Featured(4), 1, 2, 3, 4)
	assertIDs(t, c.Featured(20), 1, 2, 3, 4, 5, 6, 7, 8)

	categories := c.Categories()
	want := []string{"Electronics", "Fashion", "Home"}
	if len(categories) != len(want) {
		t.Fatalf("categories want %v got %v", want, categories)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Fatalf("categories want %v got %v", want, categories)
		}
	}
}

func TestNewSkipsDuplicateIDs(t *testing.T) {
	c := New([]models.Product{
		{ID: 1, Name: "first", Price: models.MustMoney("1")},
		{ID: 1, Name: "second", Price: models.MustMoney("2")},
	})
	if c.Len() != 1 {
		t.Fatalf("duplicate ids should be dropped, got %d products", c.Len())
	}
	p, _ := c.FindByID(1)
	if p.Name != "first" {
		t.Fatalf("first occurrence should win, got %s", p.Name)
	}
}
