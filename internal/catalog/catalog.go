package catalog

import (
	"strings"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"

	"github.com/shopspring/decimal"
)

// ProductFilter 商品筛选条件，未设置的条件不参与过滤
type ProductFilter struct {
	Category    string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	InStockOnly bool
}

// Catalog 只读商品目录
type Catalog struct {
	products []models.Product
	index    map[uint]int
}

// New 使用给定商品创建目录，重复 ID 以首次出现为准
func New(products []models.Product) *Catalog {
	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		index:    make(map[uint]int, len(products)),
	}
	for _, p := range products {
		if _, exists := c.index[p.ID]; exists {
			continue
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p.Clone())
	}
	return c
}

// Default 返回内置静态目录
func Default() *Catalog {
	return New(defaultProducts)
}

// Len 商品数量
func (c *Catalog) Len() int {
	return len(c.products)
}

// All 按目录顺序返回全部商品
func (c *Catalog) All() []models.Product {
	return c.collect(func(models.Product) bool { return true }, -1)
}

// FindByID 按 ID 精确查找，未找到返回 false
func (c *Catalog) FindByID(id uint) (*models.Product, bool) {
	pos, ok := c.index[id]
	if !ok {
		return nil, false
	}
	p := c.products[pos].Clone()
	return &p, true
}

// Filter 返回同时满足所有已设置条件的商品
func (c *Catalog) Filter(filter ProductFilter) []models.Product {
	category := strings.TrimSpace(filter.Category)
	if category == constants.CategoryAll {
		category = ""
	}
	return c.collect(func(p models.Product) bool {
		if category != "" && p.Category != category {
			return false
		}
		if filter.MinPrice != nil && p.Price.LessThan(*filter.MinPrice) {
			return false
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			return false
		}
		if filter.InStockOnly && !p.InStock {
			return false
		}
		return true
	}, -1)
}

// RelatedTo 同分类商品（不含自身），最多 limit 个
func (c *Catalog) RelatedTo(product *models.Product, limit int) []models.Product {
	if product == nil || limit <= 0 {
		return []models.Product{}
	}
	return c.collect(func(p models.Product) bool {
		return p.Category == product.Category && p.ID != product.ID
	}, limit)
}

// Featured 首页推荐商品，取目录前 n 个
func (c *Catalog) Featured(n int) []models.Product {
	if n <= 0 {
		return []models.Product{}
	}
	return c.collect(func(models.Product) bool { return true }, n)
}

// Categories 按首次出现顺序返回去重后的分类
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.products))
	categories := make([]string, 0)
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

func (c *Catalog) collect(match func(models.Product) bool, limit int) []models.Product {
	result := make([]models.Product, 0)
	for _, p := range c.products {
		if limit >= 0 && len(result) >= limit {
			break
		}
		if match(p) {
			result = append(result, p.Clone())
		}
	}
	return result
}
