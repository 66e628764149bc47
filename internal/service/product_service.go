package service

import (
	"github.com/shopfront/internal/catalog"
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"
)

// ProductDetail 商品详情与同类推荐
type ProductDetail struct {
	Product *models.Product  `json:"product"`
	Related []models.Product `json:"related"`
}

// ProductService 商品目录服务
type ProductService struct {
	catalog *catalog.Catalog
}

// NewProductService 创建商品服务
func NewProductService(c *catalog.Catalog) *ProductService {
	return &ProductService{catalog: c}
}

// List 按条件筛选商品
func (s *ProductService) List(filter catalog.ProductFilter) []models.Product {
	return s.catalog.Filter(filter)
}

// Featured 首页推荐商品
func (s *ProductService) Featured() []models.Product {
	return s.catalog.Featured(constants.FeaturedProductLimit)
}

// GetDetail 获取商品详情
func (s *ProductService) GetDetail(id uint) (*ProductDetail, error) {
	product, ok := s.catalog.FindByID(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	return &ProductDetail{
		Product: product,
		Related: s.catalog.RelatedTo(product, constants.RelatedProductLimit),
	}, nil
}

// Categories 分类列表，首项为 all
func (s *ProductService) Categories() []string {
	categories := s.catalog.Categories()
	result := make([]string, 0, len(categories)+1)
	result = append(result, constants.CategoryAll)
	return append(result, categories...)
}

// Lookup 供购物车恢复快照使用
func (s *ProductService) Lookup(id uint) (*models.Product, bool) {
	return s.catalog.FindByID(id)
}
