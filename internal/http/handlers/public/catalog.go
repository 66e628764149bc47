package public

import (
	"strconv"
	"strings"

	"github.com/shopfront/internal/catalog"
	"github.com/shopfront/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetProducts 商品列表
// 非法的价格区间参数视为未设置
func (h *Handler) GetProducts(c *gin.Context) {
	filter := catalog.ProductFilter{
		Category: strings.TrimSpace(c.Query("category")),
		MinPrice: parsePriceQuery(c.Query("min_price")),
		MaxPrice: parsePriceQuery(c.Query("max_price")),
	}
	if raw := strings.TrimSpace(c.Query("in_stock")); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		filter.InStockOnly = inStock
	}

	products := h.ProductService.List(filter)
	response.Success(c, gin.H{
		"items": products,
		"total": len(products),
	})
}

// GetFeaturedProducts 首页推荐商品
func (h *Handler) GetFeaturedProducts(c *gin.Context) {
	response.Success(c, gin.H{"items": h.ProductService.Featured()})
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := getProductIDParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.ProductService.GetDetail(id)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal_error")
		return
	}
	response.Success(c, detail)
}

// GetCategories 分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	response.Success(c, gin.H{"items": h.ProductService.Categories()})
}

func parsePriceQuery(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &value
}
