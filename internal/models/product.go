package models

// Product 商品目录记录，启动后只读
type Product struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       Money    `json:"price"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	InStock     bool     `json:"in_stock"`
	Features    []string `json:"features"`
}

// Clone 返回不共享 Features 底层数组的副本
func (p Product) Clone() Product {
	if p.Features != nil {
		features := make([]string, len(p.Features))
		copy(features, p.Features)
		p.Features = features
	}
	return p
}
