package catalog

import (
	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"
)

// defaultProducts 店铺静态商品目录，顺序即展示顺序
var defaultProducts = []models.Product{
	{
		ID:          1,
		Name:        "Wireless Bluetooth Headphones",
		Description: "Experience premium sound quality with these wireless Bluetooth headphones. Featuring noise cancellation and up to 20 hours of battery life.",
		Category:    constants.CategoryElectronics,
		Price:       models.MustMoney("99.99"),
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		Rating:      4.5,
		InStock:     true,
		Features: []string{
			"Active Noise Cancellation",
			"20-hour Battery Life",
			"Bluetooth 5.0",
			"Built-in Microphone",
			"Touch Controls",
		},
	},
	{
		ID:          2,
		Name:        "Smartphone X Pro",
		Description: "The latest smartphone with a stunning display, powerful camera system, and all-day battery life. Stay connected with the fastest 5G network.",
		Category:    constants.CategoryElectronics,
		Price:       models.MustMoney("899.99"),
		Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		Rating:      4.8,
		InStock:     true,
		Features: []string{
			"6.7-inch Super AMOLED Display",
			"Triple Camera System",
			"5G Connectivity",
			"128GB Storage",
			"All-day Battery Life",
		},
	},
	{
		ID:          3,
		Name:        "Premium Leather Backpack",
		Description: "A stylish and durable leather backpack perfect for daily use or travel. Features multiple compartments and laptop sleeve.",
		Category:    constants.CategoryFashion,
		Price:       models.MustMoney("129.99"),
		Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		Rating:      4.3,
		InStock:     true,
		Features: []string{
			"Genuine Leather",
			"Laptop Compartment (fits up to 15 inches)",
			"Water-resistant",
			"Multiple Pockets",
			"Adjustable Straps",
		},
	},
	{
		ID:          4,
		Name:        "Smart Fitness Watch",
		Description: "Track your fitness goals with this advanced smartwatch. Monitor heart rate, sleep, and activity with a sleek, waterproof design.",
		Category:    constants.CategoryElectronics,
		Price:       models.MustMoney("149.99"),
		Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		Rating:      4.6,
		InStock:     true,
		Features: []string{
			"Heart Rate Monitoring",
			"Sleep Tracking",
			"GPS",
			"7-day Battery Life",
			"Waterproof (50m)",
		},
	},
	{
		ID:          5,
		Name:        "Luxury Scented Candle",
		Description: "Create a relaxing atmosphere with this luxury scented candle. Made with natural soy wax and essential oils for a clean, long-lasting burn.",
		Category:    constants.CategoryHome,
		Price:       models.MustMoney("35.99"),
		Image:       "https://images.unsplash.com/photo-1572726729207-a78d6feb18d7?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		Rating:      4.2,
		InStock:     true,
		Features: []string{
			"Natural Soy Wax",
			"50-hour Burn Time",
			"Premium Essential Oils",
			"Handcrafted",
			"Reusable Container",
		},
	},
	{
		ID:          6,
		Name:        "Designer Sunglasses",
		Description: "Protect your eyes in style with these designer sunglasses. UV protection and durable frames make them perfect for everyday wear.",
		Category:    constants.CategoryFashion,
		Price:       models.MustMoney("159.99"),
		Image:       "https://images.unsplash.com/photo-1511499767150-a48a237f0083?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		Rating:      4.4,
		InStock:     false,
		Features: []string{
			"100% UV Protection",
			"Polarized Lenses",
			"Lightweight Frame",
			"Scratch-resistant",
			"Includes Case & Cleaning Cloth",
		},
	},
	{
		ID:          7,
		Name:        "Portable Bluetooth Speaker",
		Description: "Take your music anywhere with this portable Bluetooth speaker. Waterproof design and powerful sound in a compact package.",
		Category:    constants.CategoryElectronics,
		Price:       models.MustMoney("79.99"),
		Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		Rating:      4.1,
		InStock:     true,
		Features: []string{
			"Waterproof (IPX7)",
			"10-hour Battery Life",
			"Bluetooth 5.0",
			"Built-in Microphone",
			"Compact & Portable",
		},
	},
	{
		ID:          8,
		Name:        "Organic Cotton T-shirt",
		Description: "A comfortable and sustainable t-shirt made from 100% organic cotton. Soft, breathable, and perfect for everyday wear.",
		Category:    constants.CategoryFashion,
		Price:       models.MustMoney("29.99"),
		Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1000&q=80",
		Rating:      4.0,
		InStock:     true,
		Features: []string{
			"100% Organic Cotton",
			"Sustainably Produced",
			"Pre-shrunk",
			"Relaxed Fit",
			"Available in Multiple Colors",
		},
	},
}
