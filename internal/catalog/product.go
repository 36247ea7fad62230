package catalog

// Product is a fixed-catalog storefront item. Price is in minor units.
type Product struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `json:"name"`
	Price       int64   `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	InStock     bool    `json:"inStock"`
}

func demoProducts() []Product {
	return []Product{
		{ID: "1", Name: "Classic Polo Shirt", Price: 4999, Description: "Timeless polo shirt crafted from premium piqué cotton with ribbed collar", Image: "https://images.unsplash.com/photo-1581655353564-df123a1eb820?w=400&h=400&fit=crop&q=80", Category: "Shirts", Rating: 4.8, Reviews: 234, InStock: true},
		{ID: "2", Name: "Tailored Slim Chinos", Price: 7999, Description: "Modern slim-fit chinos with stretch comfort and clean silhouette", Image: "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=400&h=400&fit=crop&q=80", Category: "Pants", Rating: 4.7, Reviews: 189, InStock: true},
		{ID: "3", Name: "Oxford Button-Down", Price: 6999, Description: "Classic Oxford shirt with button-down collar for versatile styling", Image: "https://images.unsplash.com/photo-1598033129183-c4f50c736f10?w=400&h=400&fit=crop&q=80", Category: "Shirts", Rating: 4.9, Reviews: 312, InStock: true},
		{ID: "4", Name: "Merino Wool Sweater", Price: 12999, Description: "Luxurious merino wool sweater with fine-gauge knit construction", Image: "https://images.unsplash.com/photo-1620799140408-ed5341252629?w=400&h=400&fit=crop&q=80", Category: "Knitwear", Rating: 4.8, Reviews: 156, InStock: true},
		{ID: "5", Name: "Premium Blazer", Price: 24999, Description: "Expertly tailored blazer with Italian wool blend and modern lapels", Image: "https://images.unsplash.com/photo-1593030761757-71fae45fa317?w=400&h=400&fit=crop&q=80", Category: "Outerwear", Rating: 4.9, Reviews: 98, InStock: true},
		{ID: "6", Name: "Linen Summer Shirt", Price: 5999, Description: "Breathable linen shirt perfect for warm weather occasions", Image: "https://images.unsplash.com/photo-1589310243389-96a5483213a8?w=400&h=400&fit=crop&q=80", Category: "Shirts", Rating: 4.6, Reviews: 145, InStock: true},
		{ID: "7", Name: "Structured Trench Coat", Price: 29999, Description: "Classic trench coat with water-resistant fabric and timeless design", Image: "https://images.unsplash.com/photo-1548624149-f321941d99d4?w=400&h=400&fit=crop&q=80", Category: "Outerwear", Rating: 4.7, Reviews: 67, InStock: false},
		{ID: "8", Name: "Casual Crew Neck Tee", Price: 3499, Description: "Essential crew neck t-shirt in premium Supima cotton", Image: "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?w=400&h=400&fit=crop&q=80", Category: "T-Shirts", Rating: 4.5, Reviews: 423, InStock: true},
		{ID: "9", Name: "Wool Dress Pants", Price: 14999, Description: "Elegant wool-blend dress pants with pressed creases", Image: "https://images.unsplash.com/photo-1506629082955-511b1aa002c4?w=400&h=400&fit=crop&q=80", Category: "Pants", Rating: 4.8, Reviews: 112, InStock: true},
		{ID: "10", Name: "Quilted Vest", Price: 11999, Description: "Lightweight quilted vest with water-resistant finish", Image: "https://images.unsplash.com/photo-1617114919297-3c8ddbec014e?w=400&h=400&fit=crop&q=80", Category: "Outerwear", Rating: 4.6, Reviews: 89, InStock: true},
		{ID: "11", Name: "Cashmere V-Neck", Price: 18999, Description: "Ultra-soft cashmere sweater with classic V-neck styling", Image: "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=400&h=400&fit=crop&q=80", Category: "Knitwear", Rating: 4.9, Reviews: 78, InStock: true},
		{ID: "12", Name: "Slim Fit Dress Shirt", Price: 8999, Description: "Crisp cotton dress shirt with French cuffs and spread collar", Image: "https://images.unsplash.com/photo-1600121110465-9830573e3432?w=400&h=400&fit=crop&q=80", Category: "Shirts", Rating: 4.7, Reviews: 265, InStock: true},
	}
}
