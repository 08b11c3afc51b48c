package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultCategories is the Café Lumière starter catalog.
func DefaultCategories() []Category {
	return []Category{
		{ID: "coffee", Name: "Coffee", Image: "https://images.unsplash.com/photo-1509042239860-f550ce710b93"},
		{ID: "tea", Name: "Tea", Image: "https://images.unsplash.com/photo-1544787219-7f47ccb76574"},
		{ID: "pastries", Name: "Pastries", Image: "https://images.unsplash.com/photo-1558961363-fa8fdf82db35"},
		{ID: "sandwiches", Name: "Sandwiches", Image: "https://images.unsplash.com/photo-1528735602780-2552fd46c7af"},
	}
}

func DefaultProducts() []Product {
	sizeSmall := []Option{
		{Name: "Small", Price: price("0")},
		{Name: "Medium", Price: price("1")},
		{Name: "Large", Price: price("1.5")},
	}
	milk := []Option{
		{Name: "Regular", Price: price("0")},
		{Name: "Oat Milk", Price: price("0.8")},
		{Name: "Almond Milk", Price: price("0.8")},
	}

	return []Product{
		{
			ID:          "espresso",
			Name:        "Espresso",
			Description: "Rich and intense espresso shot, the perfect pick-me-up",
			Price:       price("3.50"),
			Image:       "https://images.unsplash.com/photo-1522992319-0365e5f081d3",
			CategoryID:  "coffee",
			Popular:     true,
			Customizations: []CustomizationGroup{
				{Name: "Size", Required: true, Options: []Option{
					{Name: "Single", Price: price("0")},
					{Name: "Double", Price: price("1.5")},
				}},
				{Name: "Add-ins", Multiple: true, Options: []Option{
					{Name: "Extra Shot", Price: price("1.2")},
					{Name: "Cocoa Dust", Price: price("0.5")},
				}},
			},
		},
		{
			ID:          "cappuccino",
			Name:        "Cappuccino",
			Description: "Equal parts espresso, steamed milk, and foam for a perfect balance",
			Price:       price("4.50"),
			Image:       "https://images.unsplash.com/photo-1534778101976-62847782c213",
			CategoryID:  "coffee",
			Popular:     true,
			Customizations: []CustomizationGroup{
				{Name: "Size", Required: true, Options: sizeSmall},
				{Name: "Milk", Options: milk},
				{Name: "Add-ins", Multiple: true, Options: []Option{
					{Name: "Extra Shot", Price: price("1.2")},
					{Name: "Vanilla Syrup", Price: price("0.8")},
					{Name: "Caramel Syrup", Price: price("0.8")},
				}},
			},
		},
		{
			ID:          "latte",
			Name:        "Caffè Latte",
			Description: "Smooth espresso with steamed milk and a light layer of foam",
			Price:       price("4.75"),
			Image:       "https://images.unsplash.com/photo-1570968915860-54d5c301fa9f",
			CategoryID:  "coffee",
			Customizations: []CustomizationGroup{
				{Name: "Size", Required: true, Options: sizeSmall},
				{Name: "Milk", Options: milk},
				{Name: "Add-ins", Multiple: true, Options: []Option{
					{Name: "Extra Shot", Price: price("1.2")},
					{Name: "Vanilla Syrup", Price: price("0.8")},
					{Name: "Caramel Syrup", Price: price("0.8")},
					{Name: "Hazelnut Syrup", Price: price("0.8")},
				}},
			},
		},
		{
			ID:          "green-tea",
			Name:        "Green Tea",
			Description: "Light and refreshing green tea with antioxidant properties",
			Price:       price("3.75"),
			Image:       "https://images.unsplash.com/photo-1627435601361-ec25f5b1d0e5",
			CategoryID:  "tea",
			Customizations: []CustomizationGroup{
				{Name: "Size", Required: true, Options: []Option{
					{Name: "Small", Price: price("0")},
					{Name: "Medium", Price: price("0.75")},
					{Name: "Large", Price: price("1.25")},
				}},
				{Name: "Add-ins", Multiple: true, Options: []Option{
					{Name: "Honey", Price: price("0.5")},
					{Name: "Lemon", Price: price("0.3")},
				}},
			},
		},
		{
			ID:          "chai-latte",
			Name:        "Chai Latte",
			Description: "Spiced black tea concentrate with steamed milk",
			Price:       price("4.25"),
			Image:       "https://images.unsplash.com/photo-1571934811356-5cc135e207ce",
			CategoryID:  "tea",
			Popular:     true,
			Customizations: []CustomizationGroup{
				{Name: "Size", Required: true, Options: []Option{
					{Name: "Small", Price: price("0")},
					{Name: "Medium", Price: price("0.75")},
					{Name: "Large", Price: price("1.25")},
				}},
				{Name: "Milk", Options: milk},
				{Name: "Add-ins", Multiple: true, Options: []Option{
					{Name: "Honey", Price: price("0.5")},
					{Name: "Vanilla Syrup", Price: price("0.8")},
				}},
			},
		},
		{
			ID:          "croissant",
			Name:        "Butter Croissant",
			Description: "Flaky, buttery French pastry, baked fresh daily",
			Price:       price("3.25"),
			Image:       "https://images.unsplash.com/photo-1555507036-ab1f4038808a",
			CategoryID:  "pastries",
			Popular:     true,
			Customizations: []CustomizationGroup{
				{Name: "Add-ons", Multiple: true, Options: []Option{
					{Name: "Butter", Price: price("0")},
					{Name: "Jam", Price: price("0.75")},
					{Name: "Nutella", Price: price("1")},
				}},
				{Name: "Warm up", Options: []Option{
					{Name: "Room Temperature", Price: price("0")},
					{Name: "Warmed", Price: price("0")},
				}},
			},
		},
		{
			ID:          "pain-au-chocolat",
			Name:        "Pain au Chocolat",
			Description: "Buttery pastry filled with rich dark chocolate",
			Price:       price("3.75"),
			Image:       "https://images.unsplash.com/photo-1623334044303-241021148842",
			CategoryID:  "pastries",
			Customizations: []CustomizationGroup{
				{Name: "Warm up", Options: []Option{
					{Name: "Room Temperature", Price: price("0")},
					{Name: "Warmed", Price: price("0")},
				}},
			},
		},
		{
			ID:          "avocado-toast",
			Name:        "Avocado Toast",
			Description: "Sourdough toast topped with smashed avocado, olive oil, and salt",
			Price:       price("7.50"),
			Image:       "https://images.unsplash.com/photo-1588137378633-dea1336ce1e3",
			CategoryID:  "sandwiches",
			Popular:     true,
			Customizations: []CustomizationGroup{
				{Name: "Add-ons", Multiple: true, Options: []Option{
					{Name: "Red Pepper Flakes", Price: price("0")},
					{Name: "Fried Egg", Price: price("1.5")},
					{Name: "Feta Cheese", Price: price("1")},
					{Name: "Tomatoes", Price: price("0.75")},
				}},
				{Name: "Bread", Options: []Option{
					{Name: "Sourdough", Price: price("0")},
					{Name: "Whole Grain", Price: price("0")},
					{Name: "Gluten-Free", Price: price("1.5")},
				}},
			},
		},
		{
			ID:          "blt-sandwich",
			Name:        "BLT Sandwich",
			Description: "Classic bacon, lettuce, and tomato sandwich with mayo on toasted bread",
			Price:       price("8.25"),
			Image:       "https://images.unsplash.com/photo-1619096252214-ef06c45683e3",
			CategoryID:  "sandwiches",
			Customizations: []CustomizationGroup{
				{Name: "Bread", Required: true, Options: []Option{
					{Name: "White", Price: price("0")},
					{Name: "Whole Grain", Price: price("0")},
					{Name: "Sourdough", Price: price("0")},
					{Name: "Gluten-Free", Price: price("1.5")},
				}},
				{Name: "Add-ons", Multiple: true, Options: []Option{
					{Name: "Avocado", Price: price("1.5")},
					{Name: "Fried Egg", Price: price("1.5")},
					{Name: "Extra Bacon", Price: price("2")},
					{Name: "Cheese", Price: price("1")},
				}},
			},
		},
	}
}
