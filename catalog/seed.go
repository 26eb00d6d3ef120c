package catalog

import "github.com/afnankhn654-alt/ShopNest/models"

// DemoUserID owns the seeded orders and the seeded reviews.
const DemoUserID = "dummy-user-01"

func price(v float64) *float64 { return &v }

var categories = []models.Category{
	{ID: "electronics", Name: "Electronics", Icon: "electronics", Subcategories: []models.Subcategory{
		{ID: "smartphones", Name: "Smartphones"}, {ID: "laptops", Name: "Laptops"}, {ID: "gadgets", Name: "Gadgets"},
	}},
	{ID: "fashion", Name: "Fashion", Icon: "fashion", Subcategories: []models.Subcategory{
		{ID: "mens-wear", Name: "Men's Wear"}, {ID: "womens-wear", Name: "Women's Wear"},
	}},
	{ID: "perfumes", Name: "Perfumes", Icon: "perfume", Subcategories: []models.Subcategory{
		{ID: "for-men", Name: "For Men"}, {ID: "for-women", Name: "For Women"},
	}},
	{ID: "home-appliances", Name: "Home Appliances", Icon: "home-appliances", Subcategories: []models.Subcategory{
		{ID: "kitchen", Name: "Kitchen"}, {ID: "cleaning", Name: "Cleaning"},
	}},
}

var banners = []models.Banner{
	{ID: 1, Image: "https://images.unsplash.com/photo-1526738549149-8e07eca6c147?w=1600&h=600&fit=crop&q=80", Title: "Mega Electronics Sale", Subtitle: "Up to 50% off on all gadgets"},
	{ID: 2, Image: "https://images.unsplash.com/photo-1445205170230-053b83016050?w=1600&h=600&fit=crop&q=80", Title: "New Fashion Arrivals", Subtitle: "Discover the latest trends"},
	{ID: 3, Image: "https://images.unsplash.com/photo-1557173489-3c3a54a9a2df?w=1600&h=600&fit=crop&q=80", Title: "Fragrance Fest", Subtitle: "Exquisite scents for every occasion"},
}

func seedOrders() []models.Order {
	return []models.Order{
		{
			ID: "order-1", UserID: DemoUserID, Date: "2023-10-15", Status: models.OrderStatusDelivered, Total: 249.49,
			Items: []models.OrderLine{
				{ProductID: "p1", Quantity: 1, HasBeenReviewed: true},
				{ProductID: "p3", Quantity: 1},
			},
		},
		{
			ID: "order-2", UserID: DemoUserID, Date: "2023-10-28", Status: models.OrderStatusShipped, Total: 99.00,
			Items: []models.OrderLine{{ProductID: "p4", Quantity: 1}},
		},
		{
			ID: "order-3", UserID: DemoUserID, Date: "2023-09-05", Status: models.OrderStatusDelivered, Total: 120.00,
			Items: []models.OrderLine{{ProductID: "p2", Quantity: 1}},
		},
	}
}

func seedAddresses() []models.Address {
	return []models.Address{
		{ID: "1", Name: "John Doe", Street: "123 Tech Lane", City: "Silicon Valley", State: "CA", Zip: "94043", IsDefault: true},
		{ID: "2", Name: "John Doe", Street: "456 Code Avenue", City: "Austin", State: "TX", Zip: "78701"},
	}
}

const talhaAvatar = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=40&h=40&fit=crop"

func featuredProducts() []models.Product {
	return []models.Product{
		{
			ID:          "p1",
			Name:        "AURA-X Pro Wireless Earbuds",
			Description: "Experience immersive sound with the new AURA-X Pro. Featuring active noise cancellation, a 30-hour battery life, and crystal-clear call quality. Perfect for music lovers and professionals on the go.",
			Images: []string{
				"https://images.unsplash.com/photo-1606741965326-cb990ae107b3?w=800&h=800&fit=crop&q=80",
				"https://images.unsplash.com/photo-1618384887924-367292a47f4b?w=800&h=800&fit=crop&q=80",
				"https://images.unsplash.com/photo-1613134128275-53f764a5c05c?w=800&h=800&fit=crop&q=80",
			},
			VideoURL:      "https://www.w3schools.com/html/mov_bbb.mp4",
			Price:         89.99,
			OriginalPrice: price(129.99),
			Stock:         15,
			Category:      "electronics",
			Brand:         "Johnny Sins",
			Tags:          []string{models.TagOfficialStore, models.TagSale, models.TagNewArrival},
			Variants: []models.Variant{
				{Type: models.VariantColor, Value: "black", Label: "Midnight Black", Stock: 15},
				{Type: models.VariantColor, Value: "white", Label: "Glacier White", Stock: 8},
				{Type: models.VariantColor, Value: "blue", Label: "Ocean Blue", Stock: 0},
			},
			Specifications: []models.Specification{
				{Key: "Connectivity", Value: "Bluetooth 5.2"},
				{Key: "Battery Life", Value: "Up to 30 hours with case"},
				{Key: "Noise Cancellation", Value: "Active Noise Cancellation (ANC)"},
				{Key: "Water Resistance", Value: "IPX4"},
			},
			Reviews: []models.Review{{
				ID: "r1-p1", UserID: DemoUserID, Author: "Talha Reviews", Avatar: talhaAvatar, Rating: 5,
				Title:      "Absolutely fantastic!",
				Content:    "This product exceeded all my expectations. The build quality is top-notch and it performs flawlessly. Highly recommended!",
				Date:       "2023-10-26",
				IsVerified: true,
				Images: []string{
					"https://images.unsplash.com/photo-1591342371134-3a5665313936?w=200&h=200&fit=crop&q=80",
					"https://images.unsplash.com/photo-1589502543313-069f52d0b57c?w=200&h=200&fit=crop&q=80",
				},
			}},
			FAQs:   []models.FAQ{{Question: "Are they compatible with iPhone?", Answer: "Yes, they are fully compatible with all iOS and Android devices."}},
			Seller: models.Seller{ID: "s1", Name: "AuraSound Official", Logo: "https://images.unsplash.com/photo-1611108010197-991d9ec831d5?w=40&h=40&fit=crop&q=60", Rating: 4.9, Followers: 50000},
		},
		{
			ID:          "p2",
			Name:        "Le Parfum Mystique",
			Description: "An enchanting fragrance that captures the essence of a midnight garden. A blend of rare florals and exotic spices, perfect for unforgettable evenings.",
			Images: []string{
				"https://images.unsplash.com/photo-1617121221473-8c4598b0b1f2?w=800&h=800&fit=crop&q=80",
				"https://images.unsplash.com/photo-1588224973053-d1f0b09335a7?w=800&h=800&fit=crop&q=80",
				"https://images.unsplash.com/photo-1622631976033-11b33b7a5843?w=800&h=800&fit=crop&q=80",
			},
			Price:    120.00,
			Stock:    50,
			Category: "perfumes",
			Brand:    "Maison de Senteurs",
			Tags:     []string{models.TagMall},
			Variants: []models.Variant{
				{Type: models.VariantSize, Value: "50ml", Label: "50ml", Stock: 50},
				{Type: models.VariantSize, Value: "100ml", Label: "100ml", Stock: 25},
			},
			Specifications: []models.Specification{{Key: "Type", Value: "Eau de Parfum"}, {Key: "For", Value: "Women"}},
			PerfumeNotes: &models.PerfumeNotes{
				Top:    []string{"Jasmine", "Saffron"},
				Middle: []string{"Amberwood", "Ambergris"},
				Base:   []string{"Fir Resin", "Cedar"},
			},
			Reviews: []models.Review{{
				ID: "r1-p2", UserID: "user-jane-doe", Author: "Jane Doe",
				Avatar:     "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=40&h=40&fit=crop",
				Rating:     4,
				Title:      "Enchanting and long-lasting",
				Content:    "A truly mystical scent. It lasts the entire day and I get so many compliments. The bottle is also a piece of art.",
				Date:       "2023-09-20",
				IsVerified: true,
				Images:     []string{},
			}},
			FAQs:   []models.FAQ{{Question: "How long does the scent last?", Answer: "It typically lasts for 8-10 hours, depending on skin type and environment."}},
			Seller: models.Seller{ID: "s2", Name: "ScentsnStories PK", Logo: "https://images.unsplash.com/photo-1599305445671-ac291c95aaa9?w=40&h=40&fit=crop&q=60", Rating: 4.8, Followers: 120000},
		},
		{
			ID:          "p3",
			Name:        "Urban Explorer Tech Jacket",
			Description: "A stylish and functional jacket designed for the modern adventurer. Made with water-resistant fabric, multiple pockets, and a sleek urban design.",
			Images: []string{
				"https://images.unsplash.com/photo-1521223890158-f9f7c3d5d504?w=800&h=800&fit=crop&q=80",
				"https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3?w=800&h=800&fit=crop&q=80",
				"https://images.unsplash.com/photo-1591953902346-0d190b39dd75?w=800&h=800&fit=crop&q=80",
			},
			Price:         159.50,
			OriginalPrice: price(199.00),
			Stock:         3,
			Category:      "fashion",
			Brand:         "Nomi Apparel",
			Tags:          []string{models.TagSale, models.TagNewArrival},
			Variants: []models.Variant{
				{Type: models.VariantSize, Value: "s", Label: "Small", Stock: 10},
				{Type: models.VariantSize, Value: "m", Label: "Medium", Stock: 3},
				{Type: models.VariantSize, Value: "l", Label: "Large", Stock: 12},
				{Type: models.VariantColor, Value: "black", Label: "Black", Stock: 15},
				{Type: models.VariantColor, Value: "gray", Label: "Gray", Stock: 10},
			},
			Specifications: []models.Specification{{Key: "Material", Value: "100% Polyester"}, {Key: "Fit", Value: "Regular Fit"}},
			Reviews: []models.Review{{
				ID: "r1-p3", UserID: DemoUserID, Author: "Talha Reviews", Avatar: talhaAvatar, Rating: 4,
				Title:      "Stylish and very practical",
				Content:    "Great jacket for the price. It's lightweight but keeps you warm. The water-resistance works well in light rain. Lots of useful pockets.",
				Date:       "2023-10-18",
				IsVerified: true,
				Images:     []string{},
			}},
			FAQs:   []models.FAQ{{Question: "Is it machine washable?", Answer: "Yes, it is machine washable on a gentle cycle."}},
			Seller: models.Seller{ID: "s3", Name: "Nomi.pk Official", Logo: "https://images.unsplash.com/photo-1549924231-f929de01e5f4?w=40&h=40&fit=crop&q=60", Rating: 4.9, Followers: 85000},
		},
		{
			ID:          "p4",
			Name:        "SmartBrew Coffee Maker",
			Description: "The SmartBrew Coffee Maker connects to your WiFi, allowing you to schedule your brew from anywhere using our app. Wake up to the perfect cup of coffee every morning.",
			Images: []string{
				"https://images.unsplash.com/photo-1603568843232-2428d575402c?w=800&h=800&fit=crop&q=80",
				"https://images.unsplash.com/photo-1554162445-b461aa7b3633?w=800&h=800&fit=crop&q=80",
			},
			Price:          99.00,
			Stock:          42,
			Category:       "home-appliances",
			Brand:          "HomeTech",
			Tags:           []string{models.TagOfficialStore},
			Variants:       []models.Variant{},
			Specifications: []models.Specification{{Key: "Capacity", Value: "12 Cups"}, {Key: "Features", Value: "WiFi Connected, Programmable"}},
			Reviews:        []models.Review{},
			FAQs:           []models.FAQ{},
			Seller:         models.Seller{ID: "s4", Name: "Daraz Mall", Logo: "https://images.unsplash.com/photo-1580974853248-732398508b98?w=40&h=40&fit=crop&q=60", Rating: 4.7, Followers: 1200000},
		},
	}
}
