package catalog

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/afnankhn654-alt/ShopNest/models"
)

var techImagePool = []string{
	"https://images.unsplash.com/photo-1527443154391-507e9dc6c5cc?w=800&h=800&fit=crop&q=80", // Drone
	"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=800&h=800&fit=crop&q=80", // Smartphone
	"https://images.unsplash.com/photo-1588872657578-7efd1f1555ed?w=800&h=800&fit=crop&q=80", // Gaming Laptop
	"https://images.unsplash.com/photo-1542496658-e33a6d0d50f6?w=800&h=800&fit=crop&q=80", // Smartwatch
	"https://images.unsplash.com/photo-1516941151323-864a3951f43a?w=800&h=800&fit=crop&q=80", // VR Headset
	"https://images.unsplash.com/photo-1563297055-17912d0e8235?w=800&h=800&fit=crop&q=80", // Camera
	"https://images.unsplash.com/photo-1593152147344-e386e8493325?w=800&h=800&fit=crop&q=80", // Tablet
	"https://images.unsplash.com/photo-1526738549149-8e07eca6c147?w=800&h=800&fit=crop&q=80", // Desk Setup
	"https://images.unsplash.com/photo-1627843563095-f6e94676cfe0?w=800&h=800&fit=crop&q=80", // Smart Speaker
	"https://images.unsplash.com/photo-1617006132788-b785e519c5a1?w=800&h=800&fit=crop&q=80", // Mechanical Keyboard
	"https://images.unsplash.com/photo-1546435770-a3e426bf4022?w=800&h=800&fit=crop&q=80", // Graphics Card
	"https://images.unsplash.com/photo-1579586337278-35d18b3d8096?w=800&h=800&fit=crop&q=80", // Wireless Mouse
	"https://images.unsplash.com/photo-1519968948342-a2fa382a048e?w=800&h=800&fit=crop&q=80", // Projector
	"https://images.unsplash.com/photo-1629895694776-85141451f288?w=800&h=800&fit=crop&q=80", // SSD Drive
	"https://images.unsplash.com/photo-1624424361226-f3318a48bfee?w=800&h=800&fit=crop&q=80", // Router
	"https://images.unsplash.com/photo-1587098422176-157470a6a3b8?w=800&h=800&fit=crop&q=80", // Action Camera
}

var (
	namePrefixes = []string{"Quantum", "Aero", "Cyber", "Nano", "Fusion", "Stellar", "Hyper", "Giga", "Omni", "Vortex"}
	nameNouns    = []string{"Core", "Pulse", "Byte", "Sync", "Wave", "Drive", "Matrix", "Shift", "Bot", "Grid"}
	nameSuffixes = []string{"X", "Pro", "Max", "Ultra", "Plus", "9000", "Z", "Alpha", "Omega", "Prime"}
	techBrands   = []string{"InnovateX", "TechSphere", "Apex", "StarkTech", "FutureGadget", "DigitalDreams", "NextGen", "Visionary"}
	reviewers    = []string{"Ayesha K.", "Bilal R.", "Chris P.", "Dana W.", "Emre T.", "Fatima S."}
	reviewTitles = map[int]string{
		1: "Disappointed", 2: "Not great", 3: "Does the job", 4: "Really good", 5: "Love it!",
	}
)

var techSeller = models.Seller{
	ID: "s-tech", Name: "Global Electronics",
	Logo:   "https://images.unsplash.com/photo-1633355521193-8a032f89a8e2?w=40&h=40&fit=crop&q=60",
	Rating: 4.8, Followers: 250000,
}

func pick[T any](r *rand.Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// generateProducts builds n electronics products from r. Each product carries
// a handful of synthetic reviews so its rating stays derived from reviews.
func generateProducts(r *rand.Rand, n int) []models.Product {
	products := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s%s %s", pick(r, namePrefixes), pick(r, nameNouns), pick(r, nameSuffixes))
		p := round2(r.Float64()*(1500-49.99) + 49.99)
		stock := r.IntN(200)

		product := models.Product{
			ID:          fmt.Sprintf("p-gen-%d", i+1),
			Name:        name,
			Description: fmt.Sprintf("Introducing the new %s, a state-of-the-art device designed for the modern user. With its powerful features and sleek design, it's the perfect companion for both work and play.", name),
			Images: []string{
				techImagePool[i%len(techImagePool)],
				techImagePool[(i+5)%len(techImagePool)],
				techImagePool[(i+10)%len(techImagePool)],
				techImagePool[(i+15)%len(techImagePool)],
			},
			Price:    p,
			Stock:    stock,
			Category: "electronics",
			Brand:    pick(r, techBrands),
			Tags:     []string{models.TagNewArrival},
			Variants: []models.Variant{
				{Type: models.VariantColor, Value: "black", Label: "Stealth Black", Stock: stock / 2},
				{Type: models.VariantColor, Value: "silver", Label: "Lunar Silver", Stock: stock / 2},
			},
			Specifications: []models.Specification{
				{Key: "Processor", Value: fmt.Sprintf("Gen %d CoreChip", r.IntN(5)+8)},
				{Key: "RAM", Value: fmt.Sprintf("%dGB DDR5", pick(r, []int{8, 16, 32}))},
				{Key: "Storage", Value: fmt.Sprintf("%dGB NVMe SSD", pick(r, []int{256, 512, 1024}))},
				{Key: "Connectivity", Value: "Wi-Fi 6E, Bluetooth 5.3"},
			},
			FAQs:   []models.FAQ{},
			Seller: techSeller,
		}
		if r.Float64() > 0.6 {
			product.OriginalPrice = price(round2(p * (1 + r.Float64()*0.5 + 0.1)))
			product.Tags = []string{models.TagSale, models.TagNewArrival}
		}
		product.Reviews = generateReviews(r, product.ID)
		products = append(products, product)
	}
	return products
}

func generateReviews(r *rand.Rand, productID string) []models.Review {
	count := r.IntN(6)
	reviews := make([]models.Review, 0, count)
	for j := 0; j < count; j++ {
		// skewed towards 3..5 stars
		rating := 3 + r.IntN(3)
		if r.IntN(10) == 0 {
			rating = 1 + r.IntN(2)
		}
		author := pick(r, reviewers)
		reviews = append(reviews, models.Review{
			ID:         fmt.Sprintf("r%d-%s", j+1, productID),
			UserID:     fmt.Sprintf("user-gen-%d", r.IntN(1000)),
			Author:     author,
			Avatar:     "https://ui-avatars.com/api/?name=" + author[:1] + "&background=random",
			Rating:     rating,
			Title:      reviewTitles[rating],
			Content:    "Verified purchase.",
			Date:       fmt.Sprintf("2023-%02d-%02d", 1+r.IntN(12), 1+r.IntN(28)),
			IsVerified: true,
			Images:     []string{},
		})
	}
	return reviews
}
