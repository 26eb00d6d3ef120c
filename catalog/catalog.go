// Package catalog holds the seeded storefront dataset and the read-side
// product queries used by the category, search and home pages.
package catalog

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/afnankhn654-alt/ShopNest/models"
)

// DefaultGenerated is the number of generated electronics products.
const DefaultGenerated = 500

// Dataset is everything the storefront is seeded with at startup.
type Dataset struct {
	Products   []models.Product
	Categories []models.Category
	Orders     []models.Order
	Banners    []models.Banner
	// Addresses are keyed by user id.
	Addresses  map[string][]models.Address
}

// Seed builds the dataset. The same seed always yields the same products.
func Seed(seed uint64, generated int) Dataset {
	r := rand.New(rand.NewPCG(seed, seed^0x5eed))

	products := featuredProducts()
	products = append(products, generateProducts(r, generated)...)
	for i := range products {
		products[i].Recompute()
	}

	return Dataset{
		Products:   products,
		Categories: slices.Clone(categories),
		Orders:     seedOrders(),
		Banners:    slices.Clone(banners),
		Addresses:  map[string][]models.Address{DemoUserID: seedAddresses()},
	}
}

// SortOption orders a category listing.
type SortOption string

const (
	SortDefault    SortOption = "default"
	SortPriceAsc   SortOption = "price_asc"
	SortPriceDesc  SortOption = "price_desc"
	SortRatingDesc SortOption = "rating_desc"
)

// ParseSort maps a query value to a SortOption; unknown values sort by default.
func ParseSort(s string) SortOption {
	switch SortOption(strings.ToLower(s)) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortRatingDesc:
		return SortRatingDesc
	default:
		return SortDefault
	}
}

// Sort returns a sorted copy. Ties keep seed order.
func Sort(products []models.Product, opt SortOption) []models.Product {
	sorted := slices.Clone(products)
	switch opt {
	case SortPriceAsc:
		slices.SortStableFunc(sorted, func(a, b models.Product) int { return cmpFloat(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(sorted, func(a, b models.Product) int { return cmpFloat(b.Price, a.Price) })
	case SortRatingDesc:
		slices.SortStableFunc(sorted, func(a, b models.Product) int { return cmpFloat(b.Rating, a.Rating) })
	}
	return sorted
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// InCategory filters products by category id, keeping order.
func InCategory(products []models.Product, categoryID string) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// Search matches name, brand and description case-insensitively.
func Search(products []models.Product, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(products)
	}
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// Similar returns up to n other products from the same category.
func Similar(products []models.Product, product models.Product, n int) []models.Product {
	var out []models.Product
	for _, p := range products {
		if len(out) == n {
			break
		}
		if p.Category == product.Category && p.ID != product.ID {
			out = append(out, p)
		}
	}
	return out
}

// FlashSale is the first four products of the catalog.
func FlashSale(products []models.Product) []models.Product {
	if len(products) > 4 {
		return slices.Clone(products[:4])
	}
	return slices.Clone(products)
}

// Trending picks n products at random.
func Trending(r *rand.Rand, products []models.Product, n int) []models.Product {
	shuffled := slices.Clone(products)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}
