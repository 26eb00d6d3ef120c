package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/afnankhn654-alt/ShopNest/catalog"
	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ProductPage is one page of a product listing.
type ProductPage struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// GetProducts lists products with optional search, category, price range,
// sorting and paging.
// GET /products?search=&category_id=&min_price=&max_price=&sort=&page=&limit=
func GetProducts(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Search or full listing
		products := shop.Products()
		if search := c.Query("search"); search != "" {
			products = shop.Search(search)
		}

		// 2️⃣ Category filter
		if categoryID := c.Query("category_id"); categoryID != "" {
			if !shop.HasCategory(categoryID) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			products = catalog.InCategory(products, categoryID)
		}

		// 3️⃣ Price range
		minPrice, ok := parsePrice(c, "min_price")
		if !ok {
			return
		}
		maxPrice, ok := parsePrice(c, "max_price")
		if !ok {
			return
		}
		if minPrice != nil || maxPrice != nil {
			filtered := products[:0:0]
			for _, p := range products {
				if minPrice != nil && p.Price < *minPrice {
					continue
				}
				if maxPrice != nil && p.Price > *maxPrice {
					continue
				}
				filtered = append(filtered, p)
			}
			products = filtered
		}

		// 4️⃣ Sorting
		products = catalog.Sort(products, catalog.ParseSort(c.Query("sort")))

		// 5️⃣ Paging
		page, limit, ok := parsePaging(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, paginate(products, page, limit))
	}
}

func parsePrice(c *gin.Context, key string) (*float64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + key})
		return nil, false
	}
	return &v, true
}

func parsePaging(c *gin.Context) (page, limit int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return 0, 0, false
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return 0, 0, false
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit, true
}

func paginate(products []models.Product, page, limit int) ProductPage {
	out := ProductPage{Total: len(products), Page: page, Limit: limit, Products: []models.Product{}}
	start := (page - 1) * limit
	if start >= len(products) {
		return out
	}
	end := min(start+limit, len(products))
	out.Products = products[start:end]
	return out
}
