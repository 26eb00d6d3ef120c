package productcontroller

import (
	"bytes"
	"net/http"

	"github.com/afnankhn654-alt/ShopNest/catalog"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
)

// ExportProductsToExcel downloads the catalog as products.xlsx.
// GET /admin/products/export-excel
func ExportProductsToExcel(shop *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := catalog.WriteWorkbook(&buf, shop.Products()); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}
