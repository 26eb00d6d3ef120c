package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/tealeg/xlsx"
)

var exportHeaders = []string{
	"ID", "Name", "Brand", "Category", "Price", "OriginalPrice", "Stock",
	"Rating", "ReviewCount", "Tags", "Variants", "Seller", "Image",
}

// WriteWorkbook writes the products as an .xlsx workbook with one
// "Products" sheet.
func WriteWorkbook(w io.Writer, products []models.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	// Header row
	headerRow := sheet.AddRow()
	for _, h := range exportHeaders {
		headerRow.AddCell().SetValue(h)
	}

	// Data rows
	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Brand)
		row.AddCell().SetValue(p.Category)
		row.AddCell().SetValue(p.Price)
		if p.OriginalPrice != nil {
			row.AddCell().SetValue(*p.OriginalPrice)
		} else {
			row.AddCell().SetValue("")
		}
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(p.Rating)
		row.AddCell().SetValue(p.ReviewCount)
		row.AddCell().SetValue(strings.Join(p.Tags, ","))

		variants := make([]string, len(p.Variants))
		for i, v := range p.Variants {
			variants[i] = fmt.Sprintf("%s:%s(%d)", v.Type, v.Value, v.Stock)
		}
		row.AddCell().SetValue(strings.Join(variants, ","))
		row.AddCell().SetValue(p.Seller.Name)

		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		row.AddCell().SetValue(image)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
