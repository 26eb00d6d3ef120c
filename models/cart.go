package models

import "github.com/shopspring/decimal"

// CartItem is one cart line. ID is the composite line identity: product id
// plus the sorted selected variant values.
type CartItem struct {
	ID               string    `json:"id"`
	Product          Product   `json:"product"`
	Quantity         int       `json:"quantity"`
	SelectedVariants []Variant `json:"selectedVariants"`
}

// LineTotal is unit price times quantity.
func (c CartItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(c.Product.Price).Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// AvailableStock is the smallest stock among the selected variants, or the
// product stock when nothing was selected.
func (c CartItem) AvailableStock() int {
	if len(c.SelectedVariants) == 0 {
		return c.Product.Stock
	}
	available := c.SelectedVariants[0].Stock
	for _, v := range c.SelectedVariants[1:] {
		if v.Stock < available {
			available = v.Stock
		}
	}
	return available
}
