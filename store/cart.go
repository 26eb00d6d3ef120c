package store

import (
	"slices"
	"strings"
	"sync"

	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/shopspring/decimal"
)

// lineEscaper keeps "_" unambiguous as the line id separator. The escapes
// are URL-safe so line ids can travel as path segments.
var lineEscaper = strings.NewReplacer("~", "~~", "_", "~_")

// LineID is the cart line identity: the product id, then the selected
// variant values sorted and joined with "_". A product without variants
// yields "<id>_". A "_" or "~" inside the id or a value is escaped with "~".
func LineID(productID string, selected []models.Variant) string {
	values := make([]string, len(selected))
	for i, v := range selected {
		values[i] = lineEscaper.Replace(v.Value)
	}
	slices.Sort(values)
	return lineEscaper.Replace(productID) + "_" + strings.Join(values, "_")
}

// ValidateSelection resolves the variant values picked for each variant type
// of the product. Every type must be chosen, with a value the product offers
// and has in stock. The result follows the product's variant type order.
func ValidateSelection(product models.Product, selected map[models.VariantType]string) ([]models.Variant, error) {
	types := product.VariantTypes()
	for t := range selected {
		if !slices.Contains(types, t) {
			return nil, validationf("This product has no %s option.", t)
		}
	}
	if len(types) == 0 {
		return nil, nil
	}
	for _, t := range types {
		if selected[t] == "" {
			names := make([]string, len(types))
			for i, t := range types {
				names[i] = string(t)
			}
			return nil, validationf("Please select an option for each variant: %s.", strings.Join(names, ", "))
		}
	}

	variants := make([]models.Variant, 0, len(types))
	for _, t := range types {
		v, ok := product.FindVariant(t, selected[t])
		if !ok {
			return nil, validationf("%q is not an available %s for this product.", selected[t], t)
		}
		if v.Stock <= 0 {
			return nil, validationf("%s %s is out of stock.", v.Label, t)
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// Cart is the shopping cart of one session. Every stored line has a
// quantity of at least one.
type Cart struct {
	mu           sync.Mutex
	items        []models.CartItem
	enforceStock bool
}

// NewCart returns an empty cart. With enforceStock, quantities above the
// line's available stock are rejected.
func NewCart(enforceStock bool) *Cart {
	return &Cart{enforceStock: enforceStock}
}

// AddItem merges quantity into the line for product and selection, creating
// the line when needed.
func (c *Cart) AddItem(product models.Product, quantity int, selected []models.Variant) (models.CartItem, error) {
	if quantity < 1 {
		return models.CartItem{}, validationf("Quantity must be at least 1.")
	}
	id := LineID(product.ID, selected)

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexLocked(id); i >= 0 {
		item := c.items[i]
		item.Quantity += quantity
		if err := c.checkStock(item); err != nil {
			return models.CartItem{}, err
		}
		c.items[i] = item
		return item, nil
	}

	item := models.CartItem{
		ID:               id,
		Product:          product,
		Quantity:         quantity,
		SelectedVariants: append([]models.Variant(nil), selected...),
	}
	if err := c.checkStock(item); err != nil {
		return models.CartItem{}, err
	}
	c.items = append(c.items, item)
	return item, nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (c *Cart) UpdateQuantity(lineID string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(lineID)
	if quantity <= 0 {
		if i >= 0 {
			c.items = slices.Delete(c.items, i, i+1)
		}
		return nil
	}
	if i < 0 {
		return ErrLineNotFound
	}
	item := c.items[i]
	item.Quantity = quantity
	if err := c.checkStock(item); err != nil {
		return err
	}
	c.items[i] = item
	return nil
}

// RemoveItem drops a line; removing an absent line is a no-op.
func (c *Cart) RemoveItem(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.DeleteFunc(c.items, func(item models.CartItem) bool {
		return item.ID == lineID
	})
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount is the sum of quantities, shown on the header badge.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) Subtotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (c *Cart) indexLocked(lineID string) int {
	return slices.IndexFunc(c.items, func(item models.CartItem) bool {
		return item.ID == lineID
	})
}

func (c *Cart) checkStock(item models.CartItem) error {
	if c.enforceStock && item.Quantity > item.AvailableStock() {
		return ErrInsufficientStock
	}
	return nil
}
