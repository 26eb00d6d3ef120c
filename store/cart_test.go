package store

import (
	"sync"
	"testing"

	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jacket() models.Product {
	return models.Product{
		ID: "p3", Name: "Jacket", Price: 159.50, Stock: 3,
		Variants: []models.Variant{
			{Type: models.VariantSize, Value: "s", Label: "Small", Stock: 10},
			{Type: models.VariantSize, Value: "m", Label: "Medium", Stock: 3},
			{Type: models.VariantColor, Value: "black", Label: "Black", Stock: 15},
			{Type: models.VariantColor, Value: "blue", Label: "Blue", Stock: 0},
		},
	}
}

func TestLineID(t *testing.T) {
	p := jacket()
	m, _ := p.FindVariant(models.VariantSize, "m")
	black, _ := p.FindVariant(models.VariantColor, "black")

	assert.Equal(t, "p4_", LineID("p4", nil))
	assert.Equal(t, "p3_black_m", LineID("p3", []models.Variant{m, black}))
	assert.Equal(t, LineID("p3", []models.Variant{m, black}), LineID("p3", []models.Variant{black, m}))

	joined := LineID("p9", []models.Variant{{Type: models.VariantStyle, Value: "a_b"}})
	split := LineID("p9", []models.Variant{
		{Type: models.VariantStyle, Value: "a"},
		{Type: models.VariantColor, Value: "b"},
	})
	assert.NotEqual(t, joined, split)
	assert.Equal(t, "p9_a~_b", joined)
	assert.Equal(t, "p9_a_b", split)
	assert.NotEqual(t, LineID("p9", []models.Variant{{Value: "a~"}, {Value: "b"}}), joined)
}

func TestValidateSelection(t *testing.T) {
	p := jacket()

	_, err := ValidateSelection(p, map[models.VariantType]string{models.VariantSize: "m"})
	require.True(t, IsValidation(err))
	assert.Equal(t, "Please select an option for each variant: size, color.", err.Error())

	_, err = ValidateSelection(p, map[models.VariantType]string{models.VariantSize: "xl", models.VariantColor: "black"})
	assert.True(t, IsValidation(err))

	_, err = ValidateSelection(p, map[models.VariantType]string{models.VariantSize: "m", models.VariantColor: "blue"})
	assert.True(t, IsValidation(err), "zero-stock variant")

	_, err = ValidateSelection(p, map[models.VariantType]string{models.VariantSize: "m", models.VariantColor: "black", models.VariantStyle: "slim"})
	assert.True(t, IsValidation(err))

	got, err := ValidateSelection(p, map[models.VariantType]string{models.VariantColor: "black", models.VariantSize: "m"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m", got[0].Value)
	assert.Equal(t, "black", got[1].Value)

	none, err := ValidateSelection(models.Product{ID: "p4"}, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCart_AddMergesAndTotals(t *testing.T) {
	c := NewCart(false)
	p4 := models.Product{ID: "p4", Price: 99}

	item, err := c.AddItem(p4, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "p4_", item.ID)

	_, err = c.AddItem(p4, 3, nil)
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, c.ItemCount())
	assert.Equal(t, "$495.00", models.FormatAmount(c.Subtotal()))

	_, err = c.AddItem(p4, 0, nil)
	assert.True(t, IsValidation(err))
	assert.Equal(t, 5, c.ItemCount())
}

func TestCart_UpdateAndRemove(t *testing.T) {
	c := NewCart(false)
	p4 := models.Product{ID: "p4", Price: 10}
	_, err := c.AddItem(p4, 1, nil)
	require.NoError(t, err)

	require.NoError(t, c.UpdateQuantity("p4_", 7))
	assert.Equal(t, 7, c.ItemCount())

	assert.ErrorIs(t, c.UpdateQuantity("missing_", 2), ErrLineNotFound)
	assert.NoError(t, c.UpdateQuantity("missing_", 0))

	require.NoError(t, c.UpdateQuantity("p4_", -1))
	assert.Empty(t, c.Items())

	c.RemoveItem("p4_")
	_, _ = c.AddItem(p4, 1, nil)
	c.Clear()
	assert.Zero(t, c.ItemCount())
	assert.True(t, c.Subtotal().IsZero())
}

func TestCart_StockGapPreservedByDefault(t *testing.T) {
	p := jacket()
	m, _ := p.FindVariant(models.VariantSize, "m")
	black, _ := p.FindVariant(models.VariantColor, "black")

	c := NewCart(false)
	_, err := c.AddItem(p, 10, []models.Variant{m, black})
	assert.NoError(t, err)
}

func TestCart_EnforceStock(t *testing.T) {
	p := jacket()
	m, _ := p.FindVariant(models.VariantSize, "m")
	black, _ := p.FindVariant(models.VariantColor, "black")

	c := NewCart(true)
	_, err := c.AddItem(p, 2, []models.Variant{m, black})
	require.NoError(t, err)
	_, err = c.AddItem(p, 2, []models.Variant{black, m})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 2, c.ItemCount(), "rejected add leaves the line untouched")

	line := LineID(p.ID, []models.Variant{m, black})
	assert.ErrorIs(t, c.UpdateQuantity(line, 4), ErrInsufficientStock)
	assert.NoError(t, c.UpdateQuantity(line, 3))
}

func TestCart_ConcurrentAdds(t *testing.T) {
	c := NewCart(false)
	p := models.Product{ID: "p1", Price: 1}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.AddItem(p, 2, nil)
		}()
	}
	wg.Wait()

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 100, c.ItemCount())
}
