package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset_InsertionOrderPreserved(t *testing.T) {
	ds := NewDataset()
	ds.PutProduct(&Product{ID: "P3", Name: "C"})
	ds.PutProduct(&Product{ID: "P1", Name: "A"})
	ds.PutProduct(&Product{ID: "P2", Name: "B"})

	var ids []string
	for _, p := range ds.Products() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"P3", "P1", "P2"}, ids)
}

func TestDataset_PutProductOverwriteKeepsPosition(t *testing.T) {
	ds := NewDataset()
	ds.PutProduct(&Product{ID: "P1", Name: "first"})
	ds.PutProduct(&Product{ID: "P2", Name: "second"})
	ds.PutProduct(&Product{ID: "P1", Name: "rewritten"})

	products := ds.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "P1", products[0].ID)
	assert.Equal(t, "rewritten", products[0].Name)
}

func TestDataset_RenameProductCascadesToOrders(t *testing.T) {
	ds := NewDataset()
	ds.PutProduct(&Product{ID: "P1"})
	ds.PutProduct(&Product{ID: "P2"})
	ds.AppendOrder(&Order{ID: "O001", ProductID: "P1", Quantity: 2})
	ds.AppendOrder(&Order{ID: "O002", ProductID: "P2", Quantity: 1})
	ds.AppendOrder(&Order{ID: "O003", ProductID: "P1", Quantity: 3})

	require.True(t, ds.RenameProduct("P1", "P9"))

	_, ok := ds.Product("P1")
	assert.False(t, ok)
	renamed, ok := ds.Product("P9")
	require.True(t, ok)
	assert.Equal(t, "P9", renamed.ID)

	// Display position of the renamed product must not move.
	assert.Equal(t, "P9", ds.Products()[0].ID)

	orders := ds.Orders()
	assert.Equal(t, "P9", orders[0].ProductID)
	assert.Equal(t, "P2", orders[1].ProductID)
	assert.Equal(t, "P9", orders[2].ProductID)
}

func TestDataset_RenameProductMissing(t *testing.T) {
	ds := NewDataset()
	assert.False(t, ds.RenameProduct("P1", "P2"))
}

func TestDataset_CloneIsIndependent(t *testing.T) {
	ds := NewDataset()
	ds.PutProduct(&Product{ID: "P1", Name: "Widget", Stock: 5})
	ds.PutSupplier(&Supplier{ID: "S1", Name: "Acme"})
	ds.AppendOrder(&Order{ID: "O001", ProductID: "P1", Quantity: 1})
	ds.AppendSupplierOrder(&SupplierOrder{ID: "SO001", SupplierID: "S1", ProductID: "P1", Quantity: 4})

	clone := ds.Clone()
	cloned, ok := clone.Product("P1")
	require.True(t, ok)
	cloned.Stock = 99
	clone.Orders()[0].Quantity = 42

	original, _ := ds.Product("P1")
	assert.Equal(t, 5, original.Stock)
	assert.Equal(t, 1, ds.Orders()[0].Quantity)
	require.Len(t, clone.Suppliers(), 1)
	require.Len(t, clone.SupplierOrders(), 1)
}

func TestProductUpdate_AppliedValidatesResult(t *testing.T) {
	product := &Product{ID: "P1", Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 10}

	badPrice := decimal.RequireFromString("-1")
	_, err := ProductUpdate{Price: &badPrice}.Applied(product)
	require.ErrorIs(t, err, ErrNegativePrice)
	// The source product must survive a failed update untouched.
	assert.True(t, product.Price.Equal(decimal.RequireFromString("9.99")))

	name := "Gadget"
	stock := 3
	updated, err := ProductUpdate{Name: &name, Stock: &stock}.Applied(product)
	require.NoError(t, err)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, "Widget", product.Name)
}
