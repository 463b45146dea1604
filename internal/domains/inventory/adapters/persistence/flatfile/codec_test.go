package flatfile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invtrack/invtrack/internal/domains/inventory/domain"
)

func TestProductCodec_RoundTrip(t *testing.T) {
	product := &domain.Product{
		ID:          "P1",
		Name:        "Widget",
		Description: "A basic widget",
		Price:       decimal.RequireFromString("9.99"),
		Stock:       10,
		SupplierID:  "S1",
	}

	line := encodeProduct(product)
	assert.Equal(t, "P1|Widget|A basic widget|9.99|10|S1", line)

	decoded, err := decodeProduct(line)
	require.NoError(t, err)
	assert.Equal(t, product.ID, decoded.ID)
	assert.Equal(t, product.Description, decoded.Description)
	assert.True(t, decoded.Price.Equal(product.Price))
	assert.Equal(t, product.Stock, decoded.Stock)
	assert.Equal(t, "S1", decoded.SupplierID)
}

func TestProductCodec_EmptySupplierKeepsTrailingField(t *testing.T) {
	product := &domain.Product{ID: "P1", Name: "Widget", Price: decimal.RequireFromString("1.50"), Stock: 0}

	line := encodeProduct(product)
	assert.Equal(t, "P1|Widget||1.50|0|", line)

	decoded, err := decodeProduct(line)
	require.NoError(t, err)
	assert.Empty(t, decoded.SupplierID)
}

func TestDecodeProduct_Malformed(t *testing.T) {
	_, err := decodeProduct("P1|Widget|desc|9.99")
	require.ErrorIs(t, err, ErrFieldCount)

	_, err = decodeProduct("P1|Widget|desc|not-a-price|10|")
	require.ErrorIs(t, err, ErrBadNumber)

	_, err = decodeProduct("P1|Widget|desc|9.99|not-a-stock|")
	require.ErrorIs(t, err, ErrBadNumber)
}

func TestSupplierCodec(t *testing.T) {
	supplier := &domain.Supplier{ID: "S1", Name: "Acme", Contact: "acme@example.com"}
	line := encodeSupplier(supplier)
	assert.Equal(t, "S1|Acme|acme@example.com", line)

	decoded, err := decodeSupplier(line)
	require.NoError(t, err)
	assert.Equal(t, supplier, decoded)

	_, err = decodeSupplier("S1|Acme")
	require.ErrorIs(t, err, ErrFieldCount)
}

func TestOrderCodec(t *testing.T) {
	order := &domain.Order{ID: "O001", ProductID: "P1", Quantity: 3, Date: "2024-03-15"}
	line := encodeOrder(order)
	assert.Equal(t, "O001|P1|3|2024-03-15", line)

	decoded, err := decodeOrder(line)
	require.NoError(t, err)
	assert.Equal(t, order, decoded)

	_, err = decodeOrder("O001|P1|three|2024-03-15")
	require.ErrorIs(t, err, ErrBadNumber)
}

func TestSupplierOrderCodec(t *testing.T) {
	order := &domain.SupplierOrder{ID: "SO001", SupplierID: "S1", ProductID: "P1", Quantity: 25, Date: "2024-03-15"}
	line := encodeSupplierOrder(order)
	assert.Equal(t, "SO001|S1|P1|25|2024-03-15", line)

	decoded, err := decodeSupplierOrder(line)
	require.NoError(t, err)
	assert.Equal(t, order, decoded)

	_, err = decodeSupplierOrder("SO001|S1|P1|25")
	require.ErrorIs(t, err, ErrFieldCount)
}
