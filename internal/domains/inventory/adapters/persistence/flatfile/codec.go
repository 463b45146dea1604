package flatfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/invtrack/invtrack/internal/domains/inventory/domain"
)

const fieldSeparator = "|"

var (
	// ErrFieldCount signals a record line split into the wrong number of
	// fields for its entity type.
	ErrFieldCount = errors.New("unexpected field count")
	// ErrBadNumber signals a numeric field that does not parse.
	ErrBadNumber = errors.New("numeric field does not parse")
)

// Decode failures are local, recoverable outcomes: the loader skips the
// offending line and keeps going. Field layouts match the persisted
// headers; see the *Header constants in repository.go.

func encodeProduct(p *domain.Product) string {
	return strings.Join([]string{
		p.ID,
		p.Name,
		p.Description,
		p.Price.String(),
		strconv.Itoa(p.Stock),
		p.SupplierID,
	}, fieldSeparator)
}

func decodeProduct(line string) (*domain.Product, error) {
	fields := splitRecord(line)
	if len(fields) < 5 {
		return nil, fmt.Errorf("%w: product needs at least 5 fields, got %d", ErrFieldCount, len(fields))
	}
	price, err := decimal.NewFromString(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: price %q", ErrBadNumber, fields[3])
	}
	stock, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: stock %q", ErrBadNumber, fields[4])
	}
	supplierID := ""
	if len(fields) > 5 {
		supplierID = fields[5]
	}
	return &domain.Product{
		ID:          fields[0],
		Name:        fields[1],
		Description: fields[2],
		Price:       price,
		Stock:       stock,
		SupplierID:  supplierID,
	}, nil
}

func encodeSupplier(s *domain.Supplier) string {
	return strings.Join([]string{s.ID, s.Name, s.Contact}, fieldSeparator)
}

func decodeSupplier(line string) (*domain.Supplier, error) {
	fields := splitRecord(line)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: supplier needs exactly 3 fields, got %d", ErrFieldCount, len(fields))
	}
	return &domain.Supplier{ID: fields[0], Name: fields[1], Contact: fields[2]}, nil
}

func encodeOrder(o *domain.Order) string {
	return strings.Join([]string{o.ID, o.ProductID, strconv.Itoa(o.Quantity), o.Date}, fieldSeparator)
}

func decodeOrder(line string) (*domain.Order, error) {
	fields := splitRecord(line)
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: order needs exactly 4 fields, got %d", ErrFieldCount, len(fields))
	}
	quantity, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: quantity %q", ErrBadNumber, fields[2])
	}
	return &domain.Order{ID: fields[0], ProductID: fields[1], Quantity: quantity, Date: fields[3]}, nil
}

func encodeSupplierOrder(o *domain.SupplierOrder) string {
	return strings.Join([]string{o.ID, o.SupplierID, o.ProductID, strconv.Itoa(o.Quantity), o.Date}, fieldSeparator)
}

func decodeSupplierOrder(line string) (*domain.SupplierOrder, error) {
	fields := splitRecord(line)
	if len(fields) != 5 {
		return nil, fmt.Errorf("%w: supplier order needs exactly 5 fields, got %d", ErrFieldCount, len(fields))
	}
	quantity, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: quantity %q", ErrBadNumber, fields[3])
	}
	return &domain.SupplierOrder{
		ID:         fields[0],
		SupplierID: fields[1],
		ProductID:  fields[2],
		Quantity:   quantity,
		Date:       fields[4],
	}, nil
}

func splitRecord(line string) []string {
	return strings.Split(strings.TrimSpace(line), fieldSeparator)
}
