package flatfile

import (
	"bufio"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/invtrack/invtrack/internal/domains/inventory/domain"
	"github.com/invtrack/invtrack/internal/domains/inventory/ports"
)

const (
	productsFile       = "products.txt"
	suppliersFile      = "suppliers.txt"
	ordersFile         = "orders.txt"
	supplierOrdersFile = "supplier_orders.txt"

	productsHeader       = "product_id|name|description|price|stock|supplier_id"
	suppliersHeader      = "supplier_id|name|contact"
	ordersHeader         = "order_id|product_id|quantity|order_date"
	supplierOrdersHeader = "order_id|supplier_id|product_id|quantity|order_date"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists the dataset as four pipe-delimited text files under
// a single directory. There is no cross-file transaction: each file is
// written atomically (temp file + rename) but a crash between files can
// leave them mutually inconsistent, which is an accepted limitation.
type Repository struct {
	dir    string
	logger *slog.Logger
}

type Option func(*Repository)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRepository wires a flat-file repository rooted at dir. The directory
// must already exist.
func NewRepository(dir string, opts ...Option) *Repository {
	r := &Repository{dir: dir, logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Load reads all four files into a fresh dataset. Missing files load as
// empty collections. The first line of each file is a header and is
// discarded without validation; malformed record lines are skipped with a
// warning, and duplicate product/supplier IDs resolve last-write-wins.
func (r *Repository) Load(_ context.Context) (*domain.Dataset, error) {
	ds := domain.NewDataset()

	err := r.loadFile(productsFile, func(line string) error {
		p, err := decodeProduct(line)
		if err != nil {
			return err
		}
		if _, exists := ds.Product(p.ID); exists {
			r.logger.Warn("duplicate product id, keeping later record",
				slog.String("file", productsFile), slog.String("product_id", p.ID))
		}
		ds.PutProduct(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.loadFile(suppliersFile, func(line string) error {
		s, err := decodeSupplier(line)
		if err != nil {
			return err
		}
		if _, exists := ds.Supplier(s.ID); exists {
			r.logger.Warn("duplicate supplier id, keeping later record",
				slog.String("file", suppliersFile), slog.String("supplier_id", s.ID))
		}
		ds.PutSupplier(s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.loadFile(ordersFile, func(line string) error {
		o, err := decodeOrder(line)
		if err != nil {
			return err
		}
		ds.AppendOrder(o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = r.loadFile(supplierOrdersFile, func(line string) error {
		o, err := decodeSupplierOrder(line)
		if err != nil {
			return err
		}
		ds.AppendSupplierOrder(o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ds, nil
}

// Flush rewrites all four files from scratch, header first, one record
// per line in collection order.
func (r *Repository) Flush(_ context.Context, ds *domain.Dataset) error {
	if ds == nil {
		return errors.New("dataset is nil")
	}

	products := ds.Products()
	productLines := make([]string, 0, len(products))
	for _, p := range products {
		productLines = append(productLines, encodeProduct(p))
	}
	if err := r.writeFile(productsFile, productsHeader, productLines); err != nil {
		return err
	}

	suppliers := ds.Suppliers()
	supplierLines := make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		supplierLines = append(supplierLines, encodeSupplier(s))
	}
	if err := r.writeFile(suppliersFile, suppliersHeader, supplierLines); err != nil {
		return err
	}

	orders := ds.Orders()
	orderLines := make([]string, 0, len(orders))
	for _, o := range orders {
		orderLines = append(orderLines, encodeOrder(o))
	}
	if err := r.writeFile(ordersFile, ordersHeader, orderLines); err != nil {
		return err
	}

	supplierOrders := ds.SupplierOrders()
	supplierOrderLines := make([]string, 0, len(supplierOrders))
	for _, o := range supplierOrders {
		supplierOrderLines = append(supplierOrderLines, encodeSupplierOrder(o))
	}
	return r.writeFile(supplierOrdersFile, supplierOrdersHeader, supplierOrderLines)
}

func (r *Repository) loadFile(name string, accept func(line string) error) error {
	f, err := os.Open(filepath.Join(r.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	skipped := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			// Header line, discarded unconditionally.
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := accept(line); err != nil {
			skipped++
			r.logger.Warn("skipping malformed record",
				slog.String("file", name), slog.Int("line", lineNo), slog.String("error", err.Error()))
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if skipped > 0 {
		r.logger.Warn("records skipped during load", slog.String("file", name), slog.Int("count", skipped))
	}
	return nil
}

// writeFile replaces the named file with header + lines via a temp file
// renamed into place, so a crash mid-write never leaves a truncated file.
func (r *Repository) writeFile(name, header string, lines []string) error {
	tmp, err := os.CreateTemp(r.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := bufio.NewWriter(tmp)
	if _, err := w.WriteString(header + "\n"); err != nil {
		tmp.Close()
		return err
	}
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			tmp.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, filepath.Join(r.dir, name))
}
