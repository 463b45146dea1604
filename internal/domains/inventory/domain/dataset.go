package domain

// Dataset owns the four entity collections. Products and suppliers are
// keyed by ID with insertion order preserved for display; orders and
// supplier orders are append-only sequences. Nothing outside the dataset
// aliases its collections, callers mutate entities through the pointers it
// hands out and flush the whole dataset afterwards.
type Dataset struct {
	products      map[string]*Product
	productOrder  []string
	suppliers     map[string]*Supplier
	supplierOrder []string

	orders         []*Order
	supplierOrders []*SupplierOrder
}

func NewDataset() *Dataset {
	return &Dataset{
		products:  map[string]*Product{},
		suppliers: map[string]*Supplier{},
	}
}

// Product returns the product stored under id.
func (d *Dataset) Product(id string) (*Product, bool) {
	p, ok := d.products[id]
	return p, ok
}

// PutProduct inserts or overwrites a product. Overwriting keeps the
// original display position (last write wins on reload of duplicate IDs).
func (d *Dataset) PutProduct(p *Product) {
	if _, exists := d.products[p.ID]; !exists {
		d.productOrder = append(d.productOrder, p.ID)
	}
	d.products[p.ID] = p
}

// Products returns all products in insertion order.
func (d *Dataset) Products() []*Product {
	list := make([]*Product, 0, len(d.productOrder))
	for _, id := range d.productOrder {
		list = append(list, d.products[id])
	}
	return list
}

// RenameProduct rekeys the product stored under oldID to newID, keeps its
// display position, and rewrites ProductID on every customer order that
// referenced oldID. This is the one cross-entity cascade in the system.
// Reports false when oldID is not present; the caller checks newID for
// collisions beforehand.
func (d *Dataset) RenameProduct(oldID, newID string) bool {
	p, ok := d.products[oldID]
	if !ok {
		return false
	}
	delete(d.products, oldID)
	p.ID = newID
	d.products[newID] = p
	for i, id := range d.productOrder {
		if id == oldID {
			d.productOrder[i] = newID
			break
		}
	}
	for _, o := range d.orders {
		if o.ProductID == oldID {
			o.ProductID = newID
		}
	}
	return true
}

// Supplier returns the supplier stored under id.
func (d *Dataset) Supplier(id string) (*Supplier, bool) {
	s, ok := d.suppliers[id]
	return s, ok
}

// PutSupplier inserts or overwrites a supplier, keeping the original
// display position on overwrite.
func (d *Dataset) PutSupplier(s *Supplier) {
	if _, exists := d.suppliers[s.ID]; !exists {
		d.supplierOrder = append(d.supplierOrder, s.ID)
	}
	d.suppliers[s.ID] = s
}

// Suppliers returns all suppliers in insertion order.
func (d *Dataset) Suppliers() []*Supplier {
	list := make([]*Supplier, 0, len(d.supplierOrder))
	for _, id := range d.supplierOrder {
		list = append(list, d.suppliers[id])
	}
	return list
}

// Orders returns the customer order sequence, oldest first. The slice is
// owned by the dataset.
func (d *Dataset) Orders() []*Order {
	return d.orders
}

func (d *Dataset) AppendOrder(o *Order) {
	d.orders = append(d.orders, o)
}

// SupplierOrders returns the supplier order sequence, oldest first. The
// slice is owned by the dataset.
func (d *Dataset) SupplierOrders() []*SupplierOrder {
	return d.supplierOrders
}

func (d *Dataset) AppendSupplierOrder(o *SupplierOrder) {
	d.supplierOrders = append(d.supplierOrders, o)
}

// Clone returns a deep copy sharing no entities with the original.
func (d *Dataset) Clone() *Dataset {
	clone := NewDataset()
	for _, p := range d.Products() {
		cp := *p
		clone.PutProduct(&cp)
	}
	for _, s := range d.Suppliers() {
		cs := *s
		clone.PutSupplier(&cs)
	}
	for _, o := range d.orders {
		co := *o
		clone.AppendOrder(&co)
	}
	for _, so := range d.supplierOrders {
		cso := *so
		clone.AppendSupplierOrder(&cso)
	}
	return clone
}
