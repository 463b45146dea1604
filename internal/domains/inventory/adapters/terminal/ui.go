package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/invtrack/invtrack/internal/domains/inventory/ports"
)

// UI drives the inventory service through an interactive text menu. It
// owns all prompting, input normalization, and rendering; the service
// only ever sees typed arguments.
type UI struct {
	svc ports.Service
	in  *bufio.Reader
	out io.Writer
}

func New(svc ports.Service, in io.Reader, out io.Writer) *UI {
	return &UI{svc: svc, in: bufio.NewReader(in), out: out}
}

// Run loops over the main menu until the user exits or input ends.
func (u *UI) Run(ctx context.Context) error {
	for {
		fmt.Fprint(u.out, "\n1. Add Product\n2. Update Product\n3. Add Supplier\n4. Place Customer Order\n5. Place Supplier Order\n6. View Inventory\n7. Generate Reports\n8. Exit\n")
		choice, err := u.prompt("Enter your choice (1-8): ")
		if err != nil {
			return nil
		}
		switch choice {
		case "1":
			u.addProduct(ctx)
		case "2":
			u.updateProduct(ctx)
		case "3":
			u.addSupplier(ctx)
		case "4":
			u.placeCustomerOrder(ctx)
		case "5":
			u.placeSupplierOrder(ctx)
		case "6":
			u.viewInventory(ctx)
		case "7":
			u.reportsMenu(ctx)
		case "8":
			fmt.Fprintln(u.out, "Exiting system. Goodbye!")
			return nil
		default:
			fmt.Fprintln(u.out, "Invalid choice, please try again.")
		}
	}
}

// prompt prints a label and reads one trimmed input line. The error is
// non-nil only when input is exhausted.
func (u *UI) prompt(label string) (string, error) {
	fmt.Fprint(u.out, label)
	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (u *UI) printError(err error) {
	fmt.Fprintf(u.out, "Error: %v\n", err)
}

// listSuppliers prints the available suppliers ahead of a supplier
// selection prompt.
func (u *UI) listSuppliers(ctx context.Context) {
	suppliers, err := u.svc.Suppliers(ctx)
	if err != nil {
		u.printError(err)
		return
	}
	fmt.Fprintln(u.out, "\nAvailable suppliers:")
	for _, s := range suppliers {
		fmt.Fprintf(u.out, "%s: %s\n", s.ID, s.Name)
	}
}

// listProducts prints the available products with stock ahead of an
// order prompt.
func (u *UI) listProducts(ctx context.Context) {
	items, err := u.svc.Inventory(ctx)
	if err != nil {
		u.printError(err)
		return
	}
	fmt.Fprintln(u.out, "\nAvailable products:")
	for _, item := range items {
		fmt.Fprintf(u.out, "%s: %s (Stock: %d)\n", item.ProductID, item.Name, item.Stock)
	}
}
