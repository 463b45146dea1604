package terminal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/invtrack/invtrack/internal/domains/inventory/domain"
	"github.com/invtrack/invtrack/internal/domains/inventory/ports"
)

func (u *UI) addProduct(ctx context.Context) {
	id, err := u.prompt("Enter product ID: ")
	if err != nil {
		return
	}
	name, err := u.prompt("Enter product name: ")
	if err != nil {
		return
	}
	description, err := u.prompt("Enter product description: ")
	if err != nil {
		return
	}
	priceRaw, err := u.prompt("Enter product price: ")
	if err != nil {
		return
	}
	price, perr := decimal.NewFromString(priceRaw)
	if perr != nil {
		fmt.Fprintln(u.out, "Invalid numeric input")
		return
	}
	stockRaw, err := u.prompt("Enter initial stock: ")
	if err != nil {
		return
	}
	stock, serr := strconv.Atoi(stockRaw)
	if serr != nil {
		fmt.Fprintln(u.out, "Invalid numeric input")
		return
	}

	u.listSuppliers(ctx)
	supplierID, err := u.prompt("Enter supplier ID (press Enter to skip): ")
	if err != nil {
		return
	}

	product, derr := domain.NewProduct(id, name, description, price, stock, supplierID)
	if derr != nil {
		u.printError(derr)
		return
	}
	if _, err := u.svc.AddProduct(ctx, product); err != nil {
		u.printError(err)
		return
	}
	fmt.Fprintln(u.out, "Product added successfully!")
}

func (u *UI) updateProduct(ctx context.Context) {
	id, err := u.prompt("Enter product ID to update: ")
	if err != nil {
		return
	}
	items, ierr := u.svc.Inventory(ctx)
	if ierr != nil {
		u.printError(ierr)
		return
	}
	var current *ports.InventoryItem
	for i := range items {
		if items[i].ProductID == id {
			current = &items[i]
			break
		}
	}
	if current == nil {
		fmt.Fprintln(u.out, "Product not found!")
		return
	}

	fmt.Fprintln(u.out, "\nCurrent Product Details:")
	fmt.Fprintf(u.out, "ID: %s\n", current.ProductID)
	fmt.Fprintf(u.out, "Name: %s\n", current.Name)
	fmt.Fprintf(u.out, "Description: %s\n", current.Description)
	fmt.Fprintf(u.out, "Price: %s\n", current.Price.StringFixed(2))
	fmt.Fprintf(u.out, "Stock: %d\n", current.Stock)
	fmt.Fprintf(u.out, "Supplier: %s\n", current.SupplierName)

	var update domain.ProductUpdate

	newID, err := u.prompt("Enter new product ID (press Enter to keep current): ")
	if err != nil {
		return
	}
	update.NewID = optional(newID)

	name, err := u.prompt("Enter new name (press Enter to keep current): ")
	if err != nil {
		return
	}
	update.Name = optional(name)

	description, err := u.prompt("Enter new description (press Enter to keep current): ")
	if err != nil {
		return
	}
	update.Description = optional(description)

	priceRaw, err := u.prompt("Enter new price (press Enter to keep current): ")
	if err != nil {
		return
	}
	if priceRaw != "" {
		price, perr := decimal.NewFromString(priceRaw)
		if perr != nil {
			fmt.Fprintln(u.out, "Invalid numeric input")
			return
		}
		update.Price = &price
	}

	stockRaw, err := u.prompt("Enter new stock (press Enter to keep current): ")
	if err != nil {
		return
	}
	if stockRaw != "" {
		stock, serr := strconv.Atoi(stockRaw)
		if serr != nil {
			fmt.Fprintln(u.out, "Invalid numeric input")
			return
		}
		update.Stock = &stock
	}

	supplierRaw, err := u.prompt("Enter new supplier ID (press Enter to keep current, 'none' to remove): ")
	if err != nil {
		return
	}
	if supplierRaw != "" {
		if strings.EqualFold(supplierRaw, "none") {
			cleared := ""
			update.SupplierID = &cleared
		} else {
			update.SupplierID = &supplierRaw
		}
	}

	if _, err := u.svc.UpdateProduct(ctx, id, update); err != nil {
		u.printError(err)
		return
	}
	fmt.Fprintln(u.out, "Product updated successfully!")
}

// optional maps blank input to "keep current".
func optional(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}
