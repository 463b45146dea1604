package terminal

import (
	"context"
	"fmt"
	"strconv"
)

func (u *UI) addSupplier(ctx context.Context) {
	id, err := u.prompt("Enter supplier ID: ")
	if err != nil {
		return
	}
	name, err := u.prompt("Enter supplier name: ")
	if err != nil {
		return
	}
	contact, err := u.prompt("Enter supplier contact details: ")
	if err != nil {
		return
	}
	if _, err := u.svc.AddSupplier(ctx, id, name, contact); err != nil {
		u.printError(err)
		return
	}
	fmt.Fprintln(u.out, "Supplier added successfully!")
}

func (u *UI) placeCustomerOrder(ctx context.Context) {
	u.listProducts(ctx)
	productID, err := u.prompt("Enter product ID: ")
	if err != nil {
		return
	}
	quantityRaw, err := u.prompt("Enter quantity: ")
	if err != nil {
		return
	}
	quantity, qerr := strconv.Atoi(quantityRaw)
	if qerr != nil {
		fmt.Fprintln(u.out, "Invalid numeric input")
		return
	}
	if _, err := u.svc.PlaceCustomerOrder(ctx, productID, quantity); err != nil {
		u.printError(err)
		return
	}
	fmt.Fprintln(u.out, "Customer order placed successfully!")
}

func (u *UI) placeSupplierOrder(ctx context.Context) {
	u.listSuppliers(ctx)
	supplierID, err := u.prompt("Enter supplier ID: ")
	if err != nil {
		return
	}
	u.listProducts(ctx)
	productID, err := u.prompt("Enter product ID: ")
	if err != nil {
		return
	}
	quantityRaw, err := u.prompt("Enter quantity: ")
	if err != nil {
		return
	}
	quantity, qerr := strconv.Atoi(quantityRaw)
	if qerr != nil {
		fmt.Fprintln(u.out, "Invalid numeric input")
		return
	}
	if _, err := u.svc.PlaceSupplierOrder(ctx, supplierID, productID, quantity); err != nil {
		u.printError(err)
		return
	}
	fmt.Fprintln(u.out, "Supplier order placed successfully and inventory updated!")
}
