package terminal

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func (u *UI) viewInventory(ctx context.Context) {
	items, err := u.svc.Inventory(ctx)
	if err != nil {
		u.printError(err)
		return
	}
	fmt.Fprintln(u.out, "\nCurrent Inventory:")
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tStock\tDescription\tPrice\tSupplier")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t$%s\t%s\n",
			item.ProductID, item.Name, item.Stock, item.Description, item.Price.StringFixed(2), item.SupplierName)
	}
	w.Flush()
}

func (u *UI) reportsMenu(ctx context.Context) {
	for {
		fmt.Fprint(u.out, "\nReports Menu:\n1. Low Stock Items (< 5 units)\n2. Product Sales Report\n3. Supplier Order History\n4. Back to Main Menu\n")
		choice, err := u.prompt("Enter your choice (1-4): ")
		if err != nil {
			return
		}
		switch choice {
		case "1":
			u.lowStockReport(ctx)
		case "2":
			u.salesReport(ctx)
		case "3":
			u.supplierOrderReport(ctx)
		case "4":
			return
		default:
			fmt.Fprintln(u.out, "Invalid choice!")
		}
	}
}

func (u *UI) lowStockReport(ctx context.Context) {
	items, err := u.svc.LowStock(ctx)
	if err != nil {
		u.printError(err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(u.out, "\nNo low stock items found.")
		return
	}
	fmt.Fprintln(u.out, "\nLow Stock Items:")
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tStock")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\n", item.ProductID, item.Name, item.Stock)
	}
	w.Flush()
}

func (u *UI) salesReport(ctx context.Context) {
	lines, err := u.svc.SalesReport(ctx)
	if err != nil {
		u.printError(err)
		return
	}
	if len(lines) == 0 {
		fmt.Fprintln(u.out, "\nNo orders found.")
		return
	}
	fmt.Fprintln(u.out, "\nProduct Sales Report:")
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Product ID\tProduct Name\tTotal Quantity Sold\tTotal Revenue")
	for _, line := range lines {
		fmt.Fprintf(w, "%s\t%s\t%d\t$%s\n", line.ProductID, line.Name, line.QuantitySold, line.Revenue.StringFixed(2))
	}
	w.Flush()
}

func (u *UI) supplierOrderReport(ctx context.Context) {
	lines, err := u.svc.SupplierOrderHistory(ctx)
	if err != nil {
		u.printError(err)
		return
	}
	if len(lines) == 0 {
		fmt.Fprintln(u.out, "\nNo supplier orders found.")
		return
	}
	fmt.Fprintln(u.out, "\nSupplier Order History:")
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Order ID\tSupplier\tProduct\tQuantity\tOrder Date")
	for _, line := range lines {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", line.OrderID, line.SupplierName, line.ProductName, line.Quantity, line.Date)
	}
	w.Flush()
}
