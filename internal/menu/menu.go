// Package menu implements the interactive text shell. It is a thin
// presentation layer: every prompt resolves to one repository call and the
// results are rendered as-is. Repository errors are displayed and the
// session continues; the shell never terminates the process on a data
// error.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"stockledger/internal/domain"
	"stockledger/internal/repository"
)

// Menu drives the interactive session over a repository.
type Menu struct {
	repo        repository.Repository
	in          *lineReader
	out         io.Writer
	fixturePath string
}

// New creates a menu reading prompts from in and writing to out. An empty
// fixturePath disables the fixture option.
func New(repo repository.Repository, in io.Reader, out io.Writer, fixturePath string) *Menu {
	return &Menu{
		repo:        repo,
		in:          newLineReader(in),
		out:         out,
		fixturePath: fixturePath,
	}
}

// Run loops over the main menu until the user quits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\n=== Inventory Manager ===")
		fmt.Fprintln(m.out, "1) Add product")
		fmt.Fprintln(m.out, "2) Edit product")
		fmt.Fprintln(m.out, "3) Delete product")
		fmt.Fprintln(m.out, "4) List products (with suppliers)")
		fmt.Fprintln(m.out, "5) Search products by name")
		fmt.Fprintln(m.out, "6) Manage suppliers")
		fmt.Fprintln(m.out, "7) Reports")
		fmt.Fprintln(m.out, "8) Load sample data")
		fmt.Fprintln(m.out, "0) Exit")

		choice, err := m.prompt("Choose an option")
		if err != nil {
			return m.finish(err)
		}

		switch choice {
		case "1":
			err = m.addProduct(ctx)
		case "2":
			err = m.editProduct(ctx)
		case "3":
			err = m.deleteProduct(ctx)
		case "4":
			err = m.listProducts(ctx)
		case "5":
			err = m.searchProducts(ctx)
		case "6":
			err = m.manageSuppliers(ctx)
		case "7":
			err = m.showReports(ctx)
		case "8":
			m.loadFixture(ctx)
		case "0":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return m.finish(err)
		}
	}
}

// finish maps end-of-input to a clean exit; anything else propagates.
func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// reportErr renders a repository failure and keeps the session alive.
func (m *Menu) reportErr(err error) {
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

// --------- Products ---------

func (m *Menu) addProduct(ctx context.Context) error {
	fmt.Fprintln(m.out, "\nAdd a new product")
	name, err := m.promptString("Name", false)
	if err != nil {
		return err
	}
	quantity, err := m.promptInt("Quantity", false)
	if err != nil {
		return err
	}
	price, err := m.promptFloat("Price", false)
	if err != nil {
		return err
	}
	supplierID, err := m.promptInt("Supplier ID (blank for none)", true)
	if err != nil {
		return err
	}

	id, createErr := m.repo.CreateProduct(ctx, name, *quantity, *price, supplierID)
	if createErr != nil {
		m.reportErr(createErr)
		return nil
	}
	fmt.Fprintf(m.out, "Created product with ID %d.\n", id)
	return nil
}

func (m *Menu) editProduct(ctx context.Context) error {
	fmt.Fprintln(m.out, "\nEdit a product")
	id, err := m.promptInt("Product ID", false)
	if err != nil {
		return err
	}

	p, getErr := m.repo.GetProduct(ctx, *id)
	if errors.Is(getErr, domain.ErrProductNotFound) {
		fmt.Fprintln(m.out, "No product found with that ID.")
		return nil
	}
	if getErr != nil {
		m.reportErr(getErr)
		return nil
	}

	fmt.Fprintf(m.out, "Editing: %s (qty=%d, price=%.2f, supplier_id=%s)\n",
		p.Name, p.Quantity, p.Price, formatSupplierID(p.SupplierID))

	name, err := m.promptString("New name (leave blank to keep)", true)
	if err != nil {
		return err
	}
	if name == "" {
		name = p.Name
	}
	quantity, err := m.promptInt("New quantity (leave blank to keep)", true)
	if err != nil {
		return err
	}
	if quantity == nil {
		quantity = &p.Quantity
	}
	price, err := m.promptFloat("New price (leave blank to keep)", true)
	if err != nil {
		return err
	}
	if price == nil {
		price = &p.Price
	}
	supplierID, err := m.promptInt("New supplier ID (blank to keep)", true)
	if err != nil {
		return err
	}
	if supplierID == nil {
		supplierID = p.SupplierID
	}

	if updateErr := m.repo.UpdateProduct(ctx, *id, name, *quantity, *price, supplierID); updateErr != nil {
		m.reportErr(updateErr)
		return nil
	}
	fmt.Fprintln(m.out, "Product updated.")
	return nil
}

func (m *Menu) deleteProduct(ctx context.Context) error {
	fmt.Fprintln(m.out, "\nDelete a product")
	id, err := m.promptInt("Product ID", false)
	if err != nil {
		return err
	}

	p, getErr := m.repo.GetProduct(ctx, *id)
	if errors.Is(getErr, domain.ErrProductNotFound) {
		fmt.Fprintln(m.out, "No product found with that ID.")
		return nil
	}
	if getErr != nil {
		m.reportErr(getErr)
		return nil
	}

	confirm, err := m.prompt(fmt.Sprintf("Are you sure you want to delete '%s'? (y/N)", p.Name))
	if err != nil {
		return err
	}
	if strings.ToLower(confirm) != "y" {
		fmt.Fprintln(m.out, "Cancelled.")
		return nil
	}

	if delErr := m.repo.DeleteProduct(ctx, *id); delErr != nil {
		m.reportErr(delErr)
		return nil
	}
	fmt.Fprintln(m.out, "Product deleted.")
	return nil
}

func (m *Menu) listProducts(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Products (with supplier if available) ---")
	rows, err := m.repo.ListProductsJoined(ctx)
	if err != nil {
		m.reportErr(err)
		return nil
	}
	if len(rows) == 0 {
		fmt.Fprintln(m.out, "No products yet.")
		return nil
	}

	w := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tName\tQty\tPrice\tTotal\tSupplier\tCreated At")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\t%.2f\t%s\t%s\n",
			r.ID, r.Name, r.Quantity, r.Price, r.TotalValue,
			orDash(r.SupplierName), r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func (m *Menu) searchProducts(ctx context.Context) error {
	fmt.Fprintln(m.out, "\nSearch products by name")
	query, err := m.promptString("Enter part of a name", false)
	if err != nil {
		return err
	}

	rows, searchErr := m.repo.SearchProductsByName(ctx, query)
	if searchErr != nil {
		m.reportErr(searchErr)
		return nil
	}
	if len(rows) == 0 {
		fmt.Fprintln(m.out, "No matches.")
		return nil
	}
	for _, r := range rows {
		fmt.Fprintf(m.out, "[%d] %s | qty=%d, price=%.2f, supplier=%s\n",
			r.ID, r.Name, r.Quantity, r.Price, orDash(r.SupplierName))
	}
	return nil
}

// --------- Suppliers ---------

func (m *Menu) manageSuppliers(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\n--- Suppliers ---")
		fmt.Fprintln(m.out, "1) Add supplier")
		fmt.Fprintln(m.out, "2) List suppliers")
		fmt.Fprintln(m.out, "0) Back")

		choice, err := m.prompt("Choose an option")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			name, err := m.promptString("Supplier name", false)
			if err != nil {
				return err
			}
			contact, err := m.promptString("Contact (email/phone, optional)", true)
			if err != nil {
				return err
			}
			id, createErr := m.repo.CreateSupplier(ctx, name, contact)
			if createErr != nil {
				m.reportErr(createErr)
				continue
			}
			fmt.Fprintf(m.out, "Created supplier with ID %d.\n", id)
		case "2":
			suppliers, listErr := m.repo.ListSuppliers(ctx)
			if listErr != nil {
				m.reportErr(listErr)
				continue
			}
			if len(suppliers) == 0 {
				fmt.Fprintln(m.out, "No suppliers found.")
				continue
			}
			w := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tName\tContact")
			for _, s := range suppliers {
				fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Name, orDash(s.Contact))
			}
			if err := w.Flush(); err != nil {
				return err
			}
		case "0":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

// --------- Reports ---------

func (m *Menu) showReports(ctx context.Context) error {
	fmt.Fprintln(m.out, "\n--- Reports ---")
	stats, err := m.repo.InventoryReport(ctx)
	if err != nil {
		m.reportErr(err)
		return nil
	}
	fmt.Fprintf(m.out, "Total distinct products : %d\n", stats.TotalProducts)
	fmt.Fprintf(m.out, "Total units in stock    : %d\n", stats.TotalUnits)
	fmt.Fprintf(m.out, "Total inventory value   : $%.2f\n", stats.TotalValue)
	fmt.Fprintf(m.out, "Average price per item  : $%.2f\n", stats.AvgPrice)
	return nil
}

// --------- Fixtures ---------

// loadFixture is non-fatal: failures are reported and the session continues.
func (m *Menu) loadFixture(ctx context.Context) {
	if m.fixturePath == "" {
		fmt.Fprintln(m.out, "No fixture configured.")
		return
	}
	if err := m.repo.LoadFixture(ctx, m.fixturePath); err != nil {
		fmt.Fprintf(m.out, "Failed to load sample data: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Sample data loaded.")
}

func formatSupplierID(id *int64) string {
	if id == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *id)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
