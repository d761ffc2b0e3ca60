// Package seed loads the initial entity records every process starts from.
// Seed records keep the Ids they carry in the JSON files; collections only
// allocate ids for records created afterwards.
package seed

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"dishooom_backend/internal/models"
	"dishooom_backend/internal/repositories"
	"dishooom_backend/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed data/*.json
var defaultData embed.FS

// File names expected inside a seed directory.
const (
	ProductsFile    = "products.json"
	CustomersFile   = "customers.json"
	SalesOrdersFile = "salesOrders.json"
	InvoicesFile    = "invoices.json"
	ExpensesFile    = "expenses.json"
)

// salesOrderSeed accepts the legacy "date" key some seed revisions used
// instead of "orderDate" and migrates it on load.
type salesOrderSeed struct {
	models.SalesOrder
	LegacyDate models.FlexTime `json:"date"`
}

// LoadDefaults seeds the stores from the data set embedded in the binary.
func LoadDefaults(stores *repositories.Stores) error {
	return load(stores, func(name string) ([]byte, error) {
		return defaultData.ReadFile("data/" + name)
	})
}

// LoadDir seeds the stores from JSON files in dir. Missing files leave the
// matching store empty; that is how a demo starts with no invoices, say.
func LoadDir(stores *repositories.Stores, dir string) error {
	return load(stores, func(name string) ([]byte, error) {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if os.IsNotExist(err) {
			return nil, nil
		}
		return b, err
	})
}

func load(stores *repositories.Stores, read func(name string) ([]byte, error)) error {
	if err := seedFile(read, ProductsFile, stores.Products); err != nil {
		return err
	}
	if err := seedFile(read, CustomersFile, stores.Customers); err != nil {
		return err
	}
	if err := seedSalesOrders(read, stores.SalesOrders); err != nil {
		return err
	}
	if err := seedFile(read, InvoicesFile, stores.Invoices); err != nil {
		return err
	}
	if err := seedFile(read, ExpensesFile, stores.Expenses); err != nil {
		return err
	}
	utils.LogInfo("Seed data loaded", map[string]interface{}{
		"products":    stores.Products.Len(),
		"customers":   stores.Customers.Len(),
		"salesOrders": stores.SalesOrders.Len(),
		"invoices":    stores.Invoices.Len(),
		"expenses":    stores.Expenses.Len(),
	})
	return nil
}

func seedFile[T any, PT repositories.Record[T]](read func(string) ([]byte, error), name string, col *repositories.Collection[T, PT]) error {
	b, err := read(name)
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", name, err)
	}
	if len(b) == 0 {
		return nil
	}
	var records []T
	if err := json.Unmarshal(b, &records); err != nil {
		return fmt.Errorf("decode seed file %s: %w", name, err)
	}
	if err := col.Seed(records); err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	return nil
}

func seedSalesOrders(read func(string) ([]byte, error), col *repositories.Collection[models.SalesOrder, *models.SalesOrder]) error {
	b, err := read(SalesOrdersFile)
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", SalesOrdersFile, err)
	}
	if len(b) == 0 {
		return nil
	}
	var raw []salesOrderSeed
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode seed file %s: %w", SalesOrdersFile, err)
	}
	orders := make([]models.SalesOrder, 0, len(raw))
	for _, r := range raw {
		order := r.SalesOrder
		if order.OrderDate.IsZero() && !r.LegacyDate.IsZero() {
			order.OrderDate = r.LegacyDate
		}
		orders = append(orders, order)
	}
	if err := col.Seed(orders); err != nil {
		return fmt.Errorf("seed %s: %w", SalesOrdersFile, err)
	}
	return nil
}
