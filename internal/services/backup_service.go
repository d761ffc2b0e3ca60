package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/robfig/cron/v3"

	"dishooom_backend/internal/models"
	"dishooom_backend/internal/repositories"
	"dishooom_backend/pkg/utils"
)

// --- Custom Service Errors for Backup ---
var (
	ErrUnknownExportFormat = errors.New("export format must be csv or json")
)

// Cron expressions for the backup frequencies selectable in settings.
var backupSchedules = map[string]string{
	"daily":   "0 2 * * *",
	"weekly":  "0 2 * * 1",
	"monthly": "0 2 1 * *",
}

// --- BackupService Interface ---
type BackupService interface {
	// ExportAll writes a snapshot of every entity store to dir in the format
	// configured in settings, returning the written file paths.
	ExportAll(dir string) ([]string, error)
	// Start schedules automatic exports per settings.data; a no-op when
	// autoBackup is off.
	Start(dir string) error
	Stop()
}

// --- backupService Implementation ---
type backupService struct {
	stores   *repositories.Stores
	settings SettingsService
	cron     *cron.Cron
	now      func() time.Time
}

// NewBackupService creates a new instance of BackupService.
func NewBackupService(stores *repositories.Stores, settings SettingsService) BackupService {
	return &backupService{stores: stores, settings: settings, now: time.Now}
}

// Flat row shapes for spreadsheet-friendly CSV exports.
type productCSVRow struct {
	ID           int     `csv:"Id"`
	Name         string  `csv:"name"`
	Category     string  `csv:"category"`
	CurrentStock int     `csv:"currentStock"`
	MinStock     int     `csv:"minStock"`
	Unit         string  `csv:"unit"`
	CostPrice    float64 `csv:"costPrice"`
	SellingPrice float64 `csv:"sellingPrice"`
}

type customerCSVRow struct {
	ID            int    `csv:"Id"`
	Name          string `csv:"name"`
	Phone         string `csv:"phone"`
	Email         string `csv:"email"`
	Type          string `csv:"type"`
	PipelineStage string `csv:"pipelineStage"`
	AssignedTo    string `csv:"assignedTo"`
	GSTNumber     string `csv:"gstNumber"`
}

type salesOrderCSVRow struct {
	ID            int     `csv:"Id"`
	InvoiceNumber string  `csv:"invoiceNumber"`
	CustomerName  string  `csv:"customerName"`
	OrderDate     string  `csv:"orderDate"`
	TotalAmount   float64 `csv:"totalAmount"`
	PaymentStatus string  `csv:"paymentStatus"`
}

type invoiceCSVRow struct {
	ID            int     `csv:"Id"`
	InvoiceNumber string  `csv:"invoiceNumber"`
	CustomerName  string  `csv:"customerName"`
	InvoiceDate   string  `csv:"invoiceDate"`
	DueDate       string  `csv:"dueDate"`
	Subtotal      float64 `csv:"subtotal"`
	TaxAmount     float64 `csv:"taxAmount"`
	TotalAmount   float64 `csv:"totalAmount"`
	PaymentStatus string  `csv:"paymentStatus"`
}

type expenseCSVRow struct {
	ID          int     `csv:"Id"`
	Category    string  `csv:"category"`
	Amount      float64 `csv:"amount"`
	Description string  `csv:"description"`
	Vendor      string  `csv:"vendor"`
	Date        string  `csv:"date"`
}

func csvDate(t models.FlexTime) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func (s *backupService) ExportAll(dir string) ([]string, error) {
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	format := settings.Data.ExportFormat
	if format != "csv" && format != "json" {
		return nil, fmt.Errorf("%w: got %q", ErrUnknownExportFormat, format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup dir: %w", err)
	}

	stamp := s.now().Format("2006-01-02")
	var written []string
	write := func(name string, jsonValue interface{}, csvRows interface{}) error {
		path := filepath.Join(dir, fmt.Sprintf("%s-%s.%s", name, stamp, format))
		if format == "json" {
			doc, err := json.MarshalIndent(jsonValue, "", "  ")
			if err != nil {
				return fmt.Errorf("encode %s backup: %w", name, err)
			}
			if err := os.WriteFile(path, doc, 0o644); err != nil {
				return fmt.Errorf("write %s backup: %w", name, err)
			}
		} else {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("write %s backup: %w", name, err)
			}
			defer f.Close()
			if err := gocsv.MarshalFile(csvRows, f); err != nil {
				return fmt.Errorf("encode %s backup: %w", name, err)
			}
		}
		written = append(written, path)
		return nil
	}

	products := s.stores.Products.List()
	productRows := make([]productCSVRow, 0, len(products))
	for _, p := range products {
		productRows = append(productRows, productCSVRow{
			ID: p.ID, Name: p.Name, Category: p.Category,
			CurrentStock: p.CurrentStock, MinStock: p.MinStock, Unit: p.Unit,
			CostPrice: p.CostPrice, SellingPrice: p.SellingPrice,
		})
	}
	if err := write("products", products, &productRows); err != nil {
		return written, err
	}

	customers := s.stores.Customers.List()
	customerRows := make([]customerCSVRow, 0, len(customers))
	for _, c := range customers {
		customerRows = append(customerRows, customerCSVRow{
			ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email,
			Type: c.Type, PipelineStage: c.PipelineStage,
			AssignedTo: c.AssignedTo, GSTNumber: c.GSTNumber,
		})
	}
	if err := write("customers", customers, &customerRows); err != nil {
		return written, err
	}

	orders := s.stores.SalesOrders.List()
	orderRows := make([]salesOrderCSVRow, 0, len(orders))
	for _, o := range orders {
		orderRows = append(orderRows, salesOrderCSVRow{
			ID: o.ID, InvoiceNumber: o.InvoiceNumber, CustomerName: o.CustomerName,
			OrderDate: csvDate(o.OrderDate), TotalAmount: o.TotalAmount,
			PaymentStatus: o.PaymentStatus,
		})
	}
	if err := write("salesOrders", orders, &orderRows); err != nil {
		return written, err
	}

	invoices := s.stores.Invoices.List()
	invoiceRows := make([]invoiceCSVRow, 0, len(invoices))
	for _, inv := range invoices {
		invoiceRows = append(invoiceRows, invoiceCSVRow{
			ID: inv.ID, InvoiceNumber: inv.InvoiceNumber, CustomerName: inv.CustomerName,
			InvoiceDate: csvDate(inv.InvoiceDate), DueDate: csvDate(inv.DueDate),
			Subtotal: inv.Subtotal, TaxAmount: inv.TaxAmount, TotalAmount: inv.TotalAmount,
			PaymentStatus: inv.PaymentStatus,
		})
	}
	if err := write("invoices", invoices, &invoiceRows); err != nil {
		return written, err
	}

	expenses := s.stores.Expenses.List()
	expenseRows := make([]expenseCSVRow, 0, len(expenses))
	for _, e := range expenses {
		expenseRows = append(expenseRows, expenseCSVRow{
			ID: e.ID, Category: e.Category, Amount: e.Amount,
			Description: e.Description, Vendor: e.Vendor, Date: csvDate(e.Date),
		})
	}
	if err := write("expenses", expenses, &expenseRows); err != nil {
		return written, err
	}

	utils.LogInfo("Backup exported", map[string]interface{}{"dir": dir, "format": format, "files": len(written)})
	return written, nil
}

func (s *backupService) Start(dir string) error {
	settings, err := s.settings.Get()
	if err != nil {
		return err
	}
	if !settings.Data.AutoBackup {
		utils.LogInfo("Auto backup disabled, scheduler not started")
		return nil
	}
	expr, ok := backupSchedules[settings.Data.BackupFrequency]
	if !ok {
		expr = backupSchedules["weekly"]
	}

	s.cron = cron.New()
	_, err = s.cron.AddFunc(expr, func() {
		if _, err := s.ExportAll(dir); err != nil {
			utils.LogError(err, "Scheduled backup failed")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule backup: %w", err)
	}
	s.cron.Start()
	utils.LogInfo("Backup scheduler started", map[string]interface{}{"frequency": settings.Data.BackupFrequency})
	return nil
}

func (s *backupService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
