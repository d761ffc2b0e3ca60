package main

import (
	"fmt"
	"log"
	"time"

	"dishooom_backend/internal/repositories"
	"dishooom_backend/internal/seed"
	"dishooom_backend/internal/services"
	"dishooom_backend/pkg/utils"
)

// demo seeds the stores, runs the report aggregator over the current month
// and prints the results. It is the composition root: every store and
// service is constructed once here and wired together explicitly.
func main() {
	utils.InitLogger()

	settingsPath := utils.Getenv("SETTINGS_DB", "dishooom_settings.db")
	settingsStore, err := repositories.OpenSettingsStore(settingsPath)
	if err != nil {
		log.Fatalf("Failed to open settings store: %v", err)
	}
	defer settingsStore.Close()

	stores := repositories.NewStores()
	if dir := utils.Getenv("SEED_DIR", ""); dir != "" {
		err = seed.LoadDir(stores, dir)
	} else {
		err = seed.LoadDefaults(stores)
	}
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	settingsService := services.NewSettingsService(settingsStore)
	reportService := services.NewReportService(stores, settingsService)
	backupService := services.NewBackupService(stores, settingsService)
	defer backupService.Stop()

	if err := backupService.Start(utils.Getenv("BACKUP_DIR", "backups")); err != nil {
		utils.LogError(err, "Failed to start backup scheduler")
	}

	summary := reportService.DashboardSummary()
	fmt.Printf("Products: %d (%d low on stock)\n", summary.TotalProducts, summary.LowStockCount)
	fmt.Printf("Customers: %d (%d new leads)\n", summary.TotalCustomers, summary.NewLeads)
	fmt.Printf("This month's sales: %.2f, pending payments: %.2f\n\n", summary.MonthlySales, summary.PendingPayments)

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	overview := reportService.BusinessOverview(start, end)
	for _, m := range overview.Metrics {
		line := fmt.Sprintf("%-15s %s", m.Title+":", m.Value)
		if m.TrendValue != "" {
			line += fmt.Sprintf(" (%s %s)", m.Trend, m.TrendValue)
		}
		fmt.Println(line)
	}
	fmt.Println()
	fmt.Println(overview.Summary)
}
