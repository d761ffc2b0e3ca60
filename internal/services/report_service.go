package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"dishooom_backend/internal/models"
	"dishooom_backend/internal/repositories"
	"dishooom_backend/pkg/utils"
)

const topProductsLimit = 10

// --- ReportService Interface ---
//
// Report methods never return an error: any failure during aggregation is
// logged and converted into an empty, well-formed report whose summary says
// the data could not be loaded. Callers always get something renderable.
type ReportService interface {
	SalesReport(start, end time.Time) models.Report
	ExpenseReport(start, end time.Time) models.Report
	InventoryReport() models.Report
	BusinessOverview(start, end time.Time) models.Report
	DashboardSummary() models.DashboardSummary
}

// --- reportService Implementation ---
type reportService struct {
	stores   *repositories.Stores
	settings SettingsService
	now      func() time.Time
}

// NewReportService creates a new instance of ReportService. The settings
// service supplies the display currency; it may be nil, in which case amounts
// render in the default currency.
func NewReportService(stores *repositories.Stores, settings SettingsService) ReportService {
	return &reportService{stores: stores, settings: settings, now: time.Now}
}

// symbol resolves the display currency symbol from settings. Cosmetic only;
// aggregation math never depends on it.
func (s *reportService) symbol() string {
	code := "USD"
	if s.settings != nil {
		if cfg, err := s.settings.Get(); err == nil && cfg.Appearance.Currency != "" {
			code = cfg.Appearance.Currency
		}
	}
	return utils.CurrencySymbol(code)
}

func fallbackReport(summary string) models.Report {
	return models.Report{Metrics: []models.Metric{}, Summary: summary}
}

// guard converts panics and errors from a report builder into the
// degrade-gracefully fallback.
func guard(kind string, build func() (models.Report, error)) (report models.Report) {
	fallback := fmt.Sprintf("Error loading %s data.", kind)
	defer func() {
		if r := recover(); r != nil {
			utils.LogWarn(fmt.Errorf("panic: %v", r), "Report aggregation failed")
			report = fallbackReport(fallback)
		}
	}()

	report, err := build()
	if err != nil {
		utils.LogWarn(err, "Report aggregation failed")
		return fallbackReport(fallback)
	}
	return report
}

// withinInterval reports whether d falls inside [start, end]. Zero dates
// (missing or unparseable in the seed) never match.
func withinInterval(d time.Time, start, end time.Time) bool {
	if d.IsZero() {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// tally accumulates float totals per label, remembering first-seen label
// order for chart categories and stable ranking.
type tally struct {
	labels []string
	totals map[string]float64
}

func newTally() *tally {
	return &tally{totals: make(map[string]float64)}
}

func (t *tally) add(label string, v float64) {
	if _, seen := t.totals[label]; !seen {
		t.labels = append(t.labels, label)
	}
	t.totals[label] += v
}

// ranked returns the labels sorted by descending total. Ties keep first-seen
// order.
func (t *tally) ranked() []string {
	out := append([]string(nil), t.labels...)
	sort.SliceStable(out, func(i, j int) bool {
		return t.totals[out[i]] > t.totals[out[j]]
	})
	return out
}

// chartData builds the single-series chart payload in first-seen order.
func (t *tally) chartData(seriesName string) *models.ChartData {
	data := make([]float64, 0, len(t.labels))
	for _, label := range t.labels {
		data = append(data, t.totals[label])
	}
	return &models.ChartData{
		Categories: append([]string(nil), t.labels...),
		Series:     []models.ChartSeries{{Name: seriesName, Data: data}},
	}
}

func sumOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total, err := stats.Sum(values)
	if err != nil {
		return 0
	}
	return total
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return mean
}

// salesTotals carries the raw figures the overview report composes from.
type salesTotals struct {
	revenue float64
	orders  int
	trend   float64
}

type expenseTotals struct {
	total float64
	count int
}

type inventoryTotals struct {
	lowStock int
}

func (s *reportService) SalesReport(start, end time.Time) models.Report {
	return guard("sales report", func() (models.Report, error) {
		report, _, err := s.buildSalesReport(start, end)
		return report, err
	})
}

func (s *reportService) buildSalesReport(start, end time.Time) (models.Report, salesTotals, error) {
	orders := s.stores.SalesOrders.List()
	products := s.stores.Products.List()
	sym := s.symbol()

	inPeriod := func(o models.SalesOrder) bool {
		return withinInterval(o.OrderDate.Time, start, end)
	}

	var filtered []models.SalesOrder
	var amounts []float64
	for _, o := range orders {
		if inPeriod(o) {
			filtered = append(filtered, o)
			amounts = append(amounts, o.TotalAmount)
		}
	}

	totalRevenue := sumOf(amounts)
	totalOrders := len(filtered)
	averageOrderValue := 0.0
	if totalOrders > 0 {
		averageOrderValue = totalRevenue / float64(totalOrders)
	}

	// Trend against the immediately preceding period of equal length.
	// A zero previous total means 0%, never a division by zero.
	daysDiff := int(math.Ceil(end.Sub(start).Hours() / 24))
	prevStart := start.AddDate(0, 0, -daysDiff)
	prevEnd := start
	previousRevenue := 0.0
	for _, o := range orders {
		if withinInterval(o.OrderDate.Time, prevStart, prevEnd) {
			previousRevenue += o.TotalAmount
		}
	}
	revenueTrend := 0.0
	if previousRevenue > 0 {
		revenueTrend = (totalRevenue - previousRevenue) / previousRevenue * 100
	}

	// Daily revenue buckets for the chart, labels in first-seen order.
	salesByDate := newTally()
	for _, o := range filtered {
		salesByDate.add(o.OrderDate.Format("Jan 02"), o.TotalAmount)
	}

	// Top products by quantity sold. Items whose product no longer exists in
	// the product store are skipped; names come from the product store, not
	// the order snapshot, matching how the list is presented.
	productIndex := make(map[int]models.Product, len(products))
	for _, p := range products {
		productIndex[p.ID] = p
	}
	productSales := newTally()
	for _, o := range filtered {
		for _, item := range o.Items {
			if p, ok := productIndex[item.ProductID]; ok {
				productSales.add(p.Name, float64(item.Quantity))
			}
		}
	}
	rankedProducts := productSales.ranked()
	if len(rankedProducts) > topProductsLimit {
		rankedProducts = rankedProducts[:topProductsLimit]
	}
	productRows := make([]models.TableRow, 0, len(rankedProducts))
	for _, name := range rankedProducts {
		qty := int(productSales.totals[name])
		productRows = append(productRows, models.TableRow{
			Label:  name,
			Value:  utils.FormatCount(qty),
			Detail: fmt.Sprintf("%d units", qty),
		})
	}

	activeCustomers := make(map[int]struct{})
	for _, o := range filtered {
		activeCustomers[o.CustomerID] = struct{}{}
	}

	trendDir := models.TrendUp
	if revenueTrend < 0 {
		trendDir = models.TrendDown
	}

	topProductName := "N/A"
	if len(rankedProducts) > 0 {
		topProductName = rankedProducts[0]
	}

	report := models.Report{
		Metrics: []models.Metric{
			{
				Title:      "Total Revenue",
				Value:      sym + utils.FormatAmount(totalRevenue),
				Trend:      trendDir,
				TrendValue: utils.FormatPercent(math.Abs(revenueTrend)),
			},
			{Title: "Total Orders", Value: utils.FormatCount(totalOrders), Trend: models.TrendNeutral},
			{Title: "Avg Order Value", Value: sym + utils.FormatAmount(averageOrderValue), Trend: models.TrendNeutral},
			{Title: "Active Customers", Value: utils.FormatCount(len(activeCustomers)), Trend: models.TrendNeutral},
		},
		ChartTitle: "Sales Trend",
		Chart:      salesByDate.chartData("Revenue"),
		TableTitle: "Top Products",
		Table: &models.TableData{
			Headers: []string{"Product", "Quantity Sold", "Units"},
			Rows:    productRows,
		},
		Summary: fmt.Sprintf(
			"Generated %d sales orders with total revenue of %s%s during the selected period.\nAverage order value was %s%s.\nTop performing product: %s.",
			totalOrders, sym, utils.FormatAmount(totalRevenue),
			sym, utils.FormatAmount(averageOrderValue),
			topProductName,
		),
	}
	return report, salesTotals{revenue: totalRevenue, orders: totalOrders, trend: revenueTrend}, nil
}

func (s *reportService) ExpenseReport(start, end time.Time) models.Report {
	return guard("expense report", func() (models.Report, error) {
		report, _, err := s.buildExpenseReport(start, end)
		return report, err
	})
}

func (s *reportService) buildExpenseReport(start, end time.Time) (models.Report, expenseTotals, error) {
	expenses := s.stores.Expenses.List()
	sym := s.symbol()

	var filtered []models.Expense
	var amounts []float64
	for _, e := range expenses {
		if withinInterval(e.Date.Time, start, end) {
			filtered = append(filtered, e)
			amounts = append(amounts, e.Amount)
		}
	}

	totalExpenses := sumOf(amounts)
	totalCount := len(filtered)
	averageExpense := meanOf(amounts)

	byCategory := newTally()
	byDate := newTally()
	for _, e := range filtered {
		byCategory.add(e.Category, e.Amount)
		byDate.add(e.Date.Format("Jan 02"), e.Amount)
	}

	rankedCategories := byCategory.ranked()
	categoryRows := make([]models.TableRow, 0, len(rankedCategories))
	for _, cat := range rankedCategories {
		amount := byCategory.totals[cat]
		categoryRows = append(categoryRows, models.TableRow{
			Label:  cat,
			Value:  fmt.Sprintf("%s%.2f", sym, amount),
			Detail: utils.FormatAmount(amount),
		})
	}

	topCategory := "N/A"
	if len(rankedCategories) > 0 {
		topCategory = rankedCategories[0]
	}

	report := models.Report{
		Metrics: []models.Metric{
			{Title: "Total Expenses", Value: sym + utils.FormatAmount(totalExpenses), Trend: models.TrendNeutral},
			{Title: "Total Transactions", Value: utils.FormatCount(totalCount), Trend: models.TrendNeutral},
			{Title: "Average Expense", Value: sym + utils.FormatAmount(averageExpense), Trend: models.TrendNeutral},
			{Title: "Categories", Value: utils.FormatCount(len(rankedCategories)), Trend: models.TrendNeutral},
		},
		ChartTitle: "Expense Trend",
		Chart:      byDate.chartData("Expenses"),
		TableTitle: "Expenses by Category",
		Table: &models.TableData{
			Headers: []string{"Category", "Amount", "Total"},
			Rows:    categoryRows,
		},
		Summary: fmt.Sprintf(
			"Recorded %d expense transactions totaling %s%s during the selected period.\nAverage expense amount was %s%s.\nHighest expense category: %s.",
			totalCount, sym, utils.FormatAmount(totalExpenses),
			sym, utils.FormatAmount(averageExpense),
			topCategory,
		),
	}
	return report, expenseTotals{total: totalExpenses, count: totalCount}, nil
}

func (s *reportService) InventoryReport() models.Report {
	return guard("inventory report", func() (models.Report, error) {
		report, _, err := s.buildInventoryReport()
		return report, err
	})
}

func (s *reportService) buildInventoryReport() (models.Report, inventoryTotals, error) {
	products := s.stores.Products.List()
	sym := s.symbol()

	totalProducts := len(products)
	totalValue := 0.0
	lowStockCount := 0
	var prices []float64
	for _, p := range products {
		totalValue += p.SellingPrice * float64(p.CurrentStock)
		prices = append(prices, p.SellingPrice)
		if p.IsLowStock() {
			lowStockCount++
		}
	}
	averagePrice := meanOf(prices)

	byCategory := newTally()
	var highStock, mediumStock, lowStockBand int
	for _, p := range products {
		byCategory.add(p.Category, 1)
		switch {
		case p.CurrentStock > 50:
			highStock++
		case p.CurrentStock >= 10:
			mediumStock++
		default:
			lowStockBand++
		}
	}

	rankedCategories := byCategory.ranked()
	categoryRows := make([]models.TableRow, 0, len(rankedCategories))
	for _, cat := range rankedCategories {
		count := int(byCategory.totals[cat])
		categoryRows = append(categoryRows, models.TableRow{
			Label:  cat,
			Value:  utils.FormatCount(count),
			Detail: fmt.Sprintf("%d products", count),
		})
	}

	lowStockTrend := models.TrendNeutral
	lowStockTrendValue := ""
	if lowStockCount > 0 {
		lowStockTrend = models.TrendDown
		lowStockTrendValue = "Needs attention"
	}

	stockSentence := "All products are adequately stocked."
	if lowStockCount > 0 {
		stockSentence = fmt.Sprintf("%d products need restocking.", lowStockCount)
	}
	topCategory := "N/A"
	if len(rankedCategories) > 0 {
		topCategory = rankedCategories[0]
	}

	report := models.Report{
		Metrics: []models.Metric{
			{Title: "Total Products", Value: utils.FormatCount(totalProducts), Trend: models.TrendNeutral},
			{Title: "Inventory Value", Value: sym + utils.FormatAmount(totalValue), Trend: models.TrendNeutral},
			{Title: "Low Stock Items", Value: utils.FormatCount(lowStockCount), Trend: lowStockTrend, TrendValue: lowStockTrendValue},
			{Title: "Average Price", Value: sym + utils.FormatAmount(averagePrice), Trend: models.TrendNeutral},
		},
		ChartTitle: "Stock Levels Distribution",
		Chart: &models.ChartData{
			Categories: []string{"High Stock (>50)", "Medium Stock (10-50)", "Low Stock (<10)"},
			Series: []models.ChartSeries{{
				Name: "Products",
				Data: []float64{float64(highStock), float64(mediumStock), float64(lowStockBand)},
			}},
		},
		TableTitle: "Products by Category",
		Table: &models.TableData{
			Headers: []string{"Category", "Product Count", "Details"},
			Rows:    categoryRows,
		},
		Summary: fmt.Sprintf(
			"Managing %d products with total inventory value of %s%s.\n%s\nMost popular category: %s.",
			totalProducts, sym, utils.FormatAmount(totalValue),
			stockSentence, topCategory,
		),
	}
	return report, inventoryTotals{lowStock: lowStockCount}, nil
}

// BusinessOverview composes the sales, expense and inventory reports into
// headline profitability figures. Margin is 0 when revenue is 0.
func (s *reportService) BusinessOverview(start, end time.Time) models.Report {
	return guard("business overview", func() (models.Report, error) {
		_, sales, err := s.buildSalesReport(start, end)
		if err != nil {
			return models.Report{}, err
		}
		_, expenses, err := s.buildExpenseReport(start, end)
		if err != nil {
			return models.Report{}, err
		}
		_, inventory, err := s.buildInventoryReport()
		if err != nil {
			return models.Report{}, err
		}

		sym := s.symbol()
		revenue := sales.revenue
		spent := expenses.total
		profit := revenue - spent
		profitMargin := 0.0
		if revenue > 0 {
			profitMargin = profit / revenue * 100
		}

		revenueTrendDir := models.TrendUp
		if sales.trend < 0 {
			revenueTrendDir = models.TrendDown
		}
		profitDir := models.TrendUp
		if profit < 0 {
			profitDir = models.TrendDown
		}

		profitWord := "a profit"
		if profit < 0 {
			profitWord = "a loss"
		}
		marginWord := "healthy"
		if profitMargin < 10 {
			marginWord = "below recommended 10%"
		}
		marginStatus := "Healthy"
		if profitMargin < 10 {
			marginStatus = "Needs Improvement"
		}
		profitStatus := "Positive"
		if profit < 0 {
			profitStatus = "Negative"
		}

		return models.Report{
			Metrics: []models.Metric{
				{
					Title:      "Total Revenue",
					Value:      sym + utils.FormatAmount(revenue),
					Trend:      revenueTrendDir,
					TrendValue: utils.FormatPercent(math.Abs(sales.trend)),
				},
				{Title: "Total Expenses", Value: sym + utils.FormatAmount(spent), Trend: models.TrendNeutral},
				{
					Title:      "Net Profit",
					Value:      sym + utils.FormatAmount(profit),
					Trend:      profitDir,
					TrendValue: utils.FormatPercent(math.Abs(profitMargin)),
				},
				{Title: "Profit Margin", Value: utils.FormatPercent(profitMargin), Trend: profitDir},
			},
			ChartTitle: "Revenue vs Expenses",
			Chart: &models.ChartData{
				Categories: []string{"Revenue", "Expenses", "Profit"},
				Series:     []models.ChartSeries{{Name: "Amount", Data: []float64{revenue, spent, profit}}},
			},
			TableTitle: "Business Summary",
			Table: &models.TableData{
				Headers: []string{"Metric", "Current Period", "Status"},
				Rows: []models.TableRow{
					{Label: "Revenue", Value: sym + utils.FormatAmount(revenue), Detail: "Good"},
					{Label: "Expenses", Value: sym + utils.FormatAmount(spent), Detail: "Controlled"},
					{Label: "Profit", Value: sym + utils.FormatAmount(profit), Detail: profitStatus},
					{Label: "Profit Margin", Value: utils.FormatPercent(profitMargin), Detail: marginStatus},
				},
			},
			Summary: fmt.Sprintf(
				"Business generated %s%s in revenue with %s%s in expenses, resulting in %s of %s%s.\nProfit margin is %s, which is %s.\n%d products need restocking attention.",
				sym, utils.FormatAmount(revenue),
				sym, utils.FormatAmount(spent),
				profitWord, sym, utils.FormatAmount(math.Abs(profit)),
				utils.FormatPercent(profitMargin), marginWord,
				inventory.lowStock,
			),
		}, nil
	})
}

// DashboardSummary computes the headline dashboard figures from current
// snapshots: stock health, lead counts, this month's sales and outstanding
// pending payments.
func (s *reportService) DashboardSummary() models.DashboardSummary {
	products := s.stores.Products.List()
	orders := s.stores.SalesOrders.List()
	customers := s.stores.Customers.List()

	summary := models.DashboardSummary{
		TotalProducts:  len(products),
		TotalCustomers: len(customers),
	}
	for _, p := range products {
		if p.IsLowStock() {
			summary.LowStockCount++
		}
	}
	for _, c := range customers {
		if c.PipelineStage == models.StageNew {
			summary.NewLeads++
		}
	}

	now := s.now()
	for _, o := range orders {
		if o.PaymentStatus == models.PaymentPending {
			summary.PendingPayments += o.TotalAmount
		}
		if !o.OrderDate.IsZero() && o.OrderDate.Year() == now.Year() && o.OrderDate.Month() == now.Month() {
			summary.MonthlySales += o.TotalAmount
		}
	}
	return summary
}
