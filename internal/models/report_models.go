package models

// Trend directions for report metrics.
const (
	TrendUp      = "up"
	TrendDown    = "down"
	TrendNeutral = "neutral"
)

// Metric is a single headline figure on a report.
type Metric struct {
	Title      string `json:"title"`
	Value      string `json:"value"`
	Trend      string `json:"trend"`
	TrendValue string `json:"trendValue,omitempty"`
}

// ChartSeries is one named series of a report chart.
type ChartSeries struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

// ChartData is the chart payload of a report: category labels in first-seen
// order plus the series aligned to them.
type ChartData struct {
	Categories []string      `json:"categories"`
	Series     []ChartSeries `json:"series"`
}

// TableRow is one row of a report table. Every report table in the app is
// three columns wide.
type TableRow struct {
	Label  string `json:"label" csv:"label"`
	Value  string `json:"value" csv:"value"`
	Detail string `json:"detail" csv:"detail"`
}

// TableData is the tabular payload of a report.
type TableData struct {
	Headers []string   `json:"headers"`
	Rows    []TableRow `json:"rows"`
}

// Report is the structured result of a report aggregation. A failed
// aggregation still yields a well-formed Report with empty payloads and an
// error-flavored summary, never an error to the caller.
type Report struct {
	Metrics    []Metric   `json:"metrics"`
	ChartTitle string     `json:"chartTitle,omitempty"`
	Chart      *ChartData `json:"chartData,omitempty"`
	TableTitle string     `json:"tableTitle,omitempty"`
	Table      *TableData `json:"tableData,omitempty"`
	Summary    string     `json:"summary"`
}

// DashboardSummary holds the key figures shown on the dashboard.
type DashboardSummary struct {
	TotalProducts   int     `json:"totalProducts"`
	LowStockCount   int     `json:"lowStockCount"`
	TotalCustomers  int     `json:"totalCustomers"`
	NewLeads        int     `json:"newLeads"`
	MonthlySales    float64 `json:"monthlySales"`
	PendingPayments float64 `json:"pendingPayments"`
}
