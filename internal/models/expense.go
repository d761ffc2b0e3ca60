package models

// Expense categories.
const (
	ExpenseRawMaterials = "Raw Materials"
	ExpensePackaging    = "Packaging"
	ExpenseTransport    = "Transport"
	ExpenseUtilities    = "Utilities"
	ExpenseMarketing    = "Marketing"
	ExpenseSalaries     = "Salaries"
	ExpenseRent         = "Rent"
	ExpenseOther        = "Other"
)

// Expense is a single business expenditure.
type Expense struct {
	Entity
	Category    string   `json:"category"`
	Amount      float64  `json:"amount"`
	Description string   `json:"description"`
	Vendor      string   `json:"vendor,omitempty"`
	Date        FlexTime `json:"date"`
}
