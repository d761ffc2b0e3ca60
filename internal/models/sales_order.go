package models

// Payment statuses shared by sales orders and invoices.
const (
	PaymentPending = "pending"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

// OrderItem is a line on a sales order or invoice. Product name and unit
// price are snapshots taken at order time; later product edits do not cascade
// into existing lines.
type OrderItem struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// SalesOrder is a confirmed order for a customer. CustomerName is a
// denormalized snapshot; deleting the customer leaves it untouched.
// TotalAmount is supplied by the caller and is not recomputed on update.
type SalesOrder struct {
	Entity
	CustomerID    int         `json:"customerId"`
	CustomerName  string      `json:"customerName"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentStatus string      `json:"paymentStatus"`
	InvoiceNumber string      `json:"invoiceNumber"`
	OrderDate     FlexTime    `json:"orderDate"`
	Notes         string      `json:"notes,omitempty"`
}
