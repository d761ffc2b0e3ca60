package models

// Invoice mirrors the sales order shape with its own tax breakdown. OrderID
// links back to the originating sales order when one exists.
type Invoice struct {
	Entity
	CustomerID    int         `json:"customerId"`
	CustomerName  string      `json:"customerName"`
	OrderID       *int        `json:"orderId,omitempty"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	TaxAmount     float64     `json:"taxAmount"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentStatus string      `json:"paymentStatus"`
	InvoiceNumber string      `json:"invoiceNumber"`
	InvoiceDate   FlexTime    `json:"invoiceDate"`
	DueDate       FlexTime    `json:"dueDate"`
	Notes         string      `json:"notes,omitempty"`
}
