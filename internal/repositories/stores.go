package repositories

import "dishooom_backend/internal/models"

// Stores bundles the per-entity collections. One Stores value is constructed
// at process start and injected into the services; nothing else holds entity
// state.
type Stores struct {
	Products    *Collection[models.Product, *models.Product]
	Customers   *Collection[models.Customer, *models.Customer]
	SalesOrders *Collection[models.SalesOrder, *models.SalesOrder]
	Invoices    *Collection[models.Invoice, *models.Invoice]
	Expenses    *Collection[models.Expense, *models.Expense]
}

// NewStores returns a set of empty collections.
func NewStores() *Stores {
	return &Stores{
		Products:    NewCollection[models.Product](),
		Customers:   NewCollection[models.Customer](),
		SalesOrders: NewCollection[models.SalesOrder](),
		Invoices:    NewCollection[models.Invoice](),
		Expenses:    NewCollection[models.Expense](),
	}
}
