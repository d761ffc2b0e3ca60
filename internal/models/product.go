package models

// Stock adjustment directions accepted by the product service.
const (
	StockIn  = "in"
	StockOut = "out"
)

// Product is a manufactured or white-labelled item tracked in inventory.
// CurrentStock never goes below zero; stock-out adjustments clamp at 0.
type Product struct {
	Entity
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Category        string   `json:"category"`
	CurrentStock    int      `json:"currentStock"`
	MinStock        int      `json:"minStock"`
	Unit            string   `json:"unit"`
	IsWhiteLabelled bool     `json:"isWhiteLabelled"`
	BatchDate       FlexTime `json:"batchDate,omitempty"`
	ExpiryDate      FlexTime `json:"expiryDate,omitempty"`
	CostPrice       float64  `json:"costPrice"`
	SellingPrice    float64  `json:"sellingPrice"`
}

// IsLowStock reports whether the product is at or below its reorder threshold.
func (p Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}
