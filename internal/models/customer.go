package models

import "time"

// Pipeline stages for the customer lead pipeline. The UI walks them forward
// (new -> contacted -> closed) but the store accepts any transition.
const (
	StageNew       = "new"
	StageContacted = "contacted"
	StageClosed    = "closed"
)

// Customer types.
const (
	CustomerRetailer = "Retailer"
	CustomerReseller = "Reseller"
)

// Customer is a lead or buyer in the sales pipeline.
type Customer struct {
	Entity
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	Type          string     `json:"type"`
	PipelineStage string     `json:"pipelineStage"`
	AssignedTo    string     `json:"assignedTo"`
	Address       string     `json:"address"`
	GSTNumber     string     `json:"gstNumber"`
	LastContact   *time.Time `json:"lastContact,omitempty"`
}
