package services

import "github.com/go-playground/validator/v10"

// validate is the shared validator for service request DTOs. The store layer
// itself accepts whatever shape it is given; the documented field invariants
// (non-negative prices and stock, positive expense amounts) are enforced here,
// at the service boundary.
var validate = validator.New()
