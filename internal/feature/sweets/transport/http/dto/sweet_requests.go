// Package dto defines data transfer objects for the sweets feature's HTTP transport layer.
package dto

// SweetReq represents the request body for creating or updating a sweet.
// Price and quantity bounds are enforced again in the usecase; the binding
// tags reject obviously malformed payloads early.
type SweetReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Quantity    int     `json:"quantity" binding:"min=0"`
}

// QuantityReq represents the request body for purchase and restock endpoints.
type QuantityReq struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
