// Package dto defines data transfer objects for the inventory feature's HTTP transport layer.
package dto

// ItemReq represents the request body for creating or updating an inventory item.
type ItemReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Quantity    int     `json:"quantity" binding:"min=0"`
}
