// Package dto defines data transfer objects for the orders feature's HTTP transport layer.
package dto

// OrderReq represents the request body for creating an order.
type OrderReq struct {
	CustomerName string  `json:"customerName" binding:"required"`
	TotalAmount  float64 `json:"totalAmount" binding:"min=0"`
}
