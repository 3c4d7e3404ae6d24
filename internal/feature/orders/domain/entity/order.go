// Package entity defines the domain entities for the orders feature.
package entity

import "time"

// Order represents a customer order placed with the shop.
type Order struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"size:255;not null" json:"customerName"`
	TotalAmount  float64   `gorm:"not null" json:"totalAmount"`
	CreatedAt    time.Time `json:"createdAt"`
}
