// Package transport defines the estimates module's request and response shapes.
package transport

import "time"

// GenerateEstimateRequest is the request body for estimate generation.
type GenerateEstimateRequest struct {
	ProjectType   string  `json:"projectType" validate:"omitempty,max=50"`
	SquareFootage float64 `json:"squareFootage"`
	Description   string  `json:"description" validate:"omitempty,max=2000"`
}

// LineItem is one priced component of a generated estimate.
type LineItem struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	UnitCost   float64 `json:"unitCost"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalCost  float64 `json:"totalCost"`
	TotalPrice float64 `json:"totalPrice"`
}

// MarketComparison is the presentation band around the estimate subtotal.
type MarketComparison struct {
	Low     float64 `json:"low"`
	Average float64 `json:"average"`
	High    float64 `json:"high"`
}

// EstimateResponse is the generated estimate payload.
type EstimateResponse struct {
	ProjectType      string           `json:"projectType"`
	SquareFootage    float64          `json:"squareFootage"`
	Description      string           `json:"description,omitempty"`
	LineItems        []LineItem       `json:"lineItems"`
	Subtotal         float64          `json:"subtotal"`
	Tax              float64          `json:"tax"`
	Total            float64          `json:"total"`
	Confidence       float64          `json:"confidence"`
	GeneratedAt      time.Time        `json:"generatedAt"`
	MarketComparison MarketComparison `json:"marketComparison"`
}
