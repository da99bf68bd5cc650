// Package service generates template-driven project estimates.
package service

import (
	"strings"
	"time"

	"sidebar_backend/internal/estimates/transport"
	"sidebar_backend/platform/apperr"
)

type Service struct{}

func New() *Service {
	return &Service{}
}

// Generate produces a line-item estimate for the requested project type and
// footprint. The same request always yields the same line items and totals.
func (s *Service) Generate(req transport.GenerateEstimateRequest, now time.Time) (transport.EstimateResponse, error) {
	if req.SquareFootage < 0 {
		return transport.EstimateResponse{}, apperr.Validation("squareFootage must not be negative")
	}

	projectType := strings.ToLower(strings.TrimSpace(req.ProjectType))
	if projectType == "" {
		projectType = defaultProjectType
	}

	items := buildLineItems(projectType, req.SquareFootage)

	var subtotal float64
	for _, item := range items {
		subtotal += item.TotalPrice
	}
	tax := round2(subtotal * taxRate)

	return transport.EstimateResponse{
		ProjectType:   projectType,
		SquareFootage: req.SquareFootage,
		Description:   req.Description,
		LineItems:     items,
		Subtotal:      round2(subtotal),
		Tax:           tax,
		Total:         round2(subtotal + tax),
		Confidence:    confidence,
		GeneratedAt:   now.UTC(),
		MarketComparison: transport.MarketComparison{
			Low:     round2(subtotal * marketLowBand),
			Average: round2(subtotal),
			High:    round2(subtotal * marketHighBand),
		},
	}, nil
}
