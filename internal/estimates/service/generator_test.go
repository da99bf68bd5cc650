package service

import (
	"reflect"
	"testing"
	"time"

	"sidebar_backend/internal/estimates/transport"
	"sidebar_backend/platform/apperr"
)

var genNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestGenerateRoofingQuantitiesScaleBySquares(t *testing.T) {
	svc := New()
	result, err := svc.Generate(transport.GenerateEstimateRequest{
		ProjectType:   "roofing",
		SquareFootage: 2800,
	}, genNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.LineItems) != 5 {
		t.Fatalf("expected 5 roofing line items, got %d", len(result.LineItems))
	}

	tearOff := result.LineItems[0]
	if tearOff.Name != "Tear-off & removal" {
		t.Fatalf("unexpected first line item: %q", tearOff.Name)
	}
	if tearOff.Quantity != 28 {
		t.Fatalf("expected 28 squares for 2800 sqft, got %v", tearOff.Quantity)
	}
	if tearOff.TotalCost != 1260 || tearOff.TotalPrice != 2016 {
		t.Fatalf("unexpected tear-off totals: cost=%v price=%v", tearOff.TotalCost, tearOff.TotalPrice)
	}

	cleanup := result.LineItems[4]
	if cleanup.Quantity != 1 || cleanup.TotalPrice != 650 {
		t.Fatalf("expected lump-sum cleanup at 650, got qty=%v price=%v", cleanup.Quantity, cleanup.TotalPrice)
	}
}

func TestGenerateTotalsAndMarketBand(t *testing.T) {
	svc := New()
	result, err := svc.Generate(transport.GenerateEstimateRequest{
		ProjectType:   "roofing",
		SquareFootage: 2800,
	}, genNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Subtotal != 10870 {
		t.Fatalf("expected subtotal 10870, got %v", result.Subtotal)
	}
	if result.Tax != 896.78 {
		t.Fatalf("expected tax 896.78, got %v", result.Tax)
	}
	if result.Total != 11766.78 {
		t.Fatalf("expected total 11766.78, got %v", result.Total)
	}
	if result.Confidence != 0.92 {
		t.Fatalf("expected confidence 0.92, got %v", result.Confidence)
	}
	if result.MarketComparison.Low != 8913.4 || result.MarketComparison.Average != 10870 || result.MarketComparison.High != 12500.5 {
		t.Fatalf("unexpected market band: %+v", result.MarketComparison)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	svc := New()
	req := transport.GenerateEstimateRequest{ProjectType: "remodel", SquareFootage: 1500}

	first, err := svc.Generate(req, genNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Generate(req, genNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical requests to produce identical estimates")
	}
}

func TestGenerateUnknownTypeFallsBackToCustom(t *testing.T) {
	svc := New()
	unknown, err := svc.Generate(transport.GenerateEstimateRequest{ProjectType: "spaceport", SquareFootage: 1000}, genNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	custom, err := svc.Generate(transport.GenerateEstimateRequest{ProjectType: "custom", SquareFootage: 1000}, genNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(unknown.LineItems, custom.LineItems) {
		t.Fatal("expected unknown project type to use the custom catalog")
	}
}

func TestGenerateEmptyTypeDefaultsToRoofing(t *testing.T) {
	svc := New()
	result, err := svc.Generate(transport.GenerateEstimateRequest{SquareFootage: 500}, genNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ProjectType != "roofing" {
		t.Fatalf("expected roofing default, got %q", result.ProjectType)
	}
}

func TestGenerateTinyFootprintFloorsAtOneSquare(t *testing.T) {
	svc := New()
	result, err := svc.Generate(transport.GenerateEstimateRequest{ProjectType: "roofing", SquareFootage: 40}, genNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.LineItems[0].Quantity != 1 {
		t.Fatalf("expected quantity floor of 1 square, got %v", result.LineItems[0].Quantity)
	}
}

func TestGenerateRejectsNegativeSquareFootage(t *testing.T) {
	svc := New()
	_, err := svc.Generate(transport.GenerateEstimateRequest{ProjectType: "roofing", SquareFootage: -100}, genNow)
	if err == nil {
		t.Fatal("expected an error for negative square footage")
	}
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
