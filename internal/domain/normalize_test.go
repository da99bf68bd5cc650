package domain

import (
	"testing"

	"sidebar_backend/platform/jobtread"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestNormalizeJobDefaultsAbsentFields(t *testing.T) {
	job := NormalizeJob(jobtread.RawJob{ID: "j1", Name: "Roof Replacement", Status: "LEAD"})

	if job.ID != "j1" || job.Name != "Roof Replacement" {
		t.Fatalf("unexpected identity fields: %+v", job)
	}
	if job.Budget != (Budget{}) {
		t.Fatalf("expected zero budget for absent payload, got %+v", job.Budget)
	}
	if job.Customer != nil || job.Address != nil {
		t.Fatal("expected absent customer and address to stay nil")
	}
	if job.Tasks == nil || len(job.Tasks) != 0 {
		t.Fatalf("expected empty task slice, got %v", job.Tasks)
	}
}

func TestNormalizeJobCarriesBudgetAndCustomer(t *testing.T) {
	job := NormalizeJob(jobtread.RawJob{
		ID:     "j2",
		Name:   "Kitchen Remodel",
		Status: "IN_PROGRESS",
		Budget: &jobtread.RawBudget{
			EstimatedRevenue: floatPtr(80000),
			EstimatedCost:    floatPtr(60000),
		},
		Customer: &jobtread.RawContact{ID: "c1", FirstName: "Dana", LastName: "Reed"},
	})

	if job.Budget.EstimatedRevenue != 80000 || job.Budget.EstimatedCost != 60000 {
		t.Fatalf("unexpected budget: %+v", job.Budget)
	}
	if job.Customer == nil || job.Customer.FullName() != "Dana Reed" {
		t.Fatalf("unexpected customer: %+v", job.Customer)
	}
	if got := job.Budget.Margin(); got != 25 {
		t.Fatalf("expected 25%% margin, got %v", got)
	}
}

func TestNormalizeContactParsesDateVariants(t *testing.T) {
	withTime := NormalizeContact(jobtread.RawContact{
		ID: "c1", FirstName: "Ana", LastName: "Silva",
		CreatedAt: strPtr("2026-03-10T08:30:00Z"),
	})
	if withTime.CreatedAt == nil {
		t.Fatal("expected RFC 3339 timestamp to parse")
	}

	bareDate := NormalizeContact(jobtread.RawContact{
		ID: "c2", FirstName: "Ben", LastName: "Okafor",
		CreatedAt: strPtr("2026-03-10"),
	})
	if bareDate.CreatedAt == nil {
		t.Fatal("expected bare date to parse")
	}

	garbage := NormalizeContact(jobtread.RawContact{
		ID: "c3", FirstName: "Cleo", LastName: "Marsh",
		CreatedAt: strPtr("last tuesday"),
	})
	if garbage.CreatedAt != nil {
		t.Fatal("expected unparsable date to become nil")
	}
}

func TestNormalizeContactNormalizesPhone(t *testing.T) {
	contact := NormalizeContact(jobtread.RawContact{
		ID: "c1", FirstName: "Dana", LastName: "Reed",
		Phone: strPtr("(512) 555-0184"),
	})
	if contact.Phone != "+15125550184" {
		t.Fatalf("expected E.164 phone, got %q", contact.Phone)
	}
}

func TestNormalizeUserJoinsNameAndOrganization(t *testing.T) {
	user := NormalizeUser(jobtread.RawUser{
		ID: "u1", Email: "dana@example.com",
		FirstName: "Dana", LastName: "Reed",
		Organization: &jobtread.RawOrganization{ID: "o1", Name: "Reed Roofing"},
	})
	if user.Name != "Dana Reed" {
		t.Fatalf("unexpected name: %q", user.Name)
	}
	if user.Organization != "Reed Roofing" {
		t.Fatalf("unexpected organization: %q", user.Organization)
	}

	firstOnly := NormalizeUser(jobtread.RawUser{ID: "u2", FirstName: "Dana"})
	if firstOnly.Name != "Dana" {
		t.Fatalf("expected single name without separator, got %q", firstOnly.Name)
	}
}
