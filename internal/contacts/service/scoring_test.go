package service

import (
	"testing"
	"time"

	"sidebar_backend/internal/contacts/transport"
)

var scoreNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestScoreLeadBaseScoreForNameOnly(t *testing.T) {
	result := ScoreLead(transport.ContactData{ID: "c1", FirstName: "Dana", LastName: "Reed"}, scoreNow)

	if result.Score != 50 {
		t.Fatalf("expected base score 50 for name-only lead, got %d", result.Score)
	}
	if result.Probability != 0.5 {
		t.Fatalf("expected probability 0.5, got %v", result.Probability)
	}
	if result.RecommendedAction != "Add to nurture sequence" {
		t.Fatalf("unexpected action: %q", result.RecommendedAction)
	}
}

func TestScoreLeadFieldBonusesAccumulate(t *testing.T) {
	data := transport.ContactData{ID: "c1", FirstName: "Dana", LastName: "Reed"}

	data.Email = "dana@example.com"
	if got := ScoreLead(data, scoreNow).Score; got != 60 {
		t.Fatalf("expected 60 with email, got %d", got)
	}

	data.Phone = "+15125550184"
	if got := ScoreLead(data, scoreNow).Score; got != 70 {
		t.Fatalf("expected 70 with email+phone, got %d", got)
	}

	data.Company = "Reed Roofing"
	if got := ScoreLead(data, scoreNow).Score; got != 80 {
		t.Fatalf("expected 80 with email+phone+company, got %d", got)
	}

	data.Source = "Referral"
	data.Notes = "Met at trade show"
	if got := ScoreLead(data, scoreNow).Score; got != 90 {
		t.Fatalf("expected 90 with all fields, got %d", got)
	}
}

func TestScoreLeadRecencyTiers(t *testing.T) {
	cases := []struct {
		name string
		age  time.Duration
		want int
	}{
		{"under a day", 6 * time.Hour, 65},
		{"under three days", 48 * time.Hour, 60},
		{"under a week", 5 * 24 * time.Hour, 55},
		{"older than a week", 30 * 24 * time.Hour, 50},
	}

	for _, tc := range cases {
		created := scoreNow.Add(-tc.age)
		data := transport.ContactData{ID: "c1", FirstName: "Dana", LastName: "Reed", CreatedAt: &created}
		if got := ScoreLead(data, scoreNow).Score; got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestScoreLeadFutureCreatedAtEarnsNothing(t *testing.T) {
	future := scoreNow.Add(24 * time.Hour)
	data := transport.ContactData{ID: "c1", FirstName: "Dana", LastName: "Reed", CreatedAt: &future}
	if got := ScoreLead(data, scoreNow).Score; got != 50 {
		t.Fatalf("expected future timestamp to earn no bonus, got %d", got)
	}
}

func TestScoreLeadCapsAtHundred(t *testing.T) {
	created := scoreNow.Add(-time.Hour)
	data := transport.ContactData{
		ID: "c1", FirstName: "Dana", LastName: "Reed",
		Email: "dana@example.com", Phone: "+15125550184",
		Company: "Reed Roofing", Source: "Referral",
		Notes: "Ready to sign", CreatedAt: &created,
	}

	result := ScoreLead(data, scoreNow)
	if result.Score != 100 {
		t.Fatalf("expected capped score 100, got %d", result.Score)
	}
	if result.Probability != 1.0 {
		t.Fatalf("expected probability 1.0, got %v", result.Probability)
	}
	if result.RecommendedAction != "Contact immediately - high-value opportunity" {
		t.Fatalf("unexpected action: %q", result.RecommendedAction)
	}
}

func TestScoreLeadAddingInformationNeverLowersScore(t *testing.T) {
	created := scoreNow.Add(-2 * 24 * time.Hour)
	steps := []transport.ContactData{
		{ID: "c1", FirstName: "Dana", LastName: "Reed"},
		{ID: "c1", FirstName: "Dana", LastName: "Reed", Email: "dana@example.com"},
		{ID: "c1", FirstName: "Dana", LastName: "Reed", Email: "dana@example.com", Phone: "+15125550184"},
		{ID: "c1", FirstName: "Dana", LastName: "Reed", Email: "dana@example.com", Phone: "+15125550184", Source: "HomeAdvisor"},
		{ID: "c1", FirstName: "Dana", LastName: "Reed", Email: "dana@example.com", Phone: "+15125550184", Source: "HomeAdvisor", Notes: "Called twice", CreatedAt: &created},
	}

	prev := -1
	for i, data := range steps {
		got := ScoreLead(data, scoreNow).Score
		if got < prev {
			t.Fatalf("step %d lowered the score: %d -> %d", i, prev, got)
		}
		prev = got
	}
}

func TestScoreLeadValueFactorIsInformational(t *testing.T) {
	base := transport.ContactData{ID: "c1", FirstName: "Dana", LastName: "Reed"}
	small := base
	small.EstimatedValue = 1000
	large := base
	large.EstimatedValue = 250000

	if ScoreLead(small, scoreNow).Score != ScoreLead(large, scoreNow).Score {
		t.Fatal("expected estimated value to not change the score")
	}

	result := ScoreLead(large, scoreNow)
	var valueFactor *transport.ScoreFactor
	for i := range result.Factors {
		if result.Factors[i].Name == "Project Value" {
			valueFactor = &result.Factors[i]
		}
	}
	if valueFactor == nil {
		t.Fatal("expected a project value factor in the breakdown")
	}
	if valueFactor.Impact != transport.ImpactPositive {
		t.Fatalf("expected positive impact for large project, got %q", valueFactor.Impact)
	}
	if valueFactor.Weight != 20 {
		t.Fatalf("expected value weight capped at 20, got %v", valueFactor.Weight)
	}
}

func TestScoreLeadSourceQualityLabels(t *testing.T) {
	referral := ScoreLead(transport.ContactData{ID: "c1", FirstName: "D", LastName: "R", Source: "Referral"}, scoreNow)
	if factor := findFactor(t, referral, "Lead Source"); factor.Impact != transport.ImpactPositive {
		t.Fatalf("expected referral source to be positive, got %q", factor.Impact)
	}

	unknown := ScoreLead(transport.ContactData{ID: "c1", FirstName: "D", LastName: "R", Source: "Billboard"}, scoreNow)
	if factor := findFactor(t, unknown, "Lead Source"); factor.Impact != transport.ImpactNeutral {
		t.Fatalf("expected unknown source to be neutral, got %q", factor.Impact)
	}
}

func TestScoreLeadMissingIDBecomesUnknown(t *testing.T) {
	result := ScoreLead(transport.ContactData{FirstName: "Dana", LastName: "Reed"}, scoreNow)
	if result.ContactID != "unknown" {
		t.Fatalf("expected unknown contact id, got %q", result.ContactID)
	}
}

func findFactor(t *testing.T, result transport.LeadScoreResponse, name string) transport.ScoreFactor {
	t.Helper()
	for _, factor := range result.Factors {
		if factor.Name == name {
			return factor
		}
	}
	t.Fatalf("factor %q not found in %+v", name, result.Factors)
	return transport.ScoreFactor{}
}
