package service

import (
	"fmt"
	"time"

	"sidebar_backend/internal/contacts/transport"
)

// Lead scoring is a monotonic, order-independent weighted-feature sum: a
// base score plus a fixed bonus per optional field present, plus a recency
// bonus. Adding information never lowers the score, and the result is
// always in [50, 100].
const (
	baseScore    = 50
	emailBonus   = 10
	phoneBonus   = 10
	companyBonus = 10
	sourceBonus  = 5
	notesBonus   = 5
	maxScore     = 100
)

// Recency bonus tiers by lead age.
const (
	recencyUnderDay   = 15
	recencyUnderThree = 10
	recencyUnderWeek  = 5
)

// Per-source conversion quality. Sources above the neutral threshold are
// labeled positive in the factor breakdown.
var sourceQuality = map[string]int{
	"Referral":        25,
	"Repeat Customer": 30,
	"Google Ads":      15,
	"Website Form":    10,
	"HomeAdvisor":     5,
	"Google Organic":  8,
}

const (
	defaultSourceQuality   = 5
	sourceQualityThreshold = 15
)

// Project value context thresholds. The value factor is informational: it
// shapes the breakdown and the recommendation payload, not the score.
const (
	valueWeightDivisor = 5000.0
	valueWeightCap     = 20.0
	valuePositiveAbove = 50000.0
	valueNeutralAbove  = 20000.0
)

// ScoreLead computes the lead-quality score with an explainable factor
// breakdown. Pure function of its inputs.
func ScoreLead(data transport.ContactData, now time.Time) transport.LeadScoreResponse {
	score := baseScore
	factors := make([]transport.ScoreFactor, 0, 8)

	if data.Email != "" {
		score += emailBonus
		factors = append(factors, transport.ScoreFactor{
			Name:        "Email on File",
			Impact:      transport.ImpactPositive,
			Weight:      emailBonus,
			Description: fmt.Sprintf("Direct email contact available (%s)", data.Email),
		})
	}
	if data.Phone != "" {
		score += phoneBonus
		factors = append(factors, transport.ScoreFactor{
			Name:        "Phone on File",
			Impact:      transport.ImpactPositive,
			Weight:      phoneBonus,
			Description: fmt.Sprintf("Direct phone contact available (%s)", data.Phone),
		})
	}
	if data.Company != "" {
		score += companyBonus
		factors = append(factors, transport.ScoreFactor{
			Name:        "Company",
			Impact:      transport.ImpactPositive,
			Weight:      companyBonus,
			Description: fmt.Sprintf("Associated with %s", data.Company),
		})
	}
	if data.Source != "" {
		score += sourceBonus
		factors = append(factors, sourceFactor(data.Source))
	}
	if data.Notes != "" {
		score += notesBonus
		factors = append(factors, transport.ScoreFactor{
			Name:        "Engagement Notes",
			Impact:      transport.ImpactNeutral,
			Weight:      notesBonus,
			Description: "Notes on file indicate prior engagement",
		})
	}

	if bonus, description := recencyBonus(data.CreatedAt, now); bonus > 0 {
		score += bonus
		impact := transport.ImpactNeutral
		if bonus >= recencyUnderThree {
			impact = transport.ImpactPositive
		}
		factors = append(factors, transport.ScoreFactor{
			Name:        "Lead Recency",
			Impact:      impact,
			Weight:      float64(bonus),
			Description: description,
		})
	}

	factors = append(factors, valueFactor(data.EstimatedValue))

	if score > maxScore {
		score = maxScore
	}

	contactID := data.ID
	if contactID == "" {
		contactID = "unknown"
	}

	return transport.LeadScoreResponse{
		ContactID:         contactID,
		Score:             score,
		Factors:           factors,
		RecommendedAction: recommendedAction(score),
		EstimatedValue:    data.EstimatedValue,
		Probability:       float64(score) / 100,
	}
}

func sourceFactor(source string) transport.ScoreFactor {
	quality, known := sourceQuality[source]
	if !known {
		quality = defaultSourceQuality
	}

	impact := transport.ImpactNeutral
	comparison := "below"
	if quality > sourceQualityThreshold {
		impact = transport.ImpactPositive
		comparison = "above"
	}

	return transport.ScoreFactor{
		Name:        "Lead Source",
		Impact:      impact,
		Weight:      sourceBonus,
		Description: fmt.Sprintf("%s leads convert at %s average rates", source, comparison),
	}
}

func valueFactor(value float64) transport.ScoreFactor {
	weight := value / valueWeightDivisor
	if weight > valueWeightCap {
		weight = valueWeightCap
	}
	if weight < 0 {
		weight = 0
	}

	impact := transport.ImpactNegative
	switch {
	case value > valuePositiveAbove:
		impact = transport.ImpactPositive
	case value > valueNeutralAbove:
		impact = transport.ImpactNeutral
	}

	return transport.ScoreFactor{
		Name:        "Project Value",
		Impact:      impact,
		Weight:      weight,
		Description: fmt.Sprintf("$%s estimated project value", formatThousands(value)),
	}
}

// recencyBonus returns the age-based bonus. A missing createdAt or one in
// the future earns nothing.
func recencyBonus(createdAt *time.Time, now time.Time) (int, string) {
	if createdAt == nil || createdAt.After(now) {
		return 0, ""
	}

	ageDays := now.Sub(*createdAt).Hours() / 24
	switch {
	case ageDays < 1:
		return recencyUnderDay, "Created less than a day ago"
	case ageDays < 3:
		return recencyUnderThree, "Created less than three days ago"
	case ageDays < 7:
		return recencyUnderWeek, "Created less than a week ago"
	default:
		return 0, ""
	}
}

func recommendedAction(score int) string {
	switch {
	case score > 80:
		return "Contact immediately - high-value opportunity"
	case score > 60:
		return "Schedule follow-up within 24 hours"
	default:
		return "Add to nurture sequence"
	}
}

// formatThousands renders a non-negative amount with comma separators and
// no cents, matching the sidebar's currency display.
func formatThousands(v float64) string {
	whole := int64(v)
	if whole < 0 {
		whole = -whole
	}

	digits := fmt.Sprintf("%d", whole)
	if len(digits) <= 3 {
		return digits
	}

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return string(out)
}
