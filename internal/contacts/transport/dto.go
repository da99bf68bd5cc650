// Package transport defines the contacts module's request and response shapes.
package transport

import (
	"time"

	"sidebar_backend/internal/domain"
)

// Impact labels for lead score factors.
const (
	ImpactPositive = "positive"
	ImpactNeutral  = "neutral"
	ImpactNegative = "negative"
)

// ListContactsRequest carries the contacts list query parameters.
type ListContactsRequest struct {
	Type   string `form:"type" validate:"omitempty,oneof=CUSTOMER VENDOR SUBCONTRACTOR LEAD"`
	Search string `form:"search" validate:"omitempty,max=200"`
	First  int    `form:"first" validate:"omitempty,min=1,max=100"`
}

// ListContactsResponse is the contacts list payload.
type ListContactsResponse struct {
	Data       []domain.Contact `json:"data"`
	TotalCount int              `json:"totalCount"`
}

// ContactData is the lead record submitted for scoring. Every field except
// the ID is optional; a sparser record simply scores lower.
type ContactData struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Company        string     `json:"company"`
	Source         string     `json:"source"`
	Notes          string     `json:"notes"`
	CreatedAt      *time.Time `json:"createdAt"`
	EstimatedValue float64    `json:"estimatedValue" validate:"min=0"`
}

// ScoreLeadRequest is the request body for lead scoring.
type ScoreLeadRequest struct {
	ContactID   string      `json:"contactId"`
	ContactData ContactData `json:"contactData" validate:"required"`
}

// ScoreFactor is one explainable contribution to a lead score.
type ScoreFactor struct {
	Name        string  `json:"name"`
	Impact      string  `json:"impact"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// LeadScoreResponse is the lead scoring payload.
type LeadScoreResponse struct {
	ContactID         string        `json:"contactId"`
	Score             int           `json:"score"`
	Factors           []ScoreFactor `json:"factors"`
	RecommendedAction string        `json:"recommendedAction"`
	EstimatedValue    float64       `json:"estimatedValue"`
	Probability       float64       `json:"probability"`
}
