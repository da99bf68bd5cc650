// Package transport defines the jobs module's request and response shapes.
package transport

import "sidebar_backend/internal/domain"

// ListJobsRequest carries the jobs list query parameters.
type ListJobsRequest struct {
	Status string `form:"status" validate:"omitempty,oneof=LEAD ESTIMATE PROPOSAL CONTRACT IN_PROGRESS ON_HOLD COMPLETED CANCELLED"`
	Search string `form:"search" validate:"omitempty,max=200"`
	First  int    `form:"first" validate:"omitempty,min=1,max=100"`
}

// JobResponse is a normalized job plus its display margin, rounded to one
// decimal at the edge per the display convention.
type JobResponse struct {
	domain.Job
	Margin float64 `json:"margin"`
}

// ListJobsResponse is the jobs list payload.
type ListJobsResponse struct {
	Data       []JobResponse `json:"data"`
	TotalCount int           `json:"totalCount"`
}

// MetricsResponse is the dashboard aggregate payload.
type MetricsResponse struct {
	domain.Metrics
}
