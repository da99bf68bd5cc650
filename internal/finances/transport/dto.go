// Package transport defines the finances module's request and response shapes.
package transport

import "sidebar_backend/internal/domain"

// ListInvoicesRequest carries the invoices list query parameters.
type ListInvoicesRequest struct {
	JobID  string `form:"jobId" validate:"omitempty,max=100"`
	Status string `form:"status" validate:"omitempty,oneof=DRAFT SENT VIEWED PARTIAL PAID OVERDUE VOID"`
}

// InvoiceResponse is a normalized invoice plus its derived overdue state.
type InvoiceResponse struct {
	domain.Invoice
	Overdue     bool `json:"overdue"`
	DaysOverdue int  `json:"daysOverdue,omitempty"`
}

// ListInvoicesResponse is the invoices list payload.
type ListInvoicesResponse struct {
	Data         []InvoiceResponse `json:"data"`
	OverdueCount int               `json:"overdueCount"`
	OverdueTotal float64           `json:"overdueTotal"`
}

// ListTasksRequest carries the tasks list query parameters.
type ListTasksRequest struct {
	JobID  string `form:"jobId" validate:"omitempty,max=100"`
	Status string `form:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
}

// TaskResponse is a normalized task plus its derived overdue state.
type TaskResponse struct {
	domain.Task
	Overdue bool `json:"overdue"`
}

// ListTasksResponse is the tasks list payload.
type ListTasksResponse struct {
	Data         []TaskResponse `json:"data"`
	PendingCount int            `json:"pendingCount"`
	OverdueCount int            `json:"overdueCount"`
}
