// Package service implements the invoice and task read operations.
package service

import (
	"context"
	"time"

	"sidebar_backend/internal/domain"
	"sidebar_backend/internal/finances/transport"
	"sidebar_backend/platform/jobtread"
)

// FinanceSource is the subset of the JobTread client this service needs.
type FinanceSource interface {
	Invoices(ctx context.Context, grantKey string, filter jobtread.InvoicesFilter) ([]jobtread.RawInvoice, error)
	Tasks(ctx context.Context, grantKey string, filter jobtread.TasksFilter) ([]jobtread.RawTask, error)
}

// Service reads invoices and tasks from JobTread and derives their overdue
// state at read time.
type Service struct {
	src FinanceSource
}

// New creates the finances service.
func New(src FinanceSource) *Service {
	return &Service{src: src}
}

// ListInvoices fetches invoices matching the filter.
func (s *Service) ListInvoices(ctx context.Context, grantKey string, req transport.ListInvoicesRequest) (transport.ListInvoicesResponse, error) {
	rawInvoices, err := s.src.Invoices(ctx, grantKey, jobtread.InvoicesFilter{
		JobID:  req.JobID,
		Status: req.Status,
	})
	if err != nil {
		return transport.ListInvoicesResponse{}, err
	}

	now := time.Now()
	resp := transport.ListInvoicesResponse{Data: make([]transport.InvoiceResponse, 0, len(rawInvoices))}
	for _, raw := range rawInvoices {
		invoice := domain.NormalizeInvoice(raw)
		item := transport.InvoiceResponse{Invoice: invoice, Overdue: invoice.OverdueAt(now)}
		if item.Overdue {
			item.DaysOverdue = daysBetween(*invoice.DueDate, now)
			resp.OverdueCount++
			resp.OverdueTotal += invoice.Total
		}
		resp.Data = append(resp.Data, item)
	}
	return resp, nil
}

// ListTasks fetches tasks matching the filter.
func (s *Service) ListTasks(ctx context.Context, grantKey string, req transport.ListTasksRequest) (transport.ListTasksResponse, error) {
	rawTasks, err := s.src.Tasks(ctx, grantKey, jobtread.TasksFilter{
		JobID:  req.JobID,
		Status: req.Status,
	})
	if err != nil {
		return transport.ListTasksResponse{}, err
	}

	now := time.Now()
	resp := transport.ListTasksResponse{Data: make([]transport.TaskResponse, 0, len(rawTasks))}
	for _, raw := range rawTasks {
		task := domain.NormalizeTask(raw)
		item := transport.TaskResponse{Task: task, Overdue: task.OverdueAt(now)}
		if task.Status != domain.TaskStatusCompleted {
			resp.PendingCount++
		}
		if item.Overdue {
			resp.OverdueCount++
		}
		resp.Data = append(resp.Data, item)
	}
	return resp, nil
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
