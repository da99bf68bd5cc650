package domain

import (
	"sort"
	"time"
)

// Margin returns profit as a percentage of revenue. A non-positive revenue
// yields exactly 0, never NaN or Inf.
func Margin(revenue, cost float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return (revenue - cost) / revenue * 100
}

// IsOverdue is the generic overdue predicate: a due date in the past and a
// status that has not reached a terminal state. A missing due date is never
// overdue.
func IsOverdue(now time.Time, dueDate *time.Time, status string, terminalStatuses ...string) bool {
	if dueDate == nil {
		return false
	}
	for _, terminal := range terminalStatuses {
		if status == terminal {
			return false
		}
	}
	return dueDate.Before(now)
}

// BudgetField selects one numeric field of a job budget for summation.
type BudgetField func(Budget) float64

// Budget field selectors for SumBudget.
var (
	EstimatedRevenue BudgetField = func(b Budget) float64 { return b.EstimatedRevenue }
	EstimatedCost    BudgetField = func(b Budget) float64 { return b.EstimatedCost }
	Invoiced         BudgetField = func(b Budget) float64 { return b.Invoiced }
	Paid             BudgetField = func(b Budget) float64 { return b.Paid }
	Outstanding      BudgetField = func(b Budget) float64 { return b.Outstanding }
)

// SumBudget reduces one budget field across a collection of jobs.
func SumBudget(jobs []Job, field BudgetField) float64 {
	var sum float64
	for _, job := range jobs {
		sum += field(job.Budget)
	}
	return sum
}

// Metrics is the dashboard aggregate computed from a snapshot.
type Metrics struct {
	TotalJobs        int               `json:"totalJobs"`
	ActiveJobs       int               `json:"activeJobs"`
	TotalRevenue     float64           `json:"totalRevenue"`
	TotalCost        float64           `json:"totalCost"`
	TotalProfit      float64           `json:"totalProfit"`
	AvgMargin        float64           `json:"avgMargin"`
	TotalInvoiced    float64           `json:"totalInvoiced"`
	TotalPaid        float64           `json:"totalPaid"`
	TotalOutstanding float64           `json:"totalOutstanding"`
	TotalContacts    int               `json:"totalContacts"`
	TotalInvoices    int               `json:"totalInvoices"`
	OverdueInvoices  []Invoice         `json:"overdueInvoices"`
	OverdueTotal     float64           `json:"overdueTotal"`
	PendingTasks     int               `json:"pendingTasks"`
	OverdueTasks     []Task            `json:"overdueTasks"`
	StatusCounts     map[JobStatus]int `json:"statusCounts"`
}

// BuildMetrics computes the dashboard aggregates for a snapshot at the
// given instant. It is a pure function of its inputs.
func BuildMetrics(snap Snapshot, now time.Time) Metrics {
	m := Metrics{
		TotalJobs:        len(snap.Jobs),
		TotalRevenue:     SumBudget(snap.Jobs, EstimatedRevenue),
		TotalCost:        SumBudget(snap.Jobs, EstimatedCost),
		TotalInvoiced:    SumBudget(snap.Jobs, Invoiced),
		TotalPaid:        SumBudget(snap.Jobs, Paid),
		TotalOutstanding: SumBudget(snap.Jobs, Outstanding),
		TotalContacts:    len(snap.Contacts),
		TotalInvoices:    len(snap.Invoices),
		OverdueInvoices:  make([]Invoice, 0),
		OverdueTasks:     make([]Task, 0),
		StatusCounts:     make(map[JobStatus]int),
	}
	m.TotalProfit = m.TotalRevenue - m.TotalCost
	m.AvgMargin = Margin(m.TotalRevenue, m.TotalCost)

	for _, job := range snap.Jobs {
		m.StatusCounts[job.Status]++
		if job.IsActive() {
			m.ActiveJobs++
		}
	}
	for _, invoice := range snap.Invoices {
		if invoice.OverdueAt(now) {
			m.OverdueInvoices = append(m.OverdueInvoices, invoice)
			m.OverdueTotal += invoice.Total
		}
	}
	for _, task := range snap.Tasks {
		if task.Status != TaskStatusCompleted {
			m.PendingTasks++
		}
		if task.OverdueAt(now) {
			m.OverdueTasks = append(m.OverdueTasks, task)
		}
	}
	return m
}

// ActiveJobs returns the jobs counting toward active work.
func ActiveJobs(jobs []Job) []Job {
	active := make([]Job, 0, len(jobs))
	for _, job := range jobs {
		if job.IsActive() {
			active = append(active, job)
		}
	}
	return active
}

// TopByRevenue returns up to n jobs sorted by estimated revenue, descending.
// The input slice is not modified.
func TopByRevenue(jobs []Job, n int) []Job {
	sorted := make([]Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Budget.EstimatedRevenue > sorted[j].Budget.EstimatedRevenue
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
