// Package domain holds the normalized view models projected from JobTread
// payloads, plus the pure transform and aggregation functions over them.
// Nothing here is persisted; every value is fetched, transformed, rendered
// and discarded on the next fetch.
package domain

import "time"

// JobStatus is the lifecycle status of a job.
type JobStatus string

const (
	JobStatusLead       JobStatus = "LEAD"
	JobStatusEstimate   JobStatus = "ESTIMATE"
	JobStatusProposal   JobStatus = "PROPOSAL"
	JobStatusContract   JobStatus = "CONTRACT"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusOnHold     JobStatus = "ON_HOLD"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

// ContactType classifies a contact.
type ContactType string

const (
	ContactTypeCustomer      ContactType = "CUSTOMER"
	ContactTypeVendor        ContactType = "VENDOR"
	ContactTypeSubcontractor ContactType = "SUBCONTRACTOR"
	ContactTypeLead          ContactType = "LEAD"
)

// InvoiceStatus is the lifecycle status of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "DRAFT"
	InvoiceStatusSent    InvoiceStatus = "SENT"
	InvoiceStatusViewed  InvoiceStatus = "VIEWED"
	InvoiceStatusPartial InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
	InvoiceStatusVoid    InvoiceStatus = "VOID"
)

// TaskStatus is the lifecycle status of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// Budget is a job's financial summary. Absent upstream values are zero.
type Budget struct {
	EstimatedRevenue float64 `json:"estimatedRevenue"`
	EstimatedCost    float64 `json:"estimatedCost"`
	EstimatedProfit  float64 `json:"estimatedProfit"`
	ActualRevenue    float64 `json:"actualRevenue"`
	ActualCost       float64 `json:"actualCost"`
	ActualProfit     float64 `json:"actualProfit"`
	Invoiced         float64 `json:"invoiced"`
	Paid             float64 `json:"paid"`
	Outstanding      float64 `json:"outstanding"`
}

// Margin returns the estimated margin percentage for the budget.
func (b Budget) Margin() float64 {
	return Margin(b.EstimatedRevenue, b.EstimatedCost)
}

// Address is a postal address.
type Address struct {
	Street1 string `json:"street1,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// Contact is a normalized contact record. Leads are contacts of type LEAD.
type Contact struct {
	ID        string      `json:"id"`
	Type      ContactType `json:"type,omitempty"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Company   string      `json:"company,omitempty"`
	Email     string      `json:"email,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	Source    string      `json:"source,omitempty"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt *time.Time  `json:"createdAt,omitempty"`
}

// FullName returns the contact's display name.
func (c Contact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

// Task is a normalized task record.
type Task struct {
	ID      string     `json:"id"`
	JobID   string     `json:"jobId,omitempty"`
	Title   string     `json:"title"`
	Status  TaskStatus `json:"status"`
	DueDate *time.Time `json:"dueDate,omitempty"`
}

// OverdueAt reports whether the task is overdue at the given instant.
func (t Task) OverdueAt(now time.Time) bool {
	return IsOverdue(now, t.DueDate, string(t.Status), string(TaskStatusCompleted))
}

// Job is a normalized job record.
type Job struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Number      string    `json:"number,omitempty"`
	Status      JobStatus `json:"status"`
	Description string    `json:"description,omitempty"`
	Customer    *Contact  `json:"customer,omitempty"`
	Address     *Address  `json:"address,omitempty"`
	Budget      Budget    `json:"budget"`
	Tasks       []Task    `json:"tasks"`
}

// IsActive reports whether the job counts toward active work.
func (j Job) IsActive() bool {
	return j.Status == JobStatusInProgress || j.Status == JobStatusContract
}

// Invoice is a normalized invoice record.
type Invoice struct {
	ID      string        `json:"id"`
	JobID   string        `json:"jobId,omitempty"`
	Number  string        `json:"number,omitempty"`
	Status  InvoiceStatus `json:"status"`
	Total   float64       `json:"total"`
	DueDate *time.Time    `json:"dueDate,omitempty"`
}

// OverdueAt reports whether the invoice is overdue at the given instant.
// Paid and voided invoices are never overdue.
func (i Invoice) OverdueAt(now time.Time) bool {
	return IsOverdue(now, i.DueDate, string(i.Status), string(InvoiceStatusPaid), string(InvoiceStatusVoid))
}

// User is the authenticated JobTread user.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
}

// Snapshot is the combined normalized state the assistant reasons over.
// It is rebuilt from four independent upstream reads on every request.
type Snapshot struct {
	Jobs     []Job
	Invoices []Invoice
	Tasks    []Task
	Contacts []Contact
}

// FillEmpty replaces nil collections with empty slices so downstream
// aggregation never distinguishes "absent" from "none".
func (s *Snapshot) FillEmpty() {
	if s.Jobs == nil {
		s.Jobs = []Job{}
	}
	if s.Invoices == nil {
		s.Invoices = []Invoice{}
	}
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if s.Contacts == nil {
		s.Contacts = []Contact{}
	}
}
