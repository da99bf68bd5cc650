package domain

import (
	"time"

	"sidebar_backend/platform/jobtread"
	"sidebar_backend/platform/phone"
)

// The normalizers are deliberately forgiving: an absent optional field
// becomes the zero value, an absent collection becomes an empty slice and
// an unparsable date becomes nil. They never fail.

// NormalizeJob converts a raw job payload into a view model.
func NormalizeJob(raw jobtread.RawJob) Job {
	job := Job{
		ID:          raw.ID,
		Name:        raw.Name,
		Number:      strValue(raw.Number),
		Status:      JobStatus(raw.Status),
		Description: strValue(raw.Description),
		Budget:      normalizeBudget(raw.Budget),
		Tasks:       make([]Task, 0, len(raw.Tasks)),
	}

	if raw.Customer != nil {
		customer := NormalizeContact(*raw.Customer)
		job.Customer = &customer
	}
	if raw.Address != nil {
		job.Address = &Address{
			Street1: strValue(raw.Address.Street1),
			City:    strValue(raw.Address.City),
			State:   strValue(raw.Address.State),
			Zip:     strValue(raw.Address.Zip),
		}
	}
	for _, rawTask := range raw.Tasks {
		job.Tasks = append(job.Tasks, NormalizeTask(rawTask))
	}
	return job
}

// NormalizeContact converts a raw contact payload into a view model.
// Phone numbers are normalized to E.164 where they parse.
func NormalizeContact(raw jobtread.RawContact) Contact {
	return Contact{
		ID:        raw.ID,
		Type:      ContactType(strValue(raw.Type)),
		FirstName: raw.FirstName,
		LastName:  raw.LastName,
		Company:   strValue(raw.Company),
		Email:     strValue(raw.Email),
		Phone:     phone.NormalizeE164(strValue(raw.Phone)),
		Source:    strValue(raw.Source),
		Notes:     strValue(raw.Notes),
		CreatedAt: parseTime(raw.CreatedAt),
	}
}

// NormalizeInvoice converts a raw invoice payload into a view model.
func NormalizeInvoice(raw jobtread.RawInvoice) Invoice {
	return Invoice{
		ID:      raw.ID,
		JobID:   strValue(raw.JobID),
		Number:  strValue(raw.Number),
		Status:  InvoiceStatus(raw.Status),
		Total:   floatValue(raw.Total),
		DueDate: parseTime(raw.DueDate),
	}
}

// NormalizeTask converts a raw task payload into a view model.
func NormalizeTask(raw jobtread.RawTask) Task {
	return Task{
		ID:      raw.ID,
		JobID:   strValue(raw.JobID),
		Title:   raw.Title,
		Status:  TaskStatus(raw.Status),
		DueDate: parseTime(raw.DueDate),
	}
}

// NormalizeJobs converts a slice of raw jobs.
func NormalizeJobs(raws []jobtread.RawJob) []Job {
	jobs := make([]Job, 0, len(raws))
	for _, raw := range raws {
		jobs = append(jobs, NormalizeJob(raw))
	}
	return jobs
}

// NormalizeContacts converts a slice of raw contacts.
func NormalizeContacts(raws []jobtread.RawContact) []Contact {
	contacts := make([]Contact, 0, len(raws))
	for _, raw := range raws {
		contacts = append(contacts, NormalizeContact(raw))
	}
	return contacts
}

// NormalizeInvoices converts a slice of raw invoices.
func NormalizeInvoices(raws []jobtread.RawInvoice) []Invoice {
	invoices := make([]Invoice, 0, len(raws))
	for _, raw := range raws {
		invoices = append(invoices, NormalizeInvoice(raw))
	}
	return invoices
}

// NormalizeTasks converts a slice of raw tasks.
func NormalizeTasks(raws []jobtread.RawTask) []Task {
	tasks := make([]Task, 0, len(raws))
	for _, raw := range raws {
		tasks = append(tasks, NormalizeTask(raw))
	}
	return tasks
}

// NormalizeUser converts the raw current-user payload into a view model.
func NormalizeUser(raw jobtread.RawUser) User {
	user := User{
		ID:    raw.ID,
		Email: raw.Email,
		Name:  joinName(raw.FirstName, raw.LastName),
	}
	if raw.Organization != nil {
		user.Organization = raw.Organization.Name
	}
	return user
}

func normalizeBudget(raw *jobtread.RawBudget) Budget {
	if raw == nil {
		return Budget{}
	}
	return Budget{
		EstimatedRevenue: floatValue(raw.EstimatedRevenue),
		EstimatedCost:    floatValue(raw.EstimatedCost),
		EstimatedProfit:  floatValue(raw.EstimatedProfit),
		ActualRevenue:    floatValue(raw.ActualRevenue),
		ActualCost:       floatValue(raw.ActualCost),
		ActualProfit:     floatValue(raw.ActualProfit),
		Invoiced:         floatValue(raw.Invoiced),
		Paid:             floatValue(raw.Paid),
		Outstanding:      floatValue(raw.Outstanding),
	}
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatValue(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// parseTime accepts RFC 3339 timestamps and bare dates.
func parseTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t
		}
	}
	return nil
}
