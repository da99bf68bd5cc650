package snapshot

import (
	"context"
	"errors"
	"testing"

	"sidebar_backend/platform/jobtread"
	"sidebar_backend/platform/logger"
)

type fakeSource struct {
	jobs     []jobtread.RawJob
	contacts []jobtread.RawContact
	invoices []jobtread.RawInvoice
	tasks    []jobtread.RawTask

	jobsErr     error
	contactsErr error
	invoicesErr error
	tasksErr    error
}

func (f *fakeSource) Jobs(ctx context.Context, grantKey string, filter jobtread.JobsFilter) ([]jobtread.RawJob, error) {
	return f.jobs, f.jobsErr
}

func (f *fakeSource) Contacts(ctx context.Context, grantKey string, filter jobtread.ContactsFilter) ([]jobtread.RawContact, error) {
	return f.contacts, f.contactsErr
}

func (f *fakeSource) Invoices(ctx context.Context, grantKey string, filter jobtread.InvoicesFilter) ([]jobtread.RawInvoice, error) {
	return f.invoices, f.invoicesErr
}

func (f *fakeSource) Tasks(ctx context.Context, grantKey string, filter jobtread.TasksFilter) ([]jobtread.RawTask, error) {
	return f.tasks, f.tasksErr
}

func TestLoadCombinesAllCollections(t *testing.T) {
	src := &fakeSource{
		jobs:     []jobtread.RawJob{{ID: "j1", Name: "Roof", Status: "LEAD"}},
		contacts: []jobtread.RawContact{{ID: "c1", FirstName: "Dana", LastName: "Reed"}},
		invoices: []jobtread.RawInvoice{{ID: "i1", Status: "SENT"}},
		tasks:    []jobtread.RawTask{{ID: "t1", Title: "Order", Status: "PENDING"}},
	}
	loader := NewLoader(src, logger.New("test"))

	snap, err := loader.Load(context.Background(), "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Jobs) != 1 || len(snap.Contacts) != 1 || len(snap.Invoices) != 1 || len(snap.Tasks) != 1 {
		t.Fatalf("unexpected snapshot sizes: %d/%d/%d/%d",
			len(snap.Jobs), len(snap.Contacts), len(snap.Invoices), len(snap.Tasks))
	}
}

func TestLoadFailsWhenAnyReadFails(t *testing.T) {
	src := &fakeSource{invoicesErr: errors.New("upstream down")}
	loader := NewLoader(src, logger.New("test"))

	if _, err := loader.Load(context.Background(), "key"); err == nil {
		t.Fatal("expected strict load to surface the failed read")
	}
}

func TestLoadDegradedReplacesFailedReadsWithEmpty(t *testing.T) {
	src := &fakeSource{
		jobs:        []jobtread.RawJob{{ID: "j1", Name: "Roof", Status: "LEAD"}},
		invoicesErr: errors.New("upstream down"),
		tasksErr:    errors.New("upstream down"),
	}
	loader := NewLoader(src, logger.New("test"))

	snap := loader.LoadDegraded(context.Background(), "key")

	if len(snap.Jobs) != 1 {
		t.Fatalf("expected healthy read to survive, got %d jobs", len(snap.Jobs))
	}
	if snap.Invoices == nil || len(snap.Invoices) != 0 {
		t.Fatalf("expected failed invoice read to become empty slice, got %v", snap.Invoices)
	}
	if snap.Tasks == nil || len(snap.Tasks) != 0 {
		t.Fatalf("expected failed task read to become empty slice, got %v", snap.Tasks)
	}
}

func TestLoadEmptyAccountYieldsEmptySlices(t *testing.T) {
	loader := NewLoader(&fakeSource{}, logger.New("test"))

	snap, err := loader.Load(context.Background(), "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Jobs == nil || snap.Contacts == nil || snap.Invoices == nil || snap.Tasks == nil {
		t.Fatal("expected all snapshot collections to be non-nil")
	}
}
