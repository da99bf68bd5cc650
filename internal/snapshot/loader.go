// Package snapshot loads the combined jobs/invoices/tasks/contacts state
// from JobTread. The four reads are independent aggregates, so they are
// fanned out concurrently and joined without any ordering requirement.
package snapshot

import (
	"context"

	"sidebar_backend/internal/domain"
	"sidebar_backend/platform/jobtread"
	"sidebar_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// Source is the subset of the JobTread client the loader needs.
type Source interface {
	Jobs(ctx context.Context, grantKey string, filter jobtread.JobsFilter) ([]jobtread.RawJob, error)
	Contacts(ctx context.Context, grantKey string, filter jobtread.ContactsFilter) ([]jobtread.RawContact, error)
	Invoices(ctx context.Context, grantKey string, filter jobtread.InvoicesFilter) ([]jobtread.RawInvoice, error)
	Tasks(ctx context.Context, grantKey string, filter jobtread.TasksFilter) ([]jobtread.RawTask, error)
}

// Loader fetches and normalizes a full snapshot.
type Loader struct {
	src Source
	log *logger.Logger
}

// NewLoader creates a snapshot loader.
func NewLoader(src Source, log *logger.Logger) *Loader {
	return &Loader{src: src, log: log}
}

// Load fetches all four collections concurrently. Any failed read fails the
// whole load.
func (l *Loader) Load(ctx context.Context, grantKey string) (domain.Snapshot, error) {
	return l.load(ctx, grantKey, false)
}

// LoadDegraded fetches all four collections concurrently, replacing each
// failed read with an empty collection. The assistant uses this so one slow
// or broken aggregate does not take down the whole conversation; failures
// are still logged.
func (l *Loader) LoadDegraded(ctx context.Context, grantKey string) domain.Snapshot {
	snap, _ := l.load(ctx, grantKey, true)
	return snap
}

func (l *Loader) load(ctx context.Context, grantKey string, degrade bool) (domain.Snapshot, error) {
	var snap domain.Snapshot
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		rawJobs, err := l.src.Jobs(groupCtx, grantKey, jobtread.JobsFilter{})
		if err != nil {
			return l.handle("jobs", err, degrade)
		}
		snap.Jobs = domain.NormalizeJobs(rawJobs)
		return nil
	})
	group.Go(func() error {
		rawContacts, err := l.src.Contacts(groupCtx, grantKey, jobtread.ContactsFilter{})
		if err != nil {
			return l.handle("contacts", err, degrade)
		}
		snap.Contacts = domain.NormalizeContacts(rawContacts)
		return nil
	})
	group.Go(func() error {
		rawInvoices, err := l.src.Invoices(groupCtx, grantKey, jobtread.InvoicesFilter{})
		if err != nil {
			return l.handle("invoices", err, degrade)
		}
		snap.Invoices = domain.NormalizeInvoices(rawInvoices)
		return nil
	})
	group.Go(func() error {
		rawTasks, err := l.src.Tasks(groupCtx, grantKey, jobtread.TasksFilter{})
		if err != nil {
			return l.handle("tasks", err, degrade)
		}
		snap.Tasks = domain.NormalizeTasks(rawTasks)
		return nil
	})

	if err := group.Wait(); err != nil {
		return domain.Snapshot{}, err
	}

	snap.FillEmpty()
	return snap, nil
}

func (l *Loader) handle(operation string, err error, degrade bool) error {
	l.log.UpstreamError(operation, err)
	if degrade {
		return nil
	}
	return err
}
